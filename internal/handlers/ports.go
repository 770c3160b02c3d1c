package handlers

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mock_handlers

import (
	"context"

	"github.com/example/stabiliq/internal/models"
	"github.com/example/stabiliq/internal/services"
	"github.com/example/stabiliq/internal/utils"
)

// PaymentAPI is the payment behaviour the HTTP layer needs.
type PaymentAPI interface {
	InitiatePayment(ctx context.Context, in services.InitiatePaymentInput) (*services.InitiatePaymentResult, error)
	GetByID(ctx context.Context, id string) (*models.PaymentTransaction, error)
	GetByMerchantTransactionID(ctx context.Context, id string) (*models.PaymentTransaction, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.PaymentTransaction, error)
	UpdateTransaction(ctx context.Context, id string, upd models.TransactionUpdate) (*models.PaymentTransaction, error)
	HandleCallback(ctx context.Context, cb *services.CallbackPayload) (*models.PaymentTransaction, error)
	AcknowledgeRedirect(ctx context.Context, merchantTransactionID string) (*models.PaymentTransaction, error)
}

type AuthAPI interface {
	SendOTP(ctx context.Context, email, phone string) error
	Login(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, in services.VerifyOTPInput) (*services.AuthResult, error)
	Me(ctx context.Context, identity utils.Identity) (*services.UserProfile, error)
}

type CourseAPI interface {
	Modules(ctx context.Context, userID string) ([]services.CourseModule, error)
	Module(ctx context.Context, userID, moduleID string) (*services.CourseModule, error)
	CompleteLesson(ctx context.Context, userID, moduleID, lessonID string) error
}

type DashboardAPI interface {
	Stats(ctx context.Context, identity utils.Identity) (*services.DashboardStats, error)
}

type AssistanceAPI interface {
	Status(ctx context.Context, identity utils.Identity) (*services.AssistanceStatus, error)
	Submit(ctx context.Context, identity utils.Identity) (*services.AssistanceRequest, error)
	RequiredDocuments() services.RequiredDocuments
}

type ProfileAPI interface {
	UploadResult(userID, filename string) services.ResumeUpload
	Analyze(resumeURL, linkedinURL string) (*services.AnalysisResult, error)
}

type StatusCheckAPI interface {
	Create(ctx context.Context, clientName string) (*models.StatusCheck, error)
	List(ctx context.Context) ([]models.StatusCheck, error)
}
