package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/stabiliq/internal/utils"
)

const assistanceSubmitEmail = "support@stabiliq.in"

type AssistanceStatus struct {
	IsUnlocked          bool       `json:"isUnlocked"`
	DaysRemaining       int        `json:"daysRemaining"`
	DaysSinceEnrollment *int       `json:"daysSinceEnrollment,omitempty"`
	EnrollmentDate      *time.Time `json:"enrollmentDate,omitempty"`
	Message             string     `json:"message"`
}

type AssistanceRequest struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type RequiredDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type RequiredDocuments struct {
	Documents      []RequiredDocument `json:"documents"`
	SubmitEmail    string             `json:"submitEmail"`
	AdditionalInfo string             `json:"additionalInfo"`
}

var requiredDocuments = RequiredDocuments{
	Documents: []RequiredDocument{
		{ID: "doc-1", Title: "Document providing reason for job loss", Description: "Official termination letter or layoff notice", Required: true},
		{ID: "doc-2", Title: "Employment termination letter from employer", Description: "Letter on company letterhead stating termination", Required: true},
		{ID: "doc-3", Title: "Salary slips of last 3 months", Description: "Recent salary slips showing employment", Required: true},
		{ID: "doc-4", Title: "Form 16", Description: "Latest Form 16 or tax documents", Required: true},
		{ID: "doc-5", Title: "Employer's contact details", Description: "Phone number and email of HR/Manager", Required: true},
		{ID: "doc-6", Title: "Government ID Proof", Description: "Aadhaar card, PAN card, or Passport", Required: true},
	},
	SubmitEmail:    assistanceSubmitEmail,
	AdditionalInfo: "Please compile all documents in a single PDF and email to " + assistanceSubmitEmail + " with subject: 'Financial Assistance Request - [Your Name]'",
}

// FinancialAssistanceService gates assistance requests behind the waiting period.
type FinancialAssistanceService struct {
	users UserStore
	log   *zap.Logger
	now   func() time.Time
}

func NewFinancialAssistanceService(users UserStore, log *zap.Logger) *FinancialAssistanceService {
	return &FinancialAssistanceService{users: users, log: log.Named("assistance"), now: time.Now}
}

func (s *FinancialAssistanceService) Status(ctx context.Context, identity utils.Identity) (*AssistanceStatus, error) {
	user, err := lookupUser(ctx, s.users, identity)
	if err != nil {
		return nil, err
	}
	if user.EnrollmentDate == nil {
		return &AssistanceStatus{DaysRemaining: AssistanceWaitingDays, Message: "Enrollment date not found"}, nil
	}

	days := daysSince(user.EnrollmentDate, s.now())
	enrolled := user.EnrollmentDate.UTC()
	st := &AssistanceStatus{
		IsUnlocked:          days >= AssistanceWaitingDays,
		DaysRemaining:       daysUntilAssistance(days),
		DaysSinceEnrollment: &days,
		EnrollmentDate:      &enrolled,
		Message:             "Financial assistance available",
	}
	if !st.IsUnlocked {
		st.Message = fmt.Sprintf("Available in %d days", st.DaysRemaining)
	}
	return st, nil
}

// Submit accepts a request once the member is past the waiting period.
func (s *FinancialAssistanceService) Submit(ctx context.Context, identity utils.Identity) (*AssistanceRequest, error) {
	user, err := lookupUser(ctx, s.users, identity)
	if err != nil {
		return nil, err
	}
	if user.EnrollmentDate == nil {
		return nil, &AssistanceLockedError{DaysRemaining: AssistanceWaitingDays}
	}
	now := s.now()
	if days := daysSince(user.EnrollmentDate, now); days < AssistanceWaitingDays {
		return nil, &AssistanceLockedError{DaysRemaining: daysUntilAssistance(days)}
	}

	userID := identity.UserID
	if len(userID) > 8 {
		userID = userID[:8]
	}
	requestID := fmt.Sprintf("FA-%s-%s", userID, now.UTC().Format("20060102150405"))
	s.log.Info("financial assistance requested", zap.String("user_id", identity.UserID), zap.String("request_id", requestID))

	return &AssistanceRequest{
		Success:   true,
		Message:   "Financial assistance request received. Our team will review and contact you soon.",
		RequestID: requestID,
	}, nil
}

func (s *FinancialAssistanceService) RequiredDocuments() RequiredDocuments {
	return requiredDocuments
}
