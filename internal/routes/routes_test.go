package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/example/stabiliq/internal/config"
	"github.com/example/stabiliq/internal/handlers"
	mock_handlers "github.com/example/stabiliq/internal/handlers/mocks"
	"github.com/example/stabiliq/internal/models"
	"github.com/example/stabiliq/internal/utils"
)

const routesSecret = "routes-secret"

func newRoutedApp(t *testing.T, payments handlers.PaymentAPI) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(zaptest.NewLogger(t))})
	cfg := &config.Config{
		JWTSecret: routesSecret,
		PhonePe:   config.PhonePe{SaltKey: "salt", SaltKeyIndex: "1"},
	}
	Register(app, cfg, Handlers{
		API:        handlers.NewAPIHandler(nil),
		Auth:       handlers.NewAuthHandler(nil),
		Dashboard:  handlers.NewDashboardHandler(nil),
		Courses:    handlers.NewCourseHandler(nil),
		Profile:    handlers.NewProfileHandler(nil),
		Assistance: handlers.NewFinancialAssistanceHandler(nil),
		Payment:    handlers.NewPaymentHandler(payments),
	})
	return app
}

func TestPaymentByIDRoutesRequireBearer(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
	}{
		{"patch status", http.MethodPatch, `{"paymentStatus":"PAYMENT_SUCCESS"}`},
		{"patch soft delete", http.MethodPatch, `{"isDeleted":true}`},
		{"get", http.MethodGet, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no expectations: any call into the payment service fails the test
			app := newRoutedApp(t, mock_handlers.NewMockPaymentAPI(ctrl))

			req := httptest.NewRequest(tc.method, "/api/payment/0b8f4a52-6f1e-4c1a-9a57-2f1d3c4b5a69", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.StatusCode)
			}
		})
	}
}

func TestPaymentByIDRouteAcceptsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	payments := mock_handlers.NewMockPaymentAPI(ctrl)
	app := newRoutedApp(t, payments)

	owner := utils.Identity{Email: "member@example.com", UserID: "u-1"}
	token, err := utils.GenerateToken(routesSecret, owner, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	payments.EXPECT().GetByID(gomock.Any(), "abc").
		Return(&models.PaymentTransaction{MerchantTransactionID: "T1", UserID: owner.UserID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/payment/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
