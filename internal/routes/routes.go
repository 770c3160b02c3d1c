package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/stabiliq/internal/config"
	"github.com/example/stabiliq/internal/handlers"
	"github.com/example/stabiliq/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	API        *handlers.APIHandler
	Auth       *handlers.AuthHandler
	Dashboard  *handlers.DashboardHandler
	Courses    *handlers.CourseHandler
	Profile    *handlers.ProfileHandler
	Assistance *handlers.FinancialAssistanceHandler
	Payment    *handlers.PaymentHandler
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, cfg *config.Config, h Handlers) {
	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret)

	app.Get("/healthz", h.API.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Get("/", h.API.Root)
	api.Post("/status", h.API.CreateStatus)
	api.Get("/status", h.API.ListStatus)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/send-otp", h.Auth.SendOTP)
	auth.Post("/verify-otp", h.Auth.VerifyOTP)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/me", requireAuth, h.Auth.Me)
	auth.Post("/logout", h.Auth.Logout)

	api.Get("/dashboard/stats", requireAuth, h.Dashboard.Stats)

	courses := api.Group("/courses", requireAuth)
	courses.Get("/modules", h.Courses.ListModules)
	courses.Get("/modules/:module_id", h.Courses.GetModule)
	courses.Post("/modules/:module_id/lessons/:lesson_id/complete", h.Courses.CompleteLesson)

	profile := api.Group("/profile", requireAuth)
	profile.Post("/upload-resume", h.Profile.UploadResume)
	profile.Post("/analyze", h.Profile.Analyze)

	assistance := api.Group("/financial-assistance", requireAuth)
	assistance.Get("/status", h.Assistance.Status)
	assistance.Post("/request", h.Assistance.Request)
	assistance.Get("/documents-required", h.Assistance.RequiredDocuments)

	// Payment routes; static paths before /:id
	payment := api.Group("/payment")
	payment.Post("/", requireAuth, h.Payment.Create)
	payment.Post("/callback", middleware.PhonePeCallbackMiddleware(cfg.PhonePe.SaltKey, cfg.PhonePe.SaltKeyIndex), h.Payment.Callback)
	payment.Post("/status", h.Payment.Status)
	payment.Get("/user/me", requireAuth, h.Payment.ListMine)
	payment.Get("/merchant/:merchantTransactionId", h.Payment.GetByMerchantTransactionID)
	payment.Get("/:id", requireAuth, h.Payment.GetByID)
	payment.Patch("/:id", requireAuth, h.Payment.Update)
}
