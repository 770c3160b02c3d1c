package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/example/stabiliq/internal/config"
	"github.com/example/stabiliq/internal/database"
	"github.com/example/stabiliq/internal/handlers"
	"github.com/example/stabiliq/internal/logger"
	"github.com/example/stabiliq/internal/middleware"
	"github.com/example/stabiliq/internal/repository"
	"github.com/example/stabiliq/internal/routes"
	"github.com/example/stabiliq/internal/services"
	"github.com/example/stabiliq/internal/telemetry"
)

func main() {
	cfg := config.MustLoad()

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	shutdownTracing, err := telemetry.InitTracing(cfg.Tracing.ServiceName, cfg.Tracing.JaegerEndpoint, zl)
	if err != nil {
		zl.Fatal("tracing init failed", zap.Error(err))
	}

	db, err := database.Connect(ctx, cfg.DatabaseURL, !cfg.Production(), zl)
	if err != nil {
		zl.Fatal("database init failed", zap.Error(err))
	}

	txns := repository.NewPaymentTransactionRepository(db)
	users := repository.NewUserRepository(db)
	otps := repository.NewOTPRepository(db)
	lessons := repository.NewLessonCompletionRepository(db)
	checks := repository.NewStatusCheckRepository(db)

	gateway := services.NewPhonePeClient(services.PhonePeConfig{
		HostURL:      cfg.PhonePe.HostURL,
		MerchantID:   cfg.PhonePe.MerchantID,
		SaltKey:      cfg.PhonePe.SaltKey,
		SaltKeyIndex: cfg.PhonePe.SaltKeyIndex,
		BaseURL:      cfg.PhonePe.BaseURL,
		Timeout:      cfg.PhonePe.Timeout,
	}, zl)

	paymentOpts := []services.PaymentOption{
		services.WithMaxIDAttempts(cfg.Payments.IDMaxAttempts),
		services.WithListLimits(cfg.Payments.ListDefaultLimit, cfg.Payments.ListMaxLimit),
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			zl.Warn("redis unreachable, idempotency keys fail open", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		cancel()
		paymentOpts = append(paymentOpts, services.WithIdempotencyStore(services.NewRedisIdempotencyStore(rdb, cfg.Payments.IdempotencyTTL)))
	} else {
		zl.Info("idempotency keys disabled: REDIS_ADDR not set")
	}

	var events *services.KafkaEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		events = services.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.PaymentTopic, zl)
		paymentOpts = append(paymentOpts, services.WithEventPublisher(events))
	} else {
		zl.Info("payment events disabled: KAFKA_BROKERS not set")
	}

	var mailers []services.NamedMailer
	if cfg.Mail.SendGridAPIKey != "" {
		mailers = append(mailers, services.NewSendGridMailer(cfg.Mail.SendGridAPIKey, cfg.Mail.From))
	}
	if cfg.Mail.SMTPHost != "" && cfg.Mail.SMTPUser != "" && cfg.Mail.SMTPPass != "" {
		mailers = append(mailers, services.NewSMTPMailer(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.SMTPUser, cfg.Mail.SMTPPass, cfg.Mail.From))
	}
	if len(mailers) == 0 {
		zl.Warn("no email provider configured, OTP requests will fail")
	}

	payments := services.NewPaymentService(txns, gateway, zl, paymentOpts...)
	auth := services.NewAuthService(users, otps, services.NewFallbackMailer(zl, mailers...), services.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL(),
		OTPTTL:    cfg.OTPTTL(),
	}, zl)
	courses := services.NewCourseService(lessons, zl)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: handlers.ErrorHandler(zl),
		BodyLimit:    handlers.MaxResumeSize + 1<<20,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-VERIFY, " + handlers.IdempotencyKeyHeader,
	}))
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.MetricsMiddleware())
	app.Use(middleware.LoggerMiddleware(zl))
	app.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout))

	routes.Register(app, cfg, routes.Handlers{
		API:        handlers.NewAPIHandler(services.NewStatusCheckService(checks)),
		Auth:       handlers.NewAuthHandler(auth),
		Dashboard:  handlers.NewDashboardHandler(services.NewDashboardService(users, courses)),
		Courses:    handlers.NewCourseHandler(courses),
		Profile:    handlers.NewProfileHandler(services.NewProfileService()),
		Assistance: handlers.NewFinancialAssistanceHandler(services.NewFinancialAssistanceService(users, zl)),
		Payment:    handlers.NewPaymentHandler(payments),
	})

	go func() {
		zl.Info("starting server", zap.String("port", cfg.AppPort), zap.String("env", cfg.Env))
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			zl.Fatal("fiber.Listen error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}
	if events != nil {
		if err := events.Close(); err != nil {
			zl.Error("kafka writer close", zap.Error(err))
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			zl.Error("redis close", zap.Error(err))
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		zl.Error("tracing shutdown", zap.Error(err))
	}
}
