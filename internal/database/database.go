package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/stabiliq/internal/models"
)

// Connect opens the database, creates it when missing, and brings the schema
// up to date: AutoMigrate for tables, then the SQL migrations for the indexes
// gorm tags cannot express.
func Connect(ctx context.Context, dsn string, verbose bool, log *zap.Logger) (*gorm.DB, error) {
	if err := ensureDatabase(ctx, dsn); err != nil {
		return nil, fmt.Errorf("ensure database: %w", err)
	}

	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := autoMigrate(conn.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	if err := RunMigrations(conn, log); err != nil {
		return nil, err
	}

	log.Info("database ready")
	return conn, nil
}

func autoMigrate(conn *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.UserOTPVerification{},
		&models.PaymentTransaction{},
		&models.StatusCheck{},
		&models.LessonCompletion{},
	}

	for _, table := range tables {
		if err := conn.AutoMigrate(table); err != nil {
			return err
		}
	}

	return nil
}

func ensureDatabase(ctx context.Context, dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	admin, err := sql.Open("postgres", parsed.String())
	if err != nil {
		return err
	}
	defer admin.Close()

	var exists bool
	if err := admin.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = admin.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(dbName))
	return err
}
