package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/example/stabiliq/internal/models"
)

// StatusCheckRepository stores client heartbeats.
type StatusCheckRepository struct {
	db *gorm.DB
}

// NewStatusCheckRepository constructs a StatusCheckRepository.
func NewStatusCheckRepository(db *gorm.DB) *StatusCheckRepository {
	return &StatusCheckRepository{db: db}
}

// Create inserts a status check.
func (r *StatusCheckRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	return translate(r.db.WithContext(ctx).Create(check).Error)
}

// List returns up to limit status checks, oldest first.
func (r *StatusCheckRepository) List(ctx context.Context, limit int) ([]models.StatusCheck, error) {
	checks := make([]models.StatusCheck, 0)
	if err := r.db.WithContext(ctx).Order("timestamp asc").Limit(limit).Find(&checks).Error; err != nil {
		return nil, translate(err)
	}
	return checks, nil
}
