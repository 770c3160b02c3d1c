package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/stabiliq/internal/models"
)

// OTPRepository stores hashed one-time codes.
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository constructs an OTPRepository.
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Create stores a new code for email and consumes any earlier unconsumed one,
// so at most one code per email is live.
func (r *OTPRepository) Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		if err := tx.Model(&models.UserOTPVerification{}).
			Where("email = ? AND consumed = ?", email, false).
			Updates(map[string]any{"consumed": true, "consumed_at": now}).Error; err != nil {
			return err
		}

		return tx.Create(&models.UserOTPVerification{
			Email:     email,
			CodeHash:  codeHash,
			ExpiresAt: expiresAt,
		}).Error
	}))
}

// ConsumeValid marks the live, unexpired code for email consumed when match
// accepts its hash. The row is locked so a code is consumed at most once.
func (r *OTPRepository) ConsumeValid(ctx context.Context, email string, now time.Time, match func(codeHash string) bool) (bool, error) {
	var ok bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var otp models.UserOTPVerification
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ? AND consumed = ? AND expires_at > ?", email, false, now).
			Order("created_at desc").
			First(&otp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if !match(otp.CodeHash) {
			return nil
		}

		res := tx.Model(&models.UserOTPVerification{}).
			Where("id = ? AND consumed = ?", otp.ID, false).
			Updates(map[string]any{"consumed": true, "consumed_at": now})
		if res.Error != nil {
			return res.Error
		}
		ok = res.RowsAffected == 1
		return nil
	})
	if err != nil {
		return false, translate(err)
	}
	return ok, nil
}
