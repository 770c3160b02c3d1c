package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/stabiliq/internal/models"
)

// PaymentTransactionRepository persists payment transactions in Postgres.
type PaymentTransactionRepository struct {
	db *gorm.DB
}

// NewPaymentTransactionRepository constructs a PaymentTransactionRepository.
func NewPaymentTransactionRepository(db *gorm.DB) *PaymentTransactionRepository {
	return &PaymentTransactionRepository{db: db}
}

// ExistsByMerchantTransactionID reports whether a non-deleted transaction uses id.
func (r *PaymentTransactionRepository) ExistsByMerchantTransactionID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Where("merchant_transaction_id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// Create inserts txn. A merchant transaction id already used by a live row
// yields ErrDuplicateKey.
func (r *PaymentTransactionRepository) Create(ctx context.Context, txn *models.PaymentTransaction) error {
	return translate(r.db.WithContext(ctx).Create(txn).Error)
}

// FindByID returns the transaction with the internal id, soft-deleted or not.
func (r *PaymentTransactionRepository) FindByID(ctx context.Context, id string) (*models.PaymentTransaction, error) {
	uid, ok := models.ParseID(id)
	if !ok {
		return nil, ErrNotFound
	}

	var txn models.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("id = ?", uid).First(&txn).Error; err != nil {
		return nil, translate(err)
	}
	return &txn, nil
}

// FindByMerchantTransactionID returns the live transaction with the merchant id.
func (r *PaymentTransactionRepository) FindByMerchantTransactionID(ctx context.Context, id string) (*models.PaymentTransaction, error) {
	var txn models.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("merchant_transaction_id = ? AND is_deleted = ?", id, false).
		First(&txn).Error
	if err != nil {
		return nil, translate(err)
	}
	return &txn, nil
}

// ListByUserID returns the user's live transactions, newest first.
func (r *PaymentTransactionRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]models.PaymentTransaction, error) {
	txns := make([]models.PaymentTransaction, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, translate(err)
	}
	return txns, nil
}

// UpdateByID merges upd into the row under a row lock and returns the columns
// it wrote. Re-applying an update already in place writes nothing.
func (r *PaymentTransactionRepository) UpdateByID(ctx context.Context, id string, upd models.TransactionUpdate) (*models.PaymentTransaction, []string, error) {
	uid, ok := models.ParseID(id)
	if !ok {
		return nil, nil, ErrNotFound
	}

	var (
		txn     models.PaymentTransaction
		changed []string
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", uid).
			First(&txn).Error; err != nil {
			return err
		}

		changes := upd.Changes(&txn)
		if len(changes) == 0 {
			return nil
		}

		if err := tx.Model(&txn).Updates(changes).Error; err != nil {
			return err
		}
		upd.Apply(&txn)
		for column := range changes {
			changed = append(changed, column)
		}
		return nil
	})
	if err != nil {
		return nil, nil, translate(err)
	}
	return &txn, changed, nil
}
