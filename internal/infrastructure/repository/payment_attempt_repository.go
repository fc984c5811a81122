package repository

import (
	"context"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentAttemptRepository implements PaymentAttemptRepository using GORM
type PaymentAttemptRepository struct {
	db *gorm.DB
}

// NewPaymentAttemptRepository creates a new GORM payment attempt repository
func NewPaymentAttemptRepository(db *gorm.DB) interfaces.PaymentAttemptRepository {
	return &PaymentAttemptRepository{
		db: db,
	}
}

// Create appends an attempt record regardless of outcome
func (r *PaymentAttemptRepository) Create(ctx context.Context, attempt *domain.PaymentAttempt) error {
	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// ListByGameEntry retrieves all attempts for one entry in the order
// they were made
func (r *PaymentAttemptRepository) ListByGameEntry(ctx context.Context, gameEntryID uuid.UUID) ([]*domain.PaymentAttempt, error) {
	var attempts []*domain.PaymentAttempt
	err := r.db.WithContext(ctx).
		Where("game_registration_id = ?", gameEntryID).
		Order("created_at ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, translateError(err)
	}
	return attempts, nil
}

// SuccessfulRevenue sums amounts over attempts with outcome success
func (r *PaymentAttemptRepository) SuccessfulRevenue(ctx context.Context) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&domain.PaymentAttempt{}).
		Where("status = ?", domain.AttemptSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, translateError(err)
	}
	return int(total), nil
}
