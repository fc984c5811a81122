package repository

import (
	"context"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameEntryRepository implements GameEntryRepository using GORM
type GameEntryRepository struct {
	db *gorm.DB
}

// NewGameEntryRepository creates a new GORM game entry repository
func NewGameEntryRepository(db *gorm.DB) interfaces.GameEntryRepository {
	return &GameEntryRepository{
		db: db,
	}
}

// Create inserts a new game entry with a pending payment status
func (r *GameEntryRepository) Create(ctx context.Context, entry *domain.GameEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID retrieves a game entry with its registrant preloaded
func (r *GameEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GameEntry, error) {
	var entry domain.GameEntry
	err := r.db.WithContext(ctx).
		Preload("Registrant").
		Where("id = ?", id).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &entry, nil
}

// UpdatePaymentStatus records the settlement outcome on the entry
func (r *GameEntryRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentID string, status domain.PaymentStatus) error {
	err := r.db.WithContext(ctx).
		Model(&domain.GameEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"payment_id":     paymentID,
		}).Error
	if err != nil {
		return translateError(err)
	}
	return nil
}

// ListByRegistrant retrieves a registrant's entries, newest first
func (r *GameEntryRepository) ListByRegistrant(ctx context.Context, registrantID uuid.UUID) ([]*domain.GameEntry, error) {
	var entries []*domain.GameEntry
	err := r.db.WithContext(ctx).
		Where("registration_id = ?", registrantID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

// Count returns the total number of game entries
func (r *GameEntryRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GameEntry{}).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return int(count), nil
}
