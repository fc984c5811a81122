package repository

import (
	"context"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrantRepository implements RegistrantRepository using GORM
type RegistrantRepository struct {
	db *gorm.DB
}

// NewRegistrantRepository creates a new GORM registrant repository
func NewRegistrantRepository(db *gorm.DB) interfaces.RegistrantRepository {
	return &RegistrantRepository{
		db: db,
	}
}

// Create inserts a new registrant row
func (r *RegistrantRepository) Create(ctx context.Context, registrant *domain.Registrant) error {
	if err := r.db.WithContext(ctx).Create(registrant).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// GetByID retrieves a registrant by id
func (r *RegistrantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registrant, error) {
	var registrant domain.Registrant
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&registrant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &registrant, nil
}

// ExistsByEmail reports whether any registrant has this email.
// Not-found is not an error.
func (r *RegistrantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var registrant domain.Registrant
	err := r.db.WithContext(ctx).
		Select("id").
		Where("email = ?", email).
		First(&registrant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, translateError(err)
	}
	return true, nil
}

// ExistsByPRN reports whether any registrant has this PRN
func (r *RegistrantRepository) ExistsByPRN(ctx context.Context, prn string) (bool, error) {
	var registrant domain.Registrant
	err := r.db.WithContext(ctx).
		Select("id").
		Where("prn = ?", prn).
		First(&registrant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, translateError(err)
	}
	return true, nil
}

// FindByIdentifier looks a registrant up by email or PRN match
func (r *RegistrantRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.Registrant, error) {
	var registrant domain.Registrant
	err := r.db.WithContext(ctx).
		Where("email = ? OR prn = ?", identifier, identifier).
		First(&registrant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return &registrant, nil
}

// Count returns the total number of registrants
func (r *RegistrantRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Registrant{}).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err)
	}
	return int(count), nil
}
