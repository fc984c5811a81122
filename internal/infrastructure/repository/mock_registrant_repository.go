package repository

import (
	"context"
	"sync"
	"time"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"

	"github.com/google/uuid"
)

// mockRegistrantRepository is an in-memory implementation of
// RegistrantRepository for testing. It enforces the same email/PRN
// uniqueness the backing store's constraints would.
type mockRegistrantRepository struct {
	registrants map[uuid.UUID]*domain.Registrant
	mutex       sync.RWMutex
}

// NewMockRegistrantRepository creates a new mock registrant repository
func NewMockRegistrantRepository() interfaces.RegistrantRepository {
	return &mockRegistrantRepository{
		registrants: make(map[uuid.UUID]*domain.Registrant),
	}
}

func (r *mockRegistrantRepository) Create(ctx context.Context, registrant *domain.Registrant) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.registrants {
		if existing.Email == registrant.Email {
			return &domain.DuplicateError{Field: domain.FieldEmail}
		}
		if existing.PRN == registrant.PRN {
			return &domain.DuplicateError{Field: domain.FieldPRN}
		}
	}

	registrant.UpdatedAt = time.Now()
	r.registrants[registrant.ID] = registrant
	return nil
}

func (r *mockRegistrantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Registrant, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	registrant, exists := r.registrants[id]
	if !exists {
		return nil, nil
	}
	return registrant, nil
}

func (r *mockRegistrantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, registrant := range r.registrants {
		if registrant.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockRegistrantRepository) ExistsByPRN(ctx context.Context, prn string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, registrant := range r.registrants {
		if registrant.PRN == prn {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockRegistrantRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.Registrant, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, registrant := range r.registrants {
		if registrant.Email == identifier || registrant.PRN == identifier {
			return registrant, nil
		}
	}
	return nil, nil
}

func (r *mockRegistrantRepository) Count(ctx context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.registrants), nil
}
