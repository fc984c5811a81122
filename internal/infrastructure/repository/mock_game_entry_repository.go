package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"

	"github.com/google/uuid"
)

// mockGameEntryRepository is an in-memory implementation of
// GameEntryRepository for testing
type mockGameEntryRepository struct {
	entries     map[uuid.UUID]*domain.GameEntry
	registrants interfaces.RegistrantRepository
	mutex       sync.RWMutex
}

// NewMockGameEntryRepository creates a new mock game entry repository.
// The registrant repository is used to resolve the Registrant
// association the way Preload does.
func NewMockGameEntryRepository(registrants interfaces.RegistrantRepository) interfaces.GameEntryRepository {
	return &mockGameEntryRepository{
		entries:     make(map[uuid.UUID]*domain.GameEntry),
		registrants: registrants,
	}
}

func (r *mockGameEntryRepository) Create(ctx context.Context, entry *domain.GameEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *mockGameEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GameEntry, error) {
	r.mutex.RLock()
	entry, exists := r.entries[id]
	r.mutex.RUnlock()

	if !exists {
		return nil, nil
	}

	if r.registrants != nil {
		registrant, err := r.registrants.GetByID(ctx, entry.RegistrantID)
		if err != nil {
			return nil, err
		}
		if registrant != nil {
			entry.Registrant = *registrant
		}
	}
	return entry, nil
}

func (r *mockGameEntryRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentID string, status domain.PaymentStatus) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.entries[id]
	if !exists {
		return &domain.DatabaseError{Message: "game registration not found"}
	}

	entry.PaymentID = paymentID
	entry.PaymentStatus = status
	return nil
}

func (r *mockGameEntryRepository) ListByRegistrant(ctx context.Context, registrantID uuid.UUID) ([]*domain.GameEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var entries []*domain.GameEntry
	for _, entry := range r.entries {
		if entry.RegistrantID == registrantID {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *mockGameEntryRepository) Count(ctx context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entries), nil
}
