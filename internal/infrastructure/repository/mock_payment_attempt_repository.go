package repository

import (
	"context"
	"sync"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"

	"github.com/google/uuid"
)

// mockPaymentAttemptRepository is an in-memory implementation of
// PaymentAttemptRepository for testing. Attempts keep insertion order,
// which matches creation-time order in the real store.
type mockPaymentAttemptRepository struct {
	attempts []*domain.PaymentAttempt
	mutex    sync.RWMutex
}

// NewMockPaymentAttemptRepository creates a new mock payment attempt repository
func NewMockPaymentAttemptRepository() interfaces.PaymentAttemptRepository {
	return &mockPaymentAttemptRepository{}
}

func (r *mockPaymentAttemptRepository) Create(ctx context.Context, attempt *domain.PaymentAttempt) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.attempts = append(r.attempts, attempt)
	return nil
}

func (r *mockPaymentAttemptRepository) ListByGameEntry(ctx context.Context, gameEntryID uuid.UUID) ([]*domain.PaymentAttempt, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var attempts []*domain.PaymentAttempt
	for _, attempt := range r.attempts {
		if attempt.GameEntryID == gameEntryID {
			attempts = append(attempts, attempt)
		}
	}
	return attempts, nil
}

func (r *mockPaymentAttemptRepository) SuccessfulRevenue(ctx context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	total := 0
	for _, attempt := range r.attempts {
		if attempt.Status == domain.AttemptSuccess {
			total += attempt.Amount
		}
	}
	return total, nil
}
