package interfaces

import (
	"context"

	domain "technopedia-registration/internal/domain/registration"

	"github.com/google/uuid"
)

type RegistrantRepository interface {
	Create(ctx context.Context, registrant *domain.Registrant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Registrant, error)
	// ExistsByEmail and ExistsByPRN treat not-found as false, not an
	// error, and have no side effects.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPRN(ctx context.Context, prn string) (bool, error)
	// FindByIdentifier matches either email or PRN; nil means no match.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.Registrant, error)
	Count(ctx context.Context) (int, error)
}

type GameEntryRepository interface {
	Create(ctx context.Context, entry *domain.GameEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameEntry, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentID string, status domain.PaymentStatus) error
	// ListByRegistrant returns entries newest first.
	ListByRegistrant(ctx context.Context, registrantID uuid.UUID) ([]*domain.GameEntry, error)
	Count(ctx context.Context) (int, error)
}

type PaymentAttemptRepository interface {
	// Create appends a log record regardless of the attempt's outcome.
	Create(ctx context.Context, attempt *domain.PaymentAttempt) error
	ListByGameEntry(ctx context.Context, gameEntryID uuid.UUID) ([]*domain.PaymentAttempt, error)
	// SuccessfulRevenue sums amounts over attempts with outcome success.
	SuccessfulRevenue(ctx context.Context) (int, error)
}
