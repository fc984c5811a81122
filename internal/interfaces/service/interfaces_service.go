package service

import (
	"context"

	domain "technopedia-registration/internal/domain/registration"

	"github.com/google/uuid"
)

// Request/Response types for the Registration Service

// MainRegistrationRequest is the full signup with academic metadata.
// Values are validated as submitted; no whitespace trimming.
type MainRegistrationRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100,fullname"`
	Email  string `json:"email" validate:"required,max=100,email"`
	Phone  string `json:"phone" validate:"required,len=10,inmobile"`
	PRN    string `json:"prn" validate:"required,min=5,max=50,alphanum"`
	Branch string `json:"branch" validate:"required,branch"`
	Year   string `json:"year" validate:"required,academicyear"`
}

// GameRegistrationRequest is the lightweight game-only signup. Email,
// branch and year are absent by design and never validated against the
// main schema.
type GameRegistrationRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=100,fullname"`
	Phone  string `json:"phone" validate:"required,len=10,inmobile"`
	PRN    string `json:"prn" validate:"required,min=5,max=50,alphanum"`
	GameID string `json:"game_id" validate:"required"`
}

// GameRegistrationResult is the visible outcome of a settled game
// signup: the (possibly pre-existing) registrant plus the new entry.
type GameRegistrationResult struct {
	Registrant *domain.Registrant `json:"registrant"`
	Entry      *domain.GameEntry  `json:"game_entry"`
	PaymentID  string             `json:"payment_id"`
}

type RegistrationService interface {
	RegisterMain(ctx context.Context, req *MainRegistrationRequest) (*domain.Registrant, error)
	RegisterGame(ctx context.Context, req *GameRegistrationRequest) (*GameRegistrationResult, error)

	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CheckPRNExists(ctx context.Context, prn string) (bool, error)

	ListGameEntries(ctx context.Context, registrantID uuid.UUID) ([]*domain.GameEntry, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type PaymentService interface {
	// ProcessPayment runs one checkout attempt for the entry and
	// records its outcome. It blocks on the hosted checkout.
	ProcessPayment(ctx context.Context, entry *domain.GameEntry, registrant *domain.Registrant) (*domain.PaymentAttempt, error)
	// RetryPayment reloads the entry and re-runs the checkout. Each
	// retry is an independent attempt; there is no retry cap.
	RetryPayment(ctx context.Context, gameEntryID uuid.UUID) (*domain.PaymentAttempt, error)
}
