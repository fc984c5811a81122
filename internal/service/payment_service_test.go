package service

import (
	"context"
	"errors"
	"testing"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"

	"github.com/google/uuid"
)

func registerFailedGameEntry(t *testing.T, env *testEnv) *domain.GameEntry {
	t.Helper()

	env.checkout.Result = &interfaces.CheckoutResult{Outcome: interfaces.CheckoutDismissed}
	if _, err := env.registration.RegisterGame(context.Background(), validGameRequest()); err == nil {
		t.Fatal("Expected dismissed checkout to fail")
	}
	env.checkout.Result = nil

	registrant, _ := env.registrantRepo.FindByIdentifier(context.Background(), "PRN2025B02")
	entries, _ := env.entryRepo.ListByRegistrant(context.Background(), registrant.ID)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	return entries[0]
}

func TestProcessPayment_Success(t *testing.T) {
	env := newTestEnv(afterEarlyBird)

	result, err := env.registration.RegisterGame(context.Background(), validGameRequest())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	attempts, _ := env.attemptRepo.ListByGameEntry(context.Background(), result.Entry.ID)
	if len(attempts) != 1 {
		t.Fatalf("Expected 1 attempt, got %d", len(attempts))
	}
	if attempts[0].Status != domain.AttemptSuccess {
		t.Errorf("Expected success attempt, got %s", attempts[0].Status)
	}
	if attempts[0].Amount != result.Entry.PaymentAmount {
		t.Errorf("Expected attempt amount %d, got %d", result.Entry.PaymentAmount, attempts[0].Amount)
	}
	if attempts[0].Gateway != "mock" {
		t.Errorf("Expected gateway name recorded, got %s", attempts[0].Gateway)
	}
}

func TestProcessPayment_OrderCreationFailure(t *testing.T) {
	env := newTestEnv(afterEarlyBird)
	env.gateway.FailCreateOrder = true

	_, err := env.registration.RegisterGame(context.Background(), validGameRequest())
	var paymentErr *domain.PaymentError
	if !errors.As(err, &paymentErr) {
		t.Fatalf("Expected PaymentError, got %v", err)
	}
	if paymentErr.Cancelled {
		t.Error("Expected non-cancelled failure for order creation")
	}
	if paymentErr.Error() != "Failed to create payment order" {
		t.Errorf("Expected order creation message, got %q", paymentErr.Error())
	}

	// The failure was logged as an attempt.
	registrant, _ := env.registrantRepo.FindByIdentifier(context.Background(), "PRN2025B02")
	entries, _ := env.entryRepo.ListByRegistrant(context.Background(), registrant.ID)
	attempts, _ := env.attemptRepo.ListByGameEntry(context.Background(), entries[0].ID)
	if len(attempts) != 1 || attempts[0].Status != domain.AttemptFailed {
		t.Fatalf("Expected 1 failed attempt, got %v", attempts)
	}
}

func TestProcessPayment_SignatureVerificationFailure(t *testing.T) {
	env := newTestEnv(afterEarlyBird)
	env.gateway.RejectSignatures = true

	_, err := env.registration.RegisterGame(context.Background(), validGameRequest())
	var paymentErr *domain.PaymentError
	if !errors.As(err, &paymentErr) {
		t.Fatalf("Expected PaymentError, got %v", err)
	}
	if paymentErr.Error() != "Payment signature verification failed" {
		t.Errorf("Expected signature message, got %q", paymentErr.Error())
	}

	registrant, _ := env.registrantRepo.FindByIdentifier(context.Background(), "PRN2025B02")
	entries, _ := env.entryRepo.ListByRegistrant(context.Background(), registrant.ID)
	if entries[0].PaymentStatus != domain.PaymentFailed {
		t.Errorf("Expected failed entry on bad signature, got %s", entries[0].PaymentStatus)
	}
}

func TestProcessPayment_CheckoutFailedOutcome(t *testing.T) {
	env := newTestEnv(afterEarlyBird)
	env.checkout.Result = &interfaces.CheckoutResult{
		Outcome: interfaces.CheckoutFailed,
		Err:     errors.New("card declined"),
	}

	_, err := env.registration.RegisterGame(context.Background(), validGameRequest())
	var paymentErr *domain.PaymentError
	if !errors.As(err, &paymentErr) {
		t.Fatalf("Expected PaymentError, got %v", err)
	}
	if paymentErr.Error() != "card declined" {
		t.Errorf("Expected gateway reason surfaced, got %q", paymentErr.Error())
	}
}

func TestRetryPayment_SucceedsAfterDismissal(t *testing.T) {
	env := newTestEnv(afterEarlyBird)
	entry := registerFailedGameEntry(t, env)

	attempt, err := env.payments.RetryPayment(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if attempt.Status != domain.AttemptSuccess {
		t.Errorf("Expected success attempt, got %s", attempt.Status)
	}

	// Entry is now settled and both attempts remain on record.
	reloaded, _ := env.entryRepo.GetByID(context.Background(), entry.ID)
	if reloaded.PaymentStatus != domain.PaymentPaid {
		t.Errorf("Expected paid entry after retry, got %s", reloaded.PaymentStatus)
	}

	attempts, _ := env.attemptRepo.ListByGameEntry(context.Background(), entry.ID)
	if len(attempts) != 2 {
		t.Fatalf("Expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].Status != domain.AttemptFailed || attempts[1].Status != domain.AttemptSuccess {
		t.Errorf("Expected failed then success attempts, got %s / %s", attempts[0].Status, attempts[1].Status)
	}

	// The retry amount is the amount fixed at entry creation, not a
	// fresh pricing run.
	if attempts[1].Amount != entry.PaymentAmount {
		t.Errorf("Expected retry amount %d, got %d", entry.PaymentAmount, attempts[1].Amount)
	}
}

func TestRetryPayment_UnknownEntry(t *testing.T) {
	env := newTestEnv(afterEarlyBird)

	_, err := env.payments.RetryPayment(context.Background(), uuid.New())
	var databaseErr *domain.DatabaseError
	if !errors.As(err, &databaseErr) {
		t.Fatalf("Expected DatabaseError, got %v", err)
	}
	if databaseErr.Error() != "Game registration not found" {
		t.Errorf("Expected not-found message, got %q", databaseErr.Error())
	}
}
