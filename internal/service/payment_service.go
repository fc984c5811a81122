package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"
	serviceInterfaces "technopedia-registration/internal/interfaces/service"
	"technopedia-registration/pkg/logger"

	"github.com/google/uuid"
)

var _ serviceInterfaces.PaymentService = (*PaymentService)(nil)

type PaymentService struct {
	attemptRepo interfaces.PaymentAttemptRepository
	entryRepo   interfaces.GameEntryRepository
	gateway     interfaces.PaymentGateway
	checkout    interfaces.CheckoutProvider
	merchant    string
	currency    string
	now         func() time.Time
}

func NewPaymentService(
	attemptRepo interfaces.PaymentAttemptRepository,
	entryRepo interfaces.GameEntryRepository,
	gateway interfaces.PaymentGateway,
	checkout interfaces.CheckoutProvider,
	merchant string,
	currency string,
) *PaymentService {
	return &PaymentService{
		attemptRepo: attemptRepo,
		entryRepo:   entryRepo,
		gateway:     gateway,
		checkout:    checkout,
		merchant:    merchant,
		currency:    currency,
		now:         time.Now,
	}
}

// ProcessPayment runs one checkout attempt for the entry: create a
// gateway order, park on the hosted checkout, then record the outcome
// and update the entry's settlement state. Each call is one immutable
// attempt row; retries go through RetryPayment.
func (s *PaymentService) ProcessPayment(ctx context.Context, entry *domain.GameEntry, registrant *domain.Registrant) (*domain.PaymentAttempt, error) {
	receipt := NewReceiptID(s.now())
	logger.Info("Creating payment order for game entry %s (amount %d, receipt %s)", entry.ID, entry.PaymentAmount, receipt)

	order, err := s.gateway.CreateOrder(ctx, entry.PaymentAmount, s.currency, receipt)
	if err != nil {
		logger.Error("Order creation failed for game entry %s: %v", entry.ID, err)
		s.recordFailure(ctx, entry, "", fmt.Sprintf("order creation failed: %v", err))
		s.markEntryFailed(ctx, entry)
		return nil, &domain.PaymentError{Reason: "Failed to create payment order"}
	}

	result, err := s.checkout.Open(ctx, &interfaces.CheckoutRequest{
		Order:       order,
		Merchant:    s.merchant,
		Description: fmt.Sprintf("%s - %s", entry.GameName, s.merchant),
		Prefill: interfaces.CheckoutPrefill{
			Name:    registrant.Name,
			Email:   registrant.Email,
			Contact: registrant.Phone,
		},
	})
	if err != nil {
		logger.Error("Checkout aborted for order %s: %v", order.ID, err)
		s.recordFailure(ctx, entry, "", fmt.Sprintf("checkout aborted: %v", err))
		s.markEntryFailed(ctx, entry)
		return nil, &domain.PaymentError{Reason: "Payment processing failed"}
	}

	switch result.Outcome {
	case interfaces.CheckoutDismissed:
		logger.Info("Checkout dismissed by user for order %s", order.ID)
		s.recordFailure(ctx, entry, "", "checkout dismissed by user")
		s.markEntryFailed(ctx, entry)
		return nil, &domain.PaymentError{Reason: "Payment cancelled by user", Cancelled: true}

	case interfaces.CheckoutFailed:
		reason := "Payment processing failed"
		if result.Err != nil {
			reason = result.Err.Error()
		}
		logger.Error("Checkout failed for order %s: %s", order.ID, reason)
		s.recordFailure(ctx, entry, "", reason)
		s.markEntryFailed(ctx, entry)
		return nil, &domain.PaymentError{Reason: reason}

	case interfaces.CheckoutCompleted:
		return s.settle(ctx, entry, order, result.Payload)

	default:
		s.recordFailure(ctx, entry, "", fmt.Sprintf("unexpected checkout outcome %q", result.Outcome))
		s.markEntryFailed(ctx, entry)
		return nil, &domain.PaymentError{Reason: "Payment processing failed"}
	}
}

// settle verifies the callback signature and persists the successful
// attempt. An unverifiable callback is treated as a failed attempt, not
// a settled one.
func (s *PaymentService) settle(ctx context.Context, entry *domain.GameEntry, order *interfaces.Order, payload interfaces.CheckoutPayload) (*domain.PaymentAttempt, error) {
	if !s.gateway.VerifySignature(payload.OrderID, payload.PaymentID, payload.Signature) {
		logger.Error("Signature verification failed for order %s payment %s", payload.OrderID, payload.PaymentID)
		s.recordFailure(ctx, entry, payload.PaymentID, "payment signature verification failed")
		s.markEntryFailed(ctx, entry)
		return nil, &domain.PaymentError{Reason: "Payment signature verification failed"}
	}

	attempt := s.newAttempt(entry, payload.PaymentID, domain.AttemptSuccess, payload)
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		logger.Error("Failed to record successful payment %s: %v", payload.PaymentID, err)
		return nil, err
	}

	if err := s.entryRepo.UpdatePaymentStatus(ctx, entry.ID, payload.PaymentID, domain.PaymentPaid); err != nil {
		logger.Error("Failed to mark game entry %s paid: %v", entry.ID, err)
		return nil, err
	}

	logger.Info("Payment %s settled for game entry %s", payload.PaymentID, entry.ID)
	return attempt, nil
}

// RetryPayment reloads the entry with its registrant and runs a fresh
// checkout attempt. Prior failed attempts stay on record.
func (s *PaymentService) RetryPayment(ctx context.Context, gameEntryID uuid.UUID) (*domain.PaymentAttempt, error) {
	entry, err := s.entryRepo.GetByID(ctx, gameEntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, &domain.DatabaseError{Message: "Game registration not found"}
	}

	logger.Info("Retrying payment for game entry %s", entry.ID)
	return s.ProcessPayment(ctx, entry, &entry.Registrant)
}

func (s *PaymentService) newAttempt(entry *domain.GameEntry, paymentID string, status domain.AttemptOutcome, payload interface{}) *domain.PaymentAttempt {
	response := ""
	if payload != nil {
		if data, err := json.Marshal(payload); err == nil {
			response = string(data)
		}
	}

	return &domain.PaymentAttempt{
		ID:              uuid.New(),
		RegistrantID:    entry.RegistrantID,
		GameEntryID:     entry.ID,
		Gateway:         s.gateway.Name(),
		PaymentID:       paymentID,
		Amount:          entry.PaymentAmount,
		Currency:        s.currency,
		Status:          status,
		GatewayResponse: response,
		CreatedAt:       s.now(),
	}
}

// recordFailure logs a failed attempt row. Best effort: a write error
// here must not mask the payment failure itself.
func (s *PaymentService) recordFailure(ctx context.Context, entry *domain.GameEntry, paymentID, reason string) {
	attempt := s.newAttempt(entry, paymentID, domain.AttemptFailed, map[string]string{"error": reason})
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		logger.Warn("Failed to record failed payment attempt for entry %s: %v", entry.ID, err)
	}
}

func (s *PaymentService) markEntryFailed(ctx context.Context, entry *domain.GameEntry) {
	if err := s.entryRepo.UpdatePaymentStatus(ctx, entry.ID, entry.PaymentID, domain.PaymentFailed); err != nil {
		logger.Warn("Failed to mark game entry %s failed: %v", entry.ID, err)
	}
}
