package service

import (
	"context"
	"time"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"
	serviceInterfaces "technopedia-registration/internal/interfaces/service"
	"technopedia-registration/pkg/logger"
	"technopedia-registration/pkg/validator"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// StatsTTL bounds how stale the cached aggregate stats may get.
const StatsTTL = 5 * time.Minute

var _ serviceInterfaces.RegistrationService = (*RegistrationService)(nil)

type RegistrationService struct {
	registrantRepo  interfaces.RegistrantRepository
	entryRepo       interfaces.GameEntryRepository
	attemptRepo     interfaces.PaymentAttemptRepository
	cacheService    interfaces.CacheService
	paymentService  serviceInterfaces.PaymentService
	earlyBirdEnd    time.Time
	registrationEnd time.Time
	now             func() time.Time
}

func NewRegistrationService(
	registrantRepo interfaces.RegistrantRepository,
	entryRepo interfaces.GameEntryRepository,
	attemptRepo interfaces.PaymentAttemptRepository,
	cacheService interfaces.CacheService,
	paymentService serviceInterfaces.PaymentService,
	earlyBirdEnd time.Time,
	registrationEnd time.Time,
) *RegistrationService {
	return &RegistrationService{
		registrantRepo:  registrantRepo,
		entryRepo:       entryRepo,
		attemptRepo:     attemptRepo,
		cacheService:    cacheService,
		paymentService:  paymentService,
		earlyBirdEnd:    earlyBirdEnd,
		registrationEnd: registrationEnd,
		now:             time.Now,
	}
}

type MainRegistrationRequest = serviceInterfaces.MainRegistrationRequest
type GameRegistrationRequest = serviceInterfaces.GameRegistrationRequest
type GameRegistrationResult = serviceInterfaces.GameRegistrationResult

// RegisterMain handles the full signup: validate as submitted, refuse
// after the registration end date, check both unique fields up front,
// then persist. No payment is taken on this path.
func (s *RegistrationService) RegisterMain(ctx context.Context, req *MainRegistrationRequest) (*domain.Registrant, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, &domain.ValidationError{Fields: validator.FormatValidationError(err)}
	}

	if domain.WindowStatus(s.now(), s.earlyBirdEnd, s.registrationEnd) == domain.WindowClosed {
		return nil, domain.ErrRegistrationClosed
	}

	// Both checks run before either result is inspected, so the caller
	// learns about an email conflict even when the PRN also collides.
	var emailExists, prnExists bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		exists, err := s.registrantRepo.ExistsByEmail(gctx, req.Email)
		emailExists = exists
		return err
	})
	g.Go(func() error {
		exists, err := s.registrantRepo.ExistsByPRN(gctx, req.PRN)
		prnExists = exists
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if emailExists {
		return nil, &domain.DuplicateError{Field: domain.FieldEmail}
	}
	if prnExists {
		return nil, &domain.DuplicateError{Field: domain.FieldPRN}
	}

	registrant := domain.NewMainRegistrant(req.Name, req.Email, req.Phone, req.PRN, req.Branch, req.Year)
	if err := s.registrantRepo.Create(ctx, registrant); err != nil {
		return nil, err
	}

	if err := s.cacheService.InvalidateStats(ctx); err != nil {
		logger.Warn("Failed to invalidate stats cache: %v", err)
	}

	logger.Info("Registered %s (%s) for the fest", registrant.Name, registrant.PRN)
	return registrant, nil
}

// RegisterGame handles the game-only signup: reuse the registrant for
// the PRN when one exists, otherwise create a placeholder one, price
// the entry as of now, persist it pending, then run the checkout. A
// payment failure leaves the registrant and entry rows in place.
func (s *RegistrationService) RegisterGame(ctx context.Context, req *GameRegistrationRequest) (*GameRegistrationResult, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, &domain.ValidationError{Fields: validator.FormatValidationError(err)}
	}

	if domain.WindowStatus(s.now(), s.earlyBirdEnd, s.registrationEnd) == domain.WindowClosed {
		return nil, domain.ErrRegistrationClosed
	}

	game, ok := domain.GameByID(req.GameID)
	if !ok {
		return nil, domain.NewValidationError("game_id", "Invalid game selection")
	}

	registrant, err := s.registrantRepo.FindByIdentifier(ctx, req.PRN)
	if err != nil {
		return nil, err
	}
	if registrant == nil {
		registrant = domain.NewGameOnlyRegistrant(req.Name, req.Phone, req.PRN)
		if err := s.registrantRepo.Create(ctx, registrant); err != nil {
			return nil, err
		}
		logger.Info("Created game-only registrant for PRN %s", req.PRN)
	}

	entry := &domain.GameEntry{
		ID:            uuid.New(),
		RegistrantID:  registrant.ID,
		GameID:        game.ID,
		GameName:      game.Name,
		PaymentStatus: domain.PaymentPending,
		PaymentAmount: domain.Price(1, s.now(), s.earlyBirdEnd),
		CreatedAt:     s.now(),
		Registrant:    *registrant,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	attempt, err := s.paymentService.ProcessPayment(ctx, entry, registrant)
	if err != nil {
		return nil, err
	}

	entry.PaymentStatus = domain.PaymentPaid
	entry.PaymentID = attempt.PaymentID

	if err := s.cacheService.InvalidateStats(ctx); err != nil {
		logger.Warn("Failed to invalidate stats cache: %v", err)
	}

	return &GameRegistrationResult{
		Registrant: registrant,
		Entry:      entry,
		PaymentID:  attempt.PaymentID,
	}, nil
}

// CheckEmailExists reports whether an email is already registered. No
// side effects; safe to call from live form feedback.
func (s *RegistrationService) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	return s.registrantRepo.ExistsByEmail(ctx, email)
}

// CheckPRNExists reports whether a PRN is already registered.
func (s *RegistrationService) CheckPRNExists(ctx context.Context, prn string) (bool, error) {
	return s.registrantRepo.ExistsByPRN(ctx, prn)
}

func (s *RegistrationService) ListGameEntries(ctx context.Context, registrantID uuid.UUID) ([]*domain.GameEntry, error) {
	return s.entryRepo.ListByRegistrant(ctx, registrantID)
}

// Stats returns the aggregate counters, served from cache when fresh.
func (s *RegistrationService) Stats(ctx context.Context) (*domain.Stats, error) {
	if cached, err := s.cacheService.GetStats(ctx); err == nil {
		return cached, nil
	}

	stats := &domain.Stats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.registrantRepo.Count(gctx)
		stats.TotalRegistrants = count
		return err
	})
	g.Go(func() error {
		count, err := s.entryRepo.Count(gctx)
		stats.TotalGameEntries = count
		return err
	})
	g.Go(func() error {
		revenue, err := s.attemptRepo.SuccessfulRevenue(gctx)
		stats.TotalRevenue = revenue
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.cacheService.SetStats(ctx, stats, StatsTTL); err != nil {
		logger.Warn("Failed to cache stats: %v", err)
	}

	return stats, nil
}
