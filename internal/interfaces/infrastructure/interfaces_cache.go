package interfaces

import (
	"context"
	"time"

	domain "technopedia-registration/internal/domain/registration"
)

type CacheService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
	SetStats(ctx context.Context, stats *domain.Stats, ttl time.Duration) error
	InvalidateStats(ctx context.Context) error
	Ping(ctx context.Context) error
}
