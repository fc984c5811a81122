package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"
)

// mockCache is an in-memory CacheService for testing. TTLs are
// honored on read.
type mockCache struct {
	stats     *domain.Stats
	expiresAt time.Time
	mutex     sync.RWMutex
}

// NewMockCache creates a new mock cache
func NewMockCache() interfaces.CacheService {
	return &mockCache{}
}

func (c *mockCache) GetStats(ctx context.Context) (*domain.Stats, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.stats == nil || time.Now().After(c.expiresAt) {
		return nil, fmt.Errorf("stats not cached")
	}
	return c.stats, nil
}

func (c *mockCache) SetStats(ctx context.Context, stats *domain.Stats, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.stats = stats
	c.expiresAt = time.Now().Add(ttl)
	return nil
}

func (c *mockCache) InvalidateStats(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.stats = nil
	return nil
}

func (c *mockCache) Ping(ctx context.Context) error {
	return nil
}
