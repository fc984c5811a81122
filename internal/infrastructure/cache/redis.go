package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"technopedia-registration/internal/config"
	domain "technopedia-registration/internal/domain/registration"
	interfaces "technopedia-registration/internal/interfaces/infrastructure"

	"github.com/go-redis/redis/v8"
)

const statsKey = "stats:aggregate"

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr, password string, db int) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisCache{
		client: rdb,
	}
}

// NewRedisCacheWithConfig builds the cache from application config.
func NewRedisCacheWithConfig(cfg *config.CacheConfig) *RedisCache {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return NewRedisCache(addr, cfg.Password, cfg.DB)
}

func (r *RedisCache) GetStats(ctx context.Context) (*domain.Stats, error) {
	val, err := r.client.Get(ctx, statsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("stats not cached")
		}
		return nil, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	var stats domain.Stats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, fmt.Errorf("invalid stats value in cache: %w", err)
	}

	return &stats, nil
}

func (r *RedisCache) SetStats(ctx context.Context, stats *domain.Stats, ttl time.Duration) error {
	jsonData, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	err = r.client.Set(ctx, statsKey, jsonData, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set stats in cache: %w", err)
	}

	return nil
}

func (r *RedisCache) InvalidateStats(ctx context.Context) error {
	err := r.client.Del(ctx, statsKey).Err()
	if err != nil {
		return fmt.Errorf("failed to invalidate stats: %w", err)
	}

	return nil
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

var _ interfaces.CacheService = (*RedisCache)(nil)
