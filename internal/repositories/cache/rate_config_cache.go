package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/remittance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_app/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_app/internal/middleware"
	"github.com/SscSPs/remittance_app/internal/platform/metrics"
	"github.com/redis/go-redis/v9"
)

// LatestRateConfigKey holds the JSON of the live configuration.
const LatestRateConfigKey = "rates:latest"

// Client is the subset of redis.Cmdable the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RateConfigCache is a read-through cache in front of a rate configuration
// repository. Redis failures degrade to the wrapped repository.
//
// Readers only fill an empty key (SETNX) and saves overwrite it, so a reader
// that loaded a row before a save cannot replace the saved one.
type RateConfigCache struct {
	next   portsrepo.RateConfigRepositoryFacade
	client Client
	ttl    time.Duration
}

// NewRateConfigCache wraps next. A non-positive ttl disables caching.
func NewRateConfigCache(next portsrepo.RateConfigRepositoryFacade, client Client, ttl time.Duration) portsrepo.RateConfigRepositoryFacade {
	if client == nil || ttl <= 0 {
		return next
	}
	return &RateConfigCache{next: next, client: client, ttl: ttl}
}

var _ portsrepo.RateConfigRepositoryFacade = (*RateConfigCache)(nil)

func (c *RateConfigCache) FindLatestRateConfiguration(ctx context.Context) (*domain.RateConfiguration, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := c.client.Get(ctx, LatestRateConfigKey).Bytes()
	switch {
	case err == nil:
		var cfg domain.RateConfiguration
		if jsonErr := json.Unmarshal(data, &cfg); jsonErr == nil {
			metrics.RateCacheLookups.WithLabelValues("hit").Inc()
			return &cfg, nil
		}
		logger.Warn("Discarding unreadable cached rate configuration")
		metrics.RateCacheLookups.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.RateCacheLookups.WithLabelValues("miss").Inc()
	default:
		logger.Warn("Rate cache read failed", slog.String("error", err.Error()))
		metrics.RateCacheLookups.WithLabelValues("error").Inc()
	}

	cfg, err := c.next.FindLatestRateConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(cfg); err == nil {
		if err := c.client.SetNX(ctx, LatestRateConfigKey, payload, c.ttl).Err(); err != nil {
			logger.Warn("Rate cache write failed", slog.String("error", err.Error()))
		}
	}
	return cfg, nil
}

// SaveRateConfiguration writes through and replaces the cached copy with the
// new row. If that write fails the key is dropped instead.
func (c *RateConfigCache) SaveRateConfiguration(ctx context.Context, cfg domain.RateConfiguration) error {
	if err := c.next.SaveRateConfiguration(ctx, cfg); err != nil {
		return err
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	payload, err := json.Marshal(cfg)
	if err == nil {
		err = c.client.Set(ctx, LatestRateConfigKey, payload, c.ttl).Err()
	}
	if err == nil {
		return nil
	}
	logger.Warn("Rate cache update failed, dropping cached copy", slog.String("error", err.Error()))
	if err := c.client.Del(ctx, LatestRateConfigKey).Err(); err != nil {
		logger.Warn("Rate cache invalidation failed", slog.String("error", err.Error()))
	}
	return nil
}
