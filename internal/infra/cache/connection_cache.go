// Package cache provides the optional Redis read-through cache for
// connection-status lookups. Map queries resolve one status per visible pin
// owner; caching them keeps the social source off the hot path.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pindrop/config"
	"pindrop/internal/domain/entity"
	"pindrop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// cachedConnectionService decorates a ConnectionService with a Redis
// read-through cache. Entries expire on TTL only; the social graph changes
// slowly relative to map polling.
type cachedConnectionService struct {
	source service.ConnectionService
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// WrapConnectionService wraps the source with a Redis cache when Redis is
// configured, otherwise returns the source unchanged.
func WrapConnectionService(source service.ConnectionService, cfg *config.Config, logger *slog.Logger) (service.ConnectionService, error) {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		logger.Info("Redis not configured, connection lookups go straight to source")

		return source, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ttl := cfg.Redis.ConnectionTTL
	if ttl <= 0 {
		ttl = config.DefaultConnectionCacheTTL
	}

	logger.Info("Connection-status cache enabled",
		slog.String("addr", cfg.Redis.Addr),
		slog.Duration("ttl", ttl),
	)

	return &cachedConnectionService{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func connectionKey(viewerID, ownerID uuid.UUID) string {
	return fmt.Sprintf("pindrop:conn:%s:%s", viewerID, ownerID)
}

// Status returns the cached relationship, falling through to the source on a
// miss. Cache failures degrade to a direct lookup.
func (c *cachedConnectionService) Status(ctx context.Context, viewerID, ownerID uuid.UUID) (entity.ConnectionStatus, error) {
	cached, err := c.client.Get(ctx, connectionKey(viewerID, ownerID)).Result()
	if err == nil {
		return entity.ConnectionStatus(cached), nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.Warn("Connection cache read failed, falling back to source",
			slog.Any("error", err),
		)
	}

	status, err := c.source.Status(ctx, viewerID, ownerID)
	if err != nil {
		return entity.ConnectionNone, err
	}

	if err := c.client.Set(ctx, connectionKey(viewerID, ownerID), string(status), c.ttl).Err(); err != nil {
		c.logger.Warn("Connection cache write failed",
			slog.Any("error", err),
		)
	}

	return status, nil
}

// Statuses resolves a batch, serving hits from cache and fetching only the
// misses from the source.
func (c *cachedConnectionService) Statuses(ctx context.Context, viewerID uuid.UUID, ownerIDs []uuid.UUID) (map[uuid.UUID]entity.ConnectionStatus, error) {
	statuses := make(map[uuid.UUID]entity.ConnectionStatus, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return statuses, nil
	}

	keys := make([]string, 0, len(ownerIDs))
	for _, ownerID := range ownerIDs {
		keys = append(keys, connectionKey(viewerID, ownerID))
	}

	var misses []uuid.UUID
	cached, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("Connection cache batch read failed, falling back to source",
			slog.Any("error", err),
		)
		misses = ownerIDs
	} else {
		for i, raw := range cached {
			value, ok := raw.(string)
			if !ok {
				misses = append(misses, ownerIDs[i])

				continue
			}
			statuses[ownerIDs[i]] = entity.ConnectionStatus(value)
		}
	}

	if len(misses) == 0 {
		return statuses, nil
	}

	fetched, err := c.source.Statuses(ctx, viewerID, misses)
	if err != nil {
		return nil, err
	}

	pipe := c.client.Pipeline()
	for ownerID, status := range fetched {
		statuses[ownerID] = status
		pipe.Set(ctx, connectionKey(viewerID, ownerID), string(status), c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("Connection cache batch write failed",
			slog.Any("error", err),
		)
	}

	return statuses, nil
}
