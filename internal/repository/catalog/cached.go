package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/improvdex/internal/db"
	"github.com/kailas-cloud/improvdex/internal/domain"
)

var cacheKeyPrefix = domain.KeyPrefix + "catalog:"

// store is the consumer interface for the document cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedSource keeps the last good document in a key-value store
// and serves it when the upstream source fails.
type CachedSource struct {
	inner      Source
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewCachedSource creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("refresh"/"fallback"/"miss"), passed explicitly.
func NewCachedSource(
	inner Source,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSource {
	return &CachedSource{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Name returns the upstream name so format detection still works.
func (c *CachedSource) Name() string { return c.inner.Name() }

// Fetch returns the upstream document, falling back to the cached copy on failure.
// Fetched documents are not cached until they are committed.
func (c *CachedSource) Fetch(ctx context.Context) ([]byte, error) {
	key := c.cacheKey()

	data, err := c.inner.Fetch(ctx)
	if err == nil {
		return data, nil
	}

	cached, cacheErr := c.store.Get(ctx, key)
	if cacheErr != nil || len(cached) == 0 {
		c.incCache("miss")
		if cacheErr != nil && !errors.Is(cacheErr, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to read cached catalog document", zap.String("key", key), zap.Error(cacheErr))
		}
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	c.incCache("fallback")
	c.logger.Warn("Catalog source unavailable, serving cached document",
		zap.String("source", c.inner.Name()),
		zap.Int("bytes", len(cached)),
		zap.Error(err),
	)
	return cached, nil
}

// Commit stores a document that parsed successfully as the new last good copy.
func (c *CachedSource) Commit(ctx context.Context, data []byte) {
	key := c.cacheKey()
	c.incCache("refresh")
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache catalog document", zap.String("key", key), zap.Error(err))
	}
}

func (c *CachedSource) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedSource) cacheKey() string {
	h := sha256.Sum256([]byte(c.inner.Name()))
	return cacheKeyPrefix + hex.EncodeToString(h[:8])
}
