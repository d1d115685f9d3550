package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"labor-intel/internal/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// ResultCache stores JSON values by key. A cache that is not Available is
// skipped entirely.
type ResultCache interface {
	Available() bool
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

const cachePrefix = "lmi:"

// CacheKey hashes params so that equal queries share a key regardless of how
// long their free-text parts are.
func CacheKey(namespace string, params any) string {
	b, _ := json.Marshal(params)
	sum := sha256.Sum256(b)
	return cachePrefix + namespace + ":" + hex.EncodeToString(sum[:])
}

func lockKey(key string) string {
	return strings.Replace(key, cachePrefix, cachePrefix+"lock:", 1)
}

func normalizeSearchValue(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

var lockWait = 300 * time.Millisecond

// cached returns the value under key, loading and storing it on a miss. Only
// one caller at a time loads a given key; others wait briefly for the value
// and fall back to loading it themselves.
func cached[T any](ctx context.Context, c ResultCache, logger zerolog.Logger, namespace, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil || !c.Available() {
		return load(ctx)
	}

	var out T
	if hit, err := c.GetJSON(ctx, key, &out); err == nil && hit {
		metrics.CacheRequestsTotal.WithLabelValues(namespace, "hit").Inc()
		logger.Debug().Str("key", key).Msg("cache hit")
		return out, nil
	}
	metrics.CacheRequestsTotal.WithLabelValues(namespace, "miss").Inc()
	logger.Debug().Str("key", key).Msg("cache miss")

	lk := lockKey(key)
	acquired, err := c.SetIfNotExists(ctx, lk, "1", 30*time.Second)
	if err == nil && !acquired {
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-time.After(lockWait):
		}
		if hit, err := c.GetJSON(ctx, key, &out); err == nil && hit {
			return out, nil
		}
		logger.Debug().Str("key", lk).Msg("cache lock wait fallback")
	}
	if acquired {
		defer func() { _ = c.Delete(context.WithoutCancel(ctx), lk) }()
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if err := c.SetJSON(ctx, key, v, 0); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return v, nil
}
