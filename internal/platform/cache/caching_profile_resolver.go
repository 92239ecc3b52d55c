// Package cache provides Redis caching decorators.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard_backend/internal/feature/company/usecase"
)

// CachingProfileResolver decorates a ProfileResolver with Redis caching.
// Only approved profiles are cached; not-found and not-approved results
// always reach the inner resolver so approval takes effect immediately.
type CachingProfileResolver struct {
	inner     usecase.ProfileResolver
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProfileResolver = (*CachingProfileResolver)(nil)

// NewCachingProfileResolver decorates inner. A nil rdb disables caching.
// If ttl is 0 it defaults to one minute; an empty namespace uses "profile".
func NewCachingProfileResolver(rdb *redis.Client, ttl time.Duration, inner usecase.ProfileResolver, namespace string) *CachingProfileResolver {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "profile"
	}
	return &CachingProfileResolver{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Resolve checks the cache first, then falls back to the inner resolver.
func (c *CachingProfileResolver) Resolve(ctx context.Context, slug string) (*usecase.PublicProfile, error) {
	if c.rdb == nil {
		return c.inner.Resolve(ctx, slug)
	}

	key := c.cacheKey(slug)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out usecase.PublicProfile
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Best effort: a cache write failure never fails the request.
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// Invalidate removes the cached profiles for slugs.
func (c *CachingProfileResolver) Invalidate(ctx context.Context, slugs ...string) error {
	if c.rdb == nil || len(slugs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s == "" {
			continue
		}
		keys = append(keys, c.cacheKey(s))
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// cacheKey generates the cache key for a slug.
func (c *CachingProfileResolver) cacheKey(slug string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(normalizeKey(slug)))
}
