// Package session stores revoked session token ids in Redis so a logout
// takes effect before the token expires.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRedis is a Redis-backed revocation list. Entries expire together
// with the token they revoke.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	if prefix == "" {
		prefix = "session"
	}
	return &SessionRedis{client: client, prefix: prefix}
}

// revokedKey returns the Redis key for a revoked token id.
func (r *SessionRedis) revokedKey(tokenID string) string {
	return fmt.Sprintf("%s:revoked:%s", r.prefix, tokenID)
}

// Revoke marks tokenID as revoked until expiresAt. Already expired tokens
// are ignored.
func (r *SessionRedis) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.revokedKey(tokenID), 1, ttl).Err()
}

// IsRevoked reports whether tokenID was revoked.
func (r *SessionRedis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.revokedKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
