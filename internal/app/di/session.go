package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"jobboard_backend/internal/platform/session"
)

// SessionStore revokes session tokens and answers revocation checks.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewSessionStore creates a SessionStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the revoked_sessions table.
func NewSessionStore(rdb *redis.Client, db *gorm.DB) SessionStore {
	if rdb != nil {
		return session.NewSessionRedis(rdb, "session")
	}
	return session.NewSessionSQL(db)
}
