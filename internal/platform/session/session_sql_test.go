package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/platform/db/dbtest"
)

func TestSessionSQL_RevokeAndCheck(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewSessionSQL(gdb)
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	exp := time.Now().Add(time.Hour)
	require.NoError(t, repo.Revoke(ctx, "jti-1", exp))
	require.NoError(t, repo.Revoke(ctx, "jti-1", exp), "second revoke must be a no-op")

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionSQL_ExpiryAndCleanup(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewSessionSQL(gdb)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return base }

	require.NoError(t, repo.Revoke(ctx, "past", base.Add(-time.Minute)))
	require.NoError(t, repo.Revoke(ctx, "short", base.Add(time.Minute)))
	require.NoError(t, repo.Revoke(ctx, "long", base.Add(time.Hour)))

	var count int64
	require.NoError(t, gdb.Model(&entity.RevokedSession{}).Count(&count).Error)
	assert.Equal(t, int64(2), count, "already expired tokens are not stored")

	repo.now = func() time.Time { return base.Add(2 * time.Minute) }

	revoked, err := repo.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked)

	deleted, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	revoked, err = repo.IsRevoked(ctx, "long")
	require.NoError(t, err)
	assert.True(t, revoked)
}
