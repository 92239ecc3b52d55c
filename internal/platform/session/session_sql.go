package session

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard_backend/internal/domain/entity"
)

// SessionSQL keeps the revocation list in the revoked_sessions table. It is
// used when Redis is not configured.
type SessionSQL struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionSQL creates a SQL-backed revocation list.
func NewSessionSQL(db *gorm.DB) *SessionSQL {
	return &SessionSQL{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Revoke records tokenID until expiresAt. Revoking the same id twice is not
// an error.
func (r *SessionSQL) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !expiresAt.After(r.now()) {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entity.RevokedSession{ID: tokenID, ExpiresAt: expiresAt.UTC()}).Error
}

// IsRevoked reports whether tokenID is on the list and not yet expired.
func (r *SessionSQL) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.RevokedSession{}).
		Where("id = ? AND expires_at > ?", tokenID, r.now()).
		Count(&count).Error
	return count > 0, err
}

// DeleteExpired removes entries whose token has expired anyway.
func (r *SessionSQL) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now()).
		Delete(&entity.RevokedSession{})
	return result.RowsAffected, result.Error
}
