package entity

import "time"

// RevokedSession is the SQL fallback for the session revocation list when
// Redis is unavailable. ID is the token's jti.
type RevokedSession struct {
	ID        string    `gorm:"primaryKey;size:36"`
	ExpiresAt time.Time `gorm:"index;not null"`
}
