// Package entity defines the relational schema shared by every feature.
// Each type is a GORM model; all authoritative state lives in the database.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the primary key and timestamps common to all tables.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&User{},
		&Company{},
		&Candidate{},
		&Job{},
		&Application{},
		&Course{},
		&Certificate{},
		&Message{},
		&RevokedSession{},
	}
}
