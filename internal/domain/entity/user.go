package entity

import "time"

// User is a login identity. Email is unique across users and company contact emails.
type User struct {
	Base
	Email           string `gorm:"uniqueIndex;size:255;not null"`
	Name            string `gorm:"size:255;not null"`
	Password        string `gorm:"size:255;not null"`
	Role            Role   `gorm:"size:16;not null;index"`
	IsActive        bool   `gorm:"not null"`
	IsEmailVerified bool   `gorm:"not null;default:false"`

	EmailVerificationToken  *string `gorm:"size:128;index"`
	EmailVerificationExpiry *time.Time

	ResetToken       *string `gorm:"size:128"`
	ResetTokenExpiry *time.Time
}
