package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// Company is the profile of a COMPANY user. Slug is lowercase, unique and
// at least MinSlugLength characters long.
type Company struct {
	Base
	UserID      string `gorm:"uniqueIndex;size:36;not null"`
	User        User   `gorm:"foreignKey:UserID"`
	Name        string `gorm:"size:255;not null"`
	Slug        string `gorm:"uniqueIndex;size:100;not null"`
	Email       string `gorm:"index;size:255"`
	CNPJ        string `gorm:"size:32"`
	Description string `gorm:"type:text"`
	Website     string `gorm:"size:255"`
	Phone       string `gorm:"size:32"`
	City        string `gorm:"size:100"`
	State       string `gorm:"size:50"`
	LogoURL     string `gorm:"size:512"`
	IsApproved  bool   `gorm:"not null;default:false"`
}

// MinSlugLength is the shortest slug a company may claim.
const MinSlugLength = 3

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// NormalizeSlug lowercases and trims a raw slug.
func NormalizeSlug(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateSlug checks an already normalized slug and returns a message
// suitable for the client when it is not acceptable.
func ValidateSlug(slug string) (string, bool) {
	if len(slug) < MinSlugLength {
		return fmt.Sprintf("slug must be at least %d characters", MinSlugLength), false
	}
	if !slugPattern.MatchString(slug) {
		return "slug may only contain lowercase letters, digits and single hyphens", false
	}
	return "", true
}
