package entity

// Course is a catalog entry candidates can complete for a certificate.
type Course struct {
	Base
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:100;index"`
	Difficulty  string `gorm:"size:50;index"`
	Duration    int    `gorm:"not null;default:0"`
	Instructor  string `gorm:"size:255"`
	ImageURL    string `gorm:"size:512"`
	IsActive    bool   `gorm:"not null"`
}
