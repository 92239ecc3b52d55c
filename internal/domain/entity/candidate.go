package entity

// Candidate is the profile of a CANDIDATE user.
type Candidate struct {
	Base
	UserID string `gorm:"uniqueIndex;size:36;not null"`
	User   User   `gorm:"foreignKey:UserID"`
	Name   string `gorm:"size:255;not null"`
	Phone  string `gorm:"size:32"`
	City   string `gorm:"size:100"`
	State  string `gorm:"size:50"`
	Bio    string `gorm:"type:text"`
}
