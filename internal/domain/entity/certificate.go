package entity

import "time"

// Certificate records a candidate's completion of a course.
type Certificate struct {
	Base
	CandidateID string    `gorm:"size:36;not null;index"`
	Candidate   Candidate `gorm:"foreignKey:CandidateID"`
	CourseID    string    `gorm:"size:36;not null;index"`
	Course      Course    `gorm:"foreignKey:CourseID"`
	Code        string    `gorm:"uniqueIndex;size:64;not null"`
	IssuedAt    time.Time `gorm:"not null"`
}
