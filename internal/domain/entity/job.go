package entity

import "fmt"

// JobStatus is the moderation state of a job posting.
type JobStatus string

const (
	JobStatusPending  JobStatus = "PENDING"
	JobStatusApproved JobStatus = "APPROVED"
	JobStatusRejected JobStatus = "REJECTED"
	JobStatusClosed   JobStatus = "CLOSED"
)

// ParseJobStatus converts a raw string into a JobStatus.
func ParseJobStatus(s string) (JobStatus, error) {
	switch st := JobStatus(s); st {
	case JobStatusPending, JobStatusApproved, JobStatusRejected, JobStatusClosed:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// Job is a posting owned by a company. Candidates only see APPROVED jobs;
// public listings additionally require IsActive.
type Job struct {
	Base
	CompanyID    string    `gorm:"index;size:36;not null"`
	Company      Company   `gorm:"foreignKey:CompanyID"`
	Title        string    `gorm:"size:255;not null"`
	Description  string    `gorm:"type:text"`
	Requirements string    `gorm:"type:text"`
	Location     string    `gorm:"size:255"`
	Type         string    `gorm:"size:50"`
	Salary       string    `gorm:"size:100"`
	Status       JobStatus `gorm:"size:16;not null;default:'PENDING';index"`
	IsActive     bool      `gorm:"not null"`
}

// VisibleToCandidates reports whether the job may be shown to candidates.
func (j *Job) VisibleToCandidates() bool {
	return j.Status == JobStatusApproved
}

// OpenForApplications reports whether new applications may be submitted.
func (j *Job) OpenForApplications() bool {
	return j.Status == JobStatusApproved && j.IsActive
}
