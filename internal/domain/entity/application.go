package entity

import "fmt"

// ApplicationStatus is the hiring pipeline stage of an application.
type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "APPLIED"
	ApplicationReviewing ApplicationStatus = "REVIEWING"
	ApplicationInterview ApplicationStatus = "INTERVIEW"
	ApplicationHired     ApplicationStatus = "HIRED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
)

// pipeline orders the forward stages. REJECTED is reachable from any
// non-terminal stage.
var pipeline = map[ApplicationStatus]int{
	ApplicationApplied:   0,
	ApplicationReviewing: 1,
	ApplicationInterview: 2,
	ApplicationHired:     3,
}

// ParseApplicationStatus converts a raw string into an ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	if _, ok := pipeline[st]; ok || st == ApplicationRejected {
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Terminal reports whether no further transitions are allowed.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationHired || s == ApplicationRejected
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == ApplicationRejected {
		return true
	}
	cur, ok1 := pipeline[s]
	nxt, ok2 := pipeline[next]
	return ok1 && ok2 && nxt > cur
}

// CountsAsInterview reports whether the application reached the interview stage.
func (s ApplicationStatus) CountsAsInterview() bool {
	return s == ApplicationInterview || s == ApplicationHired
}

// Application links one candidate to one job.
type Application struct {
	Base
	CandidateID string            `gorm:"size:36;not null;uniqueIndex:idx_application_candidate_job,priority:1"`
	Candidate   Candidate         `gorm:"foreignKey:CandidateID"`
	JobID       string            `gorm:"size:36;not null;index;uniqueIndex:idx_application_candidate_job,priority:2"`
	Job         Job               `gorm:"foreignKey:JobID"`
	Status      ApplicationStatus `gorm:"size:16;not null;default:'APPLIED';index"`
	CoverLetter string            `gorm:"type:text"`
}
