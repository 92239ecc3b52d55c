package usecase

import (
	"context"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/shared/pagination"
)

// CourseFilter narrows the course catalog. Zero values disable a filter.
type CourseFilter struct {
	Search     string
	Category   string
	Difficulty string
}

// CandidateRepository abstracts the reads and writes of the candidate area.
type CandidateRepository interface {
	// FindCandidateByUserID returns ErrCandidateNotFound when userID has no profile.
	FindCandidateByUserID(ctx context.Context, userID string) (*entity.Candidate, error)
	// ListApplications returns the candidate's applications with jobs loaded.
	ListApplications(ctx context.Context, candidateID string) ([]entity.Application, error)
	// ListCourses returns one page of active courses matching f and the
	// total under f.
	ListCourses(ctx context.Context, f CourseFilter, p pagination.Params) ([]entity.Course, int64, error)
	// ListCertificates returns the candidate's certificates, newest first,
	// with courses loaded.
	ListCertificates(ctx context.Context, candidateID string) ([]entity.Certificate, error)

	// FindJob returns the job with its company loaded or ErrJobNotFound.
	FindJob(ctx context.Context, id string) (*entity.Job, error)
	HasApplied(ctx context.Context, candidateID, jobID string) (bool, error)
	// CreateApplication returns ErrAlreadyApplied on the (candidate, job)
	// unique index.
	CreateApplication(ctx context.Context, a *entity.Application) error

	// FindCompany returns ErrCompanyNotFound for an unknown id.
	FindCompany(ctx context.Context, id string) (*entity.Company, error)
	// ListConversation returns messages exchanged between two users, oldest first.
	ListConversation(ctx context.Context, userA, userB string) ([]entity.Message, error)
	// MarkRead flags unread messages from senderID to recipientID as read
	// and returns how many changed.
	MarkRead(ctx context.Context, senderID, recipientID string) (int64, error)
}

// DashboardStats summarises a candidate's activity. ProfileViews and
// SavedJobs are not tracked and are always zero.
type DashboardStats struct {
	Applications int
	Interviews   int
	ProfileViews int
	SavedJobs    int
}

// CoursePage is one page of the course catalog.
type CoursePage struct {
	Courses []entity.Course
	Total   int64
}

type candidateUsecase struct {
	repo CandidateRepository
}

// NewCandidateUsecase creates the candidate usecase.
func NewCandidateUsecase(repo CandidateRepository) *candidateUsecase {
	return &candidateUsecase{repo: repo}
}

// DashboardStats counts the candidate's applications and how many reached
// the interview stage.
func (u *candidateUsecase) DashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	cand, err := u.repo.FindCandidateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	apps, err := u.repo.ListApplications(ctx, cand.ID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{Applications: len(apps)}
	for _, a := range apps {
		if a.Status.CountsAsInterview() {
			stats.Interviews++
		}
	}
	return stats, nil
}

// ListCourses returns one page of the active catalog. Category and
// difficulty accept the ALL sentinel.
func (u *candidateUsecase) ListCourses(ctx context.Context, f CourseFilter, p pagination.Params) (*CoursePage, error) {
	f.Category = pagination.Filter(f.Category)
	f.Difficulty = pagination.Filter(f.Difficulty)
	courses, total, err := u.repo.ListCourses(ctx, f, p)
	if err != nil {
		return nil, err
	}
	return &CoursePage{Courses: courses, Total: total}, nil
}

// Certificates lists the caller's certificates.
func (u *candidateUsecase) Certificates(ctx context.Context, userID string) ([]entity.Certificate, error) {
	cand, err := u.repo.FindCandidateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListCertificates(ctx, cand.ID)
}
