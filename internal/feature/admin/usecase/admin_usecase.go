package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/shared/pagination"
)

// recentLimit is the size of the dashboard's recent users and jobs lists.
const recentLimit = 5

// UserFilter narrows the user list. Zero values disable a filter.
type UserFilter struct {
	Search string
	Role   entity.Role
}

// JobFilter narrows the job list. Zero values disable a filter.
type JobFilter struct {
	Search string
	Status entity.JobStatus
}

// AdminRepository abstracts the reads and moderation writes of the admin area.
type AdminRepository interface {
	// CountUsers counts users with role, or all users when role is empty.
	CountUsers(ctx context.Context, role entity.Role) (int64, error)
	// CountJobs counts jobs with status, or all jobs when status is empty.
	CountJobs(ctx context.Context, status entity.JobStatus) (int64, error)
	CountCertificates(ctx context.Context) (int64, error)
	// CountApplications counts applications with status, or all when empty.
	CountApplications(ctx context.Context, status entity.ApplicationStatus) (int64, error)

	// RecentUsers returns the newest n users.
	RecentUsers(ctx context.Context, n int) ([]entity.User, error)
	// RecentJobs returns the newest n jobs with their company loaded.
	RecentJobs(ctx context.Context, n int) ([]entity.Job, error)

	// ListUsers returns one page of users matching f and the total under f.
	ListUsers(ctx context.Context, f UserFilter, p pagination.Params) ([]entity.User, int64, error)
	// ListJobs returns one page of jobs matching f, with company loaded, and
	// the total under f.
	ListJobs(ctx context.Context, f JobFilter, p pagination.Params) ([]entity.Job, int64, error)

	// FindUser returns the user or ErrUserNotFound.
	FindUser(ctx context.Context, id string) (*entity.User, error)
	// SetUserActive updates a non-ADMIN user's flag in one guarded statement.
	// It returns ErrAdminImmutable when the row is an ADMIN.
	SetUserActive(ctx context.Context, id string, active bool) (*entity.User, error)
	// SetJobStatus returns ErrJobNotFound for an unknown id.
	SetJobStatus(ctx context.Context, id string, status entity.JobStatus) (*entity.Job, error)
	// SetCompanyApproval returns ErrCompanyNotFound for an unknown id.
	SetCompanyApproval(ctx context.Context, id string, approved bool) (*entity.Company, error)
}

// ProfileInvalidator drops cached public profiles.
type ProfileInvalidator interface {
	Invalidate(ctx context.Context, slugs ...string) error
}

// Dashboard is the platform summary shown to administrators.
type Dashboard struct {
	TotalUsers          int64
	TotalCompanies      int64
	TotalJobs           int64
	TotalCertificates   int64
	ActiveJobs          int64
	PendingApplications int64
	RecentUsers         []entity.User
	RecentJobs          []entity.Job
}

// UserPage is one page of the user list.
type UserPage struct {
	Users []entity.User
	Total int64
}

// JobPage is one page of the job list.
type JobPage struct {
	Jobs  []entity.Job
	Total int64
}

type adminUsecase struct {
	repo     AdminRepository
	profiles ProfileInvalidator
}

// NewAdminUsecase creates the admin usecase. profiles may be nil.
func NewAdminUsecase(repo AdminRepository, profiles ProfileInvalidator) *adminUsecase {
	return &adminUsecase{repo: repo, profiles: profiles}
}

// Dashboard runs every count and recent list concurrently; the first error
// cancels the rest.
func (u *adminUsecase) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.TotalUsers, err = u.repo.CountUsers(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		d.TotalCompanies, err = u.repo.CountUsers(gctx, entity.RoleCompany)
		return err
	})
	g.Go(func() (err error) {
		d.TotalJobs, err = u.repo.CountJobs(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		d.TotalCertificates, err = u.repo.CountCertificates(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.ActiveJobs, err = u.repo.CountJobs(gctx, entity.JobStatusApproved)
		return err
	})
	g.Go(func() (err error) {
		d.PendingApplications, err = u.repo.CountApplications(gctx, entity.ApplicationApplied)
		return err
	})
	g.Go(func() (err error) {
		d.RecentUsers, err = u.repo.RecentUsers(gctx, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		d.RecentJobs, err = u.repo.RecentJobs(gctx, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListUsers validates the role filter and returns one page. rawRole may be
// empty or "ALL".
func (u *adminUsecase) ListUsers(ctx context.Context, search, rawRole string, p pagination.Params) (*UserPage, error) {
	f := UserFilter{Search: search}
	if r := pagination.Filter(rawRole); r != "" {
		role, err := entity.ParseRole(r)
		if err != nil {
			return nil, ErrInvalidRoleFilter
		}
		f.Role = role
	}
	users, total, err := u.repo.ListUsers(ctx, f, p)
	if err != nil {
		return nil, err
	}
	return &UserPage{Users: users, Total: total}, nil
}

// ListJobs validates the status filter and returns one page. rawStatus may
// be empty or "ALL".
func (u *adminUsecase) ListJobs(ctx context.Context, search, rawStatus string, p pagination.Params) (*JobPage, error) {
	f := JobFilter{Search: search}
	if s := pagination.Filter(rawStatus); s != "" {
		st, err := entity.ParseJobStatus(s)
		if err != nil {
			return nil, ErrInvalidJobStatus
		}
		f.Status = st
	}
	jobs, total, err := u.repo.ListJobs(ctx, f, p)
	if err != nil {
		return nil, err
	}
	return &JobPage{Jobs: jobs, Total: total}, nil
}

// SetUserActive sets the active flag of a non-ADMIN user. A nil active
// flips the current value. Setting the current value is a no-op that
// still succeeds.
func (u *adminUsecase) SetUserActive(ctx context.Context, id string, active *bool) (*entity.User, error) {
	user, err := u.repo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == entity.RoleAdmin {
		return nil, ErrAdminImmutable
	}

	want := !user.IsActive
	if active != nil {
		want = *active
	}
	if want == user.IsActive {
		return user, nil
	}
	return u.repo.SetUserActive(ctx, id, want)
}

// SetJobStatus moderates a job posting and drops the cached profile of its
// company, whose public job counts depend on the status.
func (u *adminUsecase) SetJobStatus(ctx context.Context, id, rawStatus string) (*entity.Job, error) {
	st, err := entity.ParseJobStatus(rawStatus)
	if err != nil {
		return nil, ErrInvalidJobStatus
	}
	j, err := u.repo.SetJobStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	u.invalidateProfile(ctx, j.Company.Slug)
	return j, nil
}

// SetCompanyApproval changes public visibility of a company and drops its
// cached profile.
func (u *adminUsecase) SetCompanyApproval(ctx context.Context, id string, approved bool) (*entity.Company, error) {
	c, err := u.repo.SetCompanyApproval(ctx, id, approved)
	if err != nil {
		return nil, err
	}
	u.invalidateProfile(ctx, c.Slug)
	return c, nil
}

// invalidateProfile evicts one cached public profile. Failures are logged;
// the entry still expires with its TTL.
func (u *adminUsecase) invalidateProfile(ctx context.Context, slug string) {
	if u.profiles == nil || slug == "" {
		return
	}
	if err := u.profiles.Invalidate(ctx, slug); err != nil {
		slog.Warn("profile cache invalidation failed", "error", err, "slug", slug)
	}
}
