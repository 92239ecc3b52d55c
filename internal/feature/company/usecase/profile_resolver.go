package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"jobboard_backend/internal/domain/entity"
)

// ProfileStats are the counters shown on a public company profile.
type ProfileStats struct {
	TotalJobs         int64 `json:"totalJobs"`
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
}

// PublicProfile is the unauthenticated view of an approved company. It is
// JSON encoded when cached.
type PublicProfile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Email       string       `json:"email"`
	Description string       `json:"description"`
	Website     string       `json:"website"`
	Phone       string       `json:"phone"`
	City        string       `json:"city"`
	State       string       `json:"state"`
	LogoURL     string       `json:"logoUrl"`
	CreatedAt   time.Time    `json:"createdAt"`
	Stats       ProfileStats `json:"stats"`
}

// ProfileResolver resolves a slug to a public profile.
type ProfileResolver interface {
	Resolve(ctx context.Context, slug string) (*PublicProfile, error)
}

type profileResolver struct {
	companies CompanyRepository
}

var _ ProfileResolver = (*profileResolver)(nil)

// NewProfileResolver creates the uncached resolver.
func NewProfileResolver(companies CompanyRepository) *profileResolver {
	return &profileResolver{companies: companies}
}

// Resolve returns ErrCompanyNotFound for an unknown slug and
// ErrCompanyNotApproved for a company awaiting approval. The three counters
// are independent reads and run concurrently.
func (r *profileResolver) Resolve(ctx context.Context, raw string) (*PublicProfile, error) {
	slug := entity.NormalizeSlug(raw)
	if slug == "" {
		return nil, ErrCompanyNotFound
	}
	c, err := r.companies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !c.IsApproved {
		return nil, ErrCompanyNotApproved
	}

	var stats ProfileStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalJobs, err = r.companies.CountApprovedJobs(gctx, c.ID)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveJobs, err = r.companies.CountActiveJobs(gctx, c.ID)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalApplications, err = r.companies.CountApplications(gctx, c.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &PublicProfile{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Email:       c.Email,
		Description: c.Description,
		Website:     c.Website,
		Phone:       c.Phone,
		City:        c.City,
		State:       c.State,
		LogoURL:     c.LogoURL,
		CreatedAt:   c.CreatedAt,
		Stats:       stats,
	}, nil
}
