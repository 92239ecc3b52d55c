package usecase

import (
	"context"
	"errors"
	"log/slog"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/shared/apperror"
)

// CompanyRepository abstracts company persistence.
type CompanyRepository interface {
	// FindByUserID returns the company owned by userID or ErrCompanyNotFound.
	FindByUserID(ctx context.Context, userID string) (*entity.Company, error)
	// FindBySlug returns the company with the exact slug or ErrCompanyNotFound.
	FindBySlug(ctx context.Context, slug string) (*entity.Company, error)
	// SlugExists reports whether any company other than excludeID owns slug.
	// An empty excludeID excludes nothing.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	// UpdateSlug sets the slug of companyID, returning ErrSlugTaken on a
	// unique index violation.
	UpdateSlug(ctx context.Context, companyID, slug string) error

	CountApprovedJobs(ctx context.Context, companyID string) (int64, error)
	CountActiveJobs(ctx context.Context, companyID string) (int64, error)
	CountApplications(ctx context.Context, companyID string) (int64, error)
}

// ApplicationRepository abstracts application persistence for the hiring pipeline.
type ApplicationRepository interface {
	// FindWithJob returns the application with its job loaded or
	// ErrApplicationNotFound.
	FindWithJob(ctx context.Context, id string) (*entity.Application, error)
	// UpdateStatus moves the application from one status to another. It
	// returns ErrApplicationChanged when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id string, from, to entity.ApplicationStatus) (*entity.Application, error)
}

// ProfileInvalidator drops cached public profiles.
type ProfileInvalidator interface {
	Invalidate(ctx context.Context, slugs ...string) error
}

// SlugCheck is the outcome of a slug availability check. Reason is set when
// the slug is unavailable.
type SlugCheck struct {
	Slug      string
	Available bool
	Reason    string
}

type companyUsecase struct {
	companies    CompanyRepository
	applications ApplicationRepository
	profiles     ProfileInvalidator
}

// NewCompanyUsecase creates the company usecase. profiles may be nil.
func NewCompanyUsecase(companies CompanyRepository, applications ApplicationRepository, profiles ProfileInvalidator) *companyUsecase {
	return &companyUsecase{companies: companies, applications: applications, profiles: profiles}
}

// CheckSlug reports whether raw is available to the company owned by
// userID. The caller's own slug counts as available.
func (u *companyUsecase) CheckSlug(ctx context.Context, userID, raw string) (SlugCheck, error) {
	exclude := ""
	if userID != "" {
		c, err := u.companies.FindByUserID(ctx, userID)
		switch {
		case err == nil:
			exclude = c.ID
		case !errors.Is(err, ErrCompanyNotFound):
			return SlugCheck{}, err
		}
	}
	return u.checkSlug(ctx, raw, exclude)
}

// SimpleSlugCheck reports whether raw is free for anyone, e.g. during
// company registration.
func (u *companyUsecase) SimpleSlugCheck(ctx context.Context, raw string) (SlugCheck, error) {
	return u.checkSlug(ctx, raw, "")
}

func (u *companyUsecase) checkSlug(ctx context.Context, raw, excludeID string) (SlugCheck, error) {
	slug := entity.NormalizeSlug(raw)
	if slug == "" {
		return SlugCheck{}, ErrSlugRequired
	}
	if msg, ok := entity.ValidateSlug(slug); !ok {
		return SlugCheck{Slug: slug, Reason: msg}, nil
	}
	exists, err := u.companies.SlugExists(ctx, slug, excludeID)
	if err != nil {
		return SlugCheck{}, err
	}
	if exists {
		return SlugCheck{Slug: slug, Reason: ErrSlugTaken.Message}, nil
	}
	return SlugCheck{Slug: slug, Available: true}, nil
}

// ClaimSlug changes the slug of the caller's company. Uniqueness is decided
// by the unique index, so two concurrent claims cannot both succeed.
func (u *companyUsecase) ClaimSlug(ctx context.Context, userID, raw string) (*entity.Company, error) {
	slug := entity.NormalizeSlug(raw)
	if slug == "" {
		return nil, ErrSlugRequired
	}
	if msg, ok := entity.ValidateSlug(slug); !ok {
		return nil, apperror.Validation(msg)
	}

	c, err := u.companies.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c.Slug == slug {
		return c, nil
	}

	old := c.Slug
	if err := u.companies.UpdateSlug(ctx, c.ID, slug); err != nil {
		return nil, err
	}
	c.Slug = slug
	u.invalidate(ctx, old, slug)
	return c, nil
}

// UpdateApplicationStatus moves an application of one of the caller's jobs
// along the hiring pipeline.
func (u *companyUsecase) UpdateApplicationStatus(ctx context.Context, userID, applicationID, rawStatus string) (*entity.Application, error) {
	next, err := entity.ParseApplicationStatus(rawStatus)
	if err != nil {
		return nil, ErrInvalidApplicationStatus
	}

	c, err := u.companies.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	app, err := u.applications.FindWithJob(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Job.CompanyID != c.ID {
		return nil, ErrNotApplicationOwner
	}
	if app.Status == next {
		return app, nil
	}
	if !app.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	return u.applications.UpdateStatus(ctx, app.ID, app.Status, next)
}

func (u *companyUsecase) invalidate(ctx context.Context, slugs ...string) {
	if u.profiles == nil {
		return
	}
	if err := u.profiles.Invalidate(ctx, slugs...); err != nil {
		slog.Warn("profile cache invalidation failed", "error", err, "slugs", slugs)
	}
}
