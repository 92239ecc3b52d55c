package usecase

import (
	"context"

	"jobboard_backend/internal/domain/entity"
)

type mockCompanyRepository struct {
	findByUserIDFn      func(ctx context.Context, userID string) (*entity.Company, error)
	findBySlugFn        func(ctx context.Context, slug string) (*entity.Company, error)
	slugExistsFn        func(ctx context.Context, slug, excludeID string) (bool, error)
	updateSlugFn        func(ctx context.Context, companyID, slug string) error
	countApprovedJobsFn func(ctx context.Context, companyID string) (int64, error)
	countActiveJobsFn   func(ctx context.Context, companyID string) (int64, error)
	countApplicationsFn func(ctx context.Context, companyID string) (int64, error)
}

func (m *mockCompanyRepository) FindByUserID(ctx context.Context, userID string) (*entity.Company, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, ErrCompanyNotFound
}

func (m *mockCompanyRepository) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, ErrCompanyNotFound
}

func (m *mockCompanyRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	if m.slugExistsFn != nil {
		return m.slugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}

func (m *mockCompanyRepository) UpdateSlug(ctx context.Context, companyID, slug string) error {
	if m.updateSlugFn != nil {
		return m.updateSlugFn(ctx, companyID, slug)
	}
	return nil
}

func (m *mockCompanyRepository) CountApprovedJobs(ctx context.Context, companyID string) (int64, error) {
	if m.countApprovedJobsFn != nil {
		return m.countApprovedJobsFn(ctx, companyID)
	}
	return 0, nil
}

func (m *mockCompanyRepository) CountActiveJobs(ctx context.Context, companyID string) (int64, error) {
	if m.countActiveJobsFn != nil {
		return m.countActiveJobsFn(ctx, companyID)
	}
	return 0, nil
}

func (m *mockCompanyRepository) CountApplications(ctx context.Context, companyID string) (int64, error) {
	if m.countApplicationsFn != nil {
		return m.countApplicationsFn(ctx, companyID)
	}
	return 0, nil
}

type mockApplicationRepository struct {
	findWithJobFn  func(ctx context.Context, id string) (*entity.Application, error)
	updateStatusFn func(ctx context.Context, id string, from, to entity.ApplicationStatus) (*entity.Application, error)
}

func (m *mockApplicationRepository) FindWithJob(ctx context.Context, id string) (*entity.Application, error) {
	if m.findWithJobFn != nil {
		return m.findWithJobFn(ctx, id)
	}
	return nil, ErrApplicationNotFound
}

func (m *mockApplicationRepository) UpdateStatus(ctx context.Context, id string, from, to entity.ApplicationStatus) (*entity.Application, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, from, to)
	}
	return &entity.Application{Base: entity.Base{ID: id}, Status: to}, nil
}

type recordingInvalidator struct {
	slugs []string
	err   error
}

func (r *recordingInvalidator) Invalidate(_ context.Context, slugs ...string) error {
	r.slugs = append(r.slugs, slugs...)
	return r.err
}

func ownCompany(id, slug string) func(context.Context, string) (*entity.Company, error) {
	return func(context.Context, string) (*entity.Company, error) {
		return &entity.Company{Base: entity.Base{ID: id}, Slug: slug}, nil
	}
}
