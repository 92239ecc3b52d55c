// Package adapters provides GORM repositories for the company feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/company/usecase"
	"jobboard_backend/internal/platform/db"
)

type companyGorm struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyGorm)(nil)

// NewCompanyGorm creates a company repository on db.
func NewCompanyGorm(db *gorm.DB) *companyGorm {
	return &companyGorm{db: db}
}

func (r *companyGorm) FindByUserID(ctx context.Context, userID string) (*entity.Company, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *companyGorm) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *companyGorm) first(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).Where(query, arg).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyGorm) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&entity.Company{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *companyGorm) UpdateSlug(ctx context.Context, companyID, slug string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Company{}).
		Where("id = ?", companyID).
		Update("slug", slug)
	if res.Error != nil {
		if db.IsDuplicateKey(res.Error) {
			return usecase.ErrSlugTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCompanyNotFound
	}
	return nil
}

// CountApprovedJobs counts every job of the company that passed moderation.
func (r *companyGorm) CountApprovedJobs(ctx context.Context, companyID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Where("company_id = ? AND status = ?", companyID, entity.JobStatusApproved).
		Count(&n).Error
	return n, err
}

// CountActiveJobs counts approved jobs still accepting applications.
func (r *companyGorm) CountActiveJobs(ctx context.Context, companyID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Where("company_id = ? AND status = ? AND is_active = ?", companyID, entity.JobStatusApproved, true).
		Count(&n).Error
	return n, err
}

// CountApplications counts applications across all of the company's jobs.
func (r *companyGorm) CountApplications(ctx context.Context, companyID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Count(&n).Error
	return n, err
}
