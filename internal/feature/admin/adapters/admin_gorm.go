// Package adapters provides the GORM repository of the admin feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/admin/usecase"
	"jobboard_backend/internal/platform/db"
	"jobboard_backend/internal/shared/pagination"
)

type adminGorm struct {
	db *gorm.DB
}

var _ usecase.AdminRepository = (*adminGorm)(nil)

// NewAdminGorm creates the admin repository on db.
func NewAdminGorm(db *gorm.DB) *adminGorm {
	return &adminGorm{db: db}
}

func (r *adminGorm) CountUsers(ctx context.Context, role entity.Role) (int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var n int64
	return n, q.Count(&n).Error
}

func (r *adminGorm) CountJobs(ctx context.Context, status entity.JobStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.Job{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	return n, q.Count(&n).Error
}

func (r *adminGorm) CountCertificates(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&entity.Certificate{}).Count(&n).Error
}

func (r *adminGorm) CountApplications(ctx context.Context, status entity.ApplicationStatus) (int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.Application{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	return n, q.Count(&n).Error
}

func (r *adminGorm) RecentUsers(ctx context.Context, n int) ([]entity.User, error) {
	var users []entity.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(n).Find(&users).Error
	return users, err
}

func (r *adminGorm) RecentJobs(ctx context.Context, n int) ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.db.WithContext(ctx).Preload("Company").Order("created_at DESC").Limit(n).Find(&jobs).Error
	return jobs, err
}

// ListUsers counts and pages under the same predicate so totalPages agrees
// with the returned rows.
func (r *adminGorm) ListUsers(ctx context.Context, f usecase.UserFilter, p pagination.Params) ([]entity.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.User{})
	if f.Search != "" {
		pat := db.ContainsPattern(f.Search)
		q = q.Where("("+db.ILike("name")+" OR "+db.ILike("email")+")", pat, pat)
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	users := []entity.User{}
	err := q.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&users).Error
	return users, total, err
}

// ListJobs searches title and company name.
func (r *adminGorm) ListJobs(ctx context.Context, f usecase.JobFilter, p pagination.Params) ([]entity.Job, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Joins("JOIN companies ON companies.id = jobs.company_id")
	if f.Search != "" {
		pat := db.ContainsPattern(f.Search)
		q = q.Where("("+db.ILike("jobs.title")+" OR "+db.ILike("companies.name")+")", pat, pat)
	}
	if f.Status != "" {
		q = q.Where("jobs.status = ?", f.Status)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	jobs := []entity.Job{}
	err := q.Preload("Company").
		Order("jobs.created_at DESC").
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *adminGorm) FindUser(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// SetUserActive guards the role in the UPDATE itself, so a user promoted to
// ADMIN between the usecase's check and this write is left untouched.
func (r *adminGorm) SetUserActive(ctx context.Context, id string, active bool) (*entity.User, error) {
	var out entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.User{}).
			Where("id = ? AND role <> ?", id, entity.RoleAdmin).
			Update("is_active", active)
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Where("id = ?", id).First(&out).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		if res.RowsAffected == 0 {
			return usecase.ErrAdminImmutable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *adminGorm) SetJobStatus(ctx context.Context, id string, status entity.JobStatus) (*entity.Job, error) {
	var out entity.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Job{}).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrJobNotFound
		}
		return tx.Preload("Company").Where("id = ?", id).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *adminGorm) SetCompanyApproval(ctx context.Context, id string, approved bool) (*entity.Company, error) {
	var out entity.Company
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Company{}).Where("id = ?", id).Update("is_approved", approved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrCompanyNotFound
		}
		return tx.Preload("User").Where("id = ?", id).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
