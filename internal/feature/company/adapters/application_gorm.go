package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/company/usecase"
)

type applicationGorm struct {
	db *gorm.DB
}

var _ usecase.ApplicationRepository = (*applicationGorm)(nil)

// NewApplicationGorm creates an application repository on db.
func NewApplicationGorm(db *gorm.DB) *applicationGorm {
	return &applicationGorm{db: db}
}

func (r *applicationGorm) FindWithJob(ctx context.Context, id string) (*entity.Application, error) {
	var a entity.Application
	if err := r.db.WithContext(ctx).Preload("Job").Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrApplicationNotFound
		}
		return nil, err
	}
	return &a, nil
}

// UpdateStatus is a compare-and-set on the status column; a concurrent
// change between read and write leaves zero affected rows.
func (r *applicationGorm) UpdateStatus(ctx context.Context, id string, from, to entity.ApplicationStatus) (*entity.Application, error) {
	var out entity.Application
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Application{}).
			Where("id = ? AND status = ?", id, from).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrApplicationChanged
		}
		return tx.Where("id = ?", id).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
