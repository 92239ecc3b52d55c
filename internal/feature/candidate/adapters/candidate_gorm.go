// Package adapters provides the GORM repository of the candidate feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/candidate/usecase"
	"jobboard_backend/internal/platform/db"
	"jobboard_backend/internal/shared/pagination"
)

type candidateGorm struct {
	db *gorm.DB
}

var _ usecase.CandidateRepository = (*candidateGorm)(nil)

// NewCandidateGorm creates the candidate repository on db.
func NewCandidateGorm(db *gorm.DB) *candidateGorm {
	return &candidateGorm{db: db}
}

func (r *candidateGorm) FindCandidateByUserID(ctx context.Context, userID string) (*entity.Candidate, error) {
	var c entity.Candidate
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCandidateNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateGorm) ListApplications(ctx context.Context, candidateID string) ([]entity.Application, error) {
	var apps []entity.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// ListCourses only lists active courses; search covers title, description
// and instructor.
func (r *candidateGorm) ListCourses(ctx context.Context, f usecase.CourseFilter, p pagination.Params) ([]entity.Course, int64, error) {
	q := r.db.WithContext(ctx).Model(&entity.Course{}).Where("is_active = ?", true)
	if f.Search != "" {
		pat := db.ContainsPattern(f.Search)
		q = q.Where("("+db.ILike("title")+" OR "+db.ILike("description")+" OR "+db.ILike("instructor")+")", pat, pat, pat)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	courses := []entity.Course{}
	err := q.Order("created_at DESC").Offset(p.Offset()).Limit(p.Limit).Find(&courses).Error
	return courses, total, err
}

func (r *candidateGorm) ListCertificates(ctx context.Context, candidateID string) ([]entity.Certificate, error) {
	certs := []entity.Certificate{}
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("candidate_id = ?", candidateID).
		Order("issued_at DESC").
		Find(&certs).Error
	return certs, err
}

func (r *candidateGorm) FindJob(ctx context.Context, id string) (*entity.Job, error) {
	var j entity.Job
	if err := r.db.WithContext(ctx).Preload("Company").Where("id = ?", id).First(&j).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *candidateGorm) HasApplied(ctx context.Context, candidateID, jobID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("candidate_id = ? AND job_id = ?", candidateID, jobID).
		Count(&n).Error
	return n > 0, err
}

func (r *candidateGorm) CreateApplication(ctx context.Context, a *entity.Application) error {
	// Omit associations so a loaded Job is never upserted.
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *candidateGorm) FindCompany(ctx context.Context, id string) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateGorm) ListConversation(ctx context.Context, userA, userB string) ([]entity.Message, error) {
	msgs := []entity.Message{}
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *candidateGorm) MarkRead(ctx context.Context, senderID, recipientID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", senderID, recipientID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
