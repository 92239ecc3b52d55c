// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/auth/usecase"
	"jobboard_backend/internal/platform/db"
)

// userGorm is the GORM implementation of usecase.UserRepository.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check to ensure userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new instance of userGorm.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userGorm) FindByVerificationToken(ctx context.Context, token string) (*entity.User, error) {
	return r.first(ctx, "email_verification_token = ?", token)
}

func (r *userGorm) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// IsActive reports whether userID exists and is active. It backs the
// per-request session check, so it counts instead of loading the row.
func (r *userGorm) IsActive(ctx context.Context, userID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ? AND is_active = ?", userID, true).
		Count(&n).Error
	return n > 0, err
}

// EmailInUse checks user logins and company contact emails.
func (r *userGorm) EmailInUse(ctx context.Context, email string) (bool, error) {
	var users, companies int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("LOWER(email) = ?", email).Count(&users).Error; err != nil {
		return false, err
	}
	if users > 0 {
		return true, nil
	}
	if err := r.db.WithContext(ctx).Model(&entity.Company{}).Where("LOWER(email) = ?", email).Count(&companies).Error; err != nil {
		return false, err
	}
	return companies > 0, nil
}

func (r *userGorm) SlugInUse(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Company{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

func (r *userGorm) CreateUser(ctx context.Context, u *entity.User) error {
	return translateCreate(r.db.WithContext(ctx).Create(u).Error)
}

// CreateCandidate inserts the user and the profile in one transaction.
func (r *userGorm) CreateCandidate(ctx context.Context, u *entity.User, c *entity.Candidate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := translateCreate(tx.Create(u).Error); err != nil {
			return err
		}
		c.UserID = u.ID
		return tx.Create(c).Error
	})
}

// CreateCompany inserts the user and the company in one transaction. A
// slug collision rolls back the user as well.
func (r *userGorm) CreateCompany(ctx context.Context, u *entity.User, c *entity.Company) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := translateCreate(tx.Create(u).Error); err != nil {
			return err
		}
		c.UserID = u.ID
		if err := tx.Create(c).Error; err != nil {
			if db.IsDuplicateKey(err) {
				return usecase.ErrSlugTaken
			}
			return err
		}
		return nil
	})
}

// translateCreate maps a unique violation on users.email.
func translateCreate(err error) error {
	if db.IsDuplicateKey(err) {
		return usecase.ErrEmailAlreadyExists
	}
	return err
}

func (r *userGorm) MarkEmailVerified(ctx context.Context, userID string) error {
	return r.update(ctx, userID, map[string]any{
		"is_email_verified":         true,
		"email_verification_token":  nil,
		"email_verification_expiry": nil,
	})
}

func (r *userGorm) SetTemporaryPassword(ctx context.Context, userID, hash, tempPassword string, expiry time.Time) error {
	return r.update(ctx, userID, map[string]any{
		"password":           hash,
		"reset_token":        tempPassword,
		"reset_token_expiry": expiry,
	})
}

func (r *userGorm) UpdatePassword(ctx context.Context, userID, hash string) error {
	return r.update(ctx, userID, map[string]any{
		"password":           hash,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	})
}

func (r *userGorm) update(ctx context.Context, userID string, values map[string]any) error {
	res := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
