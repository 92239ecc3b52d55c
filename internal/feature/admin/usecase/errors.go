// Package usecase implements the administration feature: platform
// statistics, user moderation, job moderation and company approval.
package usecase

import "jobboard_backend/internal/shared/apperror"

var (
	ErrUserNotFound    = apperror.NotFound("user not found")
	ErrJobNotFound     = apperror.NotFound("job not found")
	ErrCompanyNotFound = apperror.NotFound("company not found")

	// ErrAdminImmutable is returned when deactivating an ADMIN account.
	ErrAdminImmutable = apperror.BusinessRule("admin users cannot be deactivated")

	ErrInvalidRoleFilter = apperror.Validation("role must be one of ADMIN COMPANY CANDIDATE ALL")
	ErrInvalidJobStatus  = apperror.Validation("status must be one of PENDING APPROVED REJECTED CLOSED")
)
