// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"

	"jobboard_backend/internal/shared/apperror"
)

var (
	// ErrUserNotFound is returned by repositories when no user matches.
	ErrUserNotFound = apperror.NotFound("user not found")

	// ErrInvalidCredentials is returned for an unknown email or a wrong
	// password; the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = apperror.Unauthorized("invalid email or password")

	// ErrAccountDisabled is returned when an administrator deactivated the account.
	ErrAccountDisabled = apperror.Forbidden("account disabled")

	// ErrEmailUnavailable is returned by the pre-registration email check.
	ErrEmailUnavailable = apperror.Validation("email already in use")

	// ErrEmailAlreadyExists is returned when registering a taken email.
	ErrEmailAlreadyExists = apperror.Conflict("email already in use")

	// ErrSlugTaken is returned when registering a company with a taken slug.
	ErrSlugTaken = apperror.Conflict("slug already taken")

	// ErrInvalidVerificationToken is returned for an unknown or expired
	// email verification token.
	ErrInvalidVerificationToken = apperror.Validation("invalid or expired verification token")

	// ErrWrongPassword is returned when the current password does not match.
	ErrWrongPassword = apperror.Validation("current password is incorrect")

	// ErrEmailDelivery wraps a mail sender failure in the forgot-password flow.
	ErrEmailDelivery = errors.New("failed to send email")
)
