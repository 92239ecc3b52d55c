// Package usecase implements company slug management, the public company
// profile and the hiring pipeline seen by a company.
package usecase

import "jobboard_backend/internal/shared/apperror"

var (
	// ErrSlugRequired is returned when no slug was supplied.
	ErrSlugRequired = apperror.Validation("slug is required")

	// ErrCompanyNotFound is returned when no company matches a slug or user.
	ErrCompanyNotFound = apperror.NotFound("company not found")

	// ErrCompanyNotApproved is returned for a public profile whose company
	// has not been approved yet.
	ErrCompanyNotApproved = apperror.Forbidden("company profile is not available")

	// ErrSlugTaken is returned when the slug belongs to another company.
	ErrSlugTaken = apperror.Conflict("slug already taken")

	// ErrApplicationNotFound is returned when an application id is unknown.
	ErrApplicationNotFound = apperror.NotFound("application not found")

	// ErrNotApplicationOwner is returned when the application's job belongs
	// to a different company.
	ErrNotApplicationOwner = apperror.Forbidden("application does not belong to your company")

	// ErrInvalidApplicationStatus is returned for an unknown status value.
	ErrInvalidApplicationStatus = apperror.Validation("invalid application status")

	// ErrInvalidTransition is returned when the pipeline does not allow the move.
	ErrInvalidTransition = apperror.BusinessRule("invalid status transition")

	// ErrApplicationChanged is returned when the application status changed
	// between read and write.
	ErrApplicationChanged = apperror.Conflict("application was updated concurrently")
)
