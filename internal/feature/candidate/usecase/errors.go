// Package usecase implements the candidate area: dashboard statistics,
// the course catalog, certificates, job applications and messages.
package usecase

import "jobboard_backend/internal/shared/apperror"

var (
	// ErrCandidateNotFound is returned when a CANDIDATE session has no profile row.
	ErrCandidateNotFound = apperror.NotFound("candidate profile not found")

	// ErrJobNotFound is returned for unknown jobs and for jobs candidates may not see.
	ErrJobNotFound = apperror.NotFound("job not found")

	ErrCompanyNotFound = apperror.NotFound("company not found")

	// ErrJobClosed is returned when applying to a visible job that stopped
	// accepting applications.
	ErrJobClosed = apperror.BusinessRule("job is not accepting applications")

	// ErrAlreadyApplied is returned for a second application to the same job.
	ErrAlreadyApplied = apperror.Conflict("already applied to this job")
)
