package usecase

import (
	"context"
	"errors"

	"jobboard_backend/internal/domain/entity"
)

// JobDetail returns an approved job. Jobs in any other state are reported
// as not found.
func (u *candidateUsecase) JobDetail(ctx context.Context, jobID string) (*entity.Job, error) {
	j, err := u.repo.FindJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !j.VisibleToCandidates() {
		return nil, ErrJobNotFound
	}
	return j, nil
}

// HasApplied reports whether the caller applied to jobID.
func (u *candidateUsecase) HasApplied(ctx context.Context, userID, jobID string) (bool, error) {
	cand, err := u.repo.FindCandidateByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.repo.HasApplied(ctx, cand.ID, jobID)
}

// Apply submits an application. The pre-check gives a clean error for the
// common case; the unique index settles concurrent submissions.
func (u *candidateUsecase) Apply(ctx context.Context, userID, jobID, coverLetter string) (*entity.Application, error) {
	cand, err := u.repo.FindCandidateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	j, err := u.JobDetail(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !j.OpenForApplications() {
		return nil, ErrJobClosed
	}

	applied, err := u.repo.HasApplied(ctx, cand.ID, j.ID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, ErrAlreadyApplied
	}

	a := &entity.Application{
		CandidateID: cand.ID,
		JobID:       j.ID,
		Status:      entity.ApplicationApplied,
		CoverLetter: coverLetter,
	}
	if err := u.repo.CreateApplication(ctx, a); err != nil {
		if errors.Is(err, ErrAlreadyApplied) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	a.Job = *j
	return a, nil
}
