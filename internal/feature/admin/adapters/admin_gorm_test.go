package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/admin/usecase"
	"jobboard_backend/internal/platform/db/dbtest"
	"jobboard_backend/internal/shared/pagination"
)

func TestAdminGorm_Counts(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewAdminGorm(gdb)
	ctx := context.Background()

	dbtest.SeedUser(t, gdb, "admin@x.test", entity.RoleAdmin)
	acme := dbtest.SeedCompany(t, gdb, "Acme", "acme", true)
	cand := dbtest.SeedCandidate(t, gdb, "ana@x.test")
	open := dbtest.SeedJob(t, gdb, acme.ID, "Go Developer", entity.JobStatusApproved, true)
	dbtest.SeedJob(t, gdb, acme.ID, "Draft", entity.JobStatusPending, true)
	dbtest.SeedApplication(t, gdb, cand.ID, open.ID, entity.ApplicationApplied)
	course := dbtest.SeedCourse(t, gdb, "Go", "backend", "beginner")
	dbtest.SeedCertificate(t, gdb, cand.ID, course.ID, "CERT-1", time.Now())

	n, err := repo.CountUsers(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = repo.CountUsers(ctx, entity.RoleCompany)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.CountJobs(ctx, "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = repo.CountJobs(ctx, entity.JobStatusApproved)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.CountApplications(ctx, entity.ApplicationApplied)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.CountCertificates(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	jobs, err := repo.RecentJobs(ctx, 5)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Acme", jobs[0].Company.Name)

	users, err := repo.RecentUsers(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestAdminGorm_ListUsers(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewAdminGorm(gdb)
	ctx := context.Background()

	dbtest.SeedUser(t, gdb, "admin@x.test", entity.RoleAdmin)
	dbtest.SeedCompany(t, gdb, "Acme", "acme", true)
	for _, e := range []string{"ana@x.test", "bruno@x.test", "carla@x.test"} {
		dbtest.SeedCandidate(t, gdb, e)
	}

	tests := []struct {
		name      string
		filter    usecase.UserFilter
		params    pagination.Params
		wantTotal int64
		wantRows  int
	}{
		{"all", usecase.UserFilter{}, pagination.Params{Page: 1, Limit: 10}, 5, 5},
		{"paged", usecase.UserFilter{}, pagination.Params{Page: 2, Limit: 2}, 5, 2},
		{"last page", usecase.UserFilter{}, pagination.Params{Page: 3, Limit: 2}, 5, 1},
		{"role", usecase.UserFilter{Role: entity.RoleCandidate}, pagination.Params{Page: 1, Limit: 10}, 3, 3},
		{"search is case insensitive", usecase.UserFilter{Search: "ANA"}, pagination.Params{Page: 1, Limit: 10}, 1, 1},
		{"search and role", usecase.UserFilter{Search: "x.test", Role: entity.RoleAdmin}, pagination.Params{Page: 1, Limit: 10}, 1, 1},
		{"no match", usecase.UserFilter{Search: "zzz"}, pagination.Params{Page: 1, Limit: 10}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, total, err := repo.ListUsers(ctx, tt.filter, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, users, tt.wantRows)
			assert.LessOrEqual(t, len(users), tt.params.Limit)
		})
	}
}

func TestAdminGorm_ListJobs(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewAdminGorm(gdb)
	ctx := context.Background()

	acme := dbtest.SeedCompany(t, gdb, "Acme", "acme", true)
	globex := dbtest.SeedCompany(t, gdb, "Globex", "globex", true)
	dbtest.SeedJob(t, gdb, acme.ID, "Go Developer", entity.JobStatusApproved, true)
	dbtest.SeedJob(t, gdb, acme.ID, "Designer", entity.JobStatusPending, true)
	dbtest.SeedJob(t, gdb, globex.ID, "Go SRE", entity.JobStatusPending, true)

	jobs, total, err := repo.ListJobs(ctx, usecase.JobFilter{Search: "go"}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, jobs, 2)

	jobs, total, err = repo.ListJobs(ctx, usecase.JobFilter{Search: "globex"}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Globex", jobs[0].Company.Name, "company is loaded for flattening")

	_, total, err = repo.ListJobs(ctx, usecase.JobFilter{Status: entity.JobStatusPending}, pagination.Params{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total, "total ignores the page size")
}

func TestAdminGorm_SetUserActive(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewAdminGorm(gdb)
	ctx := context.Background()

	admin := dbtest.SeedUser(t, gdb, "admin@x.test", entity.RoleAdmin)
	cand := dbtest.SeedCandidate(t, gdb, "ana@x.test")

	got, err := repo.SetUserActive(ctx, cand.UserID, false)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got, err = repo.SetUserActive(ctx, cand.UserID, true)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	_, err = repo.SetUserActive(ctx, admin.ID, false)
	assert.ErrorIs(t, err, usecase.ErrAdminImmutable)
	stored, err := repo.FindUser(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	_, err = repo.SetUserActive(ctx, "missing", false)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestAdminGorm_Moderation(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewAdminGorm(gdb)
	ctx := context.Background()

	acme := dbtest.SeedCompany(t, gdb, "Acme", "acme", false)
	job := dbtest.SeedJob(t, gdb, acme.ID, "Go Developer", entity.JobStatusPending, true)

	j, err := repo.SetJobStatus(ctx, job.ID, entity.JobStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusApproved, j.Status)
	assert.Equal(t, "Acme", j.Company.Name)

	_, err = repo.SetJobStatus(ctx, "missing", entity.JobStatusApproved)
	assert.ErrorIs(t, err, usecase.ErrJobNotFound)

	c, err := repo.SetCompanyApproval(ctx, acme.ID, true)
	require.NoError(t, err)
	assert.True(t, c.IsApproved)
	assert.Equal(t, "acme@company.test", c.User.Email)

	_, err = repo.SetCompanyApproval(ctx, "missing", true)
	assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
}
