// Package dbtest provides database fixtures for tests.
package dbtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/platform/db"
)

// New returns a migrated in-memory SQLite database. The pool is pinned to one
// connection so every query sees the same memory database.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig())
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb), "failed to migrate tables")
	return gdb
}

// SeedUser inserts an active user with the given role.
func SeedUser(t testing.TB, gdb *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()

	u := &entity.User{
		Email:    email,
		Name:     email,
		Password: "hashed",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, gdb.Create(u).Error, "failed to seed user")
	return u
}

// SeedCompany inserts a COMPANY user and its company profile.
func SeedCompany(t testing.TB, gdb *gorm.DB, name, slug string, approved bool) *entity.Company {
	t.Helper()

	u := SeedUser(t, gdb, slug+"@company.test", entity.RoleCompany)
	c := &entity.Company{
		UserID:     u.ID,
		Name:       name,
		Slug:       slug,
		Email:      "contact@" + slug + ".test",
		IsApproved: approved,
	}
	require.NoError(t, gdb.Create(c).Error, "failed to seed company")
	return c
}

// SeedCandidate inserts a CANDIDATE user and its candidate profile.
func SeedCandidate(t testing.TB, gdb *gorm.DB, email string) *entity.Candidate {
	t.Helper()

	u := SeedUser(t, gdb, email, entity.RoleCandidate)
	c := &entity.Candidate{UserID: u.ID, Name: email}
	require.NoError(t, gdb.Create(c).Error, "failed to seed candidate")
	return c
}

// SeedJob inserts a job for companyID.
func SeedJob(t testing.TB, gdb *gorm.DB, companyID, title string, status entity.JobStatus, active bool) *entity.Job {
	t.Helper()

	j := &entity.Job{
		CompanyID: companyID,
		Title:     title,
		Status:    status,
		IsActive:  active,
	}
	require.NoError(t, gdb.Create(j).Error, "failed to seed job")
	return j
}

// SeedApplication inserts an application with the given status.
func SeedApplication(t testing.TB, gdb *gorm.DB, candidateID, jobID string, status entity.ApplicationStatus) *entity.Application {
	t.Helper()

	a := &entity.Application{
		CandidateID: candidateID,
		JobID:       jobID,
		Status:      status,
	}
	require.NoError(t, gdb.Create(a).Error, "failed to seed application")
	return a
}

// SeedCourse inserts an active course.
func SeedCourse(t testing.TB, gdb *gorm.DB, title, category, difficulty string) *entity.Course {
	t.Helper()

	c := &entity.Course{
		Title:      title,
		Category:   category,
		Difficulty: difficulty,
		IsActive:   true,
	}
	require.NoError(t, gdb.Create(c).Error, "failed to seed course")
	return c
}

// SeedCertificate inserts a certificate issued at issuedAt.
func SeedCertificate(t testing.TB, gdb *gorm.DB, candidateID, courseID, code string, issuedAt time.Time) *entity.Certificate {
	t.Helper()

	c := &entity.Certificate{
		CandidateID: candidateID,
		CourseID:    courseID,
		Code:        code,
		IssuedAt:    issuedAt,
	}
	require.NoError(t, gdb.Create(c).Error, "failed to seed certificate")
	return c
}

// SeedMessage inserts an unread message.
func SeedMessage(t testing.TB, gdb *gorm.DB, senderID, recipientID, content string) *entity.Message {
	t.Helper()

	m := &entity.Message{SenderID: senderID, RecipientID: recipientID, Content: content}
	require.NoError(t, gdb.Create(m).Error, "failed to seed message")
	return m
}
