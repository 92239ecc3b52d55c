// Package dto defines the JSON shapes of the admin API.
package dto

import (
	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/shared/timefmt"
)

// UserRes is a user row as listed to administrators.
type UserRes struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	IsActive        bool   `json:"isActive"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	CreatedAt       string `json:"createdAt"`
}

// NewUserRes projects u. Credentials and tokens are never exposed.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            string(u.Role),
		IsActive:        u.IsActive,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       timefmt.ISO(u.CreatedAt),
	}
}

// JobRes is a job row with its company name flattened in.
type JobRes struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	IsActive    bool   `json:"isActive"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	CreatedAt   string `json:"createdAt"`
}

// NewJobRes projects j. j.Company must be loaded.
func NewJobRes(j *entity.Job) JobRes {
	return JobRes{
		ID:          j.ID,
		Title:       j.Title,
		Location:    j.Location,
		Type:        j.Type,
		Status:      string(j.Status),
		IsActive:    j.IsActive,
		CompanyID:   j.CompanyID,
		CompanyName: j.Company.Name,
		CreatedAt:   timefmt.ISO(j.CreatedAt),
	}
}

// CompanyRes is a company with its login email flattened in.
type CompanyRes struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Email           string `json:"email"`
	UserEmail       string `json:"userEmail"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	IsApproved      bool   `json:"isApproved"`
	CreatedAt       string `json:"createdAt"`
}

// NewCompanyRes projects c. c.User is read when loaded.
func NewCompanyRes(c *entity.Company) CompanyRes {
	return CompanyRes{
		ID:              c.ID,
		Name:            c.Name,
		Slug:            c.Slug,
		Email:           c.Email,
		UserEmail:       c.User.Email,
		IsEmailVerified: c.User.IsEmailVerified,
		IsApproved:      c.IsApproved,
		CreatedAt:       timefmt.ISO(c.CreatedAt),
	}
}

// DashboardRes is the response of GET /api/admin/dashboard.
type DashboardRes struct {
	TotalUsers          int64     `json:"totalUsers"`
	TotalCompanies      int64     `json:"totalCompanies"`
	TotalJobs           int64     `json:"totalJobs"`
	TotalCertificates   int64     `json:"totalCertificates"`
	ActiveJobs          int64     `json:"activeJobs"`
	PendingApplications int64     `json:"pendingApplications"`
	RecentUsers         []UserRes `json:"recentUsers"`
	RecentJobs          []JobRes  `json:"recentJobs"`
}

// UserListRes is the response of GET /api/admin/users.
type UserListRes struct {
	Users      []UserRes `json:"users"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
}

// JobListRes is the response of GET /api/admin/jobs.
type JobListRes struct {
	Jobs       []JobRes `json:"jobs"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
}

// ToggleStatusReq is the body of PATCH /api/admin/users/:id/toggle-status.
// An omitted isActive flips the current value.
type ToggleStatusReq struct {
	IsActive *bool `json:"isActive"`
}

// JobStatusReq is the body of PATCH /api/admin/jobs/:id/status.
type JobStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// ApprovalReq is the body of PATCH /api/admin/companies/:id/approval.
type ApprovalReq struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// UserUpdatedRes wraps a user with a confirmation message.
type UserUpdatedRes struct {
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}

// JobUpdatedRes wraps a job with a confirmation message.
type JobUpdatedRes struct {
	Message string `json:"message"`
	Job     JobRes `json:"job"`
}

// CompanyUpdatedRes wraps a company with a confirmation message.
type CompanyUpdatedRes struct {
	Message string     `json:"message"`
	Company CompanyRes `json:"company"`
}
