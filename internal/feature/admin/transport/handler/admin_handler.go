// Package handler provides the HTTP handlers of the admin area. Every
// endpoint requires an ADMIN session.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/admin/transport/http/dto"
	"jobboard_backend/internal/feature/admin/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/shared/apperror"
	"jobboard_backend/internal/shared/pagination"
)

// defaultLimit is the page size of the admin lists.
const defaultLimit = 10

// AdminUsecase defines the admin operations used by the handler.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*usecase.Dashboard, error)
	ListUsers(ctx context.Context, search, role string, p pagination.Params) (*usecase.UserPage, error)
	ListJobs(ctx context.Context, search, status string, p pagination.Params) (*usecase.JobPage, error)
	SetUserActive(ctx context.Context, id string, active *bool) (*entity.User, error)
	SetJobStatus(ctx context.Context, id, status string) (*entity.Job, error)
	SetCompanyApproval(ctx context.Context, id string, approved bool) (*entity.Company, error)
}

// AdminHandler serves /api/admin.
type AdminHandler struct {
	admin AdminUsecase
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(admin AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	if _, err := jwtmw.Require(c, entity.RoleAdmin); err != nil {
		apperror.Respond(c, err)
		return
	}
	d, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DashboardRes{
		TotalUsers:          d.TotalUsers,
		TotalCompanies:      d.TotalCompanies,
		TotalJobs:           d.TotalJobs,
		TotalCertificates:   d.TotalCertificates,
		ActiveJobs:          d.ActiveJobs,
		PendingApplications: d.PendingApplications,
		RecentUsers:         userList(d.RecentUsers),
		RecentJobs:          jobList(d.RecentJobs),
	})
}

// ListUsers handles GET /api/admin/users?page&limit&search&role.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	if _, err := jwtmw.Require(c, entity.RoleAdmin); err != nil {
		apperror.Respond(c, err)
		return
	}
	p, err := pagination.Parse(c.Query("page"), c.Query("limit"), defaultLimit)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	page, err := h.admin.ListUsers(c.Request.Context(), strings.TrimSpace(c.Query("search")), c.Query("role"), p)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserListRes{
		Users:      userList(page.Users),
		Total:      page.Total,
		Page:       p.Page,
		TotalPages: pagination.TotalPages(page.Total, p.Limit),
	})
}

// ListJobs handles GET /api/admin/jobs?page&limit&search&status.
func (h *AdminHandler) ListJobs(c *gin.Context) {
	if _, err := jwtmw.Require(c, entity.RoleAdmin); err != nil {
		apperror.Respond(c, err)
		return
	}
	p, err := pagination.Parse(c.Query("page"), c.Query("limit"), defaultLimit)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	page, err := h.admin.ListJobs(c.Request.Context(), strings.TrimSpace(c.Query("search")), c.Query("status"), p)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.JobListRes{
		Jobs:       jobList(page.Jobs),
		Total:      page.Total,
		Page:       p.Page,
		TotalPages: pagination.TotalPages(page.Total, p.Limit),
	})
}

// ToggleUserStatus handles PATCH /api/admin/users/:id/toggle-status.
func (h *AdminHandler) ToggleUserStatus(c *gin.Context) {
	if _, err := jwtmw.Require(c, entity.RoleAdmin); err != nil {
		apperror.Respond(c, err)
		return
	}
	// An empty body flips the flag.
	var req dto.ToggleStatusReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	u, err := h.admin.SetUserActive(c.Request.Context(), c.Param("id"), req.IsActive)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	msg := "user deactivated"
	if u.IsActive {
		msg = "user activated"
	}
	c.JSON(http.StatusOK, dto.UserUpdatedRes{Message: msg, User: dto.NewUserRes(u)})
}

// SetJobStatus handles PATCH /api/admin/jobs/:id/status.
func (h *AdminHandler) SetJobStatus(c *gin.Context) {
	if _, err := jwtmw.Require(c, entity.RoleAdmin); err != nil {
		apperror.Respond(c, err)
		return
	}
	var req dto.JobStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	j, err := h.admin.SetJobStatus(c.Request.Context(), c.Param("id"), strings.ToUpper(req.Status))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.JobUpdatedRes{Message: "job status updated", Job: dto.NewJobRes(j)})
}

// SetCompanyApproval handles PATCH /api/admin/companies/:id/approval.
func (h *AdminHandler) SetCompanyApproval(c *gin.Context) {
	if _, err := jwtmw.Require(c, entity.RoleAdmin); err != nil {
		apperror.Respond(c, err)
		return
	}
	var req dto.ApprovalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	company, err := h.admin.SetCompanyApproval(c.Request.Context(), c.Param("id"), *req.IsApproved)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	msg := "company approval revoked"
	if company.IsApproved {
		msg = "company approved"
	}
	c.JSON(http.StatusOK, dto.CompanyUpdatedRes{Message: msg, Company: dto.NewCompanyRes(company)})
}

func userList(users []entity.User) []dto.UserRes {
	out := make([]dto.UserRes, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserRes(&users[i]))
	}
	return out
}

func jobList(jobs []entity.Job) []dto.JobRes {
	out := make([]dto.JobRes, 0, len(jobs))
	for i := range jobs {
		out = append(out, dto.NewJobRes(&jobs[i]))
	}
	return out
}
