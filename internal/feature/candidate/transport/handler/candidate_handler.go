// Package handler provides the HTTP handlers of the candidate area. Every
// endpoint requires a CANDIDATE session.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/candidate/transport/http/dto"
	"jobboard_backend/internal/feature/candidate/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/shared/apperror"
	"jobboard_backend/internal/shared/pagination"
)

// defaultCourseLimit fills a three by three grid.
const defaultCourseLimit = 9

var errCompanyIDRequired = apperror.Validation("companyId is required")

// CandidateUsecase defines the candidate operations used by the handler.
type CandidateUsecase interface {
	DashboardStats(ctx context.Context, userID string) (*usecase.DashboardStats, error)
	ListCourses(ctx context.Context, f usecase.CourseFilter, p pagination.Params) (*usecase.CoursePage, error)
	Certificates(ctx context.Context, userID string) ([]entity.Certificate, error)
	JobDetail(ctx context.Context, jobID string) (*entity.Job, error)
	HasApplied(ctx context.Context, userID, jobID string) (bool, error)
	Apply(ctx context.Context, userID, jobID, coverLetter string) (*entity.Application, error)
	Conversation(ctx context.Context, userID, companyID string) ([]entity.Message, error)
	MarkRead(ctx context.Context, userID, companyID string) (int64, error)
}

// CandidateHandler serves /api/candidate.
type CandidateHandler struct {
	candidates CandidateUsecase
}

// NewCandidateHandler creates a CandidateHandler.
func NewCandidateHandler(candidates CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

// DashboardStats handles GET /api/candidate/dashboard/stats.
func (h *CandidateHandler) DashboardStats(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCandidate)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	stats, err := h.candidates.DashboardStats(c.Request.Context(), s.UserID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatsRes{
		Applications: stats.Applications,
		Interviews:   stats.Interviews,
		ProfileViews: stats.ProfileViews,
		SavedJobs:    stats.SavedJobs,
	})
}

// Courses handles GET /api/candidate/courses?page&limit&search&category&difficulty.
func (h *CandidateHandler) Courses(c *gin.Context) {
	if _, err := jwtmw.Require(c, entity.RoleCandidate); err != nil {
		apperror.Respond(c, err)
		return
	}
	p, err := pagination.Parse(c.Query("page"), c.Query("limit"), defaultCourseLimit)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	page, err := h.candidates.ListCourses(c.Request.Context(), usecase.CourseFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}, p)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	courses := make([]dto.CourseRes, 0, len(page.Courses))
	for i := range page.Courses {
		courses = append(courses, dto.NewCourseRes(&page.Courses[i]))
	}
	c.JSON(http.StatusOK, dto.CourseListRes{
		Courses:     courses,
		TotalCount:  page.Total,
		TotalPages:  pagination.TotalPages(page.Total, p.Limit),
		CurrentPage: p.Page,
	})
}

// Certificates handles GET /api/candidate/certificates.
func (h *CandidateHandler) Certificates(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCandidate)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	certs, err := h.candidates.Certificates(c.Request.Context(), s.UserID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	out := make([]dto.CertificateRes, 0, len(certs))
	for i := range certs {
		out = append(out, dto.NewCertificateRes(&certs[i]))
	}
	c.JSON(http.StatusOK, dto.CertificateListRes{Certificates: out})
}

// JobDetail handles GET /api/candidate/jobs/:id.
func (h *CandidateHandler) JobDetail(c *gin.Context) {
	if _, err := jwtmw.Require(c, entity.RoleCandidate); err != nil {
		apperror.Respond(c, err)
		return
	}
	j, err := h.candidates.JobDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewJobRes(j))
}

// CheckApplication handles GET /api/candidate/applications/check/:id.
func (h *CandidateHandler) CheckApplication(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCandidate)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	applied, err := h.candidates.HasApplied(c.Request.Context(), s.UserID, c.Param("id"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HasAppliedRes{HasApplied: applied})
}

// Apply handles POST /api/candidate/applications.
func (h *CandidateHandler) Apply(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCandidate)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	var req dto.ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	a, err := h.candidates.Apply(c.Request.Context(), s.UserID, req.JobID, req.CoverLetter)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ApplyRes{Message: "application submitted", Application: dto.NewApplicationRes(a)})
}

// Messages handles GET /api/candidate/messages?companyId=.
func (h *CandidateHandler) Messages(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCandidate)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	companyID := c.Query("companyId")
	if companyID == "" {
		apperror.Respond(c, errCompanyIDRequired)
		return
	}
	msgs, err := h.candidates.Conversation(c.Request.Context(), s.UserID, companyID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	out := make([]dto.MessageRes, 0, len(msgs))
	for i := range msgs {
		out = append(out, dto.NewMessageRes(&msgs[i]))
	}
	c.JSON(http.StatusOK, dto.MessageListRes{Messages: out})
}

// MarkRead handles POST /api/candidate/messages/mark-read. A missing
// companyId is rejected rather than treated as a no-op.
func (h *CandidateHandler) MarkRead(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCandidate)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	var req dto.MarkReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	n, err := h.candidates.MarkRead(c.Request.Context(), s.UserID, req.CompanyID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MarkReadRes{Message: "messages marked as read", Count: n})
}
