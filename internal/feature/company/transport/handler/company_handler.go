// Package handler provides the HTTP handlers of the company feature.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/company/transport/http/dto"
	"jobboard_backend/internal/feature/company/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/shared/apperror"
)

// CompanyUsecase defines the company operations used by the handler.
type CompanyUsecase interface {
	CheckSlug(ctx context.Context, userID, raw string) (usecase.SlugCheck, error)
	SimpleSlugCheck(ctx context.Context, raw string) (usecase.SlugCheck, error)
	ClaimSlug(ctx context.Context, userID, raw string) (*entity.Company, error)
	UpdateApplicationStatus(ctx context.Context, userID, applicationID, status string) (*entity.Application, error)
}

// ProfileResolver resolves public company profiles.
type ProfileResolver interface {
	Resolve(ctx context.Context, slug string) (*usecase.PublicProfile, error)
}

// CompanyHandler serves /api/company and /api/public/company.
type CompanyHandler struct {
	companies CompanyUsecase
	profiles  ProfileResolver
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(companies CompanyUsecase, profiles ProfileResolver) *CompanyHandler {
	return &CompanyHandler{companies: companies, profiles: profiles}
}

// CheckSlug handles GET /api/company/check-slug?slug=. The caller's own
// slug is reported as available.
func (h *CompanyHandler) CheckSlug(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCompany)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	res, err := h.companies.CheckSlug(c.Request.Context(), s.UserID, c.Query("slug"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, slugCheckRes(res))
}

// SimpleSlugCheck handles the public POST /api/company/simple-slug-check.
func (h *CompanyHandler) SimpleSlugCheck(c *gin.Context) {
	var req dto.SlugReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	res, err := h.companies.SimpleSlugCheck(c.Request.Context(), req.Slug)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, slugCheckRes(res))
}

// ClaimSlug handles PUT /api/company/slug.
func (h *CompanyHandler) ClaimSlug(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCompany)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	var req dto.SlugReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	company, err := h.companies.ClaimSlug(c.Request.Context(), s.UserID, req.Slug)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompanyUpdatedRes{
		Message: "slug updated",
		Company: dto.NewCompanyRes(company),
	})
}

// UpdateApplicationStatus handles PATCH /api/company/applications/:id/status.
func (h *CompanyHandler) UpdateApplicationStatus(c *gin.Context) {
	s, err := jwtmw.Require(c, entity.RoleCompany)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	var req dto.ApplicationStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	app, err := h.companies.UpdateApplicationStatus(c.Request.Context(), s.UserID, c.Param("id"), strings.ToUpper(req.Status))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ApplicationUpdatedRes{
		Message:     "application status updated",
		Application: dto.NewApplicationRes(app),
	})
}

// PublicProfile handles GET /api/public/company/:slug: 404 for an unknown
// slug, 403 for a company awaiting approval.
func (h *CompanyHandler) PublicProfile(c *gin.Context) {
	p, err := h.profiles.Resolve(c.Request.Context(), c.Param("slug"))
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPublicProfileRes(p))
}

func slugCheckRes(r usecase.SlugCheck) dto.SlugCheckRes {
	return dto.SlugCheckRes{Available: r.Available, Slug: r.Slug, Error: r.Reason}
}
