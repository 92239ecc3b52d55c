package dto

import (
	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/company/usecase"
	"jobboard_backend/internal/shared/timefmt"
)

// CompanyRes is the company projection returned to its owner.
type CompanyRes struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Email       string `json:"email"`
	Description string `json:"description"`
	IsApproved  bool   `json:"isApproved"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// NewCompanyRes projects c.
func NewCompanyRes(c *entity.Company) CompanyRes {
	return CompanyRes{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Email:       c.Email,
		Description: c.Description,
		IsApproved:  c.IsApproved,
		CreatedAt:   timefmt.ISO(c.CreatedAt),
		UpdatedAt:   timefmt.ISO(c.UpdatedAt),
	}
}

// CompanyUpdatedRes wraps a company with a confirmation message.
type CompanyUpdatedRes struct {
	Message string     `json:"message"`
	Company CompanyRes `json:"company"`
}

// PublicProfileRes is the public company page payload.
type PublicProfileRes struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Email       string               `json:"email"`
	Description string               `json:"description"`
	Website     string               `json:"website"`
	Phone       string               `json:"phone"`
	City        string               `json:"city"`
	State       string               `json:"state"`
	LogoURL     string               `json:"logoUrl"`
	CreatedAt   string               `json:"createdAt"`
	Stats       usecase.ProfileStats `json:"stats"`
}

// NewPublicProfileRes projects p with an ISO creation timestamp.
func NewPublicProfileRes(p *usecase.PublicProfile) PublicProfileRes {
	return PublicProfileRes{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Email:       p.Email,
		Description: p.Description,
		Website:     p.Website,
		Phone:       p.Phone,
		City:        p.City,
		State:       p.State,
		LogoURL:     p.LogoURL,
		CreatedAt:   timefmt.ISO(p.CreatedAt),
		Stats:       p.Stats,
	}
}

// ApplicationRes is an application as seen by the hiring company.
type ApplicationRes struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidateId"`
	JobID       string `json:"jobId"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ApplicationUpdatedRes wraps an application with a confirmation message.
type ApplicationUpdatedRes struct {
	Message     string         `json:"message"`
	Application ApplicationRes `json:"application"`
}

// NewApplicationRes projects a.
func NewApplicationRes(a *entity.Application) ApplicationRes {
	return ApplicationRes{
		ID:          a.ID,
		CandidateID: a.CandidateID,
		JobID:       a.JobID,
		Status:      string(a.Status),
		CreatedAt:   timefmt.ISO(a.CreatedAt),
		UpdatedAt:   timefmt.ISO(a.UpdatedAt),
	}
}
