// Package dto defines request and response bodies for the company feature.
package dto

// SlugReq is the body of the slug check and slug claim endpoints.
type SlugReq struct {
	Slug string `json:"slug" binding:"required"`
}

// SlugCheckRes reports slug availability. Error explains why a slug is
// unavailable.
type SlugCheckRes struct {
	Available bool   `json:"available"`
	Slug      string `json:"slug,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ApplicationStatusReq is the body of the application status update.
type ApplicationStatusReq struct {
	Status string `json:"status" binding:"required"`
}
