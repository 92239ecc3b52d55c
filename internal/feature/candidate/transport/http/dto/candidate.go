// Package dto defines the JSON shapes of the candidate API.
package dto

import (
	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/shared/timefmt"
)

// StatsRes is the response of GET /api/candidate/dashboard/stats.
type StatsRes struct {
	Applications int `json:"applications"`
	Interviews   int `json:"interviews"`
	ProfileViews int `json:"profileViews"`
	SavedJobs    int `json:"savedJobs"`
}

// CourseRes is a catalog entry.
type CourseRes struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Duration    int    `json:"duration"`
	Instructor  string `json:"instructor"`
	ImageURL    string `json:"imageUrl"`
	CreatedAt   string `json:"createdAt"`
}

// NewCourseRes projects c.
func NewCourseRes(c *entity.Course) CourseRes {
	return CourseRes{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Difficulty:  c.Difficulty,
		Duration:    c.Duration,
		Instructor:  c.Instructor,
		ImageURL:    c.ImageURL,
		CreatedAt:   timefmt.ISO(c.CreatedAt),
	}
}

// CourseListRes is the response of GET /api/candidate/courses.
type CourseListRes struct {
	Courses     []CourseRes `json:"courses"`
	TotalCount  int64       `json:"totalCount"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// CertificateRes is an issued certificate with its course flattened in.
type CertificateRes struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	IssuedAt         string `json:"issuedAt"`
	CourseID         string `json:"courseId"`
	CourseTitle      string `json:"courseTitle"`
	CourseCategory   string `json:"courseCategory"`
	CourseDifficulty string `json:"courseDifficulty"`
}

// NewCertificateRes projects c. c.Course must be loaded.
func NewCertificateRes(c *entity.Certificate) CertificateRes {
	return CertificateRes{
		ID:               c.ID,
		Code:             c.Code,
		IssuedAt:         timefmt.ISO(c.IssuedAt),
		CourseID:         c.CourseID,
		CourseTitle:      c.Course.Title,
		CourseCategory:   c.Course.Category,
		CourseDifficulty: c.Course.Difficulty,
	}
}

// CertificateListRes is the response of GET /api/candidate/certificates.
type CertificateListRes struct {
	Certificates []CertificateRes `json:"certificates"`
}

// JobRes is the job detail shown to candidates.
type JobRes struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Salary       string `json:"salary"`
	IsActive     bool   `json:"isActive"`
	CompanyID    string `json:"companyId"`
	CompanyName  string `json:"companyName"`
	CompanySlug  string `json:"companySlug"`
	CreatedAt    string `json:"createdAt"`
}

// NewJobRes projects j. j.Company must be loaded.
func NewJobRes(j *entity.Job) JobRes {
	return JobRes{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Type:         j.Type,
		Salary:       j.Salary,
		IsActive:     j.IsActive,
		CompanyID:    j.CompanyID,
		CompanyName:  j.Company.Name,
		CompanySlug:  j.Company.Slug,
		CreatedAt:    timefmt.ISO(j.CreatedAt),
	}
}

// HasAppliedRes is the response of GET /api/candidate/applications/check/:id.
type HasAppliedRes struct {
	HasApplied bool `json:"hasApplied"`
}

// ApplyReq is the body of POST /api/candidate/applications.
type ApplyReq struct {
	JobID       string `json:"jobId" binding:"required"`
	CoverLetter string `json:"coverLetter" binding:"max=5000"`
}

// ApplicationRes is a submitted application.
type ApplicationRes struct {
	ID        string `json:"id"`
	JobID     string `json:"jobId"`
	JobTitle  string `json:"jobTitle"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// ApplyRes is the response of POST /api/candidate/applications.
type ApplyRes struct {
	Message     string         `json:"message"`
	Application ApplicationRes `json:"application"`
}

// NewApplicationRes projects a.
func NewApplicationRes(a *entity.Application) ApplicationRes {
	return ApplicationRes{
		ID:        a.ID,
		JobID:     a.JobID,
		JobTitle:  a.Job.Title,
		Status:    string(a.Status),
		CreatedAt: timefmt.ISO(a.CreatedAt),
	}
}

// MessageRes is one message of a conversation.
type MessageRes struct {
	ID          string `json:"id"`
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
	IsRead      bool   `json:"isRead"`
	CreatedAt   string `json:"createdAt"`
}

// NewMessageRes projects m.
func NewMessageRes(m *entity.Message) MessageRes {
	return MessageRes{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Content:     m.Content,
		IsRead:      m.IsRead,
		CreatedAt:   timefmt.ISO(m.CreatedAt),
	}
}

// MessageListRes is the response of GET /api/candidate/messages.
type MessageListRes struct {
	Messages []MessageRes `json:"messages"`
}

// MarkReadReq is the body of POST /api/candidate/messages/mark-read.
type MarkReadReq struct {
	CompanyID string `json:"companyId" binding:"required"`
}

// MarkReadRes reports how many messages were marked read.
type MarkReadRes struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}
