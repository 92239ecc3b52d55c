// Package router builds the gin engine and its route table.
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/app/gate"
	"jobboard_backend/internal/domain/entity"
	adminhandler "jobboard_backend/internal/feature/admin/transport/handler"
	authhandler "jobboard_backend/internal/feature/auth/transport/handler"
	candidatehandler "jobboard_backend/internal/feature/candidate/transport/handler"
	companyhandler "jobboard_backend/internal/feature/company/transport/handler"
	healthhandler "jobboard_backend/internal/platform/http/handler"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/shared/ratelimiter"
)

// Handlers are the feature handlers mounted by NewRouter.
type Handlers struct {
	Auth      *authhandler.AuthHandler
	Admin     *adminhandler.AdminHandler
	Candidate *candidatehandler.CandidateHandler
	Company   *companyhandler.CompanyHandler
}

// Options configure the cross-cutting middleware.
type Options struct {
	Sessions    *jwtmw.Manager
	CookieName  string
	Revocations jwtmw.RevocationChecker
	// Users drops sessions of deactivated accounts; nil skips the check.
	Users jwtmw.UserStatusChecker
	// AuthLimiter throttles the unauthenticated auth endpoints; nil disables it.
	AuthLimiter ratelimiter.Limiter
	CORSOrigins []string
	ReadyChecks []healthhandler.Check
	FrontendDir string
}

// NewRouter wires middleware and routes. Authentication runs on every
// request and only records the session. Role areas are gated per group and
// each handler checks its role again.
func NewRouter(h Handlers, opt Options) *gin.Engine {
	r := gin.Default()

	if len(opt.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opt.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(opt.Sessions.Authenticate(opt.CookieName, opt.Revocations, opt.Users))

	r.GET("/healthz", healthhandler.Health)
	r.HEAD("/healthz", healthhandler.Health)
	r.GET("/readyz", healthhandler.Ready(opt.ReadyChecks...))

	api := r.Group("/api")

	throttled := []gin.HandlerFunc{}
	if opt.AuthLimiter != nil {
		throttled = append(throttled, ratelimiter.Middleware(opt.AuthLimiter))
	}

	public := api.Group("", throttled...)
	{
		public.POST("/auth/login", h.Auth.Login)
		public.POST("/auth/check-email", h.Auth.CheckEmail)
		public.POST("/auth/register/candidate", h.Auth.RegisterCandidate)
		public.POST("/auth/register/company", h.Auth.RegisterCompany)
		public.POST("/auth/forgot-password", h.Auth.ForgotPassword)
		public.GET("/auth/verify-email", h.Auth.VerifyEmail)
		public.POST("/company/simple-slug-check", h.Company.SimpleSlugCheck)
	}
	api.POST("/logout-custom", h.Auth.Logout)
	api.GET("/public/company/:slug", h.Company.PublicProfile)

	api.POST("/auth/change-password", h.Auth.ChangePassword)

	admin := api.Group("/admin", jwtmw.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/users", h.Admin.ListUsers)
		admin.PATCH("/users/:id/toggle-status", h.Admin.ToggleUserStatus)
		admin.GET("/jobs", h.Admin.ListJobs)
		admin.PATCH("/jobs/:id/status", h.Admin.SetJobStatus)
		admin.PATCH("/companies/:id/approval", h.Admin.SetCompanyApproval)
	}

	candidate := api.Group("/candidate", jwtmw.RequireRole(entity.RoleCandidate))
	{
		candidate.GET("/dashboard/stats", h.Candidate.DashboardStats)
		candidate.GET("/courses", h.Candidate.Courses)
		candidate.GET("/certificates", h.Candidate.Certificates)
		candidate.GET("/jobs/:id", h.Candidate.JobDetail)
		candidate.GET("/applications/check/:id", h.Candidate.CheckApplication)
		candidate.POST("/applications", h.Candidate.Apply)
		candidate.GET("/messages", h.Candidate.Messages)
		candidate.POST("/messages/mark-read", h.Candidate.MarkRead)
	}

	company := api.Group("/company", jwtmw.RequireRole(entity.RoleCompany))
	{
		company.GET("/check-slug", h.Company.CheckSlug)
		company.PUT("/slug", h.Company.ClaimSlug)
		company.PATCH("/applications/:id/status", h.Company.UpdateApplicationStatus)
	}

	// Everything else is a page request for the web client.
	r.NoRoute(gate.Middleware(staticFile(opt.FrontendDir)), pages(opt.FrontendDir))

	return r
}

// pages serves the built web client from dir, falling back to index.html
// for client-side routes. Unknown API paths get a JSON 404.
func pages(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if dir == "" || p == "/api" || strings.HasPrefix(p, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if file, ok := resolveFile(dir, p); ok {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}

// staticFile reports whether a request path names a regular file under dir.
func staticFile(dir string) func(p string) bool {
	return func(p string) bool {
		_, ok := resolveFile(dir, p)
		return ok
	}
}

func resolveFile(dir, p string) (string, bool) {
	if dir == "" {
		return "", false
	}
	file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+p)))
	fi, err := os.Stat(file)
	if err != nil || fi.IsDir() {
		return "", false
	}
	return file, true
}
