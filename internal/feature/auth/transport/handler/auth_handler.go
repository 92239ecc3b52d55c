// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/feature/auth/transport/http/dto"
	"jobboard_backend/internal/feature/auth/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/shared/apperror"
	"jobboard_backend/internal/shared/timefmt"
)

// forgotPasswordMessage is returned whether or not the email is registered.
const forgotPasswordMessage = "if the email is registered, a temporary password has been sent"

// AuthUsecase defines the authentication operations used by the handler.
// Following Go convention, the interface is defined by the consumer.
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	CheckEmail(ctx context.Context, email string) error
	RegisterCandidate(ctx context.Context, in usecase.CandidateRegistration) (*entity.User, error)
	RegisterCompany(ctx context.Context, in usecase.CompanyRegistration) (*entity.User, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, userID, current, next string) error
}

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth   AuthUsecase
	cookie CookieConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase, cookie CookieConfig) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "session"
	}
	return &AuthHandler{auth: auth, cookie: cookie}
}

// Login handles POST /api/auth/login and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		apperror.Respond(c, err)
		return
	}

	maxAge := int(time.Until(res.Token.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, res.Token.Value, maxAge, "/", "", h.cookie.Secure, true)

	slog.Info("user login successful", "user_id", res.User.ID, "role", res.User.Role, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{
		Token:     res.Token.Value,
		ExpiresAt: timefmt.ISO(res.Token.ExpiresAt),
		User:      userRes(res.User),
	})
}

// Logout handles POST /api/logout-custom. It always clears the cookie and
// revokes the token when the request carried a valid one.
func (h *AuthHandler) Logout(c *gin.Context) {
	if s, ok := jwtmw.SessionFrom(c); ok {
		if err := h.auth.Logout(c.Request.Context(), s.TokenID, s.ExpiresAt); err != nil {
			slog.Warn("session revocation failed", "error", err, "user_id", s.UserID)
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "logged out"})
}

// CheckEmail handles POST /api/auth/check-email.
func (h *AuthHandler) CheckEmail(c *gin.Context) {
	var req dto.EmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	if err := h.auth.CheckEmail(c.Request.Context(), req.Email); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "email available"})
}

// RegisterCandidate handles POST /api/auth/register/candidate.
func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req dto.RegisterCandidateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	u, err := h.auth.RegisterCandidate(c.Request.Context(), usecase.CandidateRegistration{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		City:     req.City,
		State:    req.State,
	})
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	slog.Info("candidate registered", "user_id", u.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{Message: "registration successful", User: userRes(u)})
}

// RegisterCompany handles POST /api/auth/register/company.
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req dto.RegisterCompanyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	u, err := h.auth.RegisterCompany(c.Request.Context(), usecase.CompanyRegistration{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Slug:        req.Slug,
		CNPJ:        req.CNPJ,
		Description: req.Description,
	})
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	slog.Info("company registered", "user_id", u.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterRes{Message: "registration successful; awaiting approval", User: userRes(u)})
}

// VerifyEmail handles GET /api/auth/verify-email?token=.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.auth.VerifyEmail(c.Request.Context(), c.Query("token")); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "email verified"})
}

// ForgotPassword handles POST /api/auth/forgot-password. The reply does not
// depend on whether the email exists; only a mail delivery failure differs.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.EmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	err := h.auth.ForgotPassword(c.Request.Context(), req.Email)
	switch {
	case errors.Is(err, usecase.ErrEmailDelivery):
		slog.Error("forgot password email failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, apperror.ErrorResponse{Error: usecase.ErrEmailDelivery.Error()})
		return
	case err != nil:
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: forgotPasswordMessage})
}

// ChangePassword handles POST /api/auth/change-password for any signed-in role.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	s, err := jwtmw.Require(c)
	if err != nil {
		apperror.Respond(c, err)
		return
	}
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.Respond(c, apperror.BindingError(err))
		return
	}
	if err := h.auth.ChangePassword(c.Request.Context(), s.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "password changed"})
}

func userRes(u *entity.User) dto.UserRes {
	return dto.UserRes{ID: u.ID, Email: u.Email, Name: u.Name, Role: string(u.Role)}
}
