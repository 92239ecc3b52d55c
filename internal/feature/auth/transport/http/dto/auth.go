// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq is the body of POST /api/auth/login.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRes is returned on a successful login. The token is also set as an
// HttpOnly cookie; clients that cannot use cookies send it as a bearer token.
type LoginRes struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expiresAt"`
	User      UserRes `json:"user"`
}

// UserRes is the caller's identity.
type UserRes struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// EmailReq is the body of check-email and forgot-password.
type EmailReq struct {
	Email string `json:"email" binding:"required,email"`
}

// RegisterCandidateReq is the body of POST /api/auth/register/candidate.
type RegisterCandidateReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=255"`
	Phone    string `json:"phone" binding:"max=32"`
	City     string `json:"city" binding:"max=100"`
	State    string `json:"state" binding:"max=50"`
}

// RegisterCompanyReq is the body of POST /api/auth/register/company.
type RegisterCompanyReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required,max=255"`
	Slug        string `json:"slug" binding:"required,max=100"`
	CNPJ        string `json:"cnpj" binding:"max=32"`
	Description string `json:"description"`
}

// RegisterRes is returned after registration.
type RegisterRes struct {
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}

// ChangePasswordReq is the body of POST /api/auth/change-password.
type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// MessageRes is a plain confirmation.
type MessageRes struct {
	Message string `json:"message"`
}
