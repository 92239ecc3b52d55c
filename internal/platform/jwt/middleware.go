package jwtmw

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/domain/entity"
	"jobboard_backend/internal/shared/apperror"
)

// ContextSession is the gin context key holding the resolved *Session.
const ContextSession = "session"

var (
	errNoSession = apperror.Unauthorized("unauthorized")
	errWrongRole = apperror.Forbidden("forbidden")
)

// RevocationChecker reports whether a token id was revoked at logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// UserStatusChecker reports whether the account behind a session may still
// use it. Missing users report false.
type UserStatusChecker interface {
	IsActive(ctx context.Context, userID string) (bool, error)
}

// TokenFromRequest returns the session token from the cookie or the
// Authorization bearer header, cookie first.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// Resolve returns the session for the request or nil when the request is
// unauthenticated. A missing or invalid token is not an error. Sessions of
// deactivated or deleted users are dropped; a failed status lookup drops the
// session too.
func (m *Manager) Resolve(c *gin.Context, cookieName string, revoked RevocationChecker, users UserStatusChecker) *Session {
	tokenStr := TokenFromRequest(c, cookieName)
	if tokenStr == "" {
		return nil
	}
	s, err := m.Parse(tokenStr)
	if err != nil {
		return nil
	}
	if revoked != nil && s.TokenID != "" {
		gone, err := revoked.IsRevoked(c.Request.Context(), s.TokenID)
		if err != nil {
			slog.Warn("revocation check failed", "error", err)
		} else if gone {
			return nil
		}
	}
	if users != nil {
		active, err := users.IsActive(c.Request.Context(), s.UserID)
		if err != nil {
			slog.Warn("user status check failed", "error", err, "user_id", s.UserID)
			return nil
		}
		if !active {
			return nil
		}
	}
	return s
}

// Authenticate stores the caller's session in the context when present.
// It never aborts; role checks happen in RequireRole.
func (m *Manager) Authenticate(cookieName string, revoked RevocationChecker, users UserStatusChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s := m.Resolve(c, cookieName, revoked, users); s != nil {
			c.Set(ContextSession, s)
		}
		c.Next()
	}
}

// SessionFrom returns the session stored by Authenticate.
func SessionFrom(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok && s != nil
}

// Require is the single authorization check: it fails with Unauthorized when
// there is no session and Forbidden when the role is not in allowed. An
// empty allowed list accepts any authenticated role.
func Require(c *gin.Context, allowed ...entity.Role) (*Session, error) {
	s, ok := SessionFrom(c)
	if !ok {
		return nil, errNoSession
	}
	if len(allowed) > 0 && !slices.Contains(allowed, s.Role) {
		return nil, errWrongRole
	}
	return s, nil
}

// RequireRole aborts with 401 or 403 unless the session role is allowed.
func RequireRole(allowed ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := Require(c, allowed...); err != nil {
			apperror.Respond(c, err)
			return
		}
		c.Next()
	}
}
