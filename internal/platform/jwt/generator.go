// Package jwtmw issues and verifies signed session tokens and exposes the
// gin middleware that resolves the caller's session.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"jobboard_backend/internal/domain/entity"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the payload carried by a session token.
type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Session is the resolved identity of a request.
type Session struct {
	UserID    string
	Role      entity.Role
	TokenID   string
	ExpiresAt time.Time
}

// Token is a freshly issued session token.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Generator signs session tokens.
type Generator interface {
	// GenerateToken creates a signed token for the given user and role.
	GenerateToken(userID string, role entity.Role) (Token, error)
}

// Manager issues and parses HS256 session tokens.
type Manager struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

var _ Generator = (*Manager)(nil)

// NewManager creates a Manager with the provided secret and token lifetime.
func NewManager(secret string, expiration time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// GenerateToken creates a signed token with a unique jti.
func (m *Manager) GenerateToken(userID string, role entity.Role) (Token, error) {
	now := m.now()
	exp := now.Add(m.expiration)
	jti := uuid.NewString()

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return Token{Value: signed, ID: jti, ExpiresAt: exp}, nil
}

// Parse verifies the signature and expiry of tokenStr and returns its session.
func (m *Manager) Parse(tokenStr string) (*Session, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		// only HMAC is accepted
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	s := &Session{
		UserID:  claims.Subject,
		Role:    claims.Role,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
