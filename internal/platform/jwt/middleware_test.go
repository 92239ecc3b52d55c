package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/domain/entity"
)

// TestMain puts gin in test mode.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockRevocations struct {
	revoked map[string]bool
	err     error
}

func (m *mockRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.revoked[id], nil
}

type mockUsers struct {
	active map[string]bool
	err    error
}

func (m *mockUsers) IsActive(_ context.Context, userID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.active[userID], nil
}

func newEngine(m *Manager, rev RevocationChecker, roles ...entity.Role) *gin.Engine {
	return newEngineWithUsers(m, rev, nil, roles...)
}

func newEngineWithUsers(m *Manager, rev RevocationChecker, users UserStatusChecker, roles ...entity.Role) *gin.Engine {
	r := gin.New()
	r.Use(m.Authenticate("session", rev, users))
	r.GET("/protected", RequireRole(roles...), func(c *gin.Context) {
		s, _ := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": s.UserID, "role": s.Role})
	})
	return r
}

func TestRequireRole_NoSession(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"garbage bearer", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			newEngine(m, nil, entity.RoleAdmin).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
		})
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	tok, err := m.GenerateToken("u1", entity.RoleCandidate)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Value)
	newEngine(m, nil, entity.RoleAdmin).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_ValidCookie(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	tok, err := m.GenerateToken("u42", entity.RoleCompany)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: tok.Value})
	newEngine(m, nil, entity.RoleCompany, entity.RoleAdmin).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"u42","role":"COMPANY"}`, w.Body.String())
}

func TestRequireRole_AnyAuthenticated(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	tok, err := m.GenerateToken("u1", entity.RoleCandidate)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Value)
	newEngine(m, nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	tok, err := m.GenerateToken("u1", entity.RoleAdmin)
	require.NoError(t, err)

	rev := &mockRevocations{revoked: map[string]bool{tok.ID: true}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Value)
	newEngine(m, rev, entity.RoleAdmin).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_RevocationStoreDown(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	tok, err := m.GenerateToken("u1", entity.RoleAdmin)
	require.NoError(t, err)

	rev := &mockRevocations{err: errors.New("redis down")}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Value)
	newEngine(m, rev, entity.RoleAdmin).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "revocation store errors fail open")
}

func TestAuthenticate_UserStatus(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	tok, err := m.GenerateToken("u1", entity.RoleCandidate)
	require.NoError(t, err)

	tests := []struct {
		name  string
		users *mockUsers
		want  int
	}{
		{"active user", &mockUsers{active: map[string]bool{"u1": true}}, http.StatusOK},
		{"deactivated user", &mockUsers{active: map[string]bool{"u1": false}}, http.StatusUnauthorized},
		{"deleted user", &mockUsers{active: map[string]bool{}}, http.StatusUnauthorized},
		{"lookup failure", &mockUsers{err: errors.New("db down")}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tok.Value)
			newEngineWithUsers(m, nil, tt.users, entity.RoleCandidate).ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestTokenFromRequest_CookieFirst(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session", Value: "from-cookie"})
	c.Request.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-cookie", TokenFromRequest(c, "session"))
}
