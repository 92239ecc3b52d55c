package handler

import (
	"bytes"
	"context"
	"encoding/json"
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
	"jobboard_backend/internal/feature/admin/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/shared/pagination"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockAdminUsecase struct {
	DashboardFn          func(ctx context.Context) (*usecase.Dashboard, error)
	ListUsersFn          func(ctx context.Context, search, role string, p pagination.Params) (*usecase.UserPage, error)
	ListJobsFn           func(ctx context.Context, search, status string, p pagination.Params) (*usecase.JobPage, error)
	SetUserActiveFn      func(ctx context.Context, id string, active *bool) (*entity.User, error)
	SetJobStatusFn       func(ctx context.Context, id, status string) (*entity.Job, error)
	SetCompanyApprovalFn func(ctx context.Context, id string, approved bool) (*entity.Company, error)
}

func (m *mockAdminUsecase) Dashboard(ctx context.Context) (*usecase.Dashboard, error) {
	if m.DashboardFn != nil {
		return m.DashboardFn(ctx)
	}
	return &usecase.Dashboard{}, nil
}

func (m *mockAdminUsecase) ListUsers(ctx context.Context, search, role string, p pagination.Params) (*usecase.UserPage, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx, search, role, p)
	}
	return &usecase.UserPage{}, nil
}

func (m *mockAdminUsecase) ListJobs(ctx context.Context, search, status string, p pagination.Params) (*usecase.JobPage, error) {
	if m.ListJobsFn != nil {
		return m.ListJobsFn(ctx, search, status, p)
	}
	return &usecase.JobPage{}, nil
}

func (m *mockAdminUsecase) SetUserActive(ctx context.Context, id string, active *bool) (*entity.User, error) {
	if m.SetUserActiveFn != nil {
		return m.SetUserActiveFn(ctx, id, active)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockAdminUsecase) SetJobStatus(ctx context.Context, id, status string) (*entity.Job, error) {
	if m.SetJobStatusFn != nil {
		return m.SetJobStatusFn(ctx, id, status)
	}
	return nil, usecase.ErrJobNotFound
}

func (m *mockAdminUsecase) SetCompanyApproval(ctx context.Context, id string, approved bool) (*entity.Company, error) {
	if m.SetCompanyApprovalFn != nil {
		return m.SetCompanyApprovalFn(ctx, id, approved)
	}
	return nil, usecase.ErrCompanyNotFound
}

func newRouter(h *AdminHandler, role entity.Role) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(jwtmw.ContextSession, &jwtmw.Session{UserID: "admin-1", Role: role})
		}
		c.Next()
	})
	r.GET("/api/admin/dashboard", h.Dashboard)
	r.GET("/api/admin/users", h.ListUsers)
	r.GET("/api/admin/jobs", h.ListJobs)
	r.PATCH("/api/admin/users/:id/toggle-status", h.ToggleUserStatus)
	r.PATCH("/api/admin/jobs/:id/status", h.SetJobStatus)
	r.PATCH("/api/admin/companies/:id/approval", h.SetCompanyApproval)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminHandler_RoleGate(t *testing.T) {
	routes := []struct{ method, path, body string }{
		{http.MethodGet, "/api/admin/dashboard", ""},
		{http.MethodGet, "/api/admin/users", ""},
		{http.MethodGet, "/api/admin/jobs", ""},
		{http.MethodPatch, "/api/admin/users/u-1/toggle-status", `{"isActive":false}`},
		{http.MethodPatch, "/api/admin/jobs/j-1/status", `{"status":"APPROVED"}`},
		{http.MethodPatch, "/api/admin/companies/c-1/approval", `{"isApproved":true}`},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			h := NewAdminHandler(&mockAdminUsecase{})

			w := do(newRouter(h, ""), rt.method, rt.path, rt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())

			w = do(newRouter(h, entity.RoleCandidate), rt.method, rt.path, rt.body)
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String())
		})
	}
}

func TestAdminHandler_Dashboard(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := &mockAdminUsecase{DashboardFn: func(context.Context) (*usecase.Dashboard, error) {
		return &usecase.Dashboard{
			TotalUsers:     3,
			TotalCompanies: 1,
			RecentJobs: []entity.Job{{
				Base:    entity.Base{ID: "j-1", CreatedAt: created},
				Title:   "Go Developer",
				Status:  entity.JobStatusApproved,
				Company: entity.Company{Name: "TechCorp"},
			}},
		}, nil
	}}

	w := do(newRouter(NewAdminHandler(uc), entity.RoleAdmin), http.MethodGet, "/api/admin/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["totalUsers"])
	assert.EqualValues(t, 1, body["totalCompanies"])
	assert.Equal(t, []any{}, body["recentUsers"], "empty lists encode as []")
	jobs := body["recentJobs"].([]any)
	require.Len(t, jobs, 1)
	job := jobs[0].(map[string]any)
	assert.Equal(t, "TechCorp", job["companyName"])
	assert.Equal(t, "2024-05-01T12:00:00.000Z", job["createdAt"])

	uc.DashboardFn = func(context.Context) (*usecase.Dashboard, error) {
		return nil, errors.New("connection reset")
	}
	w = do(newRouter(NewAdminHandler(uc), entity.RoleAdmin), http.MethodGet, "/api/admin/dashboard", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestAdminHandler_ListUsers(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		total          int64
		expectedStatus int
		wantParams     pagination.Params
		wantPages      float64
	}{
		{"defaults", "", 25, http.StatusOK, pagination.Params{Page: 1, Limit: 10}, 3},
		{"explicit page", "?page=2&limit=5&search=ana&role=CANDIDATE", 11, http.StatusOK, pagination.Params{Page: 2, Limit: 5}, 3},
		{"empty", "?role=ALL", 0, http.StatusOK, pagination.Params{Page: 1, Limit: 10}, 0},
		{"bad page", "?page=0", 0, http.StatusBadRequest, pagination.Params{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotParams pagination.Params
			uc := &mockAdminUsecase{ListUsersFn: func(_ context.Context, _, _ string, p pagination.Params) (*usecase.UserPage, error) {
				gotParams = p
				return &usecase.UserPage{Users: []entity.User{{Email: "a@x.test"}}, Total: tt.total}, nil
			}}

			w := do(newRouter(NewAdminHandler(uc), entity.RoleAdmin), http.MethodGet, "/api/admin/users"+tt.query, "")
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tt.wantParams, gotParams)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.EqualValues(t, tt.total, body["total"])
			assert.EqualValues(t, tt.wantParams.Page, body["page"])
			assert.Equal(t, tt.wantPages, body["totalPages"])
			assert.NotContains(t, w.Body.String(), "password")
		})
	}
}

func TestAdminHandler_ListJobs_InvalidStatus(t *testing.T) {
	uc := &mockAdminUsecase{ListJobsFn: func(context.Context, string, string, pagination.Params) (*usecase.JobPage, error) {
		return nil, usecase.ErrInvalidJobStatus
	}}
	w := do(newRouter(NewAdminHandler(uc), entity.RoleAdmin), http.MethodGet, "/api/admin/jobs?status=LIVE", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_ToggleUserStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
		expectedBody   string
		wantActive     *bool
	}{
		{"deactivate", `{"isActive":false}`, nil, http.StatusOK, "user deactivated", new(bool)},
		{"flip on empty body", "", nil, http.StatusOK, "user activated", nil},
		{"admin target", `{"isActive":false}`, usecase.ErrAdminImmutable, http.StatusBadRequest, "admin users cannot be deactivated", nil},
		{"unknown user", `{"isActive":false}`, usecase.ErrUserNotFound, http.StatusNotFound, "user not found", nil},
		{"malformed body", `{"isActive":"nope"}`, nil, http.StatusBadRequest, "invalid request body", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAdminUsecase{SetUserActiveFn: func(_ context.Context, id string, active *bool) (*entity.User, error) {
				assert.Equal(t, "u-1", id)
				if tt.err != nil {
					return nil, tt.err
				}
				if tt.wantActive != nil {
					require.NotNil(t, active)
					assert.Equal(t, *tt.wantActive, *active)
				}
				return &entity.User{Base: entity.Base{ID: id}, IsActive: active == nil}, nil
			}}

			w := do(newRouter(NewAdminHandler(uc), entity.RoleAdmin), http.MethodPatch, "/api/admin/users/u-1/toggle-status", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAdminHandler_SetJobStatus(t *testing.T) {
	uc := &mockAdminUsecase{SetJobStatusFn: func(_ context.Context, id, status string) (*entity.Job, error) {
		assert.Equal(t, "APPROVED", status, "status is uppercased")
		return &entity.Job{Base: entity.Base{ID: id}, Status: entity.JobStatus(status)}, nil
	}}
	r := newRouter(NewAdminHandler(uc), entity.RoleAdmin)

	w := do(r, http.MethodPatch, "/api/admin/jobs/j-1/status", `{"status":"approved"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)

	w = do(r, http.MethodPatch, "/api/admin/jobs/j-1/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"status is required"}`, w.Body.String())
}

func TestAdminHandler_SetCompanyApproval(t *testing.T) {
	uc := &mockAdminUsecase{SetCompanyApprovalFn: func(_ context.Context, id string, approved bool) (*entity.Company, error) {
		return &entity.Company{
			Base:       entity.Base{ID: id},
			Slug:       "acme",
			IsApproved: approved,
			User:       entity.User{Email: "hr@acme.test", IsEmailVerified: true},
		}, nil
	}}
	r := newRouter(NewAdminHandler(uc), entity.RoleAdmin)

	w := do(r, http.MethodPatch, "/api/admin/companies/c-1/approval", `{"isApproved":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Message string         `json:"message"`
		Company map[string]any `json:"company"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "company approved", body.Message)
	assert.Equal(t, "hr@acme.test", body.Company["userEmail"])
	assert.Equal(t, true, body.Company["isEmailVerified"])

	w = do(r, http.MethodPatch, "/api/admin/companies/c-1/approval", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"isApproved is required"}`, w.Body.String())
}
