package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/feature/company/usecase"
)

type mockProfileResolver struct {
	resolveFn func(ctx context.Context, slug string) (*usecase.PublicProfile, error)
	calls     int
}

func (m *mockProfileResolver) Resolve(ctx context.Context, slug string) (*usecase.PublicProfile, error) {
	m.calls++
	if m.resolveFn != nil {
		return m.resolveFn(ctx, slug)
	}
	return nil, usecase.ErrCompanyNotFound
}

func sampleProfile() *usecase.PublicProfile {
	return &usecase.PublicProfile{
		ID:        "c-1",
		Name:      "TechCorp",
		Slug:      "techcorp",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Stats:     usecase.ProfileStats{TotalJobs: 4, ActiveJobs: 2, TotalApplications: 9},
	}
}

func TestNewCachingProfileResolver_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"zero values", 0, "", time.Minute, "profile"},
		{"negative ttl", -time.Second, "", time.Minute, "profile"},
		{"custom values", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewCachingProfileResolver(nil, tt.ttl, &mockProfileResolver{}, tt.namespace)
			assert.Equal(t, tt.expectedTTL, r.ttl)
			assert.Equal(t, tt.expectedNamespace, r.namespace)
		})
	}
}

func TestCachingProfileResolver_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockProfileResolver{
		resolveFn: func(context.Context, string) (*usecase.PublicProfile, error) { return sampleProfile(), nil },
	}
	r := NewCachingProfileResolver(nil, time.Minute, inner, "")

	p, err := r.Resolve(context.Background(), "techcorp")
	require.NoError(t, err)
	assert.Equal(t, "TechCorp", p.Name)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, r.Invalidate(context.Background(), "techcorp"))
}

func TestCachingProfileResolver_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached, _ := json.Marshal(sampleProfile())
	mock.ExpectGet("profile:techcorp").SetVal(string(cached))

	inner := &mockProfileResolver{}
	r := NewCachingProfileResolver(rdb, time.Minute, inner, "profile")

	p, err := r.Resolve(context.Background(), "TechCorp")
	require.NoError(t, err)
	assert.Equal(t, sampleProfile(), p)
	assert.Zero(t, inner.calls, "inner resolver should not be called on cache hit")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingProfileResolver_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected, _ := json.Marshal(sampleProfile())
	mock.ExpectGet("profile:techcorp").RedisNil()
	mock.ExpectSet("profile:techcorp", expected, time.Minute).SetVal("OK")

	inner := &mockProfileResolver{
		resolveFn: func(context.Context, string) (*usecase.PublicProfile, error) { return sampleProfile(), nil },
	}
	r := NewCachingProfileResolver(rdb, time.Minute, inner, "profile")

	p, err := r.Resolve(context.Background(), "techcorp")
	require.NoError(t, err)
	assert.Equal(t, "techcorp", p.Slug)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingProfileResolver_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("profile:pending").RedisNil()

	inner := &mockProfileResolver{
		resolveFn: func(context.Context, string) (*usecase.PublicProfile, error) {
			return nil, usecase.ErrCompanyNotApproved
		},
	}
	r := NewCachingProfileResolver(rdb, time.Minute, inner, "profile")

	_, err := r.Resolve(context.Background(), "pending")
	assert.ErrorIs(t, err, usecase.ErrCompanyNotApproved)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SET expected after an error")
}

func TestCachingProfileResolver_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected, _ := json.Marshal(sampleProfile())
	mock.ExpectGet("profile:techcorp").SetVal("invalid json")
	mock.ExpectDel("profile:techcorp").SetVal(1)
	mock.ExpectSet("profile:techcorp", expected, time.Minute).SetVal("OK")

	inner := &mockProfileResolver{
		resolveFn: func(context.Context, string) (*usecase.PublicProfile, error) { return sampleProfile(), nil },
	}
	r := NewCachingProfileResolver(rdb, time.Minute, inner, "profile")

	_, err := r.Resolve(context.Background(), "techcorp")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingProfileResolver_Invalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("profile:old-name", "profile:new-name").SetVal(1)

	r := NewCachingProfileResolver(rdb, time.Minute, &mockProfileResolver{}, "profile")
	require.NoError(t, r.Invalidate(context.Background(), "old-name", "", "New-Name"))
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NoError(t, r.Invalidate(context.Background()))
}

func TestCachingProfileResolver_InvalidateError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("profile:acme").SetErr(errors.New("connection refused"))

	r := NewCachingProfileResolver(rdb, time.Minute, &mockProfileResolver{}, "profile")
	assert.Error(t, r.Invalidate(context.Background(), "acme"))
}

func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"acme", "acme"},
		{"a b", "a_b"},
		{"key:value", "key_value"},
		{"", ""},
		{"::", "__"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, safe(tt.input))
		})
	}
}
