package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcf245/dabia/internal/config"
	"github.com/tcf245/dabia/internal/domain"
	"github.com/tcf245/dabia/internal/metrics"
	"github.com/tcf245/dabia/internal/service/session"
	"github.com/tcf245/dabia/internal/transport/middleware"
	"github.com/tcf245/dabia/internal/transport/rest"
	"github.com/tcf245/dabia/pkg/ctxutil"
)

type pingStub struct{ err error }

func (p pingStub) Ping(context.Context) error { return p.err }

type sessionStub struct {
	gotUser uuid.UUID
	gotOK   bool
}

func (s *sessionStub) NextCard(ctx context.Context, _ *session.PreviousAnswerInput) (*domain.NextCard, error) {
	s.gotUser, s.gotOK = ctxutil.UserIDFromCtx(ctx)
	return &domain.NextCard{Progress: domain.SessionProgress{GoalToday: 50}}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: "http://localhost:5173",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         600,
		},
		Session:   config.SessionConfig{DefaultUser: uuid.Nil, Location: time.UTC, DailyGoal: 50},
		RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2, IdleTTL: time.Minute},
	}
}

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter, pingErr error) (http.Handler, *sessionStub) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := &sessionStub{}
	h := NewRouter(RouterDeps{
		Config: testConfig(),
		Logger: logger,
		Handlers: Handlers{
			Health:  rest.NewHealthHandler(pingStub{err: pingErr}, "test"),
			Session: rest.NewSessionHandler(svc, logger),
		},
		Metrics:     metrics.New(),
		RateLimiter: limiter,
	})
	return h, svc
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	router, svc := newTestRouter(t, nil, nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/v1/health-check", http.StatusOK},
		{http.MethodPost, "/api/v1/session/next-card", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/session/next-card", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
	}

	assert.True(t, svc.gotOK, "default user must be attached")
	assert.Equal(t, uuid.Nil, svc.gotUser)
}

func TestRouter_HealthCheckDown(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil, errors.New("refused"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health-check", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"down"}`, rec.Body.String())
}

func TestRouter_RequestIDAndCORS(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/session/next-card", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_RateLimited(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)
	router, _ := newTestRouter(t, limiter, nil)

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_MetricsExposeRoutes(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/session/next-card", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body, "card")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `route="POST /api/v1/session/next-card"`),
		"expected route label in exposition")
}
