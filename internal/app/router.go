package app

import (
	"log/slog"
	"net/http"

	"github.com/tcf245/dabia/internal/config"
	"github.com/tcf245/dabia/internal/metrics"
	"github.com/tcf245/dabia/internal/transport/middleware"
	"github.com/tcf245/dabia/internal/transport/rest"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health  *rest.HealthHandler
	Session *rest.SessionHandler
}

// RouterDeps holds everything NewRouter needs. RateLimiter may be nil.
type RouterDeps struct {
	Config      *config.Config
	Logger      *slog.Logger
	Handlers    Handlers
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
}

// NewRouter registers all routes and wraps the mux in the middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", rest.Root)
	mux.HandleFunc("GET /api/v1/health-check", deps.Handlers.Health.HealthCheck)
	mux.HandleFunc("POST /api/v1/session/next-card", deps.Handlers.Session.NextCard)

	mux.HandleFunc("GET /live", deps.Handlers.Health.Live)
	mux.HandleFunc("GET /ready", deps.Handlers.Health.Ready)
	mux.HandleFunc("GET /health", deps.Handlers.Health.Health)
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	// Layers below Metrics must pass the request through unchanged so the
	// pattern set by the mux is visible to it.
	mws := []middleware.Middleware{
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.DefaultUser(deps.Config.Session.DefaultUser),
		middleware.Logger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(deps.Config.CORS),
	}
	if deps.RateLimiter != nil {
		rl := deps.Config.RateLimit
		mws = append(mws, deps.RateLimiter.Limit(rl.RequestsPerMinute, rl.Burst))
	}

	return middleware.Chain(mws...)(mux)
}
