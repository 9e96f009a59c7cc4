package http

import (
	"context"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Flarenzy/ixp-ipam/internal/auth"
	"github.com/Flarenzy/ixp-ipam/internal/domain"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger      *slog.Logger
	Health      HealthChecker
	Network     domain.NetworkService
	Allocations domain.AllocationService
	Auth        auth.Authenticator

	rateLimit RateLimitConfig
}

type Option func(*API)

func WithRateLimit(cfg RateLimitConfig) Option {
	return func(a *API) {
		a.rateLimit = cfg
	}
}

// NewAPI wires the HTTP layer. A nil authenticator leaves every route public.
func NewAPI(
	logger *slog.Logger,
	health HealthChecker,
	network domain.NetworkService,
	allocations domain.AllocationService,
	authenticator auth.Authenticator,
	opts ...Option,
) *API {
	if logger == nil {
		logger = slog.Default()
	}

	a := &API{
		Logger:      logger,
		Health:      health,
		Network:     network,
		Allocations: allocations,
		Auth:        authenticator,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("GET /api/v1/vlans", a.handleListVLANs)
	mux.HandleFunc("POST /api/v1/vlans", a.handleCreateVLAN)
	mux.HandleFunc("GET /api/v1/vlans/{id}", a.handleGetVLANByID)
	mux.HandleFunc("DELETE /api/v1/vlans/{id}", a.handleDeleteVLANByID)

	mux.HandleFunc("GET /api/v1/vlans/{id}/addresses", a.handleListIPsByVLANID)
	mux.HandleFunc("POST /api/v1/vlans/{id}/addresses", a.handleCreateIPByVLANID)
	mux.HandleFunc("DELETE /api/v1/vlans/{id}/addresses/{uuid}", a.handleDeleteIPByUUID)

	mux.HandleFunc("POST /api/v1/vlans/{id}/allocations", a.handleAllocate)
	mux.HandleFunc("GET /api/v1/vlans/{id}/allocations/deletable", a.handlePreviewDeletable)
	mux.HandleFunc("DELETE /api/v1/vlans/{id}/allocations", a.handleDeleteByNetwork)

	mux.HandleFunc("GET /api/v1/vlans/{id}/interfaces", a.handleListInterfaces)
	mux.HandleFunc("POST /api/v1/vlans/{id}/interfaces", a.handleCreateInterface)
	mux.HandleFunc("DELETE /api/v1/vlans/{id}/interfaces/{uuid}", a.handleDeleteInterface)

	return applyMiddlewares(mux,
		requestIDMiddleware(),
		loggingMiddleware(a.Logger),
		rateLimitMiddleware(a.rateLimit, a.Logger),
		a.authMiddleware,
	)
}
