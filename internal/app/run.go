package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Flarenzy/ixp-ipam/internal/auth"
	appdb "github.com/Flarenzy/ixp-ipam/internal/db"
	sqlcdb "github.com/Flarenzy/ixp-ipam/internal/db/sqlc"
	"github.com/Flarenzy/ixp-ipam/internal/domain"
	apihttp "github.com/Flarenzy/ixp-ipam/internal/http"
)

const shutdownTimeout = 5 * time.Second

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.Issuer,
		JWKSURL:  cfg.JWKSURL,
		Audience: cfg.Audience,
	})
}

func initSentry(cfg Config, logger *slog.Logger) bool {
	if cfg.SentryDSN == "" {
		return false
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.SentryEnvironment,
		TracesSampleRate: 1.0,
		AttachStacktrace: true,
	})
	if err != nil {
		logger.Warn("sentry initialization failed", "err", err.Error())
		return false
	}
	logger.Info("sentry initialized", "environment", cfg.SentryEnvironment)
	return true
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve wires the database, services and HTTP layer and serves on listener
// until ctx is cancelled.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init authenticator: %w", err)
	}
	if authenticator == nil {
		logger.Warn("authentication disabled")
	}

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		applied, err := appdb.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", "count", len(applied), "versions", applied)
	}

	if initSentry(cfg, logger) {
		defer sentry.Flush(2 * time.Second)
	}

	queries := sqlcdb.New(pool)
	vlans := appdb.NewVLANRepository(queries)
	ips := appdb.NewIPRepository(queries)
	interfaces := appdb.NewInterfaceRepository(queries)

	network := domain.NewLoggingNetworkService(logger, domain.NewNetworkService(vlans, ips, interfaces))
	allocations := domain.NewLoggingAllocationService(logger, domain.NewAllocationService(vlans, ips, cfg.MaxAllocation))

	api := apihttp.NewAPI(logger, pool, network, allocations, authenticator,
		apihttp.WithRateLimit(apihttp.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}),
	)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving http", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server", "timeout", shutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
