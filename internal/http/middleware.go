package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader    = "X-Request-ID"
	maxRequestIDLength = 64
	visitorTTL         = 5 * time.Minute
	visitorSweepEvery  = 30 * time.Second
)

type middleware func(http.Handler) http.Handler

// applyMiddlewares wraps h so that the first middleware runs outermost.
func applyMiddlewares(h http.Handler, middlewares ...middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func requestIDMiddleware() middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := cleanRequestID(r.Header.Get(requestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
		})
	}
}

func cleanRequestID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return ""
		}
	}
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs one line per request and runs it inside a Sentry
// transaction. Panics are recovered, reported and answered with a 500.
func loggingMiddleware(logger *slog.Logger) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			hub := sentry.GetHubFromContext(ctx)
			if hub == nil {
				hub = sentry.CurrentHub().Clone()
				ctx = sentry.SetHubOnContext(ctx, hub)
			}
			hub.Scope().SetRequest(r)

			tx := sentry.StartTransaction(ctx,
				fmt.Sprintf("%s %s", r.Method, r.URL.Path),
				sentry.WithOpName("http.server"),
				sentry.ContinueFromRequest(r),
				sentry.WithTransactionSource(sentry.SourceURL),
			)
			defer tx.Finish()
			r = r.WithContext(tx.Context())

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			attrs := func() []any {
				return []any{
					"method", r.Method,
					"path", r.URL.Path,
					"status", rec.status,
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", RequestIDFromContext(r.Context()),
				}
			}

			defer func() {
				if p := recover(); p != nil {
					tx.Status = sentry.SpanStatusInternalError
					hub.RecoverWithContext(r.Context(), p)
					rec.status = http.StatusInternalServerError
					logger.ErrorContext(r.Context(), "panic recovered", append(attrs(), "panic", fmt.Sprint(p))...)
					_ = encode(rec, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
				}
			}()

			next.ServeHTTP(rec, r)

			tx.Status = sentry.HTTPtoSpanStatus(rec.status)
			switch {
			case rec.status >= 500:
				logger.ErrorContext(r.Context(), "request completed", attrs()...)
			case rec.status >= 400:
				logger.WarnContext(r.Context(), "request completed", attrs()...)
			default:
				logger.InfoContext(r.Context(), "request completed", attrs()...)
			}
		})
	}
}

// RateLimitConfig enables a per-client token bucket when both fields are
// positive.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0 && c.Burst > 0
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func rateLimitMiddleware(cfg RateLimitConfig, logger *slog.Logger) middleware {
	if !cfg.Enabled() {
		return func(next http.Handler) http.Handler { return next }
	}

	var (
		mu        sync.Mutex
		visitors  = make(map[string]*visitor)
		lastSweep time.Time
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			key := clientKey(r)

			mu.Lock()
			v, ok := visitors[key]
			if !ok {
				v = &visitor{limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)}
				visitors[key] = v
			}
			v.lastSeen = now
			if now.Sub(lastSweep) > visitorSweepEvery {
				for k, other := range visitors {
					if now.Sub(other.lastSeen) > visitorTTL {
						delete(visitors, k)
					}
				}
				lastSweep = now
			}
			mu.Unlock()

			if !v.limiter.AllowN(now, 1) {
				logger.WarnContext(r.Context(), "rate limit exceeded",
					"client", key,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
				)
				w.Header().Set("Retry-After", "1")
				_ = encode(w, r, http.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
