package http

import (
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"

	"github.com/Flarenzy/ixp-ipam/internal/auth"
)

func isPublicPath(path string) bool {
	return path == "/healthz" || path == "/readyz" || strings.HasPrefix(path, "/swagger/")
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.Auth == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "missing token"})
			return
		}

		principal, err := a.Auth.Authenticate(ctx, strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			a.Logger.DebugContext(ctx, "rejected bearer token", "path", r.URL.Path, "err", err.Error())
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
			return
		}

		ctx = auth.WithPrincipal(ctx, principal)
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.Scope().SetUser(sentry.User{ID: principal.Subject, Username: principal.Username})
		}
		a.Logger.DebugContext(ctx, "request authenticated",
			"actor", auth.ActorFromContext(ctx),
			"request_id", RequestIDFromContext(ctx),
		)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
