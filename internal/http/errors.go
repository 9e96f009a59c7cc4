package http

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

// writeServiceError maps domain errors to a status and an error envelope.
// Anything unrecognised is a 500 and is reported to Sentry.
func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		a.respond(w, r, http.StatusConflict, ConflictResponse{
			Error:       conflict.Error(),
			Preexisting: netseq.Strings(conflict.Addresses),
		})
	case errors.Is(err, domain.ErrVLANNotFound):
		a.respond(w, r, http.StatusNotFound, ErrorResponse{Error: "vlan not found"})
	case errors.Is(err, domain.ErrAddressNotFound):
		a.respond(w, r, http.StatusNotFound, ErrorResponse{Error: "ip address not found"})
	case errors.Is(err, domain.ErrInterfaceNotFound):
		a.respond(w, r, http.StatusNotFound, ErrorResponse{Error: "vlan interface not found"})
	case errors.Is(err, domain.ErrNotFound):
		a.respond(w, r, http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrAddressInUse):
		a.respond(w, r, http.StatusConflict, ErrorResponse{Error: domain.ErrAddressInUse.Error()})
	case errors.Is(err, domain.ErrConflict):
		a.respond(w, r, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidNetworkFormat),
		errors.Is(err, domain.ErrNetworkTooLarge):
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	default:
		a.Logger.ErrorContext(ctx, "unhandled service error", "path", r.URL.Path, "err", err.Error())
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		}
		a.respond(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func (a *API) badRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	a.Logger.DebugContext(r.Context(), msg, "path", r.URL.Path, "err", err.Error())
	a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
}
