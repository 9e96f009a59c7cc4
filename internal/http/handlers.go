package http

import (
	"net/http"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.Health != nil {
		if err := a.Health.Ping(ctx); err != nil {
			a.Logger.ErrorContext(ctx, "db ping failed", "err", err.Error())
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List VLANs
// @Tags vlans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} VLANResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans [get]
func (a *API) handleListVLANs(w http.ResponseWriter, r *http.Request) {
	vlans, err := a.Network.ListVLANs(r.Context())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, vlansToResponse(vlans))
}

// @Summary Create VLAN
// @Tags vlans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vlan body CreateVLANRequest true "VLAN payload"
// @Success 201 {object} VLANResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans [post]
func (a *API) handleCreateVLAN(w http.ResponseWriter, r *http.Request) {
	req, err := decode[CreateVLANRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.badRequest(w, r, "unmarshaling vlan from request", err)
		return
	}

	vlan, err := a.Network.CreateVLAN(r.Context(), req.toInput())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusCreated, vlanToResponse(vlan))
}

// @Summary Get VLAN by ID
// @Tags vlans
// @Produce json
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Success 200 {object} VLANResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id} [get]
func (a *API) handleGetVLANByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}

	vlan, err := a.Network.GetVLAN(r.Context(), id)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, vlanToResponse(vlan))
}

// @Summary Delete VLAN
// @Description Removes the VLAN together with its addresses and interfaces.
// @Tags vlans
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id} [delete]
func (a *API) handleDeleteVLANByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}

	if err := a.Network.DeleteVLAN(r.Context(), id); err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
