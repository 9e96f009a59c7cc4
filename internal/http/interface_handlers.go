package http

import (
	"fmt"
	"net/http"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
)

// @Summary List VLAN interfaces
// @Tags interfaces
// @Produce json
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Success 200 {array} InterfaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/interfaces [get]
func (a *API) handleListInterfaces(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}

	vlis, err := a.Network.ListInterfaces(r.Context(), id)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, interfacesToResponse(vlis))
}

// @Summary Bind addresses to a VLAN interface
// @Tags interfaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Param payload body CreateInterfaceRequest true "Hostname and address ids"
// @Success 201 {object} InterfaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/interfaces [post]
func (a *API) handleCreateInterface(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}

	req, err := decode[CreateInterfaceRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.badRequest(w, r, "unmarshaling vlan interface from request", err)
		return
	}
	if err := validateHostname(req.Hostname); err != nil {
		a.writeServiceError(w, r, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
		return
	}

	vli, err := a.Network.CreateInterface(r.Context(), id, req.toInput())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusCreated, interfaceToResponse(vli))
}

// @Summary Delete a VLAN interface
// @Description Releases the bound addresses; the address records stay.
// @Tags interfaces
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Param uuid path string true "VLAN interface UUID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/interfaces/{uuid} [delete]
func (a *API) handleDeleteInterface(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}
	vliID, err := parsePathUUID(r, "uuid")
	if err != nil {
		a.badRequest(w, r, "invalid uuid", err)
		return
	}

	if err := a.Network.DeleteInterface(r.Context(), id, domain.InterfaceID(vliID)); err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
