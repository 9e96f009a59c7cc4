package http

import (
	"net/http"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
)

// @Summary List addresses of a VLAN
// @Tags addresses
// @Produce json
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Param family query int false "Address family, 4 or 6" default(4)
// @Success 200 {array} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/addresses [get]
func (a *API) handleListIPsByVLANID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}

	family, err := parseFamilyQuery(r.URL.Query().Get("family"))
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	ips, err := a.Network.ListIPs(r.Context(), id, family)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, ipsToResponse(ips))
}

// @Summary Add a single address to a VLAN
// @Tags addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Param payload body CreateIPRequest true "Address to add"
// @Success 201 {object} IPResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/addresses [post]
func (a *API) handleCreateIPByVLANID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}

	req, err := decode[CreateIPRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.badRequest(w, r, "unmarshaling ip from request", err)
		return
	}

	ip, err := a.Network.CreateIP(r.Context(), id, domain.CreateIPInput{IP: req.IP})
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusCreated, ipToResponse(ip))
}

// @Summary Delete an address
// @Description Refused with 409 while the address is bound to a VLAN interface.
// @Tags addresses
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Param uuid path string true "Address UUID"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/addresses/{uuid} [delete]
func (a *API) handleDeleteIPByUUID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}
	ipID, err := parsePathUUID(r, "uuid")
	if err != nil {
		a.badRequest(w, r, "invalid uuid", err)
		return
	}

	if err := a.Network.DeleteIP(r.Context(), id, domain.IPAddressID(ipID)); err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
