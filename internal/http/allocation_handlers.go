package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
)

// @Summary Allocate every address of a network
// @Description Enumerates the network and stores each address on the VLAN in one batch.
// @Description Without skip_existing any address already on the VLAN aborts the request with 409.
// @Tags allocations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Param payload body AllocationRequest true "Network and options"
// @Success 201 {object} AllocationResponse
// @Success 200 {object} AllocationResponse "Nothing left to allocate"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ConflictResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/allocations [post]
func (a *API) handleAllocate(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}

	req, err := decode[AllocationRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.badRequest(w, r, "unmarshaling allocation from request", err)
		return
	}
	network, err := requireNetwork(req.Network)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	result, err := a.Allocations.Allocate(r.Context(), id, network, req.toOptions())
	switch {
	case err == nil:
		a.respond(w, r, http.StatusCreated, allocationToResponse(result))
	case errors.Is(err, domain.ErrNothingToAllocate):
		resp := allocationToResponse(result)
		resp.Message = fmt.Sprintf("nothing to allocate: %d address(es) already exist", len(result.Preexisting))
		a.respond(w, r, http.StatusOK, resp)
	default:
		a.writeServiceError(w, r, err)
	}
}

// @Summary Preview a delete by network
// @Description Lists the stored addresses of the network that are not bound to a VLAN interface.
// @Tags allocations
// @Produce json
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Param network query string true "Network in CIDR notation"
// @Success 200 {object} DeletableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/allocations/deletable [get]
func (a *API) handlePreviewDeletable(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}
	network, err := requireNetwork(r.URL.Query().Get("network"))
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	ips, err := a.Allocations.PreviewDeletable(r.Context(), id, network)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, DeletableResponse{
		Network:   network,
		Addresses: ipsToResponse(ips),
	})
}

// @Summary Delete by network
// @Description Deletes the stored addresses of the network that are not bound to a VLAN interface.
// @Tags allocations
// @Produce json
// @Security BearerAuth
// @Param id path int true "VLAN ID"
// @Param network query string true "Network in CIDR notation"
// @Success 200 {object} DeleteByNetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/vlans/{id}/allocations [delete]
func (a *API) handleDeleteByNetwork(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.badRequest(w, r, "unable to convert string id to int64", err)
		return
	}
	network, err := requireNetwork(r.URL.Query().Get("network"))
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	deleted, err := a.Allocations.ConfirmDelete(r.Context(), id, network)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, DeleteByNetworkResponse{Deleted: deleted})
}
