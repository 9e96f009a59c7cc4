package http

import (
	"time"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"vlan not found"`
}

// ConflictResponse is returned when an allocation hits addresses that are
// already stored on the VLAN.
type ConflictResponse struct {
	Error       string   `json:"error" example:"1 address(es) already exist: 192.0.2.2"`
	Preexisting []string `json:"preexisting" example:"192.0.2.2"`
}

// VLANResponse is a peering LAN as returned to clients.
type VLANResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"peering-lan"`
	Number    int32     `json:"number" example:"100"`
	Private   bool      `json:"private" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateVLANRequest is the payload accepted when creating a VLAN.
type CreateVLANRequest struct {
	Name    string `json:"name" example:"peering-lan"`
	Number  int32  `json:"number" example:"100"`
	Private bool   `json:"private" example:"false"`
}

// IPResponse is an address record. Hostname and interface_id are set when
// the address is bound to a VLAN interface.
type IPResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	IP          string    `json:"ip" example:"192.0.2.10"`
	Family      int       `json:"family" example:"4"`
	VLANID      int64     `json:"vlan_id" example:"1"`
	InterfaceID string    `json:"interface_id,omitempty" example:"1d7a3f9e-2b55-4c1e-9a77-0f3f1b2c4d5e"`
	Hostname    string    `json:"hostname,omitempty" example:"as64500.example.net"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateIPRequest is the payload accepted when adding a single address.
type CreateIPRequest struct {
	IP string `json:"ip" example:"192.0.2.10"`
}

// AllocationRequest asks for every address of a network to be stored on a
// VLAN.
type AllocationRequest struct {
	Network       string `json:"network" example:"192.0.2.0/30"`
	SkipExisting  bool   `json:"skip_existing" example:"false"`
	DecimalOnly   bool   `json:"decimal_only" example:"false"`
	AllowOverflow bool   `json:"allow_overflow" example:"false"`
}

// AllocationResponse reports the outcome of a bulk allocation.
type AllocationResponse struct {
	Network     string   `json:"network" example:"192.0.2.0/30"`
	Family      int      `json:"family" example:"4"`
	New         []string `json:"new"`
	Preexisting []string `json:"preexisting"`
	Inserted    int64    `json:"inserted" example:"4"`
	Message     string   `json:"message,omitempty" example:"nothing to allocate"`
}

// DeletableResponse previews what a delete by network would remove.
type DeletableResponse struct {
	Network   string       `json:"network" example:"192.0.2.0/30"`
	Addresses []IPResponse `json:"addresses"`
}

// DeleteByNetworkResponse reports how many records were removed.
type DeleteByNetworkResponse struct {
	Deleted int64 `json:"deleted" example:"3"`
}

// InterfaceResponse binds up to one address per family to a customer port.
type InterfaceResponse struct {
	ID            string    `json:"id" example:"1d7a3f9e-2b55-4c1e-9a77-0f3f1b2c4d5e"`
	VLANID        int64     `json:"vlan_id" example:"1"`
	Hostname      string    `json:"hostname" example:"as64500.example.net"`
	IPv4AddressID string    `json:"ipv4_address_id,omitempty"`
	IPv4          string    `json:"ipv4,omitempty" example:"192.0.2.10"`
	IPv6AddressID string    `json:"ipv6_address_id,omitempty"`
	IPv6          string    `json:"ipv6,omitempty" example:"2001:db8::10"`
	CreatedAt     time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateInterfaceRequest is the payload accepted when binding addresses.
type CreateInterfaceRequest struct {
	Hostname      string `json:"hostname" example:"as64500.example.net"`
	IPv4AddressID string `json:"ipv4_address_id,omitempty"`
	IPv6AddressID string `json:"ipv6_address_id,omitempty"`
}

func vlanToResponse(v domain.VLAN) VLANResponse {
	return VLANResponse{
		ID:        v.ID,
		Name:      v.Name,
		Number:    v.Number,
		Private:   v.Private,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func vlansToResponse(vlans []domain.VLAN) []VLANResponse {
	out := make([]VLANResponse, 0, len(vlans))
	for _, v := range vlans {
		out = append(out, vlanToResponse(v))
	}
	return out
}

func ipToResponse(ip domain.IPAddress) IPResponse {
	return IPResponse{
		ID:          string(ip.ID),
		IP:          ip.IP.String(),
		Family:      ip.Family.Code(),
		VLANID:      ip.VLANID,
		InterfaceID: string(ip.InterfaceID),
		Hostname:    ip.Hostname,
		CreatedAt:   ip.CreatedAt,
		UpdatedAt:   ip.UpdatedAt,
	}
}

func ipsToResponse(ips []domain.IPAddress) []IPResponse {
	out := make([]IPResponse, 0, len(ips))
	for _, ip := range ips {
		out = append(out, ipToResponse(ip))
	}
	return out
}

func allocationToResponse(result domain.AllocationResult) AllocationResponse {
	resp := AllocationResponse{
		Network:     result.Network.String(),
		Family:      result.Network.Family().Code(),
		New:         netseq.Strings(result.New),
		Preexisting: netseq.Strings(result.Preexisting),
		Inserted:    result.Inserted,
	}
	if resp.New == nil {
		resp.New = []string{}
	}
	if resp.Preexisting == nil {
		resp.Preexisting = []string{}
	}
	return resp
}

func interfaceToResponse(vli domain.VLANInterface) InterfaceResponse {
	resp := InterfaceResponse{
		ID:            string(vli.ID),
		VLANID:        vli.VLANID,
		Hostname:      vli.Hostname,
		IPv4AddressID: string(vli.IPv4AddressID),
		IPv6AddressID: string(vli.IPv6AddressID),
		CreatedAt:     vli.CreatedAt,
		UpdatedAt:     vli.UpdatedAt,
	}
	if vli.IPv4.IsValid() {
		resp.IPv4 = vli.IPv4.String()
	}
	if vli.IPv6.IsValid() {
		resp.IPv6 = vli.IPv6.String()
	}
	return resp
}

func interfacesToResponse(vlis []domain.VLANInterface) []InterfaceResponse {
	out := make([]InterfaceResponse, 0, len(vlis))
	for _, vli := range vlis {
		out = append(out, interfaceToResponse(vli))
	}
	return out
}

func (r CreateVLANRequest) toInput() domain.CreateVLANInput {
	return domain.CreateVLANInput{
		Name:    r.Name,
		Number:  r.Number,
		Private: r.Private,
	}
}

func (r AllocationRequest) toOptions() domain.AllocationOptions {
	return domain.AllocationOptions{
		SkipExisting:  r.SkipExisting,
		DecimalOnly:   r.DecimalOnly,
		AllowOverflow: r.AllowOverflow,
	}
}

func (r CreateInterfaceRequest) toInput() domain.CreateInterfaceInput {
	return domain.CreateInterfaceInput{
		Hostname:      r.Hostname,
		IPv4AddressID: domain.IPAddressID(r.IPv4AddressID),
		IPv6AddressID: domain.IPAddressID(r.IPv6AddressID),
	}
}
