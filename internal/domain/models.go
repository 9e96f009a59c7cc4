package domain

import (
	"net/netip"
	"time"

	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

type (
	IPAddressID string
	InterfaceID string
)

// Family is re-exported so callers outside netseq only need domain.
type Family = netseq.Family

const (
	IPv4 = netseq.IPv4
	IPv6 = netseq.IPv6
)

type VLAN struct {
	ID        int64
	Name      string
	Number    int32
	Private   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IPAddress is an address record reserved on a VLAN. Hostname is set from
// the VLAN interface the address is bound to, if any.
type IPAddress struct {
	ID          IPAddressID
	IP          netip.Addr
	Family      Family
	VLANID      int64
	InterfaceID InterfaceID
	Hostname    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a IPAddress) Bound() bool {
	return a.InterfaceID != ""
}

// VLANInterface binds at most one IPv4 and one IPv6 address of a VLAN to a
// customer port.
type VLANInterface struct {
	ID            InterfaceID
	VLANID        int64
	Hostname      string
	IPv4AddressID IPAddressID
	IPv4          netip.Addr
	IPv6AddressID IPAddressID
	IPv6          netip.Addr
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
