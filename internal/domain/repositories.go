package domain

import (
	"context"
	"net/netip"
)

type VLANRepository interface {
	List(ctx context.Context) ([]VLAN, error)
	FindByID(ctx context.Context, id int64) (VLAN, error)
	Create(ctx context.Context, input CreateVLANInput) (VLAN, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type IPRepository interface {
	ListByVLAN(ctx context.Context, vlanID int64, family Family) ([]IPAddress, error)
	FindByIDAndVLAN(ctx context.Context, id IPAddressID, vlanID int64) (IPAddress, error)
	Create(ctx context.Context, vlanID int64, ip netip.Addr) (IPAddress, error)
	DeleteByIDAndVLAN(ctx context.Context, id IPAddressID, vlanID int64) (bool, error)
	ForFamily(family Family) AddressStore
}

// AddressStore is the batch persistence used by the allocator. One store
// serves a single address family.
type AddressStore interface {
	Family() Family
	// ExistingAddresses returns the candidates already stored for the VLAN.
	ExistingAddresses(ctx context.Context, vlanID int64, candidates []netip.Addr) ([]netip.Addr, error)
	// InsertAddresses stores all addresses or none.
	InsertAddresses(ctx context.Context, vlanID int64, addrs []netip.Addr) (int64, error)
	// DeletableRecords returns stored candidates that are not bound to a
	// VLAN interface.
	DeletableRecords(ctx context.Context, vlanID int64, candidates []netip.Addr) ([]IPAddress, error)
	// DeleteRecords deletes the given ids, skipping any that became bound.
	DeleteRecords(ctx context.Context, ids []IPAddressID) (int64, error)
}

type InterfaceRepository interface {
	ListByVLAN(ctx context.Context, vlanID int64) ([]VLANInterface, error)
	Create(ctx context.Context, vlanID int64, input CreateInterfaceInput) (VLANInterface, error)
	DeleteByIDAndVLAN(ctx context.Context, id InterfaceID, vlanID int64) (bool, error)
}
