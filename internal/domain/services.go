package domain

import "context"

type NetworkService interface {
	ListVLANs(ctx context.Context) ([]VLAN, error)
	CreateVLAN(ctx context.Context, input CreateVLANInput) (VLAN, error)
	GetVLAN(ctx context.Context, id int64) (VLAN, error)
	DeleteVLAN(ctx context.Context, id int64) error
	ListIPs(ctx context.Context, vlanID int64, family Family) ([]IPAddress, error)
	CreateIP(ctx context.Context, vlanID int64, input CreateIPInput) (IPAddress, error)
	DeleteIP(ctx context.Context, vlanID int64, id IPAddressID) error
	ListInterfaces(ctx context.Context, vlanID int64) ([]VLANInterface, error)
	CreateInterface(ctx context.Context, vlanID int64, input CreateInterfaceInput) (VLANInterface, error)
	DeleteInterface(ctx context.Context, vlanID int64, id InterfaceID) error
}

type AllocationService interface {
	Allocate(ctx context.Context, vlanID int64, network string, opts AllocationOptions) (AllocationResult, error)
	PreviewDeletable(ctx context.Context, vlanID int64, network string) ([]IPAddress, error)
	ConfirmDelete(ctx context.Context, vlanID int64, network string) (int64, error)
}
