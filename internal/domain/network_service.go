package domain

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
)

type networkService struct {
	vlans      VLANRepository
	ips        IPRepository
	interfaces InterfaceRepository
}

func NewNetworkService(vlans VLANRepository, ips IPRepository, interfaces InterfaceRepository) NetworkService {
	return &networkService{
		vlans:      vlans,
		ips:        ips,
		interfaces: interfaces,
	}
}

func (s *networkService) ListVLANs(ctx context.Context) ([]VLAN, error) {
	return s.vlans.List(ctx)
}

func (s *networkService) CreateVLAN(ctx context.Context, input CreateVLANInput) (VLAN, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return VLAN{}, fmt.Errorf("%w: vlan name is required", ErrInvalidInput)
	}
	if input.Number < 1 || input.Number > 4094 {
		return VLAN{}, fmt.Errorf("%w: vlan number must be between 1 and 4094", ErrInvalidInput)
	}
	return s.vlans.Create(ctx, input)
}

func (s *networkService) GetVLAN(ctx context.Context, id int64) (VLAN, error) {
	vlan, err := s.vlans.FindByID(ctx, id)
	if err != nil {
		return VLAN{}, vlanLookupError(err)
	}
	return vlan, nil
}

func (s *networkService) DeleteVLAN(ctx context.Context, id int64) error {
	deleted, err := s.vlans.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVLANNotFound
	}
	return nil
}

func (s *networkService) ListIPs(ctx context.Context, vlanID int64, family Family) ([]IPAddress, error) {
	if !family.Valid() {
		return nil, fmt.Errorf("%w: unknown protocol %d", ErrInvalidInput, family.Code())
	}
	if _, err := s.GetVLAN(ctx, vlanID); err != nil {
		return nil, err
	}
	return s.ips.ListByVLAN(ctx, vlanID, family)
}

func (s *networkService) CreateIP(ctx context.Context, vlanID int64, input CreateIPInput) (IPAddress, error) {
	if _, err := s.GetVLAN(ctx, vlanID); err != nil {
		return IPAddress{}, err
	}

	ip, err := netip.ParseAddr(strings.TrimSpace(input.IP))
	if err != nil || ip.Zone() != "" {
		return IPAddress{}, fmt.Errorf("%w: invalid ip", ErrInvalidInput)
	}

	return s.ips.Create(ctx, vlanID, ip)
}

func (s *networkService) DeleteIP(ctx context.Context, vlanID int64, id IPAddressID) error {
	ip, err := s.ips.FindByIDAndVLAN(ctx, id, vlanID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrAddressNotFound
		}
		return err
	}
	if ip.Bound() {
		return ErrAddressInUse
	}

	deleted, err := s.ips.DeleteByIDAndVLAN(ctx, id, vlanID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAddressNotFound
	}
	return nil
}

func (s *networkService) ListInterfaces(ctx context.Context, vlanID int64) ([]VLANInterface, error) {
	if _, err := s.GetVLAN(ctx, vlanID); err != nil {
		return nil, err
	}
	return s.interfaces.ListByVLAN(ctx, vlanID)
}

func (s *networkService) CreateInterface(ctx context.Context, vlanID int64, input CreateInterfaceInput) (VLANInterface, error) {
	if _, err := s.GetVLAN(ctx, vlanID); err != nil {
		return VLANInterface{}, err
	}
	if input.IPv4AddressID == "" && input.IPv6AddressID == "" {
		return VLANInterface{}, fmt.Errorf("%w: at least one address is required", ErrInvalidInput)
	}

	if err := s.checkBindable(ctx, vlanID, input.IPv4AddressID, IPv4); err != nil {
		return VLANInterface{}, err
	}
	if err := s.checkBindable(ctx, vlanID, input.IPv6AddressID, IPv6); err != nil {
		return VLANInterface{}, err
	}

	return s.interfaces.Create(ctx, vlanID, input)
}

func (s *networkService) DeleteInterface(ctx context.Context, vlanID int64, id InterfaceID) error {
	deleted, err := s.interfaces.DeleteByIDAndVLAN(ctx, id, vlanID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInterfaceNotFound
	}
	return nil
}

func (s *networkService) checkBindable(ctx context.Context, vlanID int64, id IPAddressID, family Family) error {
	if id == "" {
		return nil
	}

	ip, err := s.ips.FindByIDAndVLAN(ctx, id, vlanID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s address %s is not on this vlan", ErrInvalidInput, family, id)
		}
		return err
	}
	if ip.Family != family {
		return fmt.Errorf("%w: address %s is not %s", ErrInvalidInput, ip.IP, family)
	}
	if ip.Bound() {
		return ErrAddressInUse
	}
	return nil
}

func vlanLookupError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrVLANNotFound
	}
	return err
}
