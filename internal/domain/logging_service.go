package domain

import (
	"context"
	"errors"
	"log/slog"
)

type loggingNetworkService struct {
	logger *slog.Logger
	next   NetworkService
}

func NewLoggingNetworkService(logger *slog.Logger, next NetworkService) NetworkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingNetworkService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingNetworkService) ListVLANs(ctx context.Context) ([]VLAN, error) {
	vlans, err := s.next.ListVLANs(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list vlans failed", "err", err.Error())
	}
	return vlans, err
}

func (s *loggingNetworkService) CreateVLAN(ctx context.Context, input CreateVLANInput) (VLAN, error) {
	vlan, err := s.next.CreateVLAN(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create vlan failed", "name", input.Name, "number", input.Number, "err", err.Error())
		return VLAN{}, err
	}

	s.logger.InfoContext(ctx, "vlan created", "id", vlan.ID, "name", vlan.Name, "number", vlan.Number)
	return vlan, nil
}

func (s *loggingNetworkService) GetVLAN(ctx context.Context, id int64) (VLAN, error) {
	vlan, err := s.next.GetVLAN(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get vlan failed", "id", id, "err", err.Error())
	}
	return vlan, err
}

func (s *loggingNetworkService) DeleteVLAN(ctx context.Context, id int64) error {
	err := s.next.DeleteVLAN(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete vlan failed", "id", id, "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "vlan deleted", "id", id)
	return nil
}

func (s *loggingNetworkService) ListIPs(ctx context.Context, vlanID int64, family Family) ([]IPAddress, error) {
	ips, err := s.next.ListIPs(ctx, vlanID, family)
	if err != nil {
		s.logger.ErrorContext(ctx, "list ips failed", "vlan_id", vlanID, "family", family.String(), "err", err.Error())
	}
	return ips, err
}

func (s *loggingNetworkService) CreateIP(ctx context.Context, vlanID int64, input CreateIPInput) (IPAddress, error) {
	ip, err := s.next.CreateIP(ctx, vlanID, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create ip failed", "vlan_id", vlanID, "ip", input.IP, "err", err.Error())
		return IPAddress{}, err
	}

	s.logger.DebugContext(ctx, "ip created", "vlan_id", vlanID, "ip", ip.IP.String(), "id", string(ip.ID))
	return ip, nil
}

func (s *loggingNetworkService) DeleteIP(ctx context.Context, vlanID int64, id IPAddressID) error {
	err := s.next.DeleteIP(ctx, vlanID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete ip failed", "vlan_id", vlanID, "ip_id", string(id), "err", err.Error())
		return err
	}

	s.logger.DebugContext(ctx, "ip deleted", "vlan_id", vlanID, "ip_id", string(id))
	return nil
}

func (s *loggingNetworkService) ListInterfaces(ctx context.Context, vlanID int64) ([]VLANInterface, error) {
	vlis, err := s.next.ListInterfaces(ctx, vlanID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list vlan interfaces failed", "vlan_id", vlanID, "err", err.Error())
	}
	return vlis, err
}

func (s *loggingNetworkService) CreateInterface(ctx context.Context, vlanID int64, input CreateInterfaceInput) (VLANInterface, error) {
	vli, err := s.next.CreateInterface(ctx, vlanID, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create vlan interface failed", "vlan_id", vlanID, "hostname", input.Hostname, "err", err.Error())
		return VLANInterface{}, err
	}

	s.logger.InfoContext(ctx, "vlan interface created", "vlan_id", vlanID, "id", string(vli.ID), "hostname", vli.Hostname)
	return vli, nil
}

func (s *loggingNetworkService) DeleteInterface(ctx context.Context, vlanID int64, id InterfaceID) error {
	err := s.next.DeleteInterface(ctx, vlanID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete vlan interface failed", "vlan_id", vlanID, "id", string(id), "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "vlan interface deleted", "vlan_id", vlanID, "id", string(id))
	return nil
}

type loggingAllocationService struct {
	logger *slog.Logger
	next   AllocationService
}

func NewLoggingAllocationService(logger *slog.Logger, next AllocationService) AllocationService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingAllocationService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingAllocationService) Allocate(ctx context.Context, vlanID int64, network string, opts AllocationOptions) (AllocationResult, error) {
	result, err := s.next.Allocate(ctx, vlanID, network, opts)
	attrs := []any{
		"vlan_id", vlanID,
		"network", network,
		"skip", opts.SkipExisting,
		"decimal", opts.DecimalOnly,
		"overflow", opts.AllowOverflow,
		"state", result.State.String(),
		"new", len(result.New),
		"preexisting", len(result.Preexisting),
	}

	switch {
	case err == nil:
		s.logger.InfoContext(ctx, "addresses allocated", append(attrs, "inserted", result.Inserted)...)
	case errors.Is(err, ErrNothingToAllocate):
		s.logger.WarnContext(ctx, "no addresses allocated", attrs...)
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNotFound):
		s.logger.InfoContext(ctx, "allocation rejected", append(attrs, "err", err.Error())...)
	default:
		s.logger.ErrorContext(ctx, "allocation failed", append(attrs, "err", err.Error())...)
	}
	return result, err
}

func (s *loggingAllocationService) PreviewDeletable(ctx context.Context, vlanID int64, network string) ([]IPAddress, error) {
	ips, err := s.next.PreviewDeletable(ctx, vlanID, network)
	if err != nil {
		s.logger.ErrorContext(ctx, "preview deletable addresses failed", "vlan_id", vlanID, "network", network, "err", err.Error())
	}
	return ips, err
}

func (s *loggingAllocationService) ConfirmDelete(ctx context.Context, vlanID int64, network string) (int64, error) {
	deleted, err := s.next.ConfirmDelete(ctx, vlanID, network)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete addresses by network failed", "vlan_id", vlanID, "network", network, "err", err.Error())
		return 0, err
	}

	s.logger.InfoContext(ctx, "addresses deleted by network", "vlan_id", vlanID, "network", network, "deleted", deleted)
	return deleted, nil
}
