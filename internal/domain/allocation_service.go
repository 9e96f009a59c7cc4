package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

// DefaultMaxAllocation bounds how many candidates a single network may
// produce, a /16 in IPv4 or a /112 in IPv6.
const DefaultMaxAllocation = 1 << 16

type allocationService struct {
	vlans        VLANRepository
	ips          IPRepository
	maxAddresses int
}

func NewAllocationService(vlans VLANRepository, ips IPRepository, maxAddresses int) AllocationService {
	if maxAddresses <= 0 {
		maxAddresses = DefaultMaxAllocation
	}
	return &allocationService{
		vlans:        vlans,
		ips:          ips,
		maxAddresses: maxAddresses,
	}
}

// Allocate reserves every candidate address of network on the VLAN. Nothing
// is written when a candidate already exists and SkipExisting is off, or
// when no new candidate is left.
func (s *allocationService) Allocate(ctx context.Context, vlanID int64, network string, opts AllocationOptions) (AllocationResult, error) {
	parsed, err := s.parse(ctx, vlanID, network)
	if err != nil {
		return AllocationResult{}, err
	}
	result := AllocationResult{Network: parsed, State: StateParsed}

	candidates, err := parsed.Collect(netseq.Options{
		DecimalOnly:   opts.DecimalOnly,
		AllowOverflow: opts.AllowOverflow,
	}, s.maxAddresses)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	result.State = StateEnumerated

	store := s.ips.ForFamily(parsed.Family())
	existing, err := store.ExistingAddresses(ctx, vlanID, candidates)
	if err != nil {
		return result, &StoreError{Op: "check existing addresses", Err: err}
	}
	result.New, result.Preexisting = partition(candidates, existing)
	result.State = StateChecked

	if !opts.SkipExisting && len(result.Preexisting) > 0 {
		result.State = StateAborted
		return result, &ConflictError{Addresses: result.Preexisting}
	}
	if len(result.New) == 0 {
		result.State = StateAborted
		return result, ErrNothingToAllocate
	}

	inserted, err := store.InsertAddresses(ctx, vlanID, result.New)
	if err != nil {
		result.State = StateAborted
		if errors.Is(err, ErrConflict) {
			return result, err
		}
		return result, &StoreError{Op: "insert addresses", Err: err}
	}
	result.Inserted = inserted
	result.State = StatePersisted

	return result, nil
}

// PreviewDeletable lists the addresses of network stored on the VLAN that
// are not bound to a VLAN interface.
func (s *allocationService) PreviewDeletable(ctx context.Context, vlanID int64, network string) ([]IPAddress, error) {
	parsed, err := s.parse(ctx, vlanID, network)
	if err != nil {
		return nil, err
	}
	return s.deletable(ctx, vlanID, parsed)
}

// ConfirmDelete deletes what PreviewDeletable would return right now.
func (s *allocationService) ConfirmDelete(ctx context.Context, vlanID int64, network string) (int64, error) {
	parsed, err := s.parse(ctx, vlanID, network)
	if err != nil {
		return 0, err
	}

	records, err := s.deletable(ctx, vlanID, parsed)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	ids := make([]IPAddressID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}

	deleted, err := s.ips.ForFamily(parsed.Family()).DeleteRecords(ctx, ids)
	if err != nil {
		return 0, &StoreError{Op: "delete addresses", Err: err}
	}
	return deleted, nil
}

func (s *allocationService) parse(ctx context.Context, vlanID int64, network string) (netseq.Network, error) {
	parsed, err := netseq.ParseNetwork(network)
	if err != nil {
		return netseq.Network{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := s.vlans.FindByID(ctx, vlanID); err != nil {
		return netseq.Network{}, vlanLookupError(err)
	}
	return parsed, nil
}

func (s *allocationService) deletable(ctx context.Context, vlanID int64, network netseq.Network) ([]IPAddress, error) {
	candidates, err := network.Collect(netseq.Options{}, s.maxAddresses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	records, err := s.ips.ForFamily(network.Family()).DeletableRecords(ctx, vlanID, candidates)
	if err != nil {
		return nil, &StoreError{Op: "find deletable addresses", Err: err}
	}
	return records, nil
}
