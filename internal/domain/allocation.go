package domain

import (
	"net/netip"

	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

// AllocationState tracks how far an allocation got.
type AllocationState int

const (
	StateParsed AllocationState = iota + 1
	StateEnumerated
	StateChecked
	StateAborted
	StatePersisted
)

func (s AllocationState) String() string {
	switch s {
	case StateParsed:
		return "parsed"
	case StateEnumerated:
		return "enumerated"
	case StateChecked:
		return "checked"
	case StateAborted:
		return "aborted"
	case StatePersisted:
		return "persisted"
	default:
		return "unknown"
	}
}

// AllocationResult splits the enumerated candidates of Network into New and
// Preexisting. Both keep enumeration order and never share an address.
type AllocationResult struct {
	Network     netseq.Network
	New         []netip.Addr
	Preexisting []netip.Addr
	Inserted    int64
	State       AllocationState
}

// partition keeps the order of candidates in both halves.
func partition(candidates, existing []netip.Addr) (fresh, preexisting []netip.Addr) {
	seen := make(map[netip.Addr]struct{}, len(existing))
	for _, a := range existing {
		seen[a] = struct{}{}
	}

	fresh = make([]netip.Addr, 0, len(candidates))
	preexisting = make([]netip.Addr, 0, len(existing))
	for _, a := range candidates {
		if _, ok := seen[a]; ok {
			preexisting = append(preexisting, a)
			continue
		}
		fresh = append(fresh, a)
	}
	return fresh, preexisting
}
