package domain

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")

	ErrVLANNotFound      = fmt.Errorf("vlan %w", ErrNotFound)
	ErrAddressNotFound   = fmt.Errorf("ip address %w", ErrNotFound)
	ErrInterfaceNotFound = fmt.Errorf("vlan interface %w", ErrNotFound)
	ErrAddressInUse      = errors.New("ip address is assigned to a vlan interface")

	ErrInvalidNetworkFormat = netseq.ErrInvalidNetworkFormat
	ErrNetworkTooLarge      = netseq.ErrNetworkTooLarge
	ErrNothingToAllocate    = errors.New("nothing to allocate")
)

// ConflictError lists candidates that already exist on the VLAN. It matches
// ErrConflict.
type ConflictError struct {
	Addresses []netip.Addr
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%d address(es) already exist: %s", len(e.Addresses), strings.Join(netseq.Strings(e.Addresses), ", "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// StoreError wraps a backing store failure. It is never retried here.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
