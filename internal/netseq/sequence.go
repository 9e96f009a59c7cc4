package netseq

import (
	"fmt"
	"iter"
	"math"
	"net/netip"
	"strings"
)

// Options controls how IPv6 networks are enumerated. IPv4 networks ignore
// them and always yield every address.
type Options struct {
	// DecimalOnly keeps only addresses whose last segment is made of the
	// digits 0-9, so ::42 can mirror the IPv4 host .42.
	DecimalOnly bool
	// AllowOverflow keeps scanning past the end of the network until as
	// many decimal addresses as the network has addresses were kept.
	AllowOverflow bool
}

// Addresses returns the candidate addresses of n in ascending order. The
// sequence is lazy and can be ranged over more than once.
func (n Network) Addresses(opts Options) iter.Seq[netip.Addr] {
	if n.family == IPv6 && opts.DecimalOnly {
		return n.decimalAddresses(opts.AllowOverflow)
	}
	return n.allAddresses()
}

func (n Network) allAddresses() iter.Seq[netip.Addr] {
	first, last := n.First(), n.Last()
	return func(yield func(netip.Addr) bool) {
		for addr := first; addr.IsValid(); addr = addr.Next() {
			if !yield(addr) {
				return
			}
			if addr == last {
				return
			}
		}
	}
}

// decimalAddresses counts considered candidates against the network size
// when overflow is off, and kept addresses when it is on.
func (n Network) decimalAddresses(overflow bool) iter.Seq[netip.Addr] {
	target := n.target()
	first := n.First()
	return func(yield func(netip.Addr) bool) {
		var considered, kept uint64
		for addr := first; addr.IsValid(); addr = addr.Next() {
			if !overflow && considered == target {
				return
			}
			considered++
			if !IsDecimalTail(addr) {
				continue
			}
			if !yield(addr) {
				return
			}
			kept++
			if overflow && kept == target {
				return
			}
		}
	}
}

// target is Size() clamped to uint64. Networks that large can never be
// walked to the end anyway.
func (n Network) target() uint64 {
	size := n.Size()
	if !size.IsUint64() {
		return math.MaxUint64
	}
	return size.Uint64()
}

// IsDecimalTail reports whether the text after the last colon of addr's
// canonical form contains only decimal digits. An empty tail ("2001:db8::")
// qualifies. IPv4 addresses always qualify.
func IsDecimalTail(addr netip.Addr) bool {
	if addr.Is4() {
		return true
	}
	s := addr.String()
	tail := s[strings.LastIndexByte(s, ':')+1:]
	for i := 0; i < len(tail); i++ {
		if tail[i] < '0' || tail[i] > '9' {
			return false
		}
	}
	return true
}

// Collect materialises the sequence. It fails with ErrNetworkTooLarge once
// more than limit candidates are produced; limit <= 0 means no limit.
func (n Network) Collect(opts Options, limit int) ([]netip.Addr, error) {
	var out []netip.Addr
	if limit > 0 && n.Size().IsInt64() && n.Size().Int64() <= int64(limit) {
		out = make([]netip.Addr, 0, n.Size().Int64())
	}

	for addr := range n.Addresses(opts) {
		if limit > 0 && len(out) == limit {
			return nil, fmt.Errorf("%w: %s has more than %d addresses", ErrNetworkTooLarge, n, limit)
		}
		out = append(out, addr)
	}
	return out, nil
}

// Strings renders addresses in their canonical text form.
func Strings(addrs []netip.Addr) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.String())
	}
	return out
}
