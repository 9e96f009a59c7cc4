// Package netseq parses CIDR networks and enumerates their addresses in
// ascending order.
package netseq

import (
	"errors"
	"fmt"
	"html"
	"math/big"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

var (
	ErrInvalidNetworkFormat = errors.New("invalid network format")
	ErrNetworkTooLarge      = errors.New("network too large")
)

// Family is the address family of a network or address.
type Family int

const (
	IPv4 Family = 4
	IPv6 Family = 6
)

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "Unknown"
	}
}

// Code returns the numeric protocol code (4 or 6).
func (f Family) Code() int {
	return int(f)
}

func (f Family) Bits() int {
	if f == IPv4 {
		return 32
	}
	return 128
}

func (f Family) Valid() bool {
	return f == IPv4 || f == IPv6
}

func FamilyFromCode(code int) (Family, error) {
	f := Family(code)
	if !f.Valid() {
		return 0, fmt.Errorf("unknown protocol %d", code)
	}
	return f, nil
}

// FamilyOf reports the family of addr. 4-in-6 mapped addresses are IPv6.
func FamilyOf(addr netip.Addr) Family {
	if addr.Is4() {
		return IPv4
	}
	return IPv6
}

// Network is a parsed CIDR block. The zero value is not usable.
type Network struct {
	prefix netip.Prefix
	family Family
}

// ParseNetwork parses operator input such as " 192.0.2.0/30 " or
// "2001:db8::&#47;124". Host bits are cleared.
func ParseNetwork(text string) (Network, error) {
	cleaned := strings.TrimSpace(html.UnescapeString(strings.TrimSpace(text)))
	prefix, err := netip.ParsePrefix(cleaned)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %q", ErrInvalidNetworkFormat, text)
	}

	return Network{
		prefix: prefix.Masked(),
		family: FamilyOf(prefix.Addr()),
	}, nil
}

func MustParseNetwork(text string) Network {
	n, err := ParseNetwork(text)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Network) Prefix() netip.Prefix {
	return n.prefix
}

func (n Network) Family() Family {
	return n.family
}

func (n Network) Bits() int {
	return n.prefix.Bits()
}

func (n Network) First() netip.Addr {
	return n.prefix.Addr()
}

func (n Network) Last() netip.Addr {
	return netipx.PrefixLastIP(n.prefix)
}

func (n Network) String() string {
	return n.prefix.String()
}

// Size is the number of addresses in the network, 2^(bits-prefix).
func (n Network) Size() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n.family.Bits()-n.prefix.Bits()))
}

// Contains reports whether addr is inside the network.
func (n Network) Contains(addr netip.Addr) bool {
	return n.prefix.Contains(addr)
}

// Range returns the network as an inclusive address range.
func (n Network) Range() netipx.IPRange {
	return netipx.RangeOfPrefix(n.prefix)
}
