package http

import (
	"fmt"
	"strings"

	"github.com/Flarenzy/ixp-ipam/internal/domain"
	"github.com/Flarenzy/ixp-ipam/internal/netseq"
)

const maxHostnameLength = 253

// validateHostname accepts DNS names made of letters, digits and hyphens.
// An empty hostname is allowed.
func validateHostname(hostname string) error {
	if hostname == "" {
		return nil
	}
	if len(hostname) > maxHostnameLength {
		return fmt.Errorf("hostname longer than %d characters", maxHostnameLength)
	}
	for _, label := range strings.Split(strings.TrimSuffix(hostname, "."), ".") {
		if label == "" || len(label) > 63 {
			return fmt.Errorf("invalid hostname label %q", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("hostname label %q starts or ends with a hyphen", label)
		}
		for _, c := range label {
			switch {
			case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
			default:
				return fmt.Errorf("hostname label %q contains %q", label, c)
			}
		}
	}
	return nil
}

// parseFamilyQuery reads ?family=4|6. IPv4 is the default.
func parseFamilyQuery(raw string) (domain.Family, error) {
	if raw == "" {
		return domain.IPv4, nil
	}
	var code int
	switch raw {
	case "4", "ipv4", "IPv4":
		code = 4
	case "6", "ipv6", "IPv6":
		code = 6
	default:
		return 0, fmt.Errorf("%w: unknown family %q", domain.ErrInvalidInput, raw)
	}
	return netseq.FamilyFromCode(code)
}

func requireNetwork(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: network is required", domain.ErrInvalidInput)
	}
	return raw, nil
}
