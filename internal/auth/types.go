package auth

import "errors"

var ErrInvalidToken = errors.New("invalid token")

type Config struct {
	Enabled  bool
	Issuer   string
	JWKSURL  string
	Audience string
}

// Principal is the caller behind a validated bearer token.
type Principal struct {
	Issuer   string
	Subject  string
	Username string
	Audience any
	Roles    []string
	Claims   map[string]any
}

func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
