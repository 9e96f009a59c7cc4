package auth

import "context"

// Authenticator validates a bearer token and returns the caller behind it.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

// AuthenticatorFunc adapts a plain function to Authenticator.
type AuthenticatorFunc func(ctx context.Context, bearerToken string) (Principal, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, bearerToken string) (Principal, error) {
	return f(ctx, bearerToken)
}
