package auth

import "context"

type principalContextKey struct{}

func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}

// ActorFromContext names the caller for logs: the username when the token
// carries one, the subject otherwise. Unauthenticated requests yield "".
func ActorFromContext(ctx context.Context) string {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return ""
	}
	if principal.Username != "" {
		return principal.Username
	}
	return principal.Subject
}
