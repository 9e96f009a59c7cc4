package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/golang-jwt/jwt/v5"
)

type staticKeyfunc struct {
	secret []byte
}

func (s staticKeyfunc) Keyfunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}

func (s staticKeyfunc) KeyfuncCtx(_ context.Context) jwt.Keyfunc {
	return s.Keyfunc
}

func (s staticKeyfunc) Storage() jwkset.Storage {
	return nil
}

func (s staticKeyfunc) VerificationKeySet(_ context.Context) (jwt.VerificationKeySet, error) {
	return jwt.VerificationKeySet{}, nil
}

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	return signed
}

func makeClaims(issuer string, audience any) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss": issuer,
		"sub": "user-1",
		"aud": audience,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}

func TestKeycloakAuthenticatorRejectsWrongAudience(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/ipam",
		audience: "ipam-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	token := signToken(t, makeClaims("http://keycloak.local/realms/ipam", []string{"other-api"}), []byte("test-secret"))
	_, err := authenticator.Authenticate(context.Background(), token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestKeycloakAuthenticatorReturnsPrincipal(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/ipam",
		audience: "ipam-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	token := signToken(t, makeClaims("http://keycloak.local/realms/ipam", []string{"ipam-api"}), []byte("test-secret"))
	principal, err := authenticator.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if principal.Issuer != "http://keycloak.local/realms/ipam" {
		t.Fatalf("unexpected issuer: %v", principal.Issuer)
	}
	if principal.Subject != "user-1" {
		t.Fatalf("unexpected subject: %v", principal.Subject)
	}
}

func TestNewKeycloakAuthenticatorFailsWhenJWKSUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/certs" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("no jwks"))
	}))
	defer server.Close()

	_, err := NewKeycloakAuthenticator(context.Background(), Config{
		Enabled:  true,
		Issuer:   "http://keycloak.local/realms/ipam",
		JWKSURL:  server.URL + "/certs",
		Audience: "ipam-api",
	})
	if err == nil {
		t.Fatal("expected error when jwks endpoint is unavailable")
	}
	if !strings.Contains(err.Error(), "jwks endpoint returned 502") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestKeycloakAuthenticatorReadsUsernameAndRoles(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer:   "http://keycloak.local/realms/ipam",
		audience: "ipam-api",
		jwks:     staticKeyfunc{secret: []byte("test-secret")},
	}

	claims := makeClaims("http://keycloak.local/realms/ipam", "ipam-api")
	claims["preferred_username"] = "noc-operator"
	claims["realm_access"] = map[string]any{"roles": []string{"ipam-admin", "offline_access"}}

	principal, err := authenticator.Authenticate(context.Background(), signToken(t, claims, []byte("test-secret")))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if principal.Username != "noc-operator" {
		t.Fatalf("unexpected username: %q", principal.Username)
	}
	if !principal.HasRole("ipam-admin") || principal.HasRole("root") {
		t.Fatalf("unexpected roles: %v", principal.Roles)
	}
}

func TestKeycloakAuthenticatorRejectsWrongSignature(t *testing.T) {
	authenticator := &keycloakAuthenticator{
		issuer: "http://keycloak.local/realms/ipam",
		jwks:   staticKeyfunc{secret: []byte("test-secret")},
	}

	token := signToken(t, makeClaims("http://keycloak.local/realms/ipam", "ipam-api"), []byte("other-secret"))
	if _, err := authenticator.Authenticate(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewKeycloakAuthenticatorDisabled(t *testing.T) {
	authenticator, err := NewKeycloakAuthenticator(context.Background(), Config{})
	if err != nil || authenticator != nil {
		t.Fatalf("expected nil authenticator and no error, got %v, %v", authenticator, err)
	}
}

func TestNewKeycloakAuthenticatorRequiresIssuer(t *testing.T) {
	if _, err := NewKeycloakAuthenticator(context.Background(), Config{Enabled: true}); err == nil {
		t.Fatal("expected error for empty issuer")
	}
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{Subject: "user-1"})

	principal, ok := PrincipalFromContext(ctx)
	if !ok || principal.Subject != "user-1" {
		t.Fatalf("unexpected principal: %+v, %v", principal, ok)
	}
	if _, ok := PrincipalFromContext(context.Background()); ok {
		t.Fatal("expected no principal on a bare context")
	}
}

func TestActorFromContext(t *testing.T) {
	if got := ActorFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty actor, got %q", got)
	}

	ctx := WithPrincipal(context.Background(), Principal{Subject: "user-1"})
	if got := ActorFromContext(ctx); got != "user-1" {
		t.Fatalf("expected subject fallback, got %q", got)
	}

	ctx = WithPrincipal(context.Background(), Principal{Subject: "user-1", Username: "noc"})
	if got := ActorFromContext(ctx); got != "noc" {
		t.Fatalf("expected username, got %q", got)
	}
}
