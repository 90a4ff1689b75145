package service

import (
	"errors"
	"testing"
	"time"

	"brand-dna/internal/domain"
)

func TestJWTService_GenerateParseAccess(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, NewMemoryRefreshTokenStore())
	user := domain.User{
		ID:          "u1",
		Email:       "user@example.com",
		DisplayName: "Test",
		CreatedAt:   time.Now().UTC(),
	}

	pair, err := svc.GeneratePair(user)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected tokens")
	}
	if pair.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Fatalf("unexpected expires_in: %d", pair.ExpiresIn)
	}

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "user@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_RefreshRotation(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, NewMemoryRefreshTokenStore())
	user := domain.User{ID: "u1", Email: "user@example.com", CreatedAt: time.Now().UTC()}

	pair, err := svc.GeneratePair(user)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	refreshed, err := svc.RefreshPair(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh pair: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatalf("expected refreshed tokens")
	}

	// El refresh usado queda revocado: reusarlo debe fallar.
	if _, err := svc.RefreshPair(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid on reuse, got %v", err)
	}
}

func TestJWTService_RejectsRefreshAsAccess(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, NewMemoryRefreshTokenStore())
	pair, err := svc.GeneratePair(domain.User{ID: "u1", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := svc.ParseAccessToken(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for refresh token, got %v", err)
	}
	if _, err := svc.RefreshPair(pair.AccessToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for access token in refresh, got %v", err)
	}
}

func TestJWTService_RevokeRefresh(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, NewMemoryRefreshTokenStore())
	pair, err := svc.GeneratePair(domain.User{ID: "u1", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if err := svc.RevokeRefresh(pair.RefreshToken); err != nil {
		t.Fatalf("revoke refresh: %v", err)
	}
	if _, err := svc.RefreshPair(pair.RefreshToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected revoked token to be rejected, got %v", err)
	}
}

func TestJWTService_RejectsExpiredAccess(t *testing.T) {
	svc := NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, NewMemoryRefreshTokenStore())
	svc.accessTTL = -time.Minute
	pair, err := svc.GeneratePair(domain.User{ID: "u1", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	if _, err := svc.ParseAccessToken(pair.AccessToken); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := NewJWTServiceWithStore("secret-a", 15*time.Minute, 30*time.Minute, NewMemoryRefreshTokenStore())
	verifier := NewJWTServiceWithStore("secret-b", 15*time.Minute, 30*time.Minute, NewMemoryRefreshTokenStore())

	pair, err := issuer.GeneratePair(domain.User{ID: "u1", Email: "user@example.com"})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	if _, err := verifier.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for foreign signature, got %v", err)
	}
}
