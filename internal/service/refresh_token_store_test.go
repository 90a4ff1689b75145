package service

import (
	"testing"
	"time"
)

func TestMemoryRefreshTokenStore_StoreExistsRevoke(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("jti-1", "u1", time.Minute); err != nil {
		t.Fatalf("store: %v", err)
	}

	ok, err := store.Exists("jti-1")
	if err != nil || !ok {
		t.Fatalf("expected jti to exist, got ok=%v err=%v", ok, err)
	}

	if err := store.Revoke("jti-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err = store.Exists("jti-1")
	if err != nil || ok {
		t.Fatalf("expected jti revoked, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryRefreshTokenStore_Expiry(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("jti-2", "u1", -time.Second); err != nil {
		t.Fatalf("store: %v", err)
	}
	ok, err := store.Exists("jti-2")
	if err != nil || ok {
		t.Fatalf("expected expired jti to be absent, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryRefreshTokenStore_IgnoresEmptyJTI(t *testing.T) {
	store := NewMemoryRefreshTokenStore()

	if err := store.Store("  ", "u1", time.Minute); err != nil {
		t.Fatalf("store: %v", err)
	}
	ok, err := store.Exists("  ")
	if err != nil || ok {
		t.Fatalf("expected empty jti to never exist, got ok=%v err=%v", ok, err)
	}
}
