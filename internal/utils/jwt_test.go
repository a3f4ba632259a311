package utils

import (
	"crypto/ed25519"
	"errors"
	"strings"
	"testing"
	"time"
)

const testSeed = "0101010101010101010101010101010101010101010101010101010101010101"

func mustKey(t *testing.T) ed25519.PrivateKey {
	t.Helper()
	key, err := WalletKeyFromSeed(testSeed)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return key
}

func TestWalletKeyFromSeed_Invalid(t *testing.T) {
	for _, seed := range []string{"", "abcd", strings.Repeat("zz", 32)} {
		if _, err := WalletKeyFromSeed(seed); !errors.Is(err, ErrInvalidWalletSeed) {
			t.Errorf("seed %q: expected ErrInvalidWalletSeed, got %v", seed, err)
		}
	}
}

func TestAddressFromPublicKey_Format(t *testing.T) {
	key := mustKey(t)
	addr := AddressFromPublicKey(key.Public().(ed25519.PublicKey))

	if !strings.HasPrefix(addr, "0x") || len(addr) != 42 {
		t.Fatalf("unexpected address %q", addr)
	}
	if addr != AddressFromPublicKey(key.Public().(ed25519.PublicKey)) {
		t.Fatal("address must be deterministic")
	}
}

func TestWalletToken_RoundTrip(t *testing.T) {
	key := mustKey(t)
	body := []byte(`{"id":"course-1"}`)

	token, err := GenerateWalletToken(key, body, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateWalletToken(token, body)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != AddressFromPublicKey(key.Public().(ed25519.PublicKey)) {
		t.Errorf("unexpected subject %s", claims.Subject)
	}
}

func TestWalletToken_BodyTampered(t *testing.T) {
	key := mustKey(t)
	token, err := GenerateWalletToken(key, []byte("a"), time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateWalletToken(token, []byte("b")); !errors.Is(err, ErrWalletDigestMismatch) {
		t.Fatalf("expected ErrWalletDigestMismatch, got %v", err)
	}
}

func TestWalletToken_Garbage(t *testing.T) {
	if _, err := ValidateWalletToken("not.a.token", nil); err == nil {
		t.Fatal("expected error for garbage token")
	}
}

func TestGenerateWalletToken_InvalidParams(t *testing.T) {
	if _, err := GenerateWalletToken(nil, nil, time.Minute); err == nil {
		t.Error("expected error for nil key")
	}
	if _, err := GenerateWalletToken(mustKey(t), nil, 0); err == nil {
		t.Error("expected error for zero duration")
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc")
	if err != nil || tok != "abc" {
		t.Fatalf("unexpected result %q, %v", tok, err)
	}

	for _, h := range []string{"", "Bearer", "Bearer ", "a b c"} {
		if _, err := ParseBearerToken(h); err == nil {
			t.Errorf("header %q: expected error", h)
		}
	}
}
