package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptKeyVerifier_PlainKey(t *testing.T) {
	v, err := NewBcryptKeyVerifier("operator-key", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	if string(v.hash) == "operator-key" {
		t.Fatal("plain key must not be kept")
	}
	if err := v.Verify("operator-key"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := v.Verify("wrong"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if err := v.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty key, got %v", err)
	}
}

func TestBcryptKeyVerifier_PrehashedKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("operator-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	v, err := NewBcryptKeyVerifier(string(hash), 0)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	if err := v.Verify("operator-key"); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestBcryptKeyVerifier_MalformedHash(t *testing.T) {
	if _, err := NewBcryptKeyVerifier("$2a$broken", 0); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestBcryptKeyVerifier_Disabled(t *testing.T) {
	v, err := NewBcryptKeyVerifier("", 0)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	if err := v.Verify("anything"); !errors.Is(err, ErrAdminDisabled) {
		t.Fatalf("expected ErrAdminDisabled, got %v", err)
	}
}

func TestBcryptKeyVerifier_InvalidCost(t *testing.T) {
	if _, err := NewBcryptKeyVerifier("key", bcrypt.MaxCost+1); err == nil {
		t.Fatal("expected error for invalid cost")
	}
}
