package auth

import (
	"errors"
	"testing"
	"time"
)

func TestChainIssuesWithFirstStrategy(t *testing.T) {
	hmacStrategy := NewHMACStrategy("secret", Options{})
	chain := Chain{hmacStrategy, NewShopifySessionStrategy("app-secret", "", Options{})}

	token, err := chain.IssueToken("demo.myshopify.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if shop, err := hmacStrategy.ParseToken(token); err != nil || shop != "demo.myshopify.com" {
		t.Fatalf("expected hmac token, got %q %v", shop, err)
	}
}

func TestChainParsesAnyStrategy(t *testing.T) {
	session := NewShopifySessionStrategy("app-secret", "", Options{TTL: time.Minute})
	chain := Chain{NewHMACStrategy("secret", Options{}), session}

	token, err := session.IssueToken("demo.myshopify.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	shop, err := chain.ParseToken(token)
	if err != nil || shop != "demo.myshopify.com" {
		t.Fatalf("unexpected result %q %v", shop, err)
	}
	if _, err := chain.ParseToken("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestEmptyChain(t *testing.T) {
	var chain Chain
	if _, err := chain.IssueToken("demo.myshopify.com"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if chain.Name() != "chain" {
		t.Fatalf("unexpected name %s", chain.Name())
	}
}
