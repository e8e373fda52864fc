package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rushrr/courier/internal/config"
)

func TestNewKeyVerifier(t *testing.T) {
	verifier, err := newKeyVerifier(strategyParams{Config: &config.Config{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := verifier.Verify("x"); !errors.Is(err, ErrAdminDisabled) {
		t.Fatalf("expected disabled verifier, got %v", err)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{SessionSecret: "top-secret", SessionTTL: time.Hour}})
	chain, ok := strategy.(Chain)
	if !ok {
		t.Fatalf("expected Chain, got %T", strategy)
	}
	if len(chain) != 1 {
		t.Fatalf("expected only hmac strategy, got %d", len(chain))
	}
	hmacStrategy, ok := chain[0].(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", chain[0])
	}
	if string(hmacStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(hmacStrategy.secret))
	}
	if hmacStrategy.ttl != time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}

func TestNewTokenStrategyWithShopifySecret(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{SessionSecret: "s", ShopifyAPISecret: "app"}})
	chain := strategy.(Chain)
	if len(chain) != 2 || chain[1].Name() != "shopify-session" {
		t.Fatalf("unexpected chain %#v", chain)
	}
}
