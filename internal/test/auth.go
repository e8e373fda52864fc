package test

import (
	pkgAuth "github.com/rushrr/courier/internal/pkg/auth"
)

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(shop string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(shop)
	}
	return "token:" + shop, nil
}

// ParseToken parses tokens shaped like the ones IssueToken returns.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	const prefix = "token:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", pkgAuth.ErrInvalidToken
	}
	return token[len(prefix):], nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// KeyVerifierStub accepts a single admin key.
type KeyVerifierStub struct {
	Key      string
	Disabled bool
}

// Verify compares key with the configured one.
func (s KeyVerifierStub) Verify(key string) error {
	if s.Disabled {
		return pkgAuth.ErrAdminDisabled
	}
	if key == "" || key != s.Key {
		return pkgAuth.ErrInvalidToken
	}
	return nil
}

var _ pkgAuth.Strategy = StrategyStub{}
var _ pkgAuth.KeyVerifier = KeyVerifierStub{}
