package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrAdminDisabled = errors.New("admin key not configured")

// KeyVerifier checks the operator key guarding admin endpoints.
type KeyVerifier interface {
	Verify(key string) error
}

// BcryptKeyVerifier keeps only a bcrypt hash of the admin key in memory.
type BcryptKeyVerifier struct {
	hash []byte
}

// NewBcryptKeyVerifier accepts either a plain key or an existing bcrypt hash.
func NewBcryptKeyVerifier(configured string, cost int) (*BcryptKeyVerifier, error) {
	if configured == "" {
		return &BcryptKeyVerifier{}, nil
	}
	if isBcryptHash(configured) {
		if _, err := bcrypt.Cost([]byte(configured)); err != nil {
			return nil, err
		}
		return &BcryptKeyVerifier{hash: []byte(configured)}, nil
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(configured), cost)
	if err != nil {
		return nil, err
	}
	return &BcryptKeyVerifier{hash: hash}, nil
}

// Verify reports ErrAdminDisabled when no key is set and ErrInvalidToken on mismatch.
func (v *BcryptKeyVerifier) Verify(key string) error {
	if len(v.hash) == 0 {
		return ErrAdminDisabled
	}
	if key == "" {
		return ErrInvalidToken
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(key)); err != nil {
		return ErrInvalidToken
	}
	return nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
