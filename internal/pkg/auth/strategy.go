package auth

import "time"

// Strategy issues and verifies bearer tokens that identify a shop.
type Strategy interface {
	IssueToken(shop string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
