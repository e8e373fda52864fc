package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrMalformedOrder      = errors.New("malformed order")
	ErrUpstreamFetchFailed = errors.New("upstream fetch failed")
	ErrNoChangesToSave     = errors.New("no changes to save")
	ErrDownstreamRejected  = errors.New("downstream rejected")
	ErrAuthRequired        = errors.New("authentication required")

	// ErrTokenNotConfigured is the AuthRequired case of a shop without a logistics token.
	ErrTokenNotConfigured = fmt.Errorf("%w: logistics token not configured", ErrAuthRequired)
)
