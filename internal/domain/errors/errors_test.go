package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid request", ErrInvalidRequest},
		{"malformed order", ErrMalformedOrder},
		{"upstream fetch failed", ErrUpstreamFetchFailed},
		{"no changes", ErrNoChangesToSave},
		{"downstream rejected", ErrDownstreamRejected},
		{"auth required", ErrAuthRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
			wrapped := fmt.Errorf("order 1: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrAlreadyExists, ErrNotFound, ErrInvalidRequest, ErrMalformedOrder,
		ErrUpstreamFetchFailed, ErrNoChangesToSave, ErrDownstreamRejected, ErrAuthRequired,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && stdErrors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
}

func TestTokenNotConfiguredIsAuthRequired(t *testing.T) {
	if !stdErrors.Is(ErrTokenNotConfigured, ErrAuthRequired) {
		t.Fatal("missing token must be reported as auth required")
	}
	if stdErrors.Is(ErrAuthRequired, ErrTokenNotConfigured) {
		t.Fatal("generic auth failures must not look like a missing token")
	}
}
