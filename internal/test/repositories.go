package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/rushrr/courier/internal/domain/errors"
	"github.com/rushrr/courier/internal/domain/model"
	"github.com/rushrr/courier/internal/domain/repository"
)

// SessionRepositoryStub keeps shop sessions in memory.
type SessionRepositoryStub struct {
	SaveFn   func(context.Context, model.ShopSession) (*model.ShopSession, error)
	GetFn    func(context.Context, string) (*model.ShopSession, error)
	DeleteFn func(context.Context, string) error

	Sessions map[string]model.ShopSession
	Deleted  []string
	mu       sync.Mutex
}

// NewSessionRepositoryStub constructs a stub holding the given sessions.
func NewSessionRepositoryStub(sessions ...model.ShopSession) *SessionRepositoryStub {
	s := &SessionRepositoryStub{Sessions: make(map[string]model.ShopSession)}
	for _, session := range sessions {
		s.Sessions[session.Shop] = session
	}
	return s
}

// Save stores the session and stamps its timestamps.
func (s *SessionRepositoryStub) Save(ctx context.Context, session model.ShopSession) (*model.ShopSession, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, session)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Sessions == nil {
		s.Sessions = make(map[string]model.ShopSession)
	}
	now := time.Unix(0, 0).UTC()
	if existing, ok := s.Sessions[session.Shop]; ok {
		session.CreatedAt = existing.CreatedAt
	} else {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	s.Sessions[session.Shop] = session
	return &session, nil
}

// Get returns the stored session or not found.
func (s *SessionRepositoryStub) Get(ctx context.Context, shop string) (*model.ShopSession, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, shop)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.Sessions[shop]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &session, nil
}

// Delete removes the stored session and records the call.
func (s *SessionRepositoryStub) Delete(ctx context.Context, shop string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, shop)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Sessions[shop]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Sessions, shop)
	s.Deleted = append(s.Deleted, shop)
	return nil
}

// CredentialStoreStub keeps logistics tokens in memory.
type CredentialStoreStub struct {
	GetFn    func(context.Context, string) (string, error)
	SetFn    func(context.Context, string, string) error
	DeleteFn func(context.Context, string) error

	Tokens map[string]string
	mu     sync.Mutex
}

// NewCredentialStoreStub constructs a stub holding shop to token pairs.
func NewCredentialStoreStub(pairs ...string) *CredentialStoreStub {
	s := &CredentialStoreStub{Tokens: make(map[string]string)}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Tokens[pairs[i]] = pairs[i+1]
	}
	return s
}

// Get returns the stored token or not found.
func (s *CredentialStoreStub) Get(ctx context.Context, shop string) (string, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, shop)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.Tokens[shop]
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	return token, nil
}

// Set stores the token, replacing any previous one.
func (s *CredentialStoreStub) Set(ctx context.Context, shop, token string) error {
	if s.SetFn != nil {
		return s.SetFn(ctx, shop, token)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Tokens == nil {
		s.Tokens = make(map[string]string)
	}
	s.Tokens[shop] = token
	return nil
}

// Delete removes the stored token.
func (s *CredentialStoreStub) Delete(ctx context.Context, shop string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, shop)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Tokens, shop)
	return nil
}

var _ repository.SessionRepository = (*SessionRepositoryStub)(nil)
var _ repository.CredentialStore = (*CredentialStoreStub)(nil)
