// Package session holds the authentication token gating every mutating
// request. The store itself never fails a presence check; clearing on
// authorization failures is the sync layer's job.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bombsimon/team-betting-client/internal/domain"
	"github.com/bombsimon/team-betting-client/internal/repository"
)

var ErrTokenNotFound = repository.ErrTokenNotFound

// Persistence keeps the token across restarts, the way the browser client
// kept it in localStorage.
type Persistence interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context) error
}

// Store is the single source of truth for "is the user authenticated". Reads
// hit the in-memory copy; writes go through to persistence first.
type Store struct {
	mu          sync.RWMutex
	token       string
	persistence Persistence
}

// NewStore loads any previously persisted token. A missing token is not an
// error; it just means anonymous.
func NewStore(ctx context.Context, persistence Persistence) (*Store, error) {
	token, err := persistence.Token(ctx)
	if err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		return nil, fmt.Errorf("persistence.Token -> %w", err)
	}

	return &Store{
		token:       token,
		persistence: persistence,
	}, nil
}

// Get returns the current token and whether one is present.
func (s *Store) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.token != ""
}

// Session returns the current session state.
func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Session{Token: s.token}
}

// Set replaces the token. All outgoing mutating requests carry it from now
// on.
func (s *Store) Set(ctx context.Context, token string) error {
	if err := s.persistence.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("s.persistence.SaveToken -> %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return nil
}

// Clear removes the token, making the user anonymous.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.persistence.DeleteToken(ctx); err != nil {
		return fmt.Errorf("s.persistence.DeleteToken -> %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	return nil
}
