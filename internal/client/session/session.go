// Package session holds the client's authentication token.
//
// A Store is built once at startup from durable storage and passed by
// reference to everything that needs the token: the request pipeline, the
// auth service and the CLI. Every Set and Clear reaches durable storage
// before the in-memory value changes, so a reader never observes a token
// that storage does not hold.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// State is the authentication state derived from the token.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Storage is the durable medium the token is mirrored to.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is safe for concurrent use. Requests read the token at send time,
// so a Set or Clear is seen by requests issued after it only.
type Store struct {
	mu      sync.RWMutex
	token   string
	storage Storage
}

// New loads the persisted token, if any.
func New(ctx context.Context, storage Storage) (*Store, error) {
	v, err := storage.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Store{token: string(v), storage: storage}, nil
}

// Set stores token. An empty token is the same as Clear.
func (s *Store) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, common.TokenStorageKey, []byte(token)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.token = token
	return nil
}

// Clear forgets the token.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, common.TokenStorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.token = ""
	return nil
}

// Token returns the current token and whether there is one.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *Store) State() State {
	if _, ok := s.Token(); ok {
		return Authenticated
	}
	return Anonymous
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == Authenticated
}
