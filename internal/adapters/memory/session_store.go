// Package memory holds in-process adapters for single-replica deployments.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// SessionStore implements ports.SessionStore with a bounded LRU whose
// entries expire after ttl. The oldest sessions are evicted first.
type SessionStore struct {
	lru *expirable.LRU[string, domain.ViewportState]
}

func NewSessionStore(size int, ttl time.Duration) *SessionStore {
	return &SessionStore{lru: expirable.NewLRU[string, domain.ViewportState](size, nil, ttl)}
}

func (s *SessionStore) Get(_ context.Context, id string) (domain.ViewportState, bool, error) {
	state, ok := s.lru.Get(id)
	return state, ok, nil
}

func (s *SessionStore) Save(_ context.Context, id string, state domain.ViewportState) error {
	s.lru.Add(id, state)
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	return s.lru.Len()
}
