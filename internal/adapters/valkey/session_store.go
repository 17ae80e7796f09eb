package valkey

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// SessionStore implements ports.SessionStore on top of Cache. Every save
// refreshes the TTL, so idle sessions expire on their own.
type SessionStore struct {
	cache      *Cache
	ttlSeconds int
}

func NewSessionStore(cache *Cache, ttlSeconds int) *SessionStore {
	return &SessionStore{cache: cache, ttlSeconds: ttlSeconds}
}

func (s *SessionStore) Get(ctx context.Context, id string) (domain.ViewportState, bool, error) {
	data, err := s.cache.Get(ctx, sessionKey(id))
	if IsMiss(err) {
		return domain.ViewportState{}, false, nil
	}
	if err != nil {
		return domain.ViewportState{}, false, err
	}
	var state domain.ViewportState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.ViewportState{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return state, true, nil
}

func (s *SessionStore) Save(ctx context.Context, id string, state domain.ViewportState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, sessionKey(id), data, s.ttlSeconds)
}

func sessionKey(id string) string {
	return "session:" + id
}
