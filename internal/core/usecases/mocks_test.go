package usecases_test

import (
	"context"
	"errors"
	"sync"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// --- Mock Geocoder ---

type mockGeocoder struct {
	name     string
	lookupFn func(ctx context.Context, country string) (domain.GeoPoint, error)

	mu    sync.Mutex
	calls map[string]int
}

func (m *mockGeocoder) Name() string { return m.name }

func (m *mockGeocoder) Lookup(ctx context.Context, country string) (domain.GeoPoint, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[country]++
	m.mu.Unlock()
	if m.lookupFn != nil {
		return m.lookupFn(ctx, country)
	}
	return domain.GeoPoint{}, domain.ErrCountryNotFound
}

func (m *mockGeocoder) callCount(country string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[country]
}

// tableGeocoder answers from a fixed table.
func tableGeocoder(name string, table map[string]domain.GeoPoint) *mockGeocoder {
	return &mockGeocoder{
		name: name,
		lookupFn: func(ctx context.Context, country string) (domain.GeoPoint, error) {
			if p, ok := table[country]; ok {
				return p, nil
			}
			return domain.GeoPoint{}, domain.ErrCountryNotFound
		},
	}
}

// --- Mock CacheService ---

var errCacheMiss = errors.New("cache miss")

type mockCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMockCache() *mockCache { return &mockCache{data: make(map[string][]byte)} }

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, errCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.sets++
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// --- Mock RecordSource ---

type mockSource struct {
	statFn func(path string) (domain.FileIdentity, error)
	loadFn func(ctx context.Context, path string) (*domain.RecordSet, error)

	mu    sync.Mutex
	loads int
}

func (m *mockSource) Stat(path string) (domain.FileIdentity, error) {
	if m.statFn != nil {
		return m.statFn(path)
	}
	return domain.FileIdentity{Path: path}, nil
}

func (m *mockSource) Load(ctx context.Context, path string) (*domain.RecordSet, error) {
	m.mu.Lock()
	m.loads++
	m.mu.Unlock()
	if m.loadFn != nil {
		return m.loadFn(ctx, path)
	}
	return &domain.RecordSet{Encoding: "utf-8"}, nil
}

func (m *mockSource) loadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// --- Mock EventPublisher ---

type mockPublisher struct {
	mu        sync.Mutex
	summaries []domain.DatasetSummary
}

func (m *mockPublisher) PublishDatasetLoaded(ctx context.Context, summary domain.DatasetSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.summaries = append(m.summaries, summary)
	return nil
}

// --- Mock SessionStore ---

type mockSessions struct {
	getErr error

	mu     sync.Mutex
	states map[string]domain.ViewportState
}

func newMockSessions() *mockSessions {
	return &mockSessions{states: make(map[string]domain.ViewportState)}
}

func (m *mockSessions) Get(ctx context.Context, id string) (domain.ViewportState, bool, error) {
	if m.getErr != nil {
		return domain.ViewportState{}, false, m.getErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.states[id]
	return s, ok, nil
}

func (m *mockSessions) Save(ctx context.Context, id string, state domain.ViewportState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[id] = state
	return nil
}

func record(row int, name, country string) domain.VesselRecord {
	return domain.VesselRecord{Row: row, Name: name, RawCountry: country}
}
