package ports

import (
	"context"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// Geocoder resolves a normalized country name to its anchor point.
// Implementations return domain.ErrCountryNotFound when they know the country
// does not exist; any other error is treated as transient.
type Geocoder interface {
	Name() string
	Lookup(ctx context.Context, country string) (domain.GeoPoint, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishDatasetLoaded(ctx context.Context, summary domain.DatasetSummary) error
}

// EventSubscriber subscribes to domain events from a message broker.
type EventSubscriber interface {
	SubscribeDatasetLoaded(ctx context.Context, handler func(ctx context.Context, summary domain.DatasetSummary) error) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
