package ports

import (
	"context"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// RecordSource reads vessel records from the tabular input file.
type RecordSource interface {
	// Stat identifies the current version of the file without reading it.
	Stat(path string) (domain.FileIdentity, error)
	Load(ctx context.Context, path string) (*domain.RecordSet, error)
}

// AnchorRepository persists the country gazetteer.
type AnchorRepository interface {
	UpsertBatch(ctx context.Context, anchors []domain.GeoAnchor) error
	GetByCountry(ctx context.Context, country string) (*domain.GeoAnchor, error)
	List(ctx context.Context) ([]domain.GeoAnchor, error)
}

// SessionStore keeps one viewport state per browser session.
type SessionStore interface {
	// Get returns ok=false when the session has no stored state.
	Get(ctx context.Context, id string) (state domain.ViewportState, ok bool, err error)
	Save(ctx context.Context, id string, state domain.ViewportState) error
}
