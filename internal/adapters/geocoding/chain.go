// Package geocoding assembles the anchor providers named in the configuration.
package geocoding

import (
	"errors"
	"fmt"
	"time"

	"github.com/usvmap/usvmap/internal/adapters/gazetteer"
	"github.com/usvmap/usvmap/internal/adapters/nominatim"
	"github.com/usvmap/usvmap/internal/adapters/postgres"
	"github.com/usvmap/usvmap/internal/core/ports"
	"github.com/usvmap/usvmap/internal/pkg/config"
)

var ErrNoDatabase = errors.New("postgres geocoder needs a database connection")

// Chain returns the primary geocoder and the optional static fallback.
// The fallback is nil when disabled or when the primary is already static.
// db is only used by the postgres provider.
func Chain(cfg config.GeocoderConfig, db *postgres.DB) (primary, fallback ports.Geocoder, err error) {
	switch cfg.Provider {
	case config.ProviderStatic:
		primary = gazetteer.New()
	case config.ProviderNominatim:
		primary = nominatim.New(nominatim.Config{
			BaseURL:     cfg.Nominatim.BaseURL,
			UserAgent:   cfg.Nominatim.UserAgent,
			MinInterval: time.Duration(cfg.Nominatim.MinInterval) * time.Millisecond,
			Timeout:     time.Duration(cfg.Nominatim.Timeout) * time.Second,
		})
	case config.ProviderPostgres:
		if db == nil {
			return nil, nil, ErrNoDatabase
		}
		primary = postgres.NewAnchorRepo(db)
	default:
		return nil, nil, fmt.Errorf("unknown geocoder provider %q", cfg.Provider)
	}

	if cfg.FallbackStatic && cfg.Provider != config.ProviderStatic {
		fallback = gazetteer.New()
	}
	return primary, fallback, nil
}
