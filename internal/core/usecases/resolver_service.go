package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/ports"
	"github.com/usvmap/usvmap/internal/pkg/metrics"
	"github.com/usvmap/usvmap/internal/pkg/telemetry"
)

// Resolution is the outcome of resolving one batch of records.
type Resolution struct {
	Vessels          []domain.ResolvedVessel // input order, dropped records excluded
	Anchors          map[string]domain.GeoAnchor
	Dropped          int
	DroppedCountries []string // first-appearance order
}

type memoEntry struct {
	anchor domain.GeoAnchor
	found  bool
}

// ResolverService maps each record's country to an anchor.
//
// Lookups are memoized per normalized country for the lifetime of the
// service: a country is sent to the geocoder at most once unless the previous
// attempt failed transiently. Found anchors are also written through to the
// shared cache so a restart does not hit the external geocoder again.
type ResolverService struct {
	primary  ports.Geocoder
	fallback ports.Geocoder
	cache    ports.CacheService
	cacheTTL int

	mu   sync.Mutex
	memo map[string]memoEntry
}

// NewResolverService creates a new ResolverService. fallback and cache may be nil.
func NewResolverService(primary, fallback ports.Geocoder, cache ports.CacheService, cacheTTL int) *ResolverService {
	return &ResolverService{
		primary:  primary,
		fallback: fallback,
		cache:    cache,
		cacheTTL: cacheTTL,
		memo:     make(map[string]memoEntry),
	}
}

// Resolve normalizes countries, looks up one anchor per distinct country and
// drops the records whose country does not resolve. Lookup failures never fail
// the batch; only a cancelled context does.
func (s *ResolverService) Resolve(ctx context.Context, records []domain.VesselRecord) (*Resolution, error) {
	ctx, span := otel.Tracer(telemetry.TracerName).Start(ctx, telemetry.SpanResolve)
	defer span.End()

	normalized := make([]domain.VesselRecord, len(records))
	var order []string
	seen := make(map[string]bool)
	explicit := make(map[string]domain.GeoAnchor)

	for i, rec := range records {
		raw := rec.Country
		if raw == "" {
			raw = rec.RawCountry
		}
		rec.Country = domain.NormalizeCountry(raw)
		normalized[i] = rec

		if rec.Country == "" {
			continue
		}
		if !seen[rec.Country] {
			seen[rec.Country] = true
			order = append(order, rec.Country)
		}
		// The first record with usable coordinates anchors its whole country.
		if _, ok := explicit[rec.Country]; !ok && rec.Coordinates != nil && rec.Coordinates.Valid() {
			explicit[rec.Country] = domain.GeoAnchor{
				Country: rec.Country,
				Point:   *rec.Coordinates,
				Source:  domain.AnchorExplicit,
			}
		}
	}

	res := &Resolution{Anchors: make(map[string]domain.GeoAnchor, len(order))}
	for _, country := range order {
		if a, ok := explicit[country]; ok {
			res.Anchors[country] = a
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if a, ok := s.Anchor(ctx, country); ok {
			res.Anchors[country] = a
		} else {
			res.DroppedCountries = append(res.DroppedCountries, country)
		}
	}

	for _, rec := range normalized {
		a, ok := res.Anchors[rec.Country]
		if !ok {
			res.Dropped++
			slog.DebugContext(ctx, "record dropped", "row", rec.Row, "name", rec.Name, "country", rec.RawCountry)
			continue
		}
		res.Vessels = append(res.Vessels, domain.ResolvedVessel{Vessel: rec, Anchor: a})
	}
	metrics.RecordsDropped.Add(float64(res.Dropped))

	span.SetAttributes(
		attribute.Int(telemetry.AttrRecords, len(records)),
		attribute.Int(telemetry.AttrDropped, res.Dropped),
	)
	return res, nil
}

// Anchor returns the anchor of one normalized country, consulting the memo,
// the shared cache, the primary geocoder and then the fallback.
func (s *ResolverService) Anchor(ctx context.Context, country string) (domain.GeoAnchor, bool) {
	s.mu.Lock()
	entry, ok := s.memo[country]
	s.mu.Unlock()
	if ok {
		metrics.CacheHits.WithLabelValues("anchor_memo").Inc()
		return entry.anchor, entry.found
	}

	cacheKey := "anchors:" + country
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var a domain.GeoAnchor
			if err := json.Unmarshal(data, &a); err == nil && a.Point.Valid() {
				metrics.CacheHits.WithLabelValues("anchor").Inc()
				s.remember(country, memoEntry{anchor: a, found: true})
				return a, true
			}
		}
		metrics.CacheMisses.WithLabelValues("anchor").Inc()
	}

	definitive := true
	for _, g := range s.geocoders() {
		a, err := s.lookup(ctx, g, country)
		if err == nil {
			s.remember(country, memoEntry{anchor: a, found: true})
			if s.cache != nil {
				if data, err := json.Marshal(a); err == nil {
					_ = s.cache.Set(ctx, cacheKey, data, s.cacheTTL)
				}
			}
			return a, true
		}
		if !errors.Is(err, domain.ErrCountryNotFound) {
			definitive = false
			slog.WarnContext(ctx, "geocoder lookup failed", "provider", g.Name(), "country", country, "error", err)
		}
	}

	// Transient failures are retried on the next dataset build.
	if definitive {
		s.remember(country, memoEntry{})
	}
	return domain.GeoAnchor{}, false
}

func (s *ResolverService) geocoders() []ports.Geocoder {
	out := []ports.Geocoder{s.primary}
	if s.fallback != nil && s.fallback.Name() != s.primary.Name() {
		out = append(out, s.fallback)
	}
	return out
}

func (s *ResolverService) lookup(ctx context.Context, g ports.Geocoder, country string) (domain.GeoAnchor, error) {
	ctx, span := otel.Tracer(telemetry.TracerName).Start(ctx, telemetry.SpanGeocode)
	defer span.End()
	span.SetAttributes(
		attribute.String(telemetry.AttrProvider, g.Name()),
		attribute.String(telemetry.AttrCountry, country),
	)

	start := time.Now()
	p, err := g.Lookup(ctx, country)
	metrics.GeocodeDuration.WithLabelValues(g.Name()).Observe(time.Since(start).Seconds())

	switch {
	case err == nil && !p.Valid():
		err = domain.ErrCountryNotFound
		metrics.GeocodeLookups.WithLabelValues(g.Name(), "invalid").Inc()
	case err == nil:
		metrics.GeocodeLookups.WithLabelValues(g.Name(), "found").Inc()
	case errors.Is(err, domain.ErrCountryNotFound):
		metrics.GeocodeLookups.WithLabelValues(g.Name(), "not_found").Inc()
	default:
		metrics.GeocodeLookups.WithLabelValues(g.Name(), "error").Inc()
		span.RecordError(err)
	}
	if err != nil {
		return domain.GeoAnchor{}, err
	}
	return domain.GeoAnchor{Country: country, Point: p, Source: g.Name()}, nil
}

func (s *ResolverService) remember(country string, e memoEntry) {
	s.mu.Lock()
	s.memo[country] = e
	s.mu.Unlock()
}
