package usecases_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/usecases"
)

var anchorTable = map[string]domain.GeoPoint{
	"United Kingdom": {Lat: 55.38, Lon: -3.44},
	"France":         {Lat: 46.23, Lon: 2.21},
	"United States":  {Lat: 37.09, Lon: -95.71},
}

func TestResolverService_DropsUnknownCountry(t *testing.T) {
	geo := tableGeocoder("static", anchorTable)
	svc := usecases.NewResolverService(geo, nil, nil, 0)

	res, err := svc.Resolve(context.Background(), []domain.VesselRecord{
		record(1, "Sea Hunter", "USA"),
		record(2, "Ghost", "Atlantis"),
		record(3, "Mariner", "France"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Vessels) != 2 {
		t.Fatalf("expected 2 resolved vessels, got %d", len(res.Vessels))
	}
	if res.Dropped != 1 {
		t.Errorf("expected 1 dropped, got %d", res.Dropped)
	}
	if len(res.DroppedCountries) != 1 || res.DroppedCountries[0] != "Atlantis" {
		t.Errorf("expected Atlantis dropped, got %v", res.DroppedCountries)
	}
	if _, ok := res.Anchors["Atlantis"]; ok {
		t.Error("Atlantis must not have an anchor")
	}
	if res.Vessels[0].Vessel.Country != "United States" {
		t.Errorf("expected normalized country, got %q", res.Vessels[0].Vessel.Country)
	}
	if res.Vessels[1].Vessel.Name != "Mariner" {
		t.Errorf("expected input order kept, got %s", res.Vessels[1].Vessel.Name)
	}
}

func TestResolverService_LooksUpEachCountryOnce(t *testing.T) {
	geo := tableGeocoder("nominatim", anchorTable)
	svc := usecases.NewResolverService(geo, nil, nil, 0)

	_, err := svc.Resolve(context.Background(), []domain.VesselRecord{
		record(1, "A", "UK"),
		record(2, "B", "u.k."),
		record(3, "C", "United Kingdom"),
		record(4, "D", " Great Britain "),
		record(5, "E", "Atlantis"),
		record(6, "F", "Atlantis"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := geo.callCount("United Kingdom"); n != 1 {
		t.Errorf("expected 1 lookup for United Kingdom, got %d", n)
	}
	if n := geo.callCount("Atlantis"); n != 1 {
		t.Errorf("expected 1 lookup for Atlantis, got %d", n)
	}

	// A second batch is served from the memo, found or not.
	if _, err := svc.Resolve(context.Background(), []domain.VesselRecord{record(1, "G", "UK"), record(2, "H", "Atlantis")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := geo.callCount("United Kingdom") + geo.callCount("Atlantis"); n != 2 {
		t.Errorf("expected memoized lookups, got %d calls", n)
	}
}

func TestResolverService_ExplicitCoordinatesAnchorCountry(t *testing.T) {
	geo := tableGeocoder("static", anchorTable)
	svc := usecases.NewResolverService(geo, nil, nil, 0)

	withCoords := record(1, "Pinned", "Norway")
	withCoords.Coordinates = &domain.GeoPoint{Lat: 60.47, Lon: 8.47}
	other := record(2, "Unpinned", "Norway")
	bad := record(3, "Broken", "France")
	bad.Coordinates = &domain.GeoPoint{Lat: 200, Lon: 0}

	res, err := svc.Resolve(context.Background(), []domain.VesselRecord{withCoords, other, bad})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geo.callCount("Norway") != 0 {
		t.Error("country with explicit coordinates must not be geocoded")
	}
	a := res.Anchors["Norway"]
	if a.Source != domain.AnchorExplicit || a.Point.Lat != 60.47 {
		t.Errorf("unexpected Norway anchor %+v", a)
	}
	if res.Vessels[1].Anchor != a {
		t.Error("every Norway record must share the explicit anchor")
	}
	if res.Anchors["France"].Source != "static" {
		t.Errorf("invalid coordinates must fall back to the geocoder, got %+v", res.Anchors["France"])
	}
}

func TestResolverService_FallbackOnTransientError(t *testing.T) {
	primary := &mockGeocoder{
		name: "nominatim",
		lookupFn: func(ctx context.Context, country string) (domain.GeoPoint, error) {
			return domain.GeoPoint{}, errors.New("connection refused")
		},
	}
	fallback := tableGeocoder("static", anchorTable)
	svc := usecases.NewResolverService(primary, fallback, nil, 0)

	a, ok := svc.Anchor(context.Background(), "France")
	if !ok {
		t.Fatal("expected fallback to resolve France")
	}
	if a.Source != "static" {
		t.Errorf("expected static source, got %s", a.Source)
	}

	// Transient failure with no fallback answer is not memoized.
	_, ok = svc.Anchor(context.Background(), "Atlantis")
	if ok {
		t.Fatal("Atlantis must not resolve")
	}
	_, _ = svc.Anchor(context.Background(), "Atlantis")
	if n := primary.callCount("Atlantis"); n != 2 {
		t.Errorf("expected transient failure to be retried, got %d calls", n)
	}
}

func TestResolverService_InvalidPointIsNotFound(t *testing.T) {
	geo := &mockGeocoder{
		name: "nominatim",
		lookupFn: func(ctx context.Context, country string) (domain.GeoPoint, error) {
			return domain.GeoPoint{Lat: 95, Lon: 0}, nil
		},
	}
	svc := usecases.NewResolverService(geo, nil, nil, 0)
	if _, ok := svc.Anchor(context.Background(), "Nowhere"); ok {
		t.Error("out-of-range coordinates must not be used as an anchor")
	}
}

func TestResolverService_SharedCache(t *testing.T) {
	cache := newMockCache()
	geo := tableGeocoder("nominatim", anchorTable)

	first := usecases.NewResolverService(geo, nil, cache, 3600)
	if _, ok := first.Anchor(context.Background(), "France"); !ok {
		t.Fatal("expected France to resolve")
	}
	if cache.sets != 1 {
		t.Fatalf("expected write-through, got %d sets", cache.sets)
	}

	// A fresh process finds the anchor in the shared cache.
	second := usecases.NewResolverService(geo, nil, cache, 3600)
	a, ok := second.Anchor(context.Background(), "France")
	if !ok || a.Point != anchorTable["France"] {
		t.Fatalf("unexpected cached anchor %+v", a)
	}
	if n := geo.callCount("France"); n != 1 {
		t.Errorf("expected geocoder hit once, got %d", n)
	}

	var stored domain.GeoAnchor
	if err := json.Unmarshal(cache.data["anchors:France"], &stored); err != nil {
		t.Fatalf("cache entry is not JSON: %v", err)
	}
	if stored.Source != "nominatim" {
		t.Errorf("expected source kept in cache, got %s", stored.Source)
	}
}

func TestResolverService_CancelledContext(t *testing.T) {
	svc := usecases.NewResolverService(tableGeocoder("static", anchorTable), nil, nil, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Resolve(ctx, []domain.VesselRecord{record(1, "A", "France")})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
