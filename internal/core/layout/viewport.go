package layout

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/pkg/geospatial"
)

var (
	ErrInvalidZoom       = errors.New("invalid zoom level")
	ErrUnknownCenterMode = errors.New("unknown center mode")
	ErrUnknownEvent      = errors.New("unknown view event")
)

// MaxZoom is the deepest zoom level supported by web map tiles.
const MaxZoom = 22

// CenterMode selects how the ALL viewport is centered.
type CenterMode string

const (
	CenterMean  CenterMode = "mean"  // mean over all placed vessels
	CenterFixed CenterMode = "fixed" // ViewportConfig.GlobalAnchor
)

// ViewportConfig holds the zoom levels and the ALL-view center policy.
type ViewportConfig struct {
	CloseZoom    float64
	WideZoom     float64
	AllCenter    CenterMode
	GlobalAnchor domain.GeoPoint
}

// DefaultViewportConfig mirrors the historic dashboard: zoom 3.5 for a country,
// 1.2 for the world, centered on the mean of all vessels.
func DefaultViewportConfig() ViewportConfig {
	return ViewportConfig{
		CloseZoom:    3.5,
		WideZoom:     1.2,
		AllCenter:    CenterMean,
		GlobalAnchor: domain.GeoPoint{Lat: 20, Lon: 0},
	}
}

// Validate rejects zoom levels and center modes the map cannot honour.
func (c ViewportConfig) Validate() error {
	levels := []struct {
		name string
		zoom float64
	}{
		{"close", c.CloseZoom},
		{"wide", c.WideZoom},
	}
	for _, l := range levels {
		if math.IsNaN(l.zoom) || l.zoom < 0 || l.zoom > MaxZoom {
			return fmt.Errorf("%w: %s zoom %v outside 0-%d", ErrInvalidZoom, l.name, l.zoom, MaxZoom)
		}
	}
	if c.WideZoom > c.CloseZoom {
		return fmt.Errorf("%w: wide zoom %v is closer than close zoom %v", ErrInvalidZoom, c.WideZoom, c.CloseZoom)
	}
	switch c.AllCenter {
	case CenterMean:
	case CenterFixed:
		if !c.GlobalAnchor.Valid() {
			return fmt.Errorf("%w: fixed center %+v is not a valid coordinate", ErrUnknownCenterMode, c.GlobalAnchor)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCenterMode, c.AllCenter)
	}
	return nil
}

// Reduce applies one interaction to the session state. It only touches the
// filter and the transient reset flag; the viewport itself is left to Layout.
func Reduce(state domain.ViewportState, ev domain.ViewEvent) (domain.ViewportState, error) {
	next := state
	switch ev.Kind {
	case domain.EventRender, "":
	case domain.EventSelectCountry:
		next.ZoomReset = false
		if domain.IsShowAll(ev.Country) {
			next.Country = domain.ShowAll
			next.Mode = domain.ModeAll
		} else {
			next.Country = domain.NormalizeCountry(ev.Country)
			next.Mode = domain.ModeFiltered
		}
	case domain.EventZoomToAll:
		next.ZoomReset = true
	case domain.EventClearFilter:
		// Filter and zoom move together; Layout sees both in the same pass.
		next.Country = domain.ShowAll
		next.Mode = domain.ModeAll
		next.ZoomReset = true
	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
	return next, nil
}

// Layout computes the viewport for a state against the placed vessels and
// consumes the zoom-reset flag. The filter matches countries case-insensitively
// and takes the dataset's spelling. Calling it again on its own output is a no-op.
func Layout(state domain.ViewportState, placed []domain.PlacedVessel, cfg ViewportConfig) domain.ViewportState {
	next := state
	if domain.IsShowAll(next.Country) {
		next.Country = domain.ShowAll
	}

	var members []domain.PlacedVessel
	if next.Country != domain.ShowAll {
		for _, p := range placed {
			if strings.EqualFold(p.Country, next.Country) {
				members = append(members, p)
			}
		}
		if len(members) > 0 {
			next.Country = members[0].Country
		}
		if len(members) == 0 {
			// The country left the dataset: fall back to ALL in one step.
			next.Country = domain.ShowAll
		}
	}

	if next.Country == domain.ShowAll || next.ZoomReset {
		next.Mode = domain.ModeAll
		next.Zoom = cfg.WideZoom
		next.Center = allCenter(placed, cfg)
	} else {
		next.Mode = domain.ModeFiltered
		next.Zoom = cfg.CloseZoom
		next.Center = meanPosition(members, cfg.GlobalAnchor)
	}
	next.ZoomReset = false
	return next
}

// Step runs one full render pass: Reduce then Layout.
func Step(state domain.ViewportState, ev domain.ViewEvent, placed []domain.PlacedVessel, cfg ViewportConfig) (domain.ViewportState, error) {
	if err := cfg.Validate(); err != nil {
		return state, err
	}
	next, err := Reduce(state, ev)
	if err != nil {
		return state, err
	}
	return Layout(next, placed, cfg), nil
}

func allCenter(placed []domain.PlacedVessel, cfg ViewportConfig) domain.GeoPoint {
	if cfg.AllCenter == CenterFixed {
		return cfg.GlobalAnchor
	}
	return meanPosition(placed, cfg.GlobalAnchor)
}

func meanPosition(placed []domain.PlacedVessel, fallback domain.GeoPoint) domain.GeoPoint {
	lats := make([]float64, len(placed))
	lons := make([]float64, len(placed))
	for i, p := range placed {
		lats[i] = p.Position.Lat
		lons[i] = p.Position.Lon
	}
	lat, lon, ok := geospatial.Centroid(lats, lons)
	if !ok {
		return fallback
	}
	return domain.GeoPoint{Lat: lat, Lon: lon}
}
