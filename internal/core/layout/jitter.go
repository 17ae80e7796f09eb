// Package layout places vessels on the map and drives the viewport state machine.
// Everything here is pure: no I/O, no clocks, no randomness.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/pkg/geospatial"
)

// ErrInvalidRadius is returned for a jitter radius that is not a positive finite number.
var ErrInvalidRadius = errors.New("invalid jitter radius")

// ValidateRadius checks a jitter radius in degrees.
func ValidateRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	return nil
}

// Jitter fans out vessels that share a country around the country's anchor.
//
// Groups keep input order: the i-th of N vessels of a country sits at angle
// 2πi/N on a circle of the given radius (degrees), a lone vessel sits on the
// anchor itself. The first anchor seen for a country is used for the whole
// group. The result is in input order.
func Jitter(resolved []domain.ResolvedVessel, radius float64) ([]domain.PlacedVessel, error) {
	if err := ValidateRadius(radius); err != nil {
		return nil, err
	}

	groups := make(map[string][]int)
	anchors := make(map[string]domain.GeoPoint)
	for i, rv := range resolved {
		c := rv.Vessel.Country
		if _, ok := anchors[c]; !ok {
			anchors[c] = rv.Anchor.Point
		}
		groups[c] = append(groups[c], i)
	}

	placed := make([]domain.PlacedVessel, len(resolved))
	for country, members := range groups {
		anchor := anchors[country]
		n := len(members)
		for i, idx := range members {
			dLat, dLon := geospatial.FanOutOffset(i, n, radius)
			placed[idx] = domain.PlacedVessel{
				VesselRecord: resolved[idx].Vessel,
				Anchor:       anchor,
				Position:     domain.GeoPoint{Lat: anchor.Lat + dLat, Lon: anchor.Lon + dLon},
			}
		}
	}
	return placed, nil
}
