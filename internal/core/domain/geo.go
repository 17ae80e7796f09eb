package domain

import "math"

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the point lies inside the WGS 84 coordinate ranges.
func (p GeoPoint) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Anchor sources.
const (
	AnchorExplicit  = "explicit"
	AnchorStatic    = "static"
	AnchorNominatim = "nominatim"
	AnchorPostgres  = "postgres"
)

// GeoAnchor is the resolved coordinate representing a country as a whole.
type GeoAnchor struct {
	Country string   `json:"country"`
	Point   GeoPoint `json:"point"`
	Source  string   `json:"source"`
}
