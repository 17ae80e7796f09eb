package geospatial

import "math"

// FanOutOffset returns the (dLat, dLon) offset of the i-th of n points spread at
// equal angular spacing on a circle of the given radius, starting at angle 0.
// A single point gets no offset.
func FanOutOffset(i, n int, radius float64) (dLat, dLon float64) {
	if n <= 1 {
		return 0, 0
	}
	theta := 2 * math.Pi * float64(i) / float64(n)
	return radius * math.Sin(theta), radius * math.Cos(theta)
}

// Centroid returns the arithmetic mean of the given coordinates.
// ok is false when no points are given.
func Centroid(lats, lons []float64) (lat, lon float64, ok bool) {
	if len(lats) == 0 || len(lats) != len(lons) {
		return 0, 0, false
	}
	for i := range lats {
		lat += lats[i]
		lon += lons[i]
	}
	n := float64(len(lats))
	return lat / n, lon / n, true
}
