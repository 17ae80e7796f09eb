package domain

import (
	"strings"
	"time"
)

// VesselRecord is one row of the input file. It is read-only once loaded.
type VesselRecord struct {
	Row          int               `json:"row"`
	Name         string            `json:"name"`
	Manufacturer string            `json:"manufacturer"`
	RawCountry   string            `json:"raw_country"`
	Country      string            `json:"country"` // normalized
	LengthM      *float64          `json:"length_m,omitempty"`
	Coordinates  *GeoPoint         `json:"coordinates,omitempty"` // explicit Latitude/Longitude columns
	Extra        map[string]string `json:"extra,omitempty"`
}

// ResolvedVessel is a record paired with its country's anchor, before jitter.
type ResolvedVessel struct {
	Vessel VesselRecord
	Anchor GeoAnchor
}

// PlacedVessel is a record with its jittered map position.
type PlacedVessel struct {
	VesselRecord
	Anchor   GeoPoint `json:"anchor"`
	Position GeoPoint `json:"position"`
}

// FileIdentity identifies one version of the input file.
type FileIdentity struct {
	Path    string    `json:"path"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Dataset is the memoized result of one load, resolve and jitter pass.
type Dataset struct {
	Source    FileIdentity
	Placed    []PlacedVessel
	Anchors   map[string]GeoAnchor
	Countries []string // sorted, distinct, normalized
	Total     int
	Dropped   int
	Encoding  string
	LoadedAt  time.Time
}

// ByCountry returns the placed vessels of one country, or all of them for ShowAll.
// Country names compare case-insensitively.
func (d *Dataset) ByCountry(country string) []PlacedVessel {
	if IsShowAll(country) {
		return d.Placed
	}
	out := make([]PlacedVessel, 0)
	for _, p := range d.Placed {
		if strings.EqualFold(p.Country, country) {
			out = append(out, p)
		}
	}
	return out
}

// HasCountry reports whether any placed vessel belongs to country.
func (d *Dataset) HasCountry(country string) bool {
	_, ok := d.CanonicalCountry(country)
	return ok
}

// CanonicalCountry returns the dataset's spelling of country.
func (d *Dataset) CanonicalCountry(country string) (string, bool) {
	if _, ok := d.Anchors[country]; ok {
		return country, true
	}
	for _, c := range d.Countries {
		if strings.EqualFold(c, country) {
			return c, true
		}
	}
	return "", false
}

// Summary builds the event payload for this dataset version.
func (d *Dataset) Summary() DatasetSummary {
	return DatasetSummary{
		Source:    d.Source,
		Placed:    len(d.Placed),
		Dropped:   d.Dropped,
		Countries: len(d.Countries),
		Encoding:  d.Encoding,
		LoadedAt:  d.LoadedAt,
	}
}

// DatasetSummary describes a dataset version without its rows.
type DatasetSummary struct {
	Source    FileIdentity `json:"source"`
	Placed    int          `json:"placed"`
	Dropped   int          `json:"dropped"`
	Countries int          `json:"countries"`
	Encoding  string       `json:"encoding"`
	LoadedAt  time.Time    `json:"loaded_at"`
}

// RecordSet is the decoded content of one version of the input file.
type RecordSet struct {
	Source   FileIdentity
	Records  []VesselRecord
	Encoding string // "utf-8" or the fallback charset name
}

// CountryOptions returns the selector entries: the ShowAll sentinel followed by
// the sorted countries.
func (d *Dataset) CountryOptions() []string {
	return append([]string{ShowAll}, d.Countries...)
}
