// Package gazetteer is the built-in country to coordinate table.
package gazetteer

import (
	"context"
	"sort"
	"strings"

	"github.com/usvmap/usvmap/internal/core/domain"
)

type entry struct {
	Code   string
	Name   string
	Center domain.GeoPoint
}

// Gazetteer implements ports.Geocoder from a static table. It never blocks
// and never fails transiently.
type Gazetteer struct {
	byName map[string]entry
}

// New indexes the built-in table by lower-cased country name and ISO code.
func New() *Gazetteer {
	g := &Gazetteer{byName: make(map[string]entry, 2*len(countries))}
	for code, e := range countries {
		e.Code = code
		g.byName[strings.ToLower(e.Name)] = e
		g.byName[strings.ToLower(code)] = e
	}
	return g
}

// Name identifies the provider in anchors and metrics.
func (g *Gazetteer) Name() string { return domain.AnchorStatic }

// Lookup returns the center of a country by name or alpha-2 code.
func (g *Gazetteer) Lookup(_ context.Context, country string) (domain.GeoPoint, error) {
	key := strings.ToLower(strings.TrimSpace(country))
	e, ok := g.byName[key]
	if !ok {
		// Alias spellings ("UK") are accepted as well.
		e, ok = g.byName[strings.ToLower(domain.NormalizeCountry(country))]
	}
	if !ok {
		return domain.GeoPoint{}, domain.ErrCountryNotFound
	}
	return e.Center, nil
}

// Anchors returns the whole table as anchors sorted by country name.
func (g *Gazetteer) Anchors() []domain.GeoAnchor {
	out := make([]domain.GeoAnchor, 0, len(countries))
	for _, e := range countries {
		out = append(out, domain.GeoAnchor{Country: e.Name, Point: e.Center, Source: domain.AnchorStatic})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}
