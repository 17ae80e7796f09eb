package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usvmap/usvmap/internal/core/domain"
)

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"UK", "United Kingdom"},
		{"  uk ", "United Kingdom"},
		{"U.K.", "United Kingdom"},
		{"USA", "United States"},
		{"United States of  America", "United States"},
		{"UAE", "United Arab Emirates"},
		{"Russia", "Russian Federation"},
		{"France", "France"},
		{"  Norway\t", "Norway"},
		{"Atlantis", "Atlantis"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizeCountry(tt.raw), "raw %q", tt.raw)
	}
}

func TestNormalizeCountry_Idempotent(t *testing.T) {
	inputs := []string{"France", " south  korea", "Atlantis", "United Kingdom"}
	for alias, canonical := range domain.CountryAliases() {
		inputs = append(inputs, alias, canonical)
	}
	for _, in := range inputs {
		once := domain.NormalizeCountry(in)
		assert.Equal(t, once, domain.NormalizeCountry(once), "input %q", in)
	}
}

func TestIsShowAll(t *testing.T) {
	assert.True(t, domain.IsShowAll(domain.ShowAll))
	assert.True(t, domain.IsShowAll("show all"))
	assert.True(t, domain.IsShowAll("   "))
	assert.False(t, domain.IsShowAll("France"))
}

func TestDataset_ByCountry(t *testing.T) {
	ds := &domain.Dataset{
		Placed: []domain.PlacedVessel{
			{VesselRecord: domain.VesselRecord{Name: "A", Country: "France"}},
			{VesselRecord: domain.VesselRecord{Name: "B", Country: "Norway"}},
			{VesselRecord: domain.VesselRecord{Name: "C", Country: "France"}},
		},
		Anchors:   map[string]domain.GeoAnchor{"France": {}, "Norway": {}},
		Countries: []string{"France", "Norway"},
	}

	assert.Len(t, ds.ByCountry(domain.ShowAll), 3)
	fr := ds.ByCountry("France")
	if assert.Len(t, fr, 2) {
		assert.Equal(t, "A", fr[0].Name)
		assert.Equal(t, "C", fr[1].Name)
	}
	assert.Empty(t, ds.ByCountry("Atlantis"))
	assert.True(t, ds.HasCountry("Norway"))
	assert.False(t, ds.HasCountry("Atlantis"))
}

func TestDataset_CountryMatchingIgnoresCase(t *testing.T) {
	ds := &domain.Dataset{
		Placed: []domain.PlacedVessel{
			{VesselRecord: domain.VesselRecord{Name: "A", Country: "France"}},
			{VesselRecord: domain.VesselRecord{Name: "B", Country: "Norway"}},
		},
		Anchors:   map[string]domain.GeoAnchor{"France": {}, "Norway": {}},
		Countries: []string{"France", "Norway"},
	}

	name, ok := ds.CanonicalCountry("fRANCE")
	assert.True(t, ok)
	assert.Equal(t, "France", name)
	assert.True(t, ds.HasCountry("norway"))
	assert.Len(t, ds.ByCountry("france"), 1)

	_, ok = ds.CanonicalCountry("atlantis")
	assert.False(t, ok)
}
