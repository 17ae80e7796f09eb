package domain

import (
	"errors"
	"strings"
)

// ShowAll is the country-filter sentinel meaning "no filter".
const ShowAll = "Show All"

// ErrCountryNotFound is returned by geocoders that have no anchor for a country.
var ErrCountryNotFound = errors.New("country not found")

// countryAliases maps lower-cased aliases to canonical country names.
// Canonical names must never appear as keys, otherwise NormalizeCountry
// would stop being idempotent.
var countryAliases = map[string]string{
	"uk":                         "United Kingdom",
	"u.k.":                       "United Kingdom",
	"great britain":              "United Kingdom",
	"britain":                    "United Kingdom",
	"england":                    "United Kingdom",
	"scotland":                   "United Kingdom",
	"wales":                      "United Kingdom",
	"northern ireland":           "United Kingdom",
	"usa":                        "United States",
	"u.s.a.":                     "United States",
	"us":                         "United States",
	"u.s.":                       "United States",
	"united states of america":   "United States",
	"america":                    "United States",
	"uae":                        "United Arab Emirates",
	"u.a.e.":                     "United Arab Emirates",
	"russia":                     "Russian Federation",
	"korea":                      "South Korea",
	"republic of korea":          "South Korea",
	"korea, republic of":         "South Korea",
	"holland":                    "Netherlands",
	"the netherlands":            "Netherlands",
	"czech republic":             "Czechia",
	"türkiye":                    "Turkey",
	"turkiye":                    "Turkey",
	"prc":                        "China",
	"people's republic of china": "China",
}

// NormalizeCountry trims and collapses whitespace and applies the alias table.
// Names without an alias are returned as cleaned up, so the function is idempotent.
func NormalizeCountry(raw string) string {
	cleaned := strings.Join(strings.Fields(raw), " ")
	if canonical, ok := countryAliases[strings.ToLower(cleaned)]; ok {
		return canonical
	}
	return cleaned
}

// CountryAliases returns a copy of the alias table.
func CountryAliases() map[string]string {
	out := make(map[string]string, len(countryAliases))
	for k, v := range countryAliases {
		out[k] = v
	}
	return out
}

// IsShowAll reports whether a filter value means "no filter".
func IsShowAll(country string) bool {
	c := strings.TrimSpace(country)
	return c == "" || strings.EqualFold(c, ShowAll)
}
