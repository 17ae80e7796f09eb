// Package nominatim geocodes country names against a Nominatim-compatible
// search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// Config configures the client.
type Config struct {
	BaseURL     string
	UserAgent   string
	MinInterval time.Duration // pacing between consecutive requests
	Timeout     time.Duration // per request, pacing excluded
}

// Client implements ports.Geocoder. Requests are serialized through a
// limiter so the public service's usage policy (one request per second)
// holds no matter how many callers there are.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// New creates a new Client.
func New(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:     cfg,
		http:    &http.Client{},
		limiter: rate.NewLimiter(rate.Every(cfg.MinInterval), 1),
	}
}

// Name identifies the provider in anchors and metrics.
func (c *Client) Name() string { return domain.AnchorNominatim }

// Lookup queries the search endpoint for a country and returns its first hit.
func (c *Client) Lookup(ctx context.Context, country string) (domain.GeoPoint, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("nominatim pacing: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	q := url.Values{}
	q.Set("country", country)
	q.Set("format", "json")
	q.Set("limit", "1")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return domain.GeoPoint{}, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("nominatim request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return domain.GeoPoint{}, fmt.Errorf("nominatim: unexpected status %s", resp.Status)
	}

	var places []place
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&places); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("nominatim decode: %w", err)
	}
	if len(places) == 0 {
		return domain.GeoPoint{}, domain.ErrCountryNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("nominatim lat %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("nominatim lon %q: %w", places[0].Lon, err)
	}
	return domain.GeoPoint{Lat: lat, Lon: lon}, nil
}
