package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usvmap/usvmap/internal/core/layout"
	"github.com/usvmap/usvmap/internal/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("usvmap-test")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "api/openapi.yaml", cfg.Server.OpenAPIPath)
	assert.Equal(t, config.ProviderStatic, cfg.Geocoder.Provider)
	assert.True(t, cfg.Geocoder.FallbackStatic)
	assert.Equal(t, 0.8, cfg.Layout.JitterRadius)
	assert.Equal(t, 10, cfg.Dataset.WatchInterval)
	assert.Equal(t, 3.5, cfg.Viewport.CloseZoom)
	assert.Equal(t, 1.2, cfg.Viewport.WideZoom)
	assert.Equal(t, config.SessionMemory, cfg.Session.Store)
	assert.Equal(t, "usvmap-test", cfg.Telemetry.ServiceName)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("USVMAP_LAYOUT_JITTER_RADIUS", "1.5")
	t.Setenv("USVMAP_VIEWPORT_ALL_CENTER", "fixed")
	t.Setenv("USVMAP_GEOCODER_PROVIDER", "nominatim")

	cfg, err := config.Load("usvmap-test")
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.Layout.JitterRadius)
	assert.Equal(t, layout.CenterFixed, cfg.Viewport.Layout().AllCenter)
	assert.Equal(t, config.ProviderNominatim, cfg.Geocoder.Provider)
}

func TestLoad_RejectsNonPositiveRadius(t *testing.T) {
	for _, r := range []string{"0", "-0.3"} {
		t.Setenv("USVMAP_LAYOUT_JITTER_RADIUS", r)
		_, err := config.Load("usvmap-test")
		require.Error(t, err, "radius %s", r)
		assert.Contains(t, err.Error(), "layout.jitter_radius")
	}
}

func validConfig() config.Config {
	return config.Config{
		Server:   config.ServerConfig{Port: 8080, ReadTimeout: 10, WriteTimeout: 10, RequestTimeout: 30},
		Dataset:  config.DatasetConfig{Path: "usv.csv"},
		Geocoder: config.GeocoderConfig{Provider: config.ProviderStatic},
		Layout:   config.LayoutConfig{JitterRadius: 0.8},
		Viewport: config.ViewportConfig{CloseZoom: 3.5, WideZoom: 1.2, AllCenter: "mean"},
		Session:  config.SessionConfig{Store: config.SessionMemory, CookieName: "usv_session", TTL: 60, MaxSessions: 10},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr []string
	}{
		{"valid", func(*config.Config) {}, nil},
		{"bad port", func(c *config.Config) { c.Server.Port = 70000 }, []string{"server.port"}},
		{"negative watch interval", func(c *config.Config) { c.Dataset.WatchInterval = -1 }, []string{"dataset.watch_interval"}},
		{"unknown provider", func(c *config.Config) { c.Geocoder.Provider = "bing" }, []string{"geocoder.provider"}},
		{"nominatim needs user agent", func(c *config.Config) {
			c.Geocoder.Provider = config.ProviderNominatim
			c.Geocoder.Nominatim = config.NominatimConfig{BaseURL: "http://x", MinInterval: 1000, Timeout: 5}
		}, []string{"geocoder.nominatim.user_agent"}},
		{"postgres needs database", func(c *config.Config) { c.Geocoder.Provider = config.ProviderPostgres }, []string{"database.host", "database.user"}},
		{"wide closer than close", func(c *config.Config) { c.Viewport.WideZoom = 8 }, []string{"viewport"}},
		{"unknown center", func(c *config.Config) { c.Viewport.AllCenter = "median" }, []string{"viewport"}},
		{"valkey sessions need addr", func(c *config.Config) { c.Session.Store = config.SessionValkey }, []string{"valkey.addr"}},
		{"collects every violation", func(c *config.Config) {
			c.Dataset.Path = ""
			c.Layout.JitterRadius = 0
			c.Session.TTL = 0
		}, []string{"dataset.path", "layout.jitter_radius", "session.ttl"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
