package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/layout"
)

// Geocoder providers.
const (
	ProviderStatic    = "static"
	ProviderNominatim = "nominatim"
	ProviderPostgres  = "postgres"
)

// Session stores.
const (
	SessionMemory = "memory"
	SessionValkey = "valkey"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Geocoder  GeocoderConfig  `mapstructure:"geocoder"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Viewport  ViewportConfig  `mapstructure:"viewport"`
	Session   SessionConfig   `mapstructure:"session"`
	Database  DatabaseConfig  `mapstructure:"database"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Valkey    ValkeyConfig    `mapstructure:"valkey"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port           int    `mapstructure:"port"`
	ReadTimeout    int    `mapstructure:"read_timeout"`
	WriteTimeout   int    `mapstructure:"write_timeout"`
	RequestTimeout int    `mapstructure:"request_timeout"`
	AllowOrigins   string `mapstructure:"allow_origins"`
	OpenAPIPath    string `mapstructure:"openapi_path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatasetConfig struct {
	Path          string `mapstructure:"path"`
	WatchInterval int    `mapstructure:"watch_interval"` // seconds, 0 disables
}

type GeocoderConfig struct {
	Provider       string          `mapstructure:"provider"`
	FallbackStatic bool            `mapstructure:"fallback_static"`
	CacheTTL       int             `mapstructure:"cache_ttl"` // seconds, shared cache only
	Nominatim      NominatimConfig `mapstructure:"nominatim"`
}

type NominatimConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	UserAgent   string `mapstructure:"user_agent"`
	MinInterval int    `mapstructure:"min_interval_ms"`
	Timeout     int    `mapstructure:"timeout"` // seconds per call
}

type LayoutConfig struct {
	JitterRadius float64 `mapstructure:"jitter_radius"` // degrees
}

type ViewportConfig struct {
	CloseZoom float64 `mapstructure:"close_zoom"`
	WideZoom  float64 `mapstructure:"wide_zoom"`
	AllCenter string  `mapstructure:"all_center"`
	GlobalLat float64 `mapstructure:"global_lat"`
	GlobalLon float64 `mapstructure:"global_lon"`
}

// Layout converts the section into the layout engine's configuration.
func (v ViewportConfig) Layout() layout.ViewportConfig {
	return layout.ViewportConfig{
		CloseZoom:    v.CloseZoom,
		WideZoom:     v.WideZoom,
		AllCenter:    layout.CenterMode(v.AllCenter),
		GlobalAnchor: domain.GeoPoint{Lat: v.GlobalLat, Lon: v.GlobalLon},
	}
}

type SessionConfig struct {
	Store       string `mapstructure:"store"`
	CookieName  string `mapstructure:"cookie_name"`
	TTL         int    `mapstructure:"ttl"` // seconds
	MaxSessions int    `mapstructure:"max_sessions"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type NATSConfig struct {
	URL string `mapstructure:"url"`
}

type ValkeyConfig struct {
	Addr string `mapstructure:"addr"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	TempoAddr   string `mapstructure:"tempo_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()
	setDefaults(v, service)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: USVMAP_LAYOUT_JITTER_RADIUS → layout.jitter_radius
	v.SetEnvPrefix("USVMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, service string) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.request_timeout", 30)
	v.SetDefault("server.allow_origins", "http://localhost:3000, http://localhost:5173")
	v.SetDefault("server.openapi_path", "api/openapi.yaml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("dataset.path", "data/usv.csv")
	v.SetDefault("dataset.watch_interval", 10)
	v.SetDefault("geocoder.provider", ProviderStatic)
	v.SetDefault("geocoder.fallback_static", true)
	v.SetDefault("geocoder.cache_ttl", 30*24*3600)
	v.SetDefault("geocoder.nominatim.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.nominatim.user_agent", "usvmap/1.0")
	v.SetDefault("geocoder.nominatim.min_interval_ms", 1000)
	v.SetDefault("geocoder.nominatim.timeout", 5)
	v.SetDefault("layout.jitter_radius", 0.8)
	v.SetDefault("viewport.close_zoom", 3.5)
	v.SetDefault("viewport.wide_zoom", 1.2)
	v.SetDefault("viewport.all_center", string(layout.CenterMean))
	v.SetDefault("viewport.global_lat", 20.0)
	v.SetDefault("viewport.global_lon", 0.0)
	v.SetDefault("session.store", SessionMemory)
	v.SetDefault("session.cookie_name", "usv_session")
	v.SetDefault("session.ttl", 24*3600)
	v.SetDefault("session.max_sessions", 10000)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "usvmap")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "usvmap")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.tempo_addr", "tempo:4317")
	v.SetDefault("telemetry.enabled", false)
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "server.request_timeout must be positive")
	}
	if c.Dataset.Path == "" {
		errs = append(errs, "dataset.path is required")
	}
	if c.Dataset.WatchInterval < 0 {
		errs = append(errs, "dataset.watch_interval must not be negative")
	}

	switch c.Geocoder.Provider {
	case ProviderStatic:
	case ProviderNominatim:
		if c.Geocoder.Nominatim.BaseURL == "" {
			errs = append(errs, "geocoder.nominatim.base_url is required")
		}
		if c.Geocoder.Nominatim.UserAgent == "" {
			errs = append(errs, "geocoder.nominatim.user_agent is required")
		}
		if c.Geocoder.Nominatim.MinInterval <= 0 {
			errs = append(errs, "geocoder.nominatim.min_interval_ms must be positive")
		}
		if c.Geocoder.Nominatim.Timeout <= 0 {
			errs = append(errs, "geocoder.nominatim.timeout must be positive")
		}
	case ProviderPostgres:
		if c.Database.Host == "" {
			errs = append(errs, "database.host is required")
		}
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", c.Database.Port))
		}
		if c.Database.User == "" {
			errs = append(errs, "database.user is required")
		}
		if c.Database.DBName == "" {
			errs = append(errs, "database.dbname is required")
		}
	default:
		errs = append(errs, fmt.Sprintf("geocoder.provider must be static, nominatim or postgres, got %q", c.Geocoder.Provider))
	}

	if err := layout.ValidateRadius(c.Layout.JitterRadius); err != nil {
		errs = append(errs, "layout.jitter_radius: "+err.Error())
	}
	if err := c.Viewport.Layout().Validate(); err != nil {
		errs = append(errs, "viewport: "+err.Error())
	}

	switch c.Session.Store {
	case SessionMemory:
		if c.Session.MaxSessions <= 0 {
			errs = append(errs, "session.max_sessions must be positive")
		}
	case SessionValkey:
		if c.Valkey.Addr == "" {
			errs = append(errs, "valkey.addr is required")
		}
	default:
		errs = append(errs, fmt.Sprintf("session.store must be memory or valkey, got %q", c.Session.Store))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, "session.cookie_name is required")
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, "session.ttl must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
