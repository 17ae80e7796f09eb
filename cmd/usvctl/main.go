// Command usvctl resolves a vessel file from the command line and replays
// viewport interactions against it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/usvmap/usvmap/internal/adapters/csvsource"
	"github.com/usvmap/usvmap/internal/adapters/geocoding"
	"github.com/usvmap/usvmap/internal/adapters/postgres"
	"github.com/usvmap/usvmap/internal/core/usecases"
	"github.com/usvmap/usvmap/internal/pkg/config"
	"github.com/usvmap/usvmap/internal/pkg/logging"
)

var (
	rootCmd = &cobra.Command{
		Use:           "usvctl",
		Short:         "Inspect how vessels are anchored and laid out on the map",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logging.SetupWriter(os.Stderr, level, "text")
			return nil
		},
	}

	verbose  bool
	filePath string
	provider string
	radius   float64
	comma    string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&filePath, "file", "f", "", "vessel CSV file (default: dataset.path from config)")
	flags.StringVar(&provider, "provider", "", "geocoder provider: static, nominatim or postgres (default: from config)")
	flags.Float64Var(&radius, "radius", 0, "jitter radius in degrees (default: from config)")
	flags.StringVar(&comma, "comma", ",", "CSV field separator")
}

// loadConfig reads the shared configuration and applies the command-line
// overrides on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load("usvctl")
	if err != nil {
		return nil, err
	}
	if filePath != "" {
		cfg.Dataset.Path = filePath
	}
	if provider != "" {
		cfg.Geocoder.Provider = provider
	}
	if radius != 0 {
		cfg.Layout.JitterRadius = radius
	}
	return cfg, cfg.Validate()
}

// newDatasetService wires the file source and the geocoder chain without
// the server's cache and broker. The returned func releases the database
// connection opened for the postgres provider.
func newDatasetService(ctx context.Context, cfg *config.Config) (*usecases.DatasetService, func(), error) {
	r := []rune(comma)
	if len(r) != 1 {
		return nil, nil, fmt.Errorf("--comma must be a single character, got %q", comma)
	}

	var db *postgres.DB
	cleanup := func() {}
	if cfg.Geocoder.Provider == config.ProviderPostgres {
		var err error
		if db, err = postgres.New(ctx, cfg.Database.DSN()); err != nil {
			return nil, nil, fmt.Errorf("database: %w", err)
		}
		cleanup = db.Close
	}

	primary, fallback, err := geocoding.Chain(cfg.Geocoder, db)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	resolver := usecases.NewResolverService(primary, fallback, nil, 0)
	svc, err := usecases.NewDatasetService(csvsource.New().WithComma(r[0]), resolver, nil, cfg.Dataset.Path, cfg.Layout.JitterRadius)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
