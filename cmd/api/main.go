package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/usvmap/usvmap/internal/adapters/csvsource"
	"github.com/usvmap/usvmap/internal/adapters/geocoding"
	"github.com/usvmap/usvmap/internal/adapters/http"
	"github.com/usvmap/usvmap/internal/adapters/memory"
	natsadapter "github.com/usvmap/usvmap/internal/adapters/nats"
	"github.com/usvmap/usvmap/internal/adapters/postgres"
	"github.com/usvmap/usvmap/internal/adapters/valkey"
	"github.com/usvmap/usvmap/internal/core/ports"
	"github.com/usvmap/usvmap/internal/core/usecases"
	"github.com/usvmap/usvmap/internal/pkg/config"
	"github.com/usvmap/usvmap/internal/pkg/logging"
	"github.com/usvmap/usvmap/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("usvmap-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.TempoAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Database: required by the postgres geocoder, otherwise only probed.
	var db *postgres.DB
	if cfg.Geocoder.Provider == config.ProviderPostgres {
		db, err = postgres.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
	}

	// Cache. The interface stays nil when valkey is down so the resolver
	// skips the shared cache instead of calling a dead client.
	var sharedCache ports.CacheService
	cache, err := valkey.New(cfg.Valkey.Addr)
	if err != nil {
		slog.Warn("valkey unavailable", "error", err)
	} else {
		defer cache.Close()
		sharedCache = cache
	}

	// NATS
	var publisher ports.EventPublisher
	pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats unavailable", "error", err)
	} else {
		defer pub.Close()
		publisher = pub
	}

	// Raw NATS connection for WebSocket relay
	natsConn, err := natsadapter.RawConn(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats ws conn unavailable", "error", err)
	} else {
		defer natsConn.Close()
	}

	// Geocoders
	primary, fallback, err := geocoding.Chain(cfg.Geocoder, db)
	if err != nil {
		log.Fatalf("geocoder: %v", err)
	}
	slog.Info("geocoder configured", "provider", primary.Name(), "fallback", fallback != nil)

	// Sessions
	var sessions ports.SessionStore
	switch cfg.Session.Store {
	case config.SessionValkey:
		if cache == nil {
			log.Fatalf("session store %q needs valkey", cfg.Session.Store)
		}
		sessions = valkey.NewSessionStore(cache, cfg.Session.TTL)
	default:
		sessions = memory.NewSessionStore(cfg.Session.MaxSessions, time.Duration(cfg.Session.TTL)*time.Second)
	}

	// Use cases
	resolver := usecases.NewResolverService(primary, fallback, sharedCache, cfg.Geocoder.CacheTTL)
	datasets, err := usecases.NewDatasetService(csvsource.New(), resolver, publisher, cfg.Dataset.Path, cfg.Layout.JitterRadius)
	if err != nil {
		log.Fatalf("dataset service: %v", err)
	}
	views, err := usecases.NewViewService(datasets, sessions, cfg.Viewport.Layout())
	if err != nil {
		log.Fatalf("view service: %v", err)
	}

	// Warm the dataset so the first visitor does not pay for geocoding.
	if ds, err := datasets.Current(ctx); err != nil {
		slog.Warn("initial dataset build failed", "path", cfg.Dataset.Path, "error", err)
	} else {
		slog.Info("dataset ready", "placed", len(ds.Placed), "dropped", ds.Dropped, "countries", len(ds.Countries))
	}
	if cfg.Dataset.WatchInterval > 0 {
		go datasets.Watch(ctx, time.Duration(cfg.Dataset.WatchInterval)*time.Second)
	}

	deps := &http.Dependencies{
		Datasets:       datasets,
		Views:          views,
		NATS:           natsConn,
		DB:             db,
		Cache:          cache,
		SessionCookie:  cfg.Session.CookieName,
		SessionTTL:     time.Duration(cfg.Session.TTL) * time.Second,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
		OpenAPIPath:    cfg.Server.OpenAPIPath,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    64 * 1024,
		AppName:      "USV Map",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr, "dataset", cfg.Dataset.Path)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
