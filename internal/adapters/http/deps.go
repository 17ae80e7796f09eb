package http

import (
	"time"

	"github.com/nats-io/nats.go"

	"github.com/usvmap/usvmap/internal/adapters/postgres"
	"github.com/usvmap/usvmap/internal/adapters/valkey"
	"github.com/usvmap/usvmap/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
// NATS, DB and Cache are optional and only feed the WebSocket relay and the
// readiness probe.
type Dependencies struct {
	Datasets *usecases.DatasetService
	Views    *usecases.ViewService
	NATS     *nats.Conn
	DB       *postgres.DB
	Cache    *valkey.Cache

	SessionCookie  string
	SessionTTL     time.Duration
	RequestTimeout time.Duration
	OpenAPIPath    string
}

func (d *Dependencies) cookieName() string {
	if d.SessionCookie == "" {
		return "usv_session"
	}
	return d.SessionCookie
}

func (d *Dependencies) requestTimeout() time.Duration {
	if d.RequestTimeout <= 0 {
		return 15 * time.Second
	}
	return d.RequestTimeout
}

func (d *Dependencies) openAPIPath() string {
	if d.OpenAPIPath == "" {
		return "api/openapi.yaml"
	}
	return d.OpenAPIPath
}
