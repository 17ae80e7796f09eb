package usecases

import (
	"context"
	"log/slog"

	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/layout"
	"github.com/usvmap/usvmap/internal/core/ports"
)

// ViewService runs render passes for browser sessions.
type ViewService struct {
	datasets *DatasetService
	sessions ports.SessionStore
	cfg      layout.ViewportConfig
}

// NewViewService creates a new ViewService.
func NewViewService(datasets *DatasetService, sessions ports.SessionStore, cfg layout.ViewportConfig) (*ViewService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ViewService{datasets: datasets, sessions: sessions, cfg: cfg}, nil
}

// Apply feeds one interaction into the session's state machine and returns
// the resulting view. A session without stored state starts from ALL.
// An unreadable session store degrades to a fresh state instead of failing.
func (s *ViewService) Apply(ctx context.Context, sessionID string, ev domain.ViewEvent) (*domain.View, error) {
	ds, err := s.datasets.Current(ctx)
	if err != nil {
		return nil, err
	}

	state := domain.InitialViewportState()
	if stored, ok, err := s.sessions.Get(ctx, sessionID); err != nil {
		slog.WarnContext(ctx, "session load failed", "error", err)
	} else if ok {
		state = stored
	}

	next, err := layout.Step(state, ev, ds.Placed, s.cfg)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, sessionID, next); err != nil {
		slog.WarnContext(ctx, "session save failed", "error", err)
	}

	return &domain.View{
		State:     next,
		Vessels:   ds.ByCountry(next.Country),
		Countries: ds.CountryOptions(),
		Dataset:   ds.Summary(),
	}, nil
}
