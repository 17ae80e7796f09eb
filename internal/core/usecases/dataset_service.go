package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"

	"github.com/usvmap/usvmap/internal/core/domain"
	"github.com/usvmap/usvmap/internal/core/layout"
	"github.com/usvmap/usvmap/internal/core/ports"
	"github.com/usvmap/usvmap/internal/pkg/metrics"
	"github.com/usvmap/usvmap/internal/pkg/telemetry"
)

// DatasetService builds and memoizes the placed dataset for the input file.
// A new version is built only when the file's identity (size, mod time)
// changes; concurrent first requests share a single build.
type DatasetService struct {
	source    ports.RecordSource
	resolver  *ResolverService
	publisher ports.EventPublisher
	path      string
	radius    float64

	mu      sync.RWMutex
	current *domain.Dataset
	group   singleflight.Group
}

// NewDatasetService creates a new DatasetService. publisher may be nil.
func NewDatasetService(
	source ports.RecordSource,
	resolver *ResolverService,
	publisher ports.EventPublisher,
	path string,
	radius float64,
) (*DatasetService, error) {
	if err := layout.ValidateRadius(radius); err != nil {
		return nil, err
	}
	return &DatasetService{
		source:    source,
		resolver:  resolver,
		publisher: publisher,
		path:      path,
		radius:    radius,
	}, nil
}

// Current returns the dataset for the current version of the input file.
// If the file cannot be inspected, the last good dataset is served.
func (s *DatasetService) Current(ctx context.Context) (*domain.Dataset, error) {
	id, err := s.source.Stat(s.path)

	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()

	if err != nil {
		if cur != nil {
			slog.WarnContext(ctx, "dataset stat failed, serving last version", "path", s.path, "error", err)
			return cur, nil
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}
	if cur != nil && sameFile(cur.Source, id) {
		metrics.CacheHits.WithLabelValues("dataset").Inc()
		return cur, nil
	}
	metrics.CacheMisses.WithLabelValues("dataset").Inc()

	key := fmt.Sprintf("%s|%d|%d", id.Path, id.Size, id.ModTime.UnixNano())
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// The build outlives any single request that triggered it.
		return s.build(context.WithoutCancel(ctx), id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Dataset), nil
}

func (s *DatasetService) build(ctx context.Context, id domain.FileIdentity) (*domain.Dataset, error) {
	ctx, span := otel.Tracer(telemetry.TracerName).Start(ctx, telemetry.SpanDatasetBuild)
	defer span.End()
	span.SetAttributes(attribute.String(telemetry.AttrDataset, id.Path))

	start := time.Now()
	ds, err := s.assemble(ctx, id)
	metrics.DatasetLoadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DatasetLoads.WithLabelValues("error").Inc()
		span.RecordError(err)
		return nil, err
	}
	metrics.DatasetLoads.WithLabelValues("ok").Inc()
	metrics.DatasetVessels.Set(float64(len(ds.Placed)))
	span.SetAttributes(attribute.String(telemetry.AttrEncoding, ds.Encoding))

	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()

	slog.InfoContext(ctx, "dataset loaded",
		"path", id.Path,
		"records", ds.Total,
		"placed", len(ds.Placed),
		"dropped", ds.Dropped,
		"countries", len(ds.Countries),
		"encoding", ds.Encoding,
	)

	if s.publisher != nil {
		if err := s.publisher.PublishDatasetLoaded(ctx, ds.Summary()); err != nil {
			slog.WarnContext(ctx, "publish dataset loaded", "error", err)
		}
	}
	return ds, nil
}

func (s *DatasetService) assemble(ctx context.Context, id domain.FileIdentity) (*domain.Dataset, error) {
	loadCtx, span := otel.Tracer(telemetry.TracerName).Start(ctx, telemetry.SpanRecordsLoad)
	rs, err := s.source.Load(loadCtx, s.path)
	span.End()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	res, err := s.resolver.Resolve(ctx, rs.Records)
	if err != nil {
		return nil, fmt.Errorf("resolve anchors: %w", err)
	}

	_, span = otel.Tracer(telemetry.TracerName).Start(ctx, telemetry.SpanJitter)
	placed, err := layout.Jitter(res.Vessels, s.radius)
	span.End()
	if err != nil {
		return nil, err
	}

	countries := make([]string, 0, len(res.Anchors))
	for c := range res.Anchors {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	return &domain.Dataset{
		Source:    id,
		Placed:    placed,
		Anchors:   res.Anchors,
		Countries: countries,
		Total:     len(rs.Records),
		Dropped:   res.Dropped,
		Encoding:  rs.Encoding,
		LoadedAt:  time.Now().UTC(),
	}, nil
}

// Watch re-checks the input file every interval until ctx is done, so an
// edited file is rebuilt and announced without waiting for a request.
func (s *DatasetService) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "watching dataset", "path", s.path, "interval", interval.String())
	for {
		select {
		case <-ticker.C:
			if _, err := s.Current(ctx); err != nil {
				slog.WarnContext(ctx, "dataset refresh failed", "path", s.path, "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func sameFile(a, b domain.FileIdentity) bool {
	return a.Path == b.Path && a.Size == b.Size && a.ModTime.Equal(b.ModTime)
}
