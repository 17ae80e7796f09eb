package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/usvmap/usvmap/internal/core/domain"
)

const batchSize = 500

// AnchorRepo implements ports.AnchorRepository and ports.Geocoder over the
// country_anchors table.
type AnchorRepo struct {
	db *DB
}

func NewAnchorRepo(db *DB) *AnchorRepo {
	return &AnchorRepo{db: db}
}

// Name identifies the provider in anchors and metrics.
func (r *AnchorRepo) Name() string { return domain.AnchorPostgres }

// Lookup implements ports.Geocoder.
func (r *AnchorRepo) Lookup(ctx context.Context, country string) (domain.GeoPoint, error) {
	a, err := r.GetByCountry(ctx, country)
	if err != nil {
		return domain.GeoPoint{}, err
	}
	return a.Point, nil
}

// GetByCountry matches the country name case-insensitively.
func (r *AnchorRepo) GetByCountry(ctx context.Context, country string) (*domain.GeoAnchor, error) {
	a := &domain.GeoAnchor{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT country, lat, lon, source
		FROM country_anchors WHERE lower(country) = lower($1)
	`, country).Scan(&a.Country, &a.Point.Lat, &a.Point.Lon, &a.Source)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCountryNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AnchorRepo) List(ctx context.Context) ([]domain.GeoAnchor, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT country, lat, lon, source
		FROM country_anchors ORDER BY country
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var anchors []domain.GeoAnchor
	for rows.Next() {
		var a domain.GeoAnchor
		if err := rows.Scan(&a.Country, &a.Point.Lat, &a.Point.Lon, &a.Source); err != nil {
			return nil, err
		}
		anchors = append(anchors, a)
	}
	return anchors, rows.Err()
}

// UpsertBatch writes anchors in batches of batchSize.
func (r *AnchorRepo) UpsertBatch(ctx context.Context, anchors []domain.GeoAnchor) error {
	batch := &pgx.Batch{}
	count := 0
	for _, a := range anchors {
		batch.Queue(`
			INSERT INTO country_anchors (country, lat, lon, source, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (country) DO UPDATE
			SET lat = EXCLUDED.lat, lon = EXCLUDED.lon,
			    source = EXCLUDED.source, updated_at = now()
		`, a.Country, a.Point.Lat, a.Point.Lon, a.Source)
		count++

		if count >= batchSize {
			if err := r.flushBatch(ctx, batch, count); err != nil {
				return err
			}
			batch = &pgx.Batch{}
			count = 0
		}
	}
	if count > 0 {
		return r.flushBatch(ctx, batch, count)
	}
	return nil
}

func (r *AnchorRepo) flushBatch(ctx context.Context, batch *pgx.Batch, count int) error {
	br := r.db.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < count; i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch item %d: %w", i, err)
		}
	}
	return nil
}
