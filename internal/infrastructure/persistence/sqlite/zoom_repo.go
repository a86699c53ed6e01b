package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/repository"
	"github.com/bnema/miniworld/internal/logging"
)

type zoomRepo struct {
	db *sql.DB
}

// NewZoomRepository creates a new SQLite-backed zoom repository.
func NewZoomRepository(db *sql.DB) repository.ZoomRepository {
	return &zoomRepo{db: db}
}

func (r *zoomRepo) Get(ctx context.Context, domain string) (*entity.ZoomLevel, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("domain", domain).Msg("getting zoom level")

	row := r.db.QueryRowContext(ctx,
		`SELECT domain, zoom_factor, updated_at FROM zoom_levels WHERE domain = ?`, domain)

	level, err := scanZoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query zoom level %s: %w", domain, err)
	}
	return level, nil
}

func (r *zoomRepo) Set(ctx context.Context, level *entity.ZoomLevel) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("domain", level.Domain).Float64("factor", level.ZoomFactor).Msg("setting zoom level")

	updated := level.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO zoom_levels (domain, zoom_factor, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(domain) DO UPDATE SET
			zoom_factor = excluded.zoom_factor,
			updated_at = excluded.updated_at`,
		level.Domain, level.ZoomFactor, updated.Unix())
	if err != nil {
		return fmt.Errorf("save zoom level %s: %w", level.Domain, err)
	}
	return nil
}

func (r *zoomRepo) Delete(ctx context.Context, domain string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM zoom_levels WHERE domain = ?`, domain); err != nil {
		return fmt.Errorf("delete zoom level %s: %w", domain, err)
	}
	return nil
}

func (r *zoomRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM zoom_levels`); err != nil {
		return fmt.Errorf("delete zoom levels: %w", err)
	}
	return nil
}

func (r *zoomRepo) GetAll(ctx context.Context) ([]*entity.ZoomLevel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT domain, zoom_factor, updated_at FROM zoom_levels ORDER BY domain`)
	if err != nil {
		return nil, fmt.Errorf("list zoom levels: %w", err)
	}
	defer rows.Close()

	var levels []*entity.ZoomLevel
	for rows.Next() {
		level, err := scanZoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan zoom level: %w", err)
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanZoom(s scanner) (*entity.ZoomLevel, error) {
	var (
		level   entity.ZoomLevel
		updated int64
	)
	if err := s.Scan(&level.Domain, &level.ZoomFactor, &updated); err != nil {
		return nil, err
	}
	level.UpdatedAt = time.Unix(updated, 0)
	return &level, nil
}
