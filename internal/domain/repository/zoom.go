package repository

import (
	"context"

	"github.com/bnema/miniworld/internal/domain/entity"
)

// ZoomRepository defines operations for per-host zoom level persistence.
type ZoomRepository interface {
	// Get retrieves the zoom level for a host.
	// Returns nil if no custom zoom is set.
	Get(ctx context.Context, domain string) (*entity.ZoomLevel, error)

	// Set saves or updates the zoom level for a host.
	Set(ctx context.Context, level *entity.ZoomLevel) error

	// Delete removes the custom zoom level for a host.
	Delete(ctx context.Context, domain string) error

	// DeleteAll removes every custom zoom level.
	DeleteAll(ctx context.Context) error

	// GetAll retrieves all custom zoom levels ordered by host.
	GetAll(ctx context.Context) ([]*entity.ZoomLevel, error)
}
