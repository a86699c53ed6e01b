package dialog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/miniworld/internal/domain/entity"
)

type zoomStore interface {
	GetAll(ctx context.Context) ([]*entity.ZoomLevel, error)
	SetZoomPercent(ctx context.Context, host string, percent int) (bool, error)
	ResetZoom(ctx context.Context, domain string) error
	ClearAll(ctx context.Context) error
}

// ZoomRow is one line of the zoom level list.
type ZoomRow struct {
	Host      string
	Percent   int
	UpdatedAt time.Time
}

// String renders the row as "host | 125%".
func (r ZoomRow) String() string {
	return fmt.Sprintf("%s | %d%%", r.Host, r.Percent)
}

// ZoomLevelManager lists per-host zoom levels.
type ZoomLevelManager struct {
	store    zoomStore
	rows     []ZoomRow
	selected int
}

// NewZoomLevelManager creates the manager model. Call Load before reading rows.
func NewZoomLevelManager(store zoomStore) *ZoomLevelManager {
	return &ZoomLevelManager{store: store, selected: -1}
}

// Load refreshes the rows, sorted by host.
func (m *ZoomLevelManager) Load(ctx context.Context) error {
	levels, err := m.store.GetAll(ctx)
	if err != nil {
		return err
	}

	m.rows = make([]ZoomRow, 0, len(levels))
	for _, z := range levels {
		m.rows = append(m.rows, ZoomRow{Host: z.Domain, Percent: z.Percentage(), UpdatedAt: z.UpdatedAt})
	}
	sort.Slice(m.rows, func(i, j int) bool { return m.rows[i].Host < m.rows[j].Host })

	if m.selected >= len(m.rows) {
		m.selected = -1
	}
	return nil
}

// Rows returns the rows from the last Load.
func (m *ZoomLevelManager) Rows() []ZoomRow {
	return m.rows
}

// Select highlights the row at index; -1 clears the selection.
func (m *ZoomLevelManager) Select(index int) {
	if index < -1 || index >= len(m.rows) {
		index = -1
	}
	m.selected = index
}

// Selected returns the highlighted row.
func (m *ZoomLevelManager) Selected() (ZoomRow, bool) {
	if m.selected < 0 {
		return ZoomRow{}, false
	}
	return m.rows[m.selected], true
}

// DeleteSelected removes the highlighted row. It is a no-op without a selection.
func (m *ZoomLevelManager) DeleteSelected(ctx context.Context) error {
	row, ok := m.Selected()
	if !ok {
		return nil
	}
	if err := m.store.ResetZoom(ctx, row.Host); err != nil {
		return err
	}
	m.selected = -1
	return m.Load(ctx)
}

// DeleteAll removes every row once confirm agrees. It reports whether
// anything was deleted.
func (m *ZoomLevelManager) DeleteAll(ctx context.Context, confirm func() bool) (bool, error) {
	if len(m.rows) == 0 || (confirm != nil && !confirm()) {
		return false, nil
	}
	if err := m.store.ClearAll(ctx); err != nil {
		return false, err
	}
	m.selected = -1
	return true, m.Load(ctx)
}

// AddZoomLevel stores percent for host, replacing any existing entry.
// 100% is the default and removes the entry instead.
func (m *ZoomLevelManager) AddZoomLevel(ctx context.Context, host string, percent int) error {
	if _, err := m.store.SetZoomPercent(ctx, host, percent); err != nil {
		return err
	}
	return m.Load(ctx)
}
