package popup

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/logging"
)

// Manager tracks the live popups of the shell.
type Manager struct {
	ctx  context.Context
	deps Deps

	mu       sync.Mutex
	opts     Options
	popups   map[entity.PopupID]*Controller
	onClosed []func(*Controller)
}

// NewManager creates a popup manager.
func NewManager(ctx context.Context, deps Deps, opts Options) *Manager {
	return &Manager{
		ctx:    logging.WithComponent(ctx, "popup-manager"),
		deps:   deps,
		opts:   opts,
		popups: make(map[entity.PopupID]*Controller),
	}
}

// SetOptions replaces the options used for popups opened from now on.
func (m *Manager) SetOptions(opts Options) {
	m.mu.Lock()
	m.opts = opts
	m.mu.Unlock()
}

// Options returns the options new popups get.
func (m *Manager) Options() Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opts
}

// HandleNewWindowRequested is the new-window hook of a main surface. It may
// be called from any goroutine: the deferral is taken before returning and
// the window is built on the UI thread.
func (m *Manager) HandleNewWindowRequested(req port.NewWindowRequest) {
	held := &heldRequest{NewWindowRequest: req, deferral: newOnceDeferral(req.Deferral())}

	if !m.deps.UI.InvokeRequired() {
		m.open(held)
		return
	}
	if !m.deps.UI.Post(func() { m.open(held) }) {
		logging.FromContext(m.ctx).Warn().Str("uri", req.URI()).Msg("ui loop stopped, dropping popup request")
		held.deferral.Complete()
	}
}

// Open creates and tracks a popup for req. UI thread only.
func (m *Manager) Open(req port.NewWindowRequest) (*Controller, error) {
	c, err := newController(m.ctx, m.deps, req, m.Options(), m.forget)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if c.State() != entity.PopupClosed {
		m.popups[c.ID()] = c
	}
	m.mu.Unlock()
	return c, nil
}

func (m *Manager) open(req *heldRequest) {
	if _, err := m.Open(req); err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Str("uri", req.URI()).Msg("failed to open popup")
	}
}

// OnPopupClosed registers fn to run, on the UI thread, after any popup
// opened by this manager closes.
func (m *Manager) OnPopupClosed(fn func(*Controller)) {
	m.mu.Lock()
	m.onClosed = append(m.onClosed, fn)
	m.mu.Unlock()
}

func (m *Manager) forget(c *Controller) {
	m.mu.Lock()
	delete(m.popups, c.ID())
	callbacks := slices.Clone(m.onClosed)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(c)
	}
}

// Count returns the number of live popups.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.popups)
}

// Popups returns the live popups.
func (m *Manager) Popups() []*Controller {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Controller, 0, len(m.popups))
	for _, c := range m.popups {
		out = append(out, c)
	}
	return out
}

// CloseAll closes every live popup. UI thread only.
func (m *Manager) CloseAll(reason entity.CloseReason) {
	for _, c := range m.Popups() {
		c.Close(reason)
	}
}

// heldRequest carries a deferral that was acquired before the request was
// marshaled to the UI thread.
type heldRequest struct {
	port.NewWindowRequest
	deferral *onceDeferral
}

func (r *heldRequest) Deferral() port.Deferral {
	return r.deferral
}
