package mainloop

import (
	"sync"

	"github.com/bnema/miniworld/internal/application/port"
)

// Coalescer merges bursts of same-key UI tasks: while a key is queued,
// further posts only replace the closure that will run.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	ui        port.UIThread
	destroyed bool
}

// NewCoalescer creates a coalescer that schedules through ui.
func NewCoalescer(ui port.UIThread) *Coalescer {
	if ui == nil {
		panic("mainloop.NewCoalescer: ui thread cannot be nil")
	}

	return &Coalescer{
		pending: make(map[string]func()),
		ui:      ui,
	}
}

// Post schedules fn under key. It reports whether fn will run (either as a
// new task or by replacing a queued one).
func (c *Coalescer) Post(key string, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return false
	}
	_, queued := c.pending[key]
	c.pending[key] = fn
	c.mu.Unlock()

	if queued {
		return true
	}

	ok := c.ui.Post(func() { c.run(key) })
	if !ok {
		c.mu.Lock()
		delete(c.pending, key)
		c.mu.Unlock()
	}
	return ok
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed || fn == nil {
		return
	}
	fn()
}

// Pending returns the number of keys waiting to run.
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Destroy drops queued work and rejects new posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]func(){}
	c.mu.Unlock()
}
