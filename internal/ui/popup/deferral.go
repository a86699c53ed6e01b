package popup

import (
	"sync"

	"github.com/bnema/miniworld/internal/application/port"
)

// onceDeferral completes the wrapped deferral at most once, so every exit
// path can call Complete unconditionally.
type onceDeferral struct {
	once     sync.Once
	deferral port.Deferral
	done     chan struct{}
}

func newOnceDeferral(d port.Deferral) *onceDeferral {
	return &onceDeferral{deferral: d, done: make(chan struct{})}
}

func (d *onceDeferral) Complete() {
	d.once.Do(func() {
		if d.deferral != nil {
			d.deferral.Complete()
		}
		close(d.done)
	})
}

// Completed is closed once the deferral has been resolved.
func (d *onceDeferral) Completed() <-chan struct{} {
	return d.done
}
