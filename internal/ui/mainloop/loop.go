// Package mainloop runs UI work on a single owning goroutine.
package mainloop

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned when work is offered to a stopped loop.
var ErrStopped = errors.New("mainloop: stopped")

// Loop is a single-consumer task queue. Every closure posted to it runs on
// the goroutine that called Run, one at a time, in posting order.
//
// A Loop cannot tell which goroutine is calling it, so InvokeRequired always
// reports true and callers always marshal.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	stopped bool
	wake    chan struct{}
	done    chan struct{}
}

// NewLoop creates a loop. Call Run to start consuming tasks.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// InvokeRequired implements port.UIThread.
func (l *Loop) InvokeRequired() bool {
	return true
}

// Post implements port.UIThread.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Call posts fn and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrStopped
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run consumes tasks until ctx is canceled or Stop is called. Tasks that were
// accepted before the loop stopped still run before Run returns.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		l.drain()

		select {
		case <-l.wake:
		case <-ctx.Done():
			l.markStopped()
			l.drain()
			return ctx.Err()
		}

		l.mu.Lock()
		stopped := l.stopped
		l.mu.Unlock()
		if stopped {
			l.drain()
			return nil
		}
	}
}

// Stop makes the loop refuse new work and return from Run once the queue is
// drained.
func (l *Loop) Stop() {
	l.markStopped()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) markStopped() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
	}
}
