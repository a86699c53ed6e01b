package headless

import (
	"context"
	"sync"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
)

// RequestOutcome is how the host resolved a new-window request.
type RequestOutcome struct {
	Handled bool
	Surface port.Surface
	// Deferrals counts Deferral calls; the engine expects at most one.
	Deferrals int
	// Completions counts Deferral().Complete calls.
	Completions int
}

// NewWindowRequest implements port.NewWindowRequest.
type NewWindowRequest struct {
	uri      string
	features entity.WindowFeatures
	parent   entity.Rect

	mu      sync.Mutex
	outcome RequestOutcome
	once    sync.Once
	done    chan struct{}
}

func newNewWindowRequest(uri string, features entity.WindowFeatures, parent entity.Rect) *NewWindowRequest {
	return &NewWindowRequest{
		uri:      uri,
		features: features,
		parent:   parent,
		done:     make(chan struct{}),
	}
}

// URI implements port.NewWindowRequest.
func (r *NewWindowRequest) URI() string { return r.uri }

// Features implements port.NewWindowRequest.
func (r *NewWindowRequest) Features() entity.WindowFeatures { return r.features }

// ParentBounds implements port.NewWindowRequest.
func (r *NewWindowRequest) ParentBounds() entity.Rect { return r.parent }

// Deferral implements port.NewWindowRequest.
func (r *NewWindowRequest) Deferral() port.Deferral {
	r.mu.Lock()
	r.outcome.Deferrals++
	r.mu.Unlock()
	return deferral{req: r}
}

// SetNewWindow implements port.NewWindowRequest.
func (r *NewWindowRequest) SetNewWindow(surface port.Surface) {
	r.mu.Lock()
	r.outcome.Surface = surface
	r.mu.Unlock()
}

// SetHandled implements port.NewWindowRequest.
func (r *NewWindowRequest) SetHandled(handled bool) {
	r.mu.Lock()
	r.outcome.Handled = handled
	r.mu.Unlock()
}

// Done is closed once the request is resolved.
func (r *NewWindowRequest) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the request is resolved.
func (r *NewWindowRequest) Wait(ctx context.Context) (RequestOutcome, error) {
	select {
	case <-r.done:
		return r.Outcome(), nil
	case <-ctx.Done():
		return r.Outcome(), ctx.Err()
	}
}

// Outcome returns the current state of the request.
func (r *NewWindowRequest) Outcome() RequestOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}

// settle resolves the request right after the handler returned, unless the
// handler took the deferral.
func (r *NewWindowRequest) settle() {
	r.mu.Lock()
	deferred := r.outcome.Deferrals > 0
	r.mu.Unlock()
	if !deferred {
		r.finish()
	}
}

func (r *NewWindowRequest) complete() {
	r.mu.Lock()
	r.outcome.Completions++
	r.mu.Unlock()
	r.finish()
}

func (r *NewWindowRequest) finish() {
	r.once.Do(func() {
		outcome := r.Outcome()
		if outcome.Handled {
			if s, ok := outcome.Surface.(*Surface); ok {
				s.Navigate(r.uri)
			}
		}
		close(r.done)
	})
}

type deferral struct {
	req *NewWindowRequest
}

// Complete implements port.Deferral.
func (d deferral) Complete() {
	d.req.complete()
}
