package headless

import (
	"sync"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
)

// Window implements port.Window by recording what was done to it.
type Window struct {
	mu       sync.Mutex
	opts     port.WindowOptions
	title    string
	titles   []string
	loading  bool
	surface  port.Surface
	closed   bool
	closedCh chan struct{}
}

// Title returns the current title.
func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// Titles returns every title set after creation.
func (w *Window) Titles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.titles...)
}

// Loading reports whether the progress indicator is shown.
func (w *Window) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// Geometry returns the geometry the window was created with.
func (w *Window) Geometry() entity.Geometry {
	return w.opts.Geometry
}

// Bounds resolves the window rectangle on screen.
func (w *Window) Bounds() entity.Rect {
	g := w.opts.Geometry
	if g.CenterOnParent {
		return entity.Rect{Point: w.opts.ParentBounds.CenterIn(g.ClientSize), Size: g.ClientSize}
	}
	return entity.Rect{Point: g.Location, Size: g.ClientSize}
}

// Surface returns the attached surface, if any.
func (w *Window) Surface() port.Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface
}

// Closed is closed once the window is destroyed.
func (w *Window) Closed() <-chan struct{} {
	return w.closedCh
}

// SetTitle implements port.Window.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
	w.titles = append(w.titles, title)
}

// SetLoading implements port.Window.
func (w *Window) SetLoading(loading bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = loading
}

// AttachSurface implements port.Window.
func (w *Window) AttachSurface(surface port.Surface) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.surface = surface
}

// IsDestroyed implements port.Window.
func (w *Window) IsDestroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Close implements port.Window. It doubles as the user clicking the close
// button. Must be called on the UI thread.
func (w *Window) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.closedCh)
	onClosed := w.opts.OnClosed
	w.mu.Unlock()

	if onClosed != nil {
		onClosed()
	}
}

// WindowFactory implements port.WindowFactory.
type WindowFactory struct {
	mu      sync.Mutex
	windows []*Window
	created chan *Window
}

// NewWindowFactory creates a window factory. Created windows are also sent
// to Created, which buffers up to capacity windows.
func NewWindowFactory(capacity int) *WindowFactory {
	return &WindowFactory{created: make(chan *Window, capacity)}
}

// NewWindow implements port.WindowFactory.
func (f *WindowFactory) NewWindow(opts port.WindowOptions) (port.Window, error) {
	w := &Window{
		opts:     opts,
		title:    opts.Title,
		loading:  opts.Loading,
		closedCh: make(chan struct{}),
	}

	f.mu.Lock()
	f.windows = append(f.windows, w)
	f.mu.Unlock()

	select {
	case f.created <- w:
	default:
	}
	return w, nil
}

// Created delivers windows as they are created.
func (f *WindowFactory) Created() <-chan *Window {
	return f.created
}

// Windows returns every window created so far.
func (f *WindowFactory) Windows() []*Window {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Window(nil), f.windows...)
}
