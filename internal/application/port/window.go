package port

import "github.com/bnema/miniworld/internal/domain/entity"

// WindowOptions configures a new top-level window.
type WindowOptions struct {
	Title    string
	Geometry entity.Geometry
	// ParentBounds is used when Geometry.CenterOnParent is set.
	ParentBounds entity.Rect
	// Loading shows the indeterminate progress indicator initially.
	Loading bool
	// OnClosed is invoked on the UI thread after the window is destroyed,
	// whether the user or the program closed it.
	OnClosed func()
}

// Window is an OS-level top-level window. All methods must be called on the
// UI thread.
type Window interface {
	SetTitle(title string)
	SetLoading(loading bool)
	// AttachSurface makes surface fill the window's client area.
	AttachSurface(surface Surface)
	Close()
	IsDestroyed() bool
}

// WindowFactory creates top-level windows.
type WindowFactory interface {
	NewWindow(opts WindowOptions) (Window, error)
}
