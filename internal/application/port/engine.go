// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (the rendering engine, the
// windowing toolkit, etc.).
package port

import (
	"context"

	"github.com/bnema/miniworld/internal/domain/entity"
)

// Environment is the engine's shared process/session context.
// It outlives every surface created from it.
type Environment interface {
	// CreateSurface initializes a new rendering surface. It blocks until the
	// engine reports the surface ready or fails (process limits, teardown).
	CreateSurface(ctx context.Context) (Surface, error)
}

// NavigationResult describes a completed navigation.
type NavigationResult struct {
	URL       string
	IsSuccess bool
	// ErrorStatus is the engine's error code when IsSuccess is false.
	ErrorStatus string
}

// ProcessFailureKind describes why a rendering process went away.
type ProcessFailureKind string

const (
	ProcessExited       ProcessFailureKind = "render_process_exited"
	ProcessUnresponsive ProcessFailureKind = "render_process_unresponsive"
	ProcessBrowserExit  ProcessFailureKind = "browser_process_exited"
)

// SurfaceCallbacks defines callback handlers for surface events.
// Engines may invoke them from any goroutine.
type SurfaceCallbacks struct {
	// OnNavigationStarting is called when a navigation begins.
	OnNavigationStarting func(url string)
	// OnNavigationCompleted is called when a navigation finishes or fails.
	OnNavigationCompleted func(result NavigationResult)
	// OnTitleChanged is called when the document title changes.
	OnTitleChanged func(title string)
	// OnNewWindowRequested is called when content asks for another window.
	// Leaving the request unhandled lets the engine apply its default.
	OnNewWindowRequested func(request NewWindowRequest)
	// OnCloseRequested is called on script-initiated window.close().
	OnCloseRequested func()
	// OnProcessFailed is called when the rendering process dies.
	OnProcessFailed func(kind ProcessFailureKind)
}

// SurfaceSettings exposes the per-surface engine settings the shell touches.
type SurfaceSettings interface {
	UserAgent() string
	SetUserAgent(ua string)
	SetDefaultContextMenusEnabled(enabled bool)
}

// Surface is an embedded browser view.
type Surface interface {
	// SetCallbacks registers callback handlers for surface events.
	// Pass nil to clear all callbacks.
	SetCallbacks(callbacks *SurfaceCallbacks)

	// Settings returns the surface settings.
	Settings() SurfaceSettings

	// Source returns the current document URL.
	Source() string

	// Title returns the current document title.
	Title() string

	// EvaluateScript runs script in the page and returns its JSON-encoded
	// result.
	EvaluateScript(ctx context.Context, script string) (string, error)

	// Close releases the surface. Safe to call more than once.
	Close()
}

// Deferral pauses completion of an engine request until Complete is called.
type Deferral interface {
	Complete()
}

// NewWindowRequest is the engine's request to open a new window.
type NewWindowRequest interface {
	// URI is the URL the new window will load.
	URI() string

	// Features returns the requested geometry.
	Features() entity.WindowFeatures

	// ParentBounds returns the requesting window's bounds.
	ParentBounds() entity.Rect

	// Deferral acquires the request's deferral. Acquire it at most once.
	Deferral() Deferral

	// SetNewWindow binds surface as the result of the page's window.open().
	SetNewWindow(surface Surface)

	// SetHandled marks whether the host handled the request.
	SetHandled(handled bool)
}
