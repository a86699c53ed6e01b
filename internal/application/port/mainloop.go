package port

import "time"

// UIThread marshals work onto the goroutine that owns UI state.
type UIThread interface {
	// InvokeRequired reports whether the caller must Post instead of
	// touching UI state directly.
	InvokeRequired() bool
	// Post enqueues fn on the UI thread. It returns false when the loop no
	// longer accepts work.
	Post(fn func()) bool
}

// Timer is a scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer before it fired.
	Stop() bool
}

// Clock abstracts time for scheduled UI work.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}
