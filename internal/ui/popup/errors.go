package popup

import "errors"

// Failure classes of a popup. None of them is shown to the user; they are
// logged and, for attachment, reflected in the controller state.
var (
	// ErrWindowCreate means the top-level window could not be created.
	ErrWindowCreate = errors.New("popup: window creation failed")
	// ErrAttachmentFailed means the rendering surface failed to initialize.
	ErrAttachmentFailed = errors.New("popup: surface attachment failed")
	// ErrNavigationFailed means the engine reported a navigation error.
	ErrNavigationFailed = errors.New("popup: navigation failed")
	// ErrProcessFailed means the rendering process died.
	ErrProcessFailed = errors.New("popup: rendering process failed")
	// ErrScriptProbe means the text-length probe failed or was ambiguous.
	ErrScriptProbe = errors.New("popup: text probe failed")
)
