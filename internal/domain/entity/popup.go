package entity

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// PopupID uniquely identifies a popup window for its lifetime.
type PopupID string

// NewPopupID generates a new time-ordered popup identifier.
func NewPopupID() PopupID {
	return PopupID(ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String())
}

// PopupState is the lifecycle state of a popup controller.
type PopupState int

const (
	// PopupPending means the rendering surface is still initializing.
	PopupPending PopupState = iota
	// PopupActive means the surface is attached and events are wired.
	PopupActive
	// PopupFailed means surface initialization failed; the window stays
	// open and empty until the user closes it.
	PopupFailed
	// PopupClosed means the window and surface have been released.
	PopupClosed
)

// String returns a human-readable name for the popup state.
func (s PopupState) String() string {
	switch s {
	case PopupPending:
		return "pending"
	case PopupActive:
		return "active"
	case PopupFailed:
		return "failed"
	case PopupClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// CloseReason records why a popup window was closed.
type CloseReason string

const (
	CloseReasonUser          CloseReason = "user"
	CloseReasonScript        CloseReason = "script"
	CloseReasonProcessFailed CloseReason = "process_failed"
	CloseReasonAutoClose     CloseReason = "auto_close"
	CloseReasonShutdown      CloseReason = "shutdown"
)
