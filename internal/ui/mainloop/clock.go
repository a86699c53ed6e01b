package mainloop

import (
	"time"

	"github.com/bnema/miniworld/internal/application/port"
)

// SystemClock is the wall-clock implementation of port.Clock.
type SystemClock struct{}

// Now implements port.Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// AfterFunc implements port.Clock.
func (SystemClock) AfterFunc(d time.Duration, fn func()) port.Timer {
	return time.AfterFunc(d, fn)
}
