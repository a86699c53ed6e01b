package popup

import (
	"time"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/service"
)

// DefaultLoadingTitle is shown until the page reports a title.
const DefaultLoadingTitle = "Loading..."

// DefaultProbeTimeout bounds the text-length probe.
const DefaultProbeTimeout = 5 * time.Second

// Deps are the collaborators shared by every popup.
type Deps struct {
	Environment port.Environment
	Windows     port.WindowFactory
	UI          port.UIThread
	Clock       port.Clock
}

// Options tune popup behavior.
type Options struct {
	DefaultSize    entity.Size
	Scale          float64
	LoadingTitle   string
	UserAgentToken string
	ContextMenus   bool
	AutoClose      service.AutoClosePolicy
	ProbeTimeout   time.Duration
}

// DefaultOptions returns the stock popup behavior.
func DefaultOptions() Options {
	return Options{
		DefaultSize:    DefaultClientSize,
		Scale:          1.0,
		LoadingTitle:   DefaultLoadingTitle,
		UserAgentToken: service.DefaultUserAgentToken,
		ContextMenus:   true,
		AutoClose:      service.DefaultAutoClosePolicy(),
		ProbeTimeout:   DefaultProbeTimeout,
	}
}

func (o Options) withDefaults() Options {
	if o.DefaultSize.IsEmpty() {
		o.DefaultSize = DefaultClientSize
	}
	if o.Scale <= 0 {
		o.Scale = 1.0
	}
	if o.LoadingTitle == "" {
		o.LoadingTitle = DefaultLoadingTitle
	}
	if o.ProbeTimeout <= 0 {
		o.ProbeTimeout = DefaultProbeTimeout
	}
	return o
}
