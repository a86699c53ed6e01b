// Package popup owns secondary browser windows opened by window.open().
//
// A Controller lives for exactly one popup: it holds the opener's deferral
// until a rendering surface is attached (or fails to attach), mirrors surface
// events onto its window, and closes the window itself once an auth/redirect
// flow appears to have finished.
package popup

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/domain/service"
	"github.com/bnema/miniworld/internal/logging"
	"github.com/bnema/miniworld/internal/ui/mainloop"
)

const titleKey = "popup-title"

// Controller manages one popup window and its rendering surface.
//
// Fields other than state, deferral and done are confined to the UI thread.
type Controller struct {
	id   entity.PopupID
	ctx  context.Context
	deps Deps
	opts Options

	request  port.NewWindowRequest
	deferral *onceDeferral
	window   port.Window
	surface  port.Surface
	titles   *mainloop.Coalescer

	probeCtx    context.Context
	cancelProbe context.CancelFunc
	autoClose   port.Timer
	// navigation counts navigation events; probe results from an older
	// navigation are dropped. UI thread only.
	navigation  uint64
	closeReason entity.CloseReason
	onClosed    func(*Controller)

	state atomic.Int32
	done  chan struct{}
}

// New creates the popup window for req and starts attaching a surface to it.
// It must be called on the UI thread, before the engine's new-window event
// handler returns, because it acquires the request's deferral.
//
// The returned error is only about the window itself; surface failures are
// reported through the controller state and logs.
func New(ctx context.Context, deps Deps, req port.NewWindowRequest, opts Options) (*Controller, error) {
	return newController(ctx, deps, req, opts, nil)
}

func newController(
	ctx context.Context,
	deps Deps,
	req port.NewWindowRequest,
	opts Options,
	onClosed func(*Controller),
) (*Controller, error) {
	if deps.Clock == nil {
		deps.Clock = mainloop.SystemClock{}
	}
	opts = opts.withDefaults()

	id := entity.NewPopupID()
	ctx = logging.WithPopupID(logging.WithComponent(ctx, "popup"), string(id))

	c := &Controller{
		id:       id,
		ctx:      ctx,
		deps:     deps,
		opts:     opts,
		request:  req,
		deferral: newOnceDeferral(req.Deferral()),
		titles:   mainloop.NewCoalescer(deps.UI),
		onClosed: onClosed,
		done:     make(chan struct{}),
	}
	c.probeCtx, c.cancelProbe = context.WithCancel(context.WithoutCancel(ctx))
	c.state.Store(int32(entity.PopupPending))

	geometry := ComputeGeometry(req.Features(), opts.DefaultSize, opts.Scale)
	window, err := deps.Windows.NewWindow(port.WindowOptions{
		Title:        opts.LoadingTitle,
		Geometry:     geometry,
		ParentBounds: req.ParentBounds(),
		Loading:      true,
		OnClosed:     c.handleWindowClosed,
	})
	if err != nil {
		c.deferral.Complete()
		c.state.Store(int32(entity.PopupClosed))
		c.cancelProbe()
		close(c.done)
		return nil, fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}
	c.window = window

	c.log().Debug().
		Str("uri", req.URI()).
		Int("width", geometry.ClientSize.Width).
		Int("height", geometry.ClientSize.Height).
		Bool("center_on_parent", geometry.CenterOnParent).
		Msg("popup window created")

	go c.attach()
	return c, nil
}

// ID returns the popup identifier.
func (c *Controller) ID() entity.PopupID {
	return c.id
}

// State returns the current lifecycle state. Safe from any goroutine.
func (c *Controller) State() entity.PopupState {
	return entity.PopupState(c.state.Load())
}

// Done is closed once the popup has been torn down.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// DeferralCompleted is closed once the opener's deferral has been resolved.
func (c *Controller) DeferralCompleted() <-chan struct{} {
	return c.deferral.Completed()
}

// CloseReason returns why the popup closed. UI thread only.
func (c *Controller) CloseReason() entity.CloseReason {
	return c.closeReason
}

func (c *Controller) log() *zerolog.Logger {
	return logging.FromContext(c.ctx)
}

func (c *Controller) isClosed() bool {
	return c.State() == entity.PopupClosed
}

// setState moves to s unless the popup is already closed.
func (c *Controller) setState(s entity.PopupState) {
	for {
		cur := c.state.Load()
		if entity.PopupState(cur) == entity.PopupClosed {
			return
		}
		if c.state.CompareAndSwap(cur, int32(s)) {
			return
		}
	}
}

// attach initializes the surface off the UI thread and hands the result
// back to it.
func (c *Controller) attach() {
	surface, err := c.createSurface()

	if !c.deps.UI.Post(func() { c.completeAttachment(surface, err) }) {
		c.log().Warn().Msg("ui loop stopped before popup surface attached")
		c.deferral.Complete()
		if surface != nil {
			surface.Close()
		}
	}
}

func (c *Controller) createSurface() (surface port.Surface, err error) {
	defer func() {
		if r := recover(); r != nil {
			surface = nil
			err = fmt.Errorf("panic during surface initialization: %v", r)
		}
	}()

	surface, err = c.deps.Environment.CreateSurface(c.ctx)
	if err == nil && surface == nil {
		err = fmt.Errorf("engine returned no surface")
	}
	return surface, err
}

func (c *Controller) completeAttachment(surface port.Surface, err error) {
	if !c.bindSurface(surface, err) {
		return
	}
	c.wireSurface()
}

// bindSurface makes surface the result of the opener's window.open() and
// resolves the deferral on every path.
func (c *Controller) bindSurface(surface port.Surface, err error) bool {
	defer c.deferral.Complete()

	if err != nil {
		c.log().Error().Err(fmt.Errorf("%w: %w", ErrAttachmentFailed, err)).Msg("popup surface initialization failed")
		c.setState(entity.PopupFailed)
		return false
	}

	if c.isClosed() {
		c.log().Debug().Msg("discarding surface attached after window closed")
		surface.Close()
		return false
	}

	c.surface = surface
	c.window.AttachSurface(surface)
	c.request.SetNewWindow(surface)
	c.request.SetHandled(true)
	c.setState(entity.PopupActive)
	return true
}

func (c *Controller) wireSurface() {
	settings := c.surface.Settings()
	settings.SetUserAgent(service.BuildUserAgent(settings.UserAgent(), c.opts.UserAgentToken))
	settings.SetDefaultContextMenusEnabled(c.opts.ContextMenus)

	c.surface.SetCallbacks(&port.SurfaceCallbacks{
		OnNavigationStarting:  c.handleNavigationStarting,
		OnNavigationCompleted: c.handleNavigationCompleted,
		OnTitleChanged:        c.handleTitleChanged,
		OnNewWindowRequested:  c.handleNestedNewWindow,
		OnCloseRequested:      c.handleCloseRequested,
		OnProcessFailed:       c.handleProcessFailed,
	})

	c.log().Debug().Msg("popup surface attached")
}

// onUI runs fn on the UI thread, skipping it if the popup closed meanwhile.
// A non-empty key coalesces bursts of the same update.
func (c *Controller) onUI(key string, fn func()) {
	guarded := func() {
		if c.isClosed() {
			return
		}
		fn()
	}

	if !c.deps.UI.InvokeRequired() {
		guarded()
		return
	}
	if key != "" {
		c.titles.Post(key, guarded)
		return
	}
	c.deps.UI.Post(guarded)
}

// Nested popups go through the engine's own mechanism instead of another
// controller.
func (c *Controller) handleNestedNewWindow(req port.NewWindowRequest) {
	c.log().Debug().Str("uri", req.URI()).Msg("nested popup left to engine default handling")
	req.SetHandled(false)
}

func (c *Controller) handleTitleChanged(title string) {
	c.onUI(titleKey, func() {
		c.window.SetTitle(title)
	})
}

func (c *Controller) handleNavigationStarting(url string) {
	c.onUI("", func() {
		c.navigation++
		c.log().Trace().Str("url", url).Msg("popup navigation starting")
		c.window.SetLoading(true)
	})
}

func (c *Controller) handleNavigationCompleted(result port.NavigationResult) {
	c.onUI("", func() {
		c.navigation++
		c.window.SetLoading(false)

		url := result.URL
		if url == "" {
			url = c.surface.Source()
		}

		if !result.IsSuccess {
			c.log().Warn().
				Err(ErrNavigationFailed).
				Str("status", result.ErrorStatus).
				Str("url", url).
				Msg("popup navigation failed")
			return
		}

		c.evaluateAutoClose(url)
	})
}

func (c *Controller) handleCloseRequested() {
	c.onUI("", func() {
		c.Close(entity.CloseReasonScript)
	})
}

func (c *Controller) handleProcessFailed(kind port.ProcessFailureKind) {
	c.log().Error().Err(ErrProcessFailed).Str("kind", string(kind)).Msg("popup rendering process failed")
	c.onUI("", func() {
		c.Close(entity.CloseReasonProcessFailed)
	})
}

// Close tears the popup down. It is idempotent and must be called on the UI
// thread.
func (c *Controller) Close(reason entity.CloseReason) {
	if c.isClosed() {
		return
	}
	c.teardown(reason)
	c.window.Close()
}

// handleWindowClosed runs when the window goes away, including user closes.
func (c *Controller) handleWindowClosed() {
	if c.isClosed() {
		return
	}
	c.teardown(entity.CloseReasonUser)
}

func (c *Controller) teardown(reason entity.CloseReason) {
	c.state.Store(int32(entity.PopupClosed))
	c.closeReason = reason

	c.stopAutoClose()
	c.cancelProbe()
	c.titles.Destroy()

	if c.surface != nil {
		c.surface.SetCallbacks(nil)
		c.surface.Close()
	}

	c.log().Info().Str("reason", string(reason)).Msg("popup closed")
	close(c.done)

	if c.onClosed != nil {
		c.onClosed(c)
	}
}
