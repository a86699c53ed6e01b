package headless_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/infrastructure/headless"
	"github.com/bnema/miniworld/internal/logging"
	"github.com/bnema/miniworld/internal/ui/mainloop"
	"github.com/bnema/miniworld/internal/ui/popup"
)

const (
	loginURL    = "https://auth.example.com/login"
	callbackURL = "https://app.example.com/oauth/callback?code=abc"
	welcomeURL  = "https://app.example.com/login_success"
)

var parentBounds = entity.Rect{Size: entity.Size{Width: 1600, Height: 1000}}

type shell struct {
	t       *testing.T
	ctx     context.Context
	env     *headless.Environment
	windows *headless.WindowFactory
	manager *popup.Manager
	loop    *mainloop.Loop
	opener  *headless.Surface
}

func newShell(t *testing.T, cfg headless.Config) *shell {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	ctx = logging.WithContext(ctx, zerolog.Nop())

	env := headless.NewEnvironment(cfg)
	env.AddPage(loginURL, `<title>Sign in</title><form><p>Email address</p><p>Password</p><button>Continue</button></form>`)
	env.AddPage(callbackURL, `<html><head><title>Redirecting</title></head><body></body></html>`)
	env.AddPage(welcomeURL, `<title>Welcome</title><p>You are signed in. You can manage your account from the settings page.</p>`)

	loop := mainloop.NewLoop()
	go func() { _ = loop.Run(ctx) }()
	t.Cleanup(loop.Stop)

	opts := popup.DefaultOptions()
	opts.AutoClose.Delay = 50 * time.Millisecond

	windows := headless.NewWindowFactory(8)
	manager := popup.NewManager(ctx, popup.Deps{
		Environment: env,
		Windows:     windows,
		UI:          loop,
		Clock:       mainloop.SystemClock{},
	}, opts)

	opener, err := env.NewSurface()
	require.NoError(t, err)
	opener.SetCallbacks(&port.SurfaceCallbacks{
		OnNewWindowRequested: manager.HandleNewWindowRequested,
	})

	return &shell{t: t, ctx: ctx, env: env, windows: windows, manager: manager, loop: loop, opener: opener}
}

func (s *shell) open(uri string, features entity.WindowFeatures) (*headless.Window, headless.RequestOutcome) {
	s.t.Helper()
	req := s.opener.OpenWindow(uri, features, parentBounds)
	outcome, err := req.Wait(s.ctx)
	require.NoError(s.t, err)

	var w *headless.Window
	select {
	case w = <-s.windows.Created():
	case <-s.ctx.Done():
		s.t.Fatal("no popup window created")
	}
	return w, outcome
}

func (s *shell) waitClosed(w *headless.Window, within time.Duration) bool {
	select {
	case <-w.Closed():
		return true
	case <-time.After(within):
		return false
	}
}

func TestPopup_AuthFlowAutoClosesOnEmptyCallback(t *testing.T) {
	s := newShell(t, headless.Config{})

	w, outcome := s.open(loginURL, entity.WindowFeatures{HasSize: true, Width: 500, Height: 600})
	require.True(t, outcome.Handled)
	assert.Equal(t, 1, outcome.Deferrals)
	assert.Equal(t, 1, outcome.Completions)
	assert.Equal(t, entity.Rect{Point: entity.Point{X: 550, Y: 200}, Size: entity.Size{Width: 500, Height: 600}}, w.Bounds())

	surface := outcome.Surface.(*headless.Surface)
	assert.True(t, strings.HasSuffix(surface.Settings().UserAgent(), " MiniWorld/1.0"))
	require.Eventually(t, func() bool { return w.Title() == "Sign in" }, 2*time.Second, 5*time.Millisecond)
	assert.False(t, s.waitClosed(w, 150*time.Millisecond), "login form stays open")

	surface.Navigate(callbackURL)

	require.True(t, s.waitClosed(w, 2*time.Second), "empty callback page closes the popup")
	require.Eventually(t, func() bool { return s.manager.Count() == 0 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, surface.Closed, time.Second, 5*time.Millisecond)
}

func TestPopup_CompletionPageWithContentStaysOpen(t *testing.T) {
	s := newShell(t, headless.Config{})

	w, outcome := s.open(welcomeURL, entity.WindowFeatures{})
	require.True(t, outcome.Handled)
	assert.Equal(t, entity.Size{Width: 800, Height: 600}, w.Geometry().ClientSize)

	require.Eventually(t, func() bool { return w.Title() == "Welcome" }, 2*time.Second, 5*time.Millisecond)
	assert.False(t, s.waitClosed(w, 300*time.Millisecond))
	assert.Equal(t, 1, s.manager.Count())
}

func TestPopup_ScriptCloseRequest(t *testing.T) {
	s := newShell(t, headless.Config{})

	w, outcome := s.open(loginURL, entity.WindowFeatures{})
	require.Len(t, s.manager.Popups(), 1)
	c := s.manager.Popups()[0]

	outcome.Surface.(*headless.Surface).RequestClose()

	require.True(t, s.waitClosed(w, 2*time.Second))
	<-c.Done()
	assert.Equal(t, entity.CloseReasonScript, c.CloseReason())
}

func TestPopup_ProcessFailureCloses(t *testing.T) {
	s := newShell(t, headless.Config{})

	w, outcome := s.open(loginURL, entity.WindowFeatures{})
	outcome.Surface.(*headless.Surface).Crash(port.ProcessExited)

	assert.True(t, s.waitClosed(w, 2*time.Second))
}

func TestPopup_SurfaceLimitLeavesEmptyWindow(t *testing.T) {
	// The opener takes the only slot.
	s := newShell(t, headless.Config{MaxSurfaces: 1})

	w, outcome := s.open(loginURL, entity.WindowFeatures{})
	assert.False(t, outcome.Handled)
	assert.Equal(t, 1, outcome.Completions)
	assert.Nil(t, w.Surface())
	assert.False(t, s.waitClosed(w, 100*time.Millisecond))

	require.NoError(t, s.loop.Call(s.ctx, w.Close))
	assert.Equal(t, 0, s.manager.Count())
}

func TestPopup_NestedRequestLeftToEngine(t *testing.T) {
	s := newShell(t, headless.Config{})

	_, outcome := s.open(loginURL, entity.WindowFeatures{})
	popupSurface := outcome.Surface.(*headless.Surface)

	// Wait until callbacks are wired so the nested request reaches the controller.
	require.Eventually(t, func() bool { return popupSurface.Title() == "Sign in" }, 2*time.Second, 5*time.Millisecond)

	nested := popupSurface.OpenWindow("https://auth.example.com/help", entity.WindowFeatures{}, parentBounds)
	nestedOutcome, err := nested.Wait(s.ctx)
	require.NoError(t, err)

	assert.False(t, nestedOutcome.Handled)
	assert.Zero(t, nestedOutcome.Deferrals)
	assert.Len(t, s.windows.Windows(), 1)
}

func TestPopup_ShutdownClosesEverything(t *testing.T) {
	s := newShell(t, headless.Config{})

	w1, _ := s.open(loginURL, entity.WindowFeatures{})
	w2, _ := s.open(welcomeURL, entity.WindowFeatures{})

	require.NoError(t, s.loop.Call(s.ctx, func() { s.manager.CloseAll(entity.CloseReasonShutdown) }))

	assert.True(t, s.waitClosed(w1, time.Second))
	assert.True(t, s.waitClosed(w2, time.Second))
	assert.Equal(t, 1, s.env.LiveSurfaces(), "only the opener remains")
}
