package popup

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/application/port/mocks"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

// fakeUI queues posted work until the test runs it.
type fakeUI struct {
	tasks  chan func()
	direct atomic.Bool
	refuse atomic.Bool
}

func newFakeUI() *fakeUI {
	return &fakeUI{tasks: make(chan func(), 256)}
}

func (u *fakeUI) InvokeRequired() bool { return !u.direct.Load() }

func (u *fakeUI) Post(fn func()) bool {
	if u.refuse.Load() {
		return false
	}
	u.tasks <- fn
	return true
}

func (u *fakeUI) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-u.tasks:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("expected a task to be posted to the UI thread")
	}
}

func (u *fakeUI) assertNoTask(t *testing.T) {
	t.Helper()
	select {
	case <-u.tasks:
		t.Fatal("unexpected task posted to the UI thread")
	case <-time.After(50 * time.Millisecond):
	}
}

// fakeClock fires timers only when advanced.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) port.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.fn()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeWindow records what the controller did to it.
type fakeWindow struct {
	opts      port.WindowOptions
	title     string
	titles    []string
	loading   bool
	surface   port.Surface
	closes    int
	destroyed bool
}

func (w *fakeWindow) SetTitle(title string) {
	w.title = title
	w.titles = append(w.titles, title)
}

func (w *fakeWindow) SetLoading(loading bool)            { w.loading = loading }
func (w *fakeWindow) AttachSurface(surface port.Surface) { w.surface = surface }
func (w *fakeWindow) IsDestroyed() bool                  { return w.destroyed }

func (w *fakeWindow) Close() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.closes++
	if w.opts.OnClosed != nil {
		w.opts.OnClosed()
	}
}

// userClose simulates the user clicking the window's close button.
func (w *fakeWindow) userClose() {
	w.Close()
}

type fakeWindowFactory struct {
	err     error
	windows []*fakeWindow
}

func (f *fakeWindowFactory) NewWindow(opts port.WindowOptions) (port.Window, error) {
	if f.err != nil {
		return nil, f.err
	}
	w := &fakeWindow{opts: opts, title: opts.Title, loading: opts.Loading}
	f.windows = append(f.windows, w)
	return w, nil
}

func (f *fakeWindowFactory) last() *fakeWindow {
	return f.windows[len(f.windows)-1]
}

// fakeEnv blocks CreateSurface until the test responds.
type fakeEnv struct {
	results chan envResult
}

type envResult struct {
	surface port.Surface
	err     error
	panic   any
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{results: make(chan envResult, 8)}
}

func (e *fakeEnv) CreateSurface(ctx context.Context) (port.Surface, error) {
	select {
	case r := <-e.results:
		if r.panic != nil {
			panic(r.panic)
		}
		return r.surface, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *fakeEnv) respond(surface port.Surface, err error) {
	e.results <- envResult{surface: surface, err: err}
}

// fakeSurface is a scriptable rendering surface.
type fakeSurface struct {
	mu           sync.Mutex
	callbacks    *port.SurfaceCallbacks
	userAgent    string
	contextMenus bool
	source       string
	probeResult  string
	probeErr     error
	probeCalls   int
	probeGate    chan struct{}
	closes       int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{userAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/605.1.15"}
}

func (s *fakeSurface) SetCallbacks(callbacks *port.SurfaceCallbacks) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = callbacks
}

func (s *fakeSurface) cb() *port.SurfaceCallbacks {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callbacks
}

func (s *fakeSurface) Settings() port.SurfaceSettings { return s }

func (s *fakeSurface) UserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userAgent
}

func (s *fakeSurface) SetUserAgent(ua string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userAgent = ua
}

func (s *fakeSurface) SetDefaultContextMenusEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contextMenus = enabled
}

func (s *fakeSurface) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

func (s *fakeSurface) Title() string { return "" }

func (s *fakeSurface) EvaluateScript(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	s.probeCalls++
	gate := s.probeGate
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.probeResult, s.probeErr
}

// holdProbes blocks script evaluation until the returned func is called.
func (s *fakeSurface) holdProbes() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.probeGate = gate
	s.mu.Unlock()
	return func() { close(gate) }
}

func (s *fakeSurface) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
}

func (s *fakeSurface) setProbe(result string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.probeResult = result
	s.probeErr = err
}

func (s *fakeSurface) probes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.probeCalls
}

func (s *fakeSurface) closeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}

var errEngine = errors.New("engine: too many processes")

var testParent = entity.Rect{
	Point: entity.Point{X: 0, Y: 0},
	Size:  entity.Size{Width: 1600, Height: 1000},
}

// harness wires a controller to fakes.
type harness struct {
	t       *testing.T
	ctrl    *gomock.Controller
	ui      *fakeUI
	clock   *fakeClock
	windows *fakeWindowFactory
	env     *fakeEnv
	opts    Options
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		t:       t,
		ctrl:    gomock.NewController(t),
		ui:      newFakeUI(),
		clock:   newFakeClock(),
		windows: &fakeWindowFactory{},
		env:     newFakeEnv(),
		opts:    DefaultOptions(),
	}
}

func (h *harness) deps() Deps {
	return Deps{
		Environment: h.env,
		Windows:     h.windows,
		UI:          h.ui,
		Clock:       h.clock,
	}
}

// request returns a mock request whose deferral is acquired exactly once.
func (h *harness) request(features entity.WindowFeatures) (*mocks.MockNewWindowRequest, *mocks.MockDeferral) {
	req := mocks.NewMockNewWindowRequest(h.ctrl)
	deferral := mocks.NewMockDeferral(h.ctrl)

	req.EXPECT().Deferral().Return(deferral).Times(1)
	req.EXPECT().Features().Return(features).AnyTimes()
	req.EXPECT().ParentBounds().Return(testParent).AnyTimes()
	req.EXPECT().URI().Return("https://auth.example.com/login").AnyTimes()
	return req, deferral
}

func (h *harness) open(req port.NewWindowRequest) *Controller {
	h.t.Helper()
	c, err := New(testContext(), h.deps(), req, h.opts)
	if err != nil {
		h.t.Fatalf("New: %v", err)
	}
	return c
}

// active opens a popup and attaches a surface to it.
func (h *harness) active() (*Controller, *fakeWindow, *fakeSurface) {
	h.t.Helper()
	req, deferral := h.request(entity.WindowFeatures{})
	surface := newFakeSurface()

	gomock.InOrder(
		req.EXPECT().SetNewWindow(surface),
		req.EXPECT().SetHandled(true),
		deferral.EXPECT().Complete().Times(1),
	)

	c := h.open(req)
	h.env.respond(surface, nil)
	h.ui.runNext(h.t)
	return c, h.windows.last(), surface
}

// navigate fires a completed navigation and runs the marshaled handler.
func (h *harness) navigate(surface *fakeSurface, url string, success bool) {
	h.t.Helper()
	result := port.NavigationResult{URL: url, IsSuccess: success}
	if !success {
		result.ErrorStatus = "ConnectionAborted"
	}
	surface.cb().OnNavigationCompleted(result)
	h.ui.runNext(h.t)
}
