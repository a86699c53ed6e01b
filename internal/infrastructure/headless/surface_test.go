package headless

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
)

// recorder collects surface events from engine goroutines.
type recorder struct {
	mu     sync.Mutex
	events []string
	nav    []port.NavigationResult
	reqs   chan port.NewWindowRequest
}

func newRecorder() *recorder {
	return &recorder{reqs: make(chan port.NewWindowRequest, 4)}
}

func (r *recorder) add(ev string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) callbacks() *port.SurfaceCallbacks {
	return &port.SurfaceCallbacks{
		OnNavigationStarting: func(url string) { r.add("starting " + url) },
		OnNavigationCompleted: func(res port.NavigationResult) {
			r.mu.Lock()
			r.nav = append(r.nav, res)
			r.mu.Unlock()
			r.add("completed " + res.URL)
		},
		OnTitleChanged:       func(title string) { r.add("title " + title) },
		OnCloseRequested:     func() { r.add("close") },
		OnProcessFailed:      func(kind port.ProcessFailureKind) { r.add("failed " + string(kind)) },
		OnNewWindowRequested: func(req port.NewWindowRequest) { r.reqs <- req },
	}
}

func newTestSurface(t *testing.T, env *Environment) *Surface {
	t.Helper()
	s, err := env.NewSurface()
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestSurface_NavigateRaisesEventsInOrder(t *testing.T) {
	env := NewEnvironment(Config{})
	env.AddPage("https://example.com/", "<title>Example</title><p>Hello</p>")
	s := newTestSurface(t, env)
	rec := newRecorder()
	s.SetCallbacks(rec.callbacks())

	s.Navigate("https://example.com/")
	s.Wait()

	assert.Equal(t, []string{
		"starting https://example.com/",
		"title Example",
		"completed https://example.com/",
	}, rec.snapshot())
	assert.True(t, rec.nav[0].IsSuccess)
	assert.Equal(t, "https://example.com/", s.Source())
	assert.Equal(t, "Example", s.Title())
}

func TestSurface_SetTitleWhileEvaluating(t *testing.T) {
	env := NewEnvironment(Config{})
	env.AddPage("https://example.com/", "<title>Example</title><p>Hello</p>")
	s := newTestSurface(t, env)
	s.SetCallbacks(newRecorder().callbacks())
	s.Navigate("https://example.com/")
	s.Wait()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 20 {
			_, err := s.EvaluateScript(context.Background(), "document.title")
			assert.NoError(t, err)
		}
	}()
	for i := range 20 {
		s.SetTitle("Step " + string(rune('A'+i)))
	}
	wg.Wait()
	s.Wait()

	title, err := s.EvaluateScript(context.Background(), "document.title")
	require.NoError(t, err)
	assert.Equal(t, `"Step T"`, title)
	assert.Equal(t, "Step T", s.Title())
}

func TestSurface_UnknownPageFails(t *testing.T) {
	env := NewEnvironment(Config{})
	s := newTestSurface(t, env)
	rec := newRecorder()
	s.SetCallbacks(rec.callbacks())

	s.Navigate("https://missing.example.com/")
	s.Wait()

	require.Len(t, rec.nav, 1)
	assert.False(t, rec.nav[0].IsSuccess)
	assert.Equal(t, "ConnectionAborted", rec.nav[0].ErrorStatus)
	assert.Equal(t, BlankURL, s.Source())
}

func TestSurface_HoldsEventsUntilCallbacksRegistered(t *testing.T) {
	env := NewEnvironment(Config{})
	s := newTestSurface(t, env)

	s.Navigate(BlankURL)
	s.Wait()

	rec := newRecorder()
	s.SetCallbacks(rec.callbacks())
	s.Wait()

	assert.Equal(t, []string{"starting about:blank", "title ", "completed about:blank"}, rec.snapshot())
}

func TestSurface_ClosedDropsEvents(t *testing.T) {
	env := NewEnvironment(Config{})
	s := newTestSurface(t, env)
	rec := newRecorder()
	s.SetCallbacks(rec.callbacks())

	s.Close()
	s.Close()
	s.RequestClose()
	s.Navigate(BlankURL)
	s.Wait()

	assert.Empty(t, rec.snapshot())
	assert.Equal(t, 0, env.LiveSurfaces())

	_, err := s.EvaluateScript(context.Background(), "1")
	assert.ErrorIs(t, err, ErrSurfaceClosed)
}

func TestEnvironment_SurfaceLimit(t *testing.T) {
	env := NewEnvironment(Config{MaxSurfaces: 1})

	first, err := env.CreateSurface(context.Background())
	require.NoError(t, err)

	_, err = env.CreateSurface(context.Background())
	assert.ErrorIs(t, err, ErrSurfaceLimit)

	first.Close()
	_, err = env.CreateSurface(context.Background())
	assert.NoError(t, err)
}

func TestEnvironment_CreateSurfaceHonorsContext(t *testing.T) {
	env := NewEnvironment(Config{InitDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.CreateSurface(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnvironment_ShutdownFailsSurfaces(t *testing.T) {
	env := NewEnvironment(Config{})
	s := newTestSurface(t, env)
	rec := newRecorder()
	s.SetCallbacks(rec.callbacks())

	env.Shutdown()
	s.Wait()

	assert.Equal(t, []string{"failed browser_process_exited"}, rec.snapshot())
	_, err := env.NewSurface()
	assert.ErrorIs(t, err, ErrEnvironmentClosed)
}

func TestNewWindowRequest_Unhandled(t *testing.T) {
	env := NewEnvironment(Config{})
	s := newTestSurface(t, env)
	rec := newRecorder()
	s.SetCallbacks(rec.callbacks())

	req := s.OpenWindow("https://auth.example.com", entity.WindowFeatures{}, entity.Rect{})
	(<-rec.reqs).SetHandled(false)

	outcome, err := req.Wait(context.Background())
	require.NoError(t, err)
	assert.False(t, outcome.Handled)
	assert.Zero(t, outcome.Deferrals)
}

func TestNewWindowRequest_DeferredNavigatesBoundSurface(t *testing.T) {
	env := NewEnvironment(Config{})
	env.AddPage("https://auth.example.com", "<title>Sign in</title><form>Email</form>")
	opener := newTestSurface(t, env)

	type held struct {
		req      port.NewWindowRequest
		deferral port.Deferral
	}
	heldCh := make(chan held, 1)
	opener.SetCallbacks(&port.SurfaceCallbacks{
		OnNewWindowRequested: func(req port.NewWindowRequest) {
			heldCh <- held{req: req, deferral: req.Deferral()}
		},
	})

	req := opener.OpenWindow("https://auth.example.com", entity.WindowFeatures{}, entity.Rect{})
	got := <-heldCh

	select {
	case <-req.Done():
		t.Fatal("request resolved while deferred")
	case <-time.After(20 * time.Millisecond):
	}

	popup := newTestSurface(t, env)
	got.req.SetNewWindow(popup)
	got.req.SetHandled(true)
	got.deferral.Complete()

	outcome, err := req.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, outcome.Handled)
	assert.Equal(t, 1, outcome.Deferrals)
	assert.Equal(t, 1, outcome.Completions)

	popupRec := newRecorder()
	popup.SetCallbacks(popupRec.callbacks())
	popup.Wait()
	assert.Contains(t, popupRec.snapshot(), "completed https://auth.example.com")
}
