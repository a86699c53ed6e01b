package headless

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
)

// ErrSurfaceClosed is returned by operations on a closed surface.
var ErrSurfaceClosed = errors.New("headless: surface closed")

// Surface implements port.Surface. Events are raised on engine goroutines;
// events raised before callbacks are registered are held and delivered on
// registration, like an engine's message queue.
type Surface struct {
	env *Environment

	mu        sync.Mutex
	callbacks *port.SurfaceCallbacks
	pending   []func(*port.SurfaceCallbacks)
	settings  *Settings
	page      *Page
	source    string
	closed    bool
	navSeq    uint64
	wg        sync.WaitGroup
}

func newSurface(env *Environment) *Surface {
	return &Surface{
		env:      env,
		settings: &Settings{userAgent: DefaultUserAgent, contextMenus: true},
		source:   BlankURL,
	}
}

// SetCallbacks implements port.Surface.
func (s *Surface) SetCallbacks(callbacks *port.SurfaceCallbacks) {
	s.mu.Lock()
	s.callbacks = callbacks
	if callbacks == nil {
		s.pending = nil
		s.mu.Unlock()
		return
	}
	held := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(held) == 0 {
		return
	}
	s.goEngine(func() {
		for _, ev := range held {
			s.dispatch(ev)
		}
	})
}

// Settings implements port.Surface.
func (s *Surface) Settings() port.SurfaceSettings {
	return s.settings
}

// Source implements port.Surface.
func (s *Surface) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Title implements port.Surface.
func (s *Surface) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page == nil {
		return ""
	}
	return s.page.Title
}

// EvaluateScript implements port.Surface.
func (s *Surface) EvaluateScript(ctx context.Context, script string) (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrSurfaceClosed
	}
	page := s.page
	s.mu.Unlock()

	return evaluate(ctx, page, script)
}

// Close implements port.Surface.
func (s *Surface) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.callbacks = nil
	s.pending = nil
	s.mu.Unlock()

	s.env.release(s)
}

// Closed reports whether Close was called.
func (s *Surface) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Wait blocks until every event goroutine started so far has finished.
func (s *Surface) Wait() {
	s.wg.Wait()
}

// Navigate loads url asynchronously, raising navigation-starting, title and
// navigation-completed events. Unknown URLs complete with a failure. A newer
// navigation supersedes one still in flight.
func (s *Surface) Navigate(url string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.navSeq++
	seq := s.navSeq
	s.mu.Unlock()

	s.goEngine(func() {
		s.emit(func(cb *port.SurfaceCallbacks) {
			if cb.OnNavigationStarting != nil {
				cb.OnNavigationStarting(url)
			}
		})

		if d := s.env.cfg.NavigationDelay; d > 0 {
			time.Sleep(d)
		}

		page, err := s.env.load(url)

		s.mu.Lock()
		if s.closed || seq != s.navSeq {
			s.mu.Unlock()
			return
		}
		result := port.NavigationResult{URL: url, IsSuccess: err == nil}
		titleChanged := false
		if err != nil {
			result.ErrorStatus = "ConnectionAborted"
		} else {
			titleChanged = s.page == nil || s.page.Title != page.Title
			s.page = page
			s.source = url
		}
		s.mu.Unlock()

		if titleChanged {
			s.emit(func(cb *port.SurfaceCallbacks) {
				if cb.OnTitleChanged != nil {
					cb.OnTitleChanged(page.Title)
				}
			})
		}
		s.emit(func(cb *port.SurfaceCallbacks) {
			if cb.OnNavigationCompleted != nil {
				cb.OnNavigationCompleted(result)
			}
		})
	})
}

// SetTitle simulates document.title being changed by script.
func (s *Surface) SetTitle(title string) {
	s.mu.Lock()
	if s.page != nil {
		// Scripts may still be reading the current page.
		page := *s.page
		page.Title = title
		s.page = &page
	}
	s.mu.Unlock()

	s.goEngine(func() {
		s.emit(func(cb *port.SurfaceCallbacks) {
			if cb.OnTitleChanged != nil {
				cb.OnTitleChanged(title)
			}
		})
	})
}

// RequestClose simulates a script calling window.close().
func (s *Surface) RequestClose() {
	s.goEngine(func() {
		s.emit(func(cb *port.SurfaceCallbacks) {
			if cb.OnCloseRequested != nil {
				cb.OnCloseRequested()
			}
		})
	})
}

// Crash simulates the rendering process going away.
func (s *Surface) Crash(kind port.ProcessFailureKind) {
	s.goEngine(func() {
		s.emit(func(cb *port.SurfaceCallbacks) {
			if cb.OnProcessFailed != nil {
				cb.OnProcessFailed(kind)
			}
		})
	})
}

// OpenWindow simulates window.open(uri, features) from the current page.
// The returned request reports how the host handled it once its deferral
// completes; a handled request navigates the bound surface to uri.
func (s *Surface) OpenWindow(uri string, features entity.WindowFeatures, parent entity.Rect) *NewWindowRequest {
	req := newNewWindowRequest(uri, features, parent)

	s.goEngine(func() {
		delivered := s.emit(func(cb *port.SurfaceCallbacks) {
			if cb.OnNewWindowRequested != nil {
				cb.OnNewWindowRequested(req)
			}
		})
		if !delivered {
			req.finish()
		}
		req.settle()
	})
	return req
}

func (s *Surface) goEngine(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

// emit delivers ev or holds it until callbacks are registered. It returns
// false when the surface is closed and the event was dropped.
func (s *Surface) emit(ev func(*port.SurfaceCallbacks)) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	if s.callbacks == nil {
		s.pending = append(s.pending, ev)
		s.mu.Unlock()
		return true
	}
	s.mu.Unlock()

	s.dispatch(ev)
	return true
}

func (s *Surface) dispatch(ev func(*port.SurfaceCallbacks)) {
	s.mu.Lock()
	cb := s.callbacks
	s.mu.Unlock()
	if cb != nil {
		ev(cb)
	}
}

// Settings implements port.SurfaceSettings.
type Settings struct {
	mu           sync.Mutex
	userAgent    string
	contextMenus bool
}

// UserAgent implements port.SurfaceSettings.
func (s *Settings) UserAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userAgent
}

// SetUserAgent implements port.SurfaceSettings.
func (s *Settings) SetUserAgent(ua string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userAgent = ua
}

// SetDefaultContextMenusEnabled implements port.SurfaceSettings.
func (s *Settings) SetDefaultContextMenusEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contextMenus = enabled
}

// ContextMenusEnabled reports the context menu setting.
func (s *Settings) ContextMenusEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contextMenus
}
