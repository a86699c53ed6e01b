// Package headless is an in-process rendering engine. It serves pages from
// an in-memory table, evaluates scripts with sobek and raises engine events
// from its own goroutines, which makes it usable for scenario runs and tests
// without a real browser.
package headless

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/miniworld/internal/application/port"
)

// BlankURL is always served as an empty document.
const BlankURL = "about:blank"

// DefaultUserAgent is the engine user agent before any token is appended.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/605.1.15 (KHTML, like Gecko) Safari/605.1.15"

var (
	// ErrSurfaceLimit is returned when the environment already hosts its
	// maximum number of surfaces, like an engine refusing another process.
	ErrSurfaceLimit = errors.New("headless: surface limit reached")
	// ErrEnvironmentClosed is returned once the environment was shut down.
	ErrEnvironmentClosed = errors.New("headless: environment closed")
	// ErrPageNotFound is the navigation error status for unknown URLs.
	ErrPageNotFound = errors.New("headless: page not found")
)

// Config tunes an Environment.
type Config struct {
	// MaxSurfaces bounds live surfaces; zero means unlimited.
	MaxSurfaces int
	// InitDelay simulates the asynchronous surface start-up.
	InitDelay time.Duration
	// NavigationDelay is the time between navigation start and completion.
	NavigationDelay time.Duration
}

// Environment implements port.Environment.
type Environment struct {
	cfg Config

	mu       sync.Mutex
	pages    map[string]string
	surfaces map[*Surface]struct{}
	closed   bool
}

// NewEnvironment creates an engine environment.
func NewEnvironment(cfg Config) *Environment {
	return &Environment{
		cfg:      cfg,
		pages:    make(map[string]string),
		surfaces: make(map[*Surface]struct{}),
	}
}

// AddPage serves rawHTML at url.
func (e *Environment) AddPage(url, rawHTML string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pages[normalizeURL(url)] = rawHTML
}

func (e *Environment) load(url string) (*Page, error) {
	key := normalizeURL(url)

	e.mu.Lock()
	raw, ok := e.pages[key]
	e.mu.Unlock()

	if !ok {
		if key != BlankURL {
			return nil, fmt.Errorf("%w: %s", ErrPageNotFound, url)
		}
		raw = "<html><head></head><body></body></html>"
	}
	return ParsePage(url, raw)
}

// CreateSurface implements port.Environment.
func (e *Environment) CreateSurface(ctx context.Context) (port.Surface, error) {
	if e.cfg.InitDelay > 0 {
		timer := time.NewTimer(e.cfg.InitDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return e.NewSurface()
}

// NewSurface creates a surface without the start-up delay. Opener (main)
// surfaces are created this way.
func (e *Environment) NewSurface() (*Surface, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrEnvironmentClosed
	}
	if e.cfg.MaxSurfaces > 0 && len(e.surfaces) >= e.cfg.MaxSurfaces {
		return nil, ErrSurfaceLimit
	}

	s := newSurface(e)
	e.surfaces[s] = struct{}{}
	return s, nil
}

func (e *Environment) release(s *Surface) {
	e.mu.Lock()
	delete(e.surfaces, s)
	e.mu.Unlock()
}

// LiveSurfaces returns the number of surfaces not yet closed.
func (e *Environment) LiveSurfaces() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.surfaces)
}

// Shutdown tears the engine down. Every live surface reports a browser
// process exit.
func (e *Environment) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	live := make([]*Surface, 0, len(e.surfaces))
	for s := range e.surfaces {
		live = append(live, s)
	}
	e.mu.Unlock()

	for _, s := range live {
		s.Crash(port.ProcessBrowserExit)
	}
}

func normalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if strings.EqualFold(url, BlankURL) || url == "" {
		return BlankURL
	}
	return url
}
