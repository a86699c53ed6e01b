package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/bnema/miniworld/internal/application/port"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/infrastructure/headless"
	"github.com/bnema/miniworld/internal/logging"
	"github.com/bnema/miniworld/internal/ui/mainloop"
	"github.com/bnema/miniworld/internal/ui/popup"
)

const (
	defaultScenarioTimeout = 10 * time.Second
	// settleMargin is how long past the auto-close delay a popup that is
	// expected to stay open is watched.
	settleMargin = time.Second
)

var (
	// ErrInvalidScenario reports a scenario file that cannot be run.
	ErrInvalidScenario = errors.New("invalid scenario")
	// ErrExpectationFailed reports a scenario whose outcome differs from its expectation.
	ErrExpectationFailed = errors.New("expectation failed")
)

// Scenario scripts one popup against the headless engine.
type Scenario struct {
	Name string `yaml:"name"`
	// Pages maps URLs to the HTML the engine serves for them.
	Pages map[string]string `yaml:"pages"`
	Popup ScenarioPopup     `yaml:"popup"`
	Steps []ScenarioStep    `yaml:"steps"`
	// Delay overrides popup.auto_close.delay for this scenario.
	Delay time.Duration `yaml:"delay"`
	// MaxSurfaces bounds live surfaces, the opener included.
	MaxSurfaces int              `yaml:"max_surfaces"`
	Timeout     time.Duration    `yaml:"timeout"`
	Expect      ScenarioExpected `yaml:"expect"`
}

// ScenarioPopup is the window.open() call that starts the scenario.
type ScenarioPopup struct {
	URL    string `yaml:"url"`
	Width  *int   `yaml:"width"`
	Height *int   `yaml:"height"`
	Left   *int   `yaml:"left"`
	Top    *int   `yaml:"top"`
}

// ScenarioStep is one action on the popup surface. Exactly one field is set.
type ScenarioStep struct {
	Navigate     string        `yaml:"navigate,omitempty"`
	Wait         time.Duration `yaml:"wait,omitempty"`
	Title        string        `yaml:"title,omitempty"`
	CloseRequest bool          `yaml:"close_request,omitempty"`
	Crash        string        `yaml:"crash,omitempty"`
}

// ScenarioExpected is the outcome a scenario asserts.
type ScenarioExpected struct {
	Closed bool   `yaml:"closed"`
	Reason string `yaml:"reason"`
}

// ScenarioResult is what happened to the popup.
type ScenarioResult struct {
	Name     string
	Attached bool
	Closed   bool
	Reason   entity.CloseReason
	// After is the time from window.open() to the close.
	After time.Duration
	Err   error
}

// Passed reports whether the scenario ran and met its expectation.
func (r ScenarioResult) Passed() bool {
	return r.Err == nil
}

// LoadScenarios reads every YAML document of path as a scenario.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario file: %w", err)
	}
	defer f.Close()

	scenarios, err := DecodeScenarios(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// DecodeScenarios decodes a stream of YAML scenario documents.
func DecodeScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var scenarios []Scenario
	for {
		var sc Scenario
		err := dec.Decode(&sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode scenario %d: %w", len(scenarios)+1, err)
		}
		if err := sc.validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", len(scenarios)+1, err)
		}
		scenarios = append(scenarios, sc)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}
	return scenarios, nil
}

func (sc *Scenario) validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidScenario)
	}
	if sc.Popup.URL == "" {
		return fmt.Errorf("%w: %s: popup.url is required", ErrInvalidScenario, sc.Name)
	}
	if (sc.Popup.Width == nil) != (sc.Popup.Height == nil) {
		return fmt.Errorf("%w: %s: popup width and height go together", ErrInvalidScenario, sc.Name)
	}
	if (sc.Popup.Left == nil) != (sc.Popup.Top == nil) {
		return fmt.Errorf("%w: %s: popup left and top go together", ErrInvalidScenario, sc.Name)
	}
	for i, step := range sc.Steps {
		if step.actions() != 1 {
			return fmt.Errorf("%w: %s: step %d must have exactly one action", ErrInvalidScenario, sc.Name, i+1)
		}
		if step.Crash != "" && !knownFailure(port.ProcessFailureKind(step.Crash)) {
			return fmt.Errorf("%w: %s: step %d: unknown crash kind %q", ErrInvalidScenario, sc.Name, i+1, step.Crash)
		}
	}
	if sc.Expect.Reason != "" && !sc.Expect.Closed {
		return fmt.Errorf("%w: %s: expect.reason needs expect.closed", ErrInvalidScenario, sc.Name)
	}
	return nil
}

func knownFailure(kind port.ProcessFailureKind) bool {
	switch kind {
	case port.ProcessExited, port.ProcessUnresponsive, port.ProcessBrowserExit:
		return true
	}
	return false
}

func (s ScenarioStep) actions() int {
	n := 0
	for _, set := range []bool{s.Navigate != "", s.Wait > 0, s.Title != "", s.CloseRequest, s.Crash != ""} {
		if set {
			n++
		}
	}
	return n
}

func (p ScenarioPopup) features() entity.WindowFeatures {
	var f entity.WindowFeatures
	if p.Width != nil && p.Height != nil {
		f.HasSize, f.Width, f.Height = true, *p.Width, *p.Height
	}
	if p.Left != nil && p.Top != nil {
		f.HasPosition, f.Left, f.Top = true, *p.Left, *p.Top
	}
	return f
}

// scenarioParent is the opener window the popup is centered on.
var scenarioParent = entity.Rect{Size: entity.Size{Width: 1920, Height: 1080}}

// RunScenarios runs scenarios concurrently. Results keep the input order.
func RunScenarios(ctx context.Context, scenarios []Scenario, opts popup.Options) []ScenarioResult {
	results := make([]ScenarioResult, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	for i := range scenarios {
		g.Go(func() error {
			results[i] = RunScenario(gctx, scenarios[i], opts)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// RunScenario drives one popup through a private engine, UI loop and popup
// manager, then checks the expectation.
func RunScenario(ctx context.Context, sc Scenario, opts popup.Options) ScenarioResult {
	result := ScenarioResult{Name: sc.Name}

	timeout := sc.Timeout
	if timeout <= 0 {
		timeout = defaultScenarioTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ctx = logging.With(ctx, map[string]any{"scenario": sc.Name, "popup_url": sc.Popup.URL})
	log := logging.FromContext(ctx)

	if sc.Delay > 0 {
		opts.AutoClose.Delay = sc.Delay
	}

	env := headless.NewEnvironment(headless.Config{MaxSurfaces: sc.MaxSurfaces})
	defer env.Shutdown()
	for url, html := range sc.Pages {
		env.AddPage(url, html)
	}

	loop := mainloop.NewLoop()
	go func() { _ = loop.Run(ctx) }()
	defer func() {
		loop.Stop()
		<-loop.Done()
	}()

	windows := headless.NewWindowFactory(1)
	manager := popup.NewManager(ctx, popup.Deps{
		Environment: env,
		Windows:     windows,
		UI:          loop,
		Clock:       mainloop.SystemClock{},
	}, opts)
	defer func() {
		_ = loop.Call(context.WithoutCancel(ctx), func() { manager.CloseAll(entity.CloseReasonShutdown) })
	}()

	closed := make(chan *popup.Controller, 1)
	manager.OnPopupClosed(func(c *popup.Controller) {
		select {
		case closed <- c:
		default:
		}
	})

	opener, err := env.NewSurface()
	if err != nil {
		result.Err = fmt.Errorf("create opener: %w", err)
		return result
	}
	opener.SetCallbacks(&port.SurfaceCallbacks{OnNewWindowRequested: manager.HandleNewWindowRequested})

	opened := time.Now()
	outcome, err := opener.OpenWindow(sc.Popup.URL, sc.Popup.features(), scenarioParent).Wait(ctx)
	if err != nil {
		result.Err = fmt.Errorf("open popup: %w", err)
		return result
	}
	result.Attached = outcome.Handled

	surface, _ := outcome.Surface.(*headless.Surface)
	if err := runSteps(ctx, sc.Steps, surface); err != nil {
		result.Err = err
		return result
	}
	log.Debug().Bool("attached", result.Attached).Msg("scenario steps done")

	watch := opts.AutoClose.Delay + settleMargin
	if sc.Expect.Closed {
		watch = time.Until(deadline(ctx))
	}

	select {
	case c := <-closed:
		result.Closed = true
		result.Reason = c.CloseReason()
		result.After = time.Since(opened)
	case <-time.After(watch):
	case <-ctx.Done():
	}

	result.Err = checkExpectation(sc.Expect, result)
	return result
}

func deadline(ctx context.Context) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return time.Now().Add(defaultScenarioTimeout)
}

func runSteps(ctx context.Context, steps []ScenarioStep, surface *headless.Surface) error {
	for i, step := range steps {
		if step.Wait > 0 {
			select {
			case <-time.After(step.Wait):
				continue
			case <-ctx.Done():
				return fmt.Errorf("step %d: %w", i+1, ctx.Err())
			}
		}

		if surface == nil {
			return fmt.Errorf("step %d: popup has no surface", i+1)
		}
		switch {
		case step.Navigate != "":
			surface.Navigate(step.Navigate)
		case step.Title != "":
			surface.SetTitle(step.Title)
		case step.CloseRequest:
			surface.RequestClose()
		case step.Crash != "":
			surface.Crash(port.ProcessFailureKind(step.Crash))
		}
	}
	return nil
}

func checkExpectation(want ScenarioExpected, got ScenarioResult) error {
	switch {
	case want.Closed && !got.Closed:
		return fmt.Errorf("%w: popup stayed open", ErrExpectationFailed)
	case !want.Closed && got.Closed:
		return fmt.Errorf("%w: popup closed (%s)", ErrExpectationFailed, got.Reason)
	case want.Reason != "" && entity.CloseReason(want.Reason) != got.Reason:
		return fmt.Errorf("%w: closed with %s, want %s", ErrExpectationFailed, got.Reason, want.Reason)
	}
	return nil
}
