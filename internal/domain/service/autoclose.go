// Package service holds pure domain policies shared by the UI and CLI layers.
package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Defaults for the popup auto-close heuristic.
const (
	DefaultMaxTextLength  = 20
	DefaultAutoCloseDelay = 1200 * time.Millisecond
)

// DefaultSuccessKeywords are URL substrings that suggest an auth or
// redirect flow has reached its final page.
var DefaultSuccessKeywords = []string{
	"success",
	"callback",
	"complete",
	"finished",
	"done",
	"login_success",
}

// DefaultBlankURLs are placeholder documents a flow may finish on.
var DefaultBlankURLs = []string{
	"about:blank",
}

// TextLengthProbeScript returns the trimmed length of the page's visible text,
// or -1 when there is no body to inspect.
const TextLengthProbeScript = `(function() {
  const body = document.body;
  if (!body) { return -1; }
  const text = (body.innerText || "").trim();
  return text.length;
})()`

// AutoClosePolicy decides when a popup has served its purpose.
type AutoClosePolicy struct {
	Enabled bool
	// Keywords are matched case-insensitively as URL substrings.
	Keywords []string
	// BlankURLs are matched case-insensitively against the whole URL.
	BlankURLs []string
	// MaxTextLength is the exclusive upper bound of visible text that still
	// counts as an empty, redirect-only page.
	MaxTextLength int
	// Delay before the window closes, so a final client-side redirect can run.
	Delay time.Duration
}

// DefaultAutoClosePolicy returns the policy with the stock thresholds.
func DefaultAutoClosePolicy() AutoClosePolicy {
	return AutoClosePolicy{
		Enabled:       true,
		Keywords:      append([]string(nil), DefaultSuccessKeywords...),
		BlankURLs:     append([]string(nil), DefaultBlankURLs...),
		MaxTextLength: DefaultMaxTextLength,
		Delay:         DefaultAutoCloseDelay,
	}
}

// IsCandidateSuccessPage reports whether url looks like the end of an
// auth/redirect flow.
func (p AutoClosePolicy) IsCandidateSuccessPage(url string) bool {
	if !p.Enabled || url == "" {
		return false
	}
	lower := strings.ToLower(url)

	for _, blank := range p.BlankURLs {
		if lower == strings.ToLower(blank) {
			return true
		}
	}

	for _, keyword := range p.Keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}

	return false
}

// IsEmptyPage reports whether a probed text length counts as a confirmed
// empty/redirect-only page. Negative lengths are ambiguous and never count.
func (p AutoClosePolicy) IsEmptyPage(textLength int) bool {
	if textLength < 0 {
		return false
	}
	return textLength == 0 || textLength < p.MaxTextLength
}

// ParseProbeResult converts a raw script result into a text length.
// Engines hand results back JSON-encoded, so quoted numbers are accepted.
// ok is false for anything that is not a non-negative integer.
func ParseProbeResult(raw string) (length int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return 0, false
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}
