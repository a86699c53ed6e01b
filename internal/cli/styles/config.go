package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and whether it exists yet.
func (r *ConfigRenderer) RenderConfigInfo(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.Subtle.Render("(not created yet, defaults in use)")
	if exists {
		status = r.theme.SuccessStyle.Render(IconCheck)
	}

	return fmt.Sprintf("%s Config %s %s",
		iconStyle.Render(IconConfig),
		r.theme.Normal.Render(path),
		status,
	)
}

// RenderEnvHint tells the user how environment overrides are spelled.
func (r *ConfigRenderer) RenderEnvHint(prefix string) string {
	return fmt.Sprintf("%s Override any key with %s, e.g. %s",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconInfo),
		r.theme.Highlight.Render(prefix+"_<SECTION>_<KEY>"),
		r.theme.Normal.Render(prefix+"_POPUP_AUTO_CLOSE_DELAY=2s"),
	)
}

func (r *ConfigRenderer) RenderError(err error) string {
	return renderError(r.theme, err)
}
