package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/dustin/go-humanize"

	"github.com/bnema/miniworld/internal/ui/dialog"
)

// ZoomCLIRenderer renders output of the `miniworld zoom` subcommands.
type ZoomCLIRenderer struct {
	theme *Theme
}

func NewZoomCLIRenderer(theme *Theme) *ZoomCLIRenderer {
	return &ZoomCLIRenderer{theme: theme}
}

// RenderList renders saved zoom levels. Update times are relative to now.
func (r *ZoomCLIRenderer) RenderList(rows []dialog.ZoomRow, defaultPercent int, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconZoom), r.theme.Title.Render("Zoom levels")))
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (default %d%%)", defaultPercent)))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(r.theme.Subtle.Render("No per-site zoom levels saved."))
		return b.String()
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		updated := "-"
		if !row.UpdatedAt.IsZero() {
			updated = humanize.RelTime(row.UpdatedAt, now, "ago", "from now")
		}
		tableRows = append(tableRows, table.Row{row.Host, fmt.Sprintf("%d%%", row.Percent), updated})
	}
	b.WriteString(RenderTable(r.theme, ZoomTableColumns(), tableRows))
	return b.String()
}

func (r *ZoomCLIRenderer) RenderSet(host string, percent int) string {
	if percent == 100 {
		return r.RenderReset(host)
	}
	return fmt.Sprintf("%s %s zoom set to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(host),
		r.theme.Badge.Render(fmt.Sprintf("%d%%", percent)),
	)
}

func (r *ZoomCLIRenderer) RenderReset(host string) string {
	return fmt.Sprintf("%s %s uses the default zoom",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(host),
	)
}

func (r *ZoomCLIRenderer) RenderCleared(count int) string {
	return fmt.Sprintf("%s Removed %s",
		r.theme.SuccessStyle.Render(IconTrash),
		humanize.Comma(int64(count))+" "+plural(count, "zoom level", "zoom levels"),
	)
}

func (r *ZoomCLIRenderer) RenderNothingToClear() string {
	return r.theme.Subtle.Render("No per-site zoom levels saved.")
}

func (r *ZoomCLIRenderer) RenderCanceled() string {
	return r.theme.Subtle.Render("Canceled.")
}

func (r *ZoomCLIRenderer) RenderError(err error) string {
	return renderError(r.theme, err)
}

func renderError(t *Theme, err error) string {
	return fmt.Sprintf("%s %v", t.ErrorStyle.Render(IconX), err)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
