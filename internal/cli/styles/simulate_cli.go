package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
)

// SimulationRow is the outcome of one popup scenario.
type SimulationRow struct {
	Name   string
	Passed bool
	// Reason is the close reason, empty while the popup is still open.
	Reason string
	After  time.Duration
	Err    error
}

// SimulationCLIRenderer renders `miniworld popup simulate` reports.
type SimulationCLIRenderer struct {
	theme *Theme
}

func NewSimulationCLIRenderer(theme *Theme) *SimulationCLIRenderer {
	return &SimulationCLIRenderer{theme: theme}
}

func (r *SimulationCLIRenderer) RenderReport(rows []SimulationRow) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconWindow), r.theme.Title.Render("Popup scenarios")))

	passed := 0
	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		result := "FAIL"
		if row.Passed {
			result = "ok"
			passed++
		}
		closed, after := "open", "-"
		if row.Reason != "" {
			closed = row.Reason
			after = row.After.Round(time.Millisecond).String()
		}
		tableRows = append(tableRows, table.Row{row.Name, result, closed, after})
	}
	b.WriteString(RenderTable(r.theme, SimulationTableColumns(), tableRows))
	b.WriteString("\n")

	for _, row := range rows {
		if row.Err != nil {
			b.WriteString(fmt.Sprintf("%s %s: %v\n", r.theme.ErrorStyle.Render(IconX), row.Name, row.Err))
		}
	}

	summary := fmt.Sprintf("%d/%d passed", passed, len(rows))
	if passed == len(rows) {
		b.WriteString(r.theme.SuccessStyle.Render(IconCheck + " " + summary))
	} else {
		b.WriteString(r.theme.WarningStyle.Render(IconWarning + " " + summary))
	}
	return b.String()
}

func (r *SimulationCLIRenderer) RenderError(err error) string {
	return renderError(r.theme, err)
}
