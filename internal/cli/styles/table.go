package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Static output has no cursor.
	s.Selected = s.Cell.Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RenderTable renders rows as a static table sized to fit them.
func RenderTable(theme *Theme, columns []table.Column, rows []table.Row) string {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	// Header line plus its border.
	const headerHeight = 2
	return NewStyledTable(theme, columns, rows, width, len(rows)+headerHeight).View()
}

// ZoomTableColumns returns columns for the zoom level list.
func ZoomTableColumns() []table.Column {
	return []table.Column{
		{Title: "Host", Width: 32},
		{Title: "Zoom", Width: 6},
		{Title: "Updated", Width: 18},
	}
}

// AddressTableColumns returns columns for the autofill address list.
func AddressTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: 18},
		{Title: "Address", Width: 40},
		{Title: "Phone", Width: 16},
	}
}

// CardTableColumns returns columns for the autofill card list.
func CardTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Cardholder", Width: 22},
		{Title: "Number", Width: 20},
		{Title: "Expiry", Width: 6},
	}
}

// SimulationTableColumns returns columns for popup simulation results.
func SimulationTableColumns() []table.Column {
	return []table.Column{
		{Title: "Scenario", Width: 28},
		{Title: "Result", Width: 6},
		{Title: "Closed", Width: 14},
		{Title: "After", Width: 10},
	}
}
