package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/bnema/miniworld/internal/ui/dialog"
)

// AutofillCLIRenderer renders output of the `miniworld autofill` subcommands.
type AutofillCLIRenderer struct {
	theme *Theme
}

func NewAutofillCLIRenderer(theme *Theme) *AutofillCLIRenderer {
	return &AutofillCLIRenderer{theme: theme}
}

func (r *AutofillCLIRenderer) RenderAddresses(rows []dialog.AddressRow) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconAddress), r.theme.Title.Render("Addresses")))
	if len(rows) == 0 {
		b.WriteString(r.theme.Subtle.Render("No addresses saved."))
		return b.String()
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{
			strconv.FormatInt(int64(row.ID), 10),
			row.Name,
			row.Address,
			row.Phone,
		})
	}
	b.WriteString(RenderTable(r.theme, AddressTableColumns(), tableRows))
	return b.String()
}

func (r *AutofillCLIRenderer) RenderCards(rows []dialog.CardRow) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconCard), r.theme.Title.Render("Payment cards")))
	if len(rows) == 0 {
		b.WriteString(r.theme.Subtle.Render("No cards saved."))
		return b.String()
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, table.Row{
			strconv.FormatInt(int64(row.ID), 10),
			row.Holder,
			row.Number,
			row.Expiry,
		})
	}
	b.WriteString(RenderTable(r.theme, CardTableColumns(), tableRows))
	return b.String()
}

func (r *AutofillCLIRenderer) RenderAdded(kind, label string) string {
	return fmt.Sprintf("%s Saved %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		kind,
		r.theme.Highlight.Render(label),
	)
}

func (r *AutofillCLIRenderer) RenderDeleted(kind string, id int64) string {
	return fmt.Sprintf("%s Deleted %s %s",
		r.theme.SuccessStyle.Render(IconTrash),
		kind,
		r.theme.Highlight.Render(strconv.FormatInt(id, 10)),
	)
}

func (r *AutofillCLIRenderer) RenderError(err error) string {
	return renderError(r.theme, err)
}
