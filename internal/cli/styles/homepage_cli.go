package styles

import (
	"fmt"

	"github.com/bnema/miniworld/internal/domain/entity"
)

// HomepageCLIRenderer renders output of the `miniworld homepage` subcommands.
type HomepageCLIRenderer struct {
	theme *Theme
}

func NewHomepageCLIRenderer(theme *Theme) *HomepageCLIRenderer {
	return &HomepageCLIRenderer{theme: theme}
}

func (r *HomepageCLIRenderer) RenderCurrent(homepage string) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(IconHome),
		r.theme.Title.Render("Homepage:"),
		r.theme.Normal.Render(entity.HomePageDisplayText(homepage)),
	)
}

func (r *HomepageCLIRenderer) RenderSaved(homepage string) string {
	return fmt.Sprintf("%s Homepage set to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(entity.HomePageDisplayText(homepage)),
	)
}

func (r *HomepageCLIRenderer) RenderError(err error) string {
	return renderError(r.theme, err)
}
