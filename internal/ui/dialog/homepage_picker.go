package dialog

import (
	"context"
	"strings"

	"github.com/bnema/miniworld/internal/domain/entity"
)

// HomePagePlaceholder is shown in place of the new tab page.
const HomePagePlaceholder = "Enter a URL..."

type homepageStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, input, placeholder string) (string, error)
}

// HomePagePicker edits the homepage. The text field shows a placeholder
// while the homepage is the new tab page.
type HomePagePicker struct {
	store homepageStore

	// Text is the content of the URL field.
	Text string
}

// NewHomePagePicker creates the picker model.
func NewHomePagePicker(store homepageStore) *HomePagePicker {
	return &HomePagePicker{store: store, Text: HomePagePlaceholder}
}

// Load fills the field from the stored homepage.
func (p *HomePagePicker) Load(ctx context.Context) error {
	homePage, err := p.store.Get(ctx)
	if err != nil {
		return err
	}
	if entity.IsNewTabHomePage(homePage) {
		p.Text = HomePagePlaceholder
	} else {
		p.Text = homePage
	}
	return nil
}

// ShowingPlaceholder reports whether the field shows the placeholder.
func (p *HomePagePicker) ShowingPlaceholder() bool {
	return p.Text == HomePagePlaceholder
}

// Focus clears the placeholder so the user can type.
func (p *HomePagePicker) Focus() {
	if p.ShowingPlaceholder() {
		p.Text = ""
	}
}

// Blur puts the placeholder back on an empty field.
func (p *HomePagePicker) Blur() {
	if strings.TrimSpace(p.Text) == "" {
		p.Text = HomePagePlaceholder
	}
}

// Accept saves text as the homepage and returns the stored value.
func (p *HomePagePicker) Accept(ctx context.Context, text string) (string, error) {
	saved, err := p.store.Set(ctx, text, HomePagePlaceholder)
	if err != nil {
		return "", err
	}
	p.Text = text
	if entity.IsNewTabHomePage(saved) {
		p.Text = HomePagePlaceholder
	}
	return saved, nil
}
