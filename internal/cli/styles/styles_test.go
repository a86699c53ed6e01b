package styles_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/miniworld/internal/cli/styles"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/infrastructure/config"
	"github.com/bnema/miniworld/internal/ui/dialog"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel_DefaultsToNo(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Delete all zoom levels?")
	m, _ = m.Update(keyMsg("enter"))

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirmModel_YesThenEnter(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Delete all zoom levels?")
	m, _ = m.Update(keyMsg("y"))
	assert.False(t, m.Done())

	m, _ = m.Update(keyMsg("enter"))
	assert.True(t, m.Result())
}

func TestConfirmModel_ToggleAndCancel(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Delete?")
	m, _ = m.Update(keyMsg("tab"))
	assert.True(t, m.Yes)

	m, _ = m.Update(keyMsg("esc"))
	assert.True(t, m.Done())
	assert.False(t, m.Result(), "cancel never confirms")
}

func TestConfirmModel_ViewShowsMessage(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Delete all zoom levels?")
	view := m.View()
	assert.Contains(t, view, "Delete all zoom levels?")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
}

func TestZoomCLIRenderer_RenderList(t *testing.T) {
	r := styles.NewZoomCLIRenderer(testTheme())
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	out := r.RenderList([]dialog.ZoomRow{
		{Host: "docs.example.com", Percent: 125, UpdatedAt: now.Add(-3 * time.Minute)},
		{Host: "news.example.com", Percent: 90},
	}, 100, now)

	assert.Contains(t, out, "docs.example.com")
	assert.Contains(t, out, "125%")
	assert.Contains(t, out, "3 minutes ago")
	assert.Contains(t, out, "default 100%")
}

func TestZoomCLIRenderer_EmptyList(t *testing.T) {
	r := styles.NewZoomCLIRenderer(testTheme())
	out := r.RenderList(nil, 100, time.Now())
	assert.Contains(t, out, "No per-site zoom levels saved.")
}

func TestZoomCLIRenderer_SetToDefaultReadsAsReset(t *testing.T) {
	r := styles.NewZoomCLIRenderer(testTheme())
	assert.Contains(t, r.RenderSet("example.com", 100), "default zoom")
	assert.Contains(t, r.RenderSet("example.com", 150), "150%")
}

func TestAutofillCLIRenderer_RenderCards(t *testing.T) {
	r := styles.NewAutofillCLIRenderer(testTheme())
	out := r.RenderCards([]dialog.CardRow{{ID: 7, Holder: "Ada Lovelace", Number: "**** **** **** 1111", Expiry: "04/29"}})

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "**** **** **** 1111")
	assert.NotContains(t, out, "4111")
}

func TestHomepageCLIRenderer_NewTab(t *testing.T) {
	r := styles.NewHomepageCLIRenderer(testTheme())
	assert.Contains(t, r.RenderCurrent(entity.NewTabURL), "new tab page")
	assert.Contains(t, r.RenderSaved("https://example.com"), "https://example.com")
}

func TestSimulationCLIRenderer_RenderReport(t *testing.T) {
	r := styles.NewSimulationCLIRenderer(testTheme())
	out := r.RenderReport([]styles.SimulationRow{
		{Name: "oauth callback", Passed: true, Reason: "auto_close", After: 1234 * time.Millisecond},
		{Name: "content page", Passed: false, Err: errors.New("expected popup to stay open")},
	})

	assert.Contains(t, out, "oauth callback")
	assert.Contains(t, out, "auto_close")
	assert.Contains(t, out, "1.234s")
	assert.Contains(t, out, "expected popup to stay open")
	assert.Contains(t, out, "1/2 passed")
}

func TestConfigSchemaRenderer_OrdersPopupFirst(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(testTheme())
	out := r.Render([]entity.ConfigKeyInfo{
		{Key: "logging.level", Type: "string", Default: "info", Section: "Logging"},
		{Key: "popup.default_width", Type: "int", Default: "800", Section: "Popup"},
	})

	popupAt := strings.Index(out, "popup.default_width")
	loggingAt := strings.Index(out, "logging.level")
	require.NotEqual(t, -1, popupAt)
	require.NotEqual(t, -1, loggingAt)
	assert.Less(t, popupAt, loggingAt)
	assert.Contains(t, out, "MINIWORLD_POPUP_DEFAULT_WIDTH")
}
