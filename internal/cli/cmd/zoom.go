package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/miniworld/internal/application/usecase"
	"github.com/bnema/miniworld/internal/cli/styles"
	"github.com/bnema/miniworld/internal/domain/entity"
	"github.com/bnema/miniworld/internal/ui/dialog"
)

var zoomClearYes bool

var zoomCmd = &cobra.Command{
	Use:   "zoom",
	Short: "Manage per-site zoom levels",
}

var zoomListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved zoom levels",
	Args:  cobra.NoArgs,
	RunE:  runZoomList,
}

var zoomSetCmd = &cobra.Command{
	Use:   "set <host> <percent>",
	Short: "Save a zoom level for a host",
	Long: `Save a zoom level for a host. The host may be given as a URL.
Setting 100% removes the entry so the host follows the default zoom.`,
	Example: `  miniworld zoom set github.com 125
  miniworld zoom set https://news.example.com/today 90%`,
	Args: cobra.ExactArgs(2),
	RunE: runZoomSet,
}

var zoomResetCmd = &cobra.Command{
	Use:   "reset <host>",
	Short: "Forget the zoom level of a host",
	Args:  cobra.ExactArgs(1),
	RunE:  runZoomReset,
}

var zoomClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every saved zoom level",
	Args:  cobra.NoArgs,
	RunE:  runZoomClear,
}

func init() {
	rootCmd.AddCommand(zoomCmd)
	zoomCmd.AddCommand(zoomListCmd, zoomSetCmd, zoomResetCmd, zoomClearCmd)
	zoomClearCmd.Flags().BoolVarP(&zoomClearYes, "yes", "y", false, "skip confirmation prompt")
}

func loadZoomManager() (*dialog.ZoomLevelManager, *styles.ZoomCLIRenderer, error) {
	a, err := requireApp()
	if err != nil {
		return nil, nil, err
	}
	m := dialog.NewZoomLevelManager(a.ZoomUC)
	if err := m.Load(a.Ctx()); err != nil {
		return nil, nil, fmt.Errorf("load zoom levels: %w", err)
	}
	return m, styles.NewZoomCLIRenderer(a.Theme), nil
}

func runZoomList(_ *cobra.Command, _ []string) error {
	m, renderer, err := loadZoomManager()
	if err != nil {
		return err
	}
	defaultPercent := int(math.Round(app.ZoomUC.DefaultZoom() * 100))
	fmt.Println(renderer.RenderList(m.Rows(), defaultPercent, time.Now()))
	return nil
}

func runZoomSet(_ *cobra.Command, args []string) error {
	percent, err := parsePercent(args[1])
	if err != nil {
		return err
	}

	m, renderer, err := loadZoomManager()
	if err != nil {
		return err
	}
	if err := m.AddZoomLevel(app.Ctx(), args[0], percent); err != nil {
		return err
	}
	fmt.Println(renderer.RenderSet(usecase.NormalizeHost(args[0]), percent))
	return nil
}

func runZoomReset(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.ZoomUC.ResetZoom(a.Ctx(), usecase.NormalizeHost(args[0])); err != nil {
		return err
	}
	fmt.Println(styles.NewZoomCLIRenderer(a.Theme).RenderReset(usecase.NormalizeHost(args[0])))
	return nil
}

func runZoomClear(_ *cobra.Command, _ []string) error {
	m, renderer, err := loadZoomManager()
	if err != nil {
		return err
	}
	count := len(m.Rows())
	if count == 0 {
		fmt.Println(renderer.RenderNothingToClear())
		return nil
	}

	var promptErr error
	confirm := func() bool {
		if zoomClearYes {
			return true
		}
		msg := fmt.Sprintf("Delete %d saved zoom levels?", count)
		ok, err := styles.Confirm(app.Theme, msg, os.Stdin, os.Stdout)
		promptErr = err
		return ok
	}

	deleted, err := m.DeleteAll(app.Ctx(), confirm)
	if err != nil {
		return err
	}
	if promptErr != nil {
		return promptErr
	}
	if !deleted {
		fmt.Println(renderer.RenderCanceled())
		return nil
	}
	fmt.Println(renderer.RenderCleared(count))
	return nil
}

// parsePercent accepts "125" or "125%".
func parsePercent(s string) (int, error) {
	percent, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return 0, fmt.Errorf("invalid zoom percent %q", s)
	}
	minPercent := int(entity.ZoomMin * 100)
	maxPercent := int(entity.ZoomMax * 100)
	if percent < minPercent || percent > maxPercent {
		return 0, fmt.Errorf("zoom percent %d out of range %d-%d", percent, minPercent, maxPercent)
	}
	return percent, nil
}
