package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/miniworld/internal/cli"
	"github.com/bnema/miniworld/internal/cli/styles"
)

var popupCmd = &cobra.Command{
	Use:   "popup",
	Short: "Inspect popup window behavior",
}

var popupSimulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>...",
	Short: "Replay popup scenarios against a headless engine",
	Long: `Replay window.open() flows against a headless engine using the popup settings
from your configuration.

A scenario file holds one or more YAML documents:

  name: oauth callback
  pages:
    https://app.example.com/oauth/callback: "<html><body></body></html>"
  popup:
    url: https://auth.example.com/login
    width: 500
    height: 600
  steps:
    - navigate: https://app.example.com/oauth/callback
  expect:
    closed: true
    reason: auto_close

Steps are navigate, wait, title, close_request and crash
(render_process_exited, render_process_unresponsive, browser_process_exited).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPopupSimulate,
}

func init() {
	rootCmd.AddCommand(popupCmd)
	popupCmd.AddCommand(popupSimulateCmd)
}

func runPopupSimulate(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewSimulationCLIRenderer(a.Theme)

	var scenarios []cli.Scenario
	for _, path := range args {
		loaded, err := cli.LoadScenarios(path)
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return err
		}
		scenarios = append(scenarios, loaded...)
	}

	results := cli.RunScenarios(a.Ctx(), scenarios, a.PopupOptions())

	rows := make([]styles.SimulationRow, 0, len(results))
	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
		}
		rows = append(rows, styles.SimulationRow{
			Name:   r.Name,
			Passed: r.Passed(),
			Reason: string(r.Reason),
			After:  r.After,
			Err:    r.Err,
		})
	}
	fmt.Println(renderer.RenderReport(rows))

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
