package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/miniworld/internal/cli/styles"
	"github.com/bnema/miniworld/internal/ui/dialog"
)

var homepageCmd = &cobra.Command{
	Use:   "homepage",
	Short: "Show or change the homepage",
	Args:  cobra.NoArgs,
	RunE:  runHomepageShow,
}

var homepageSetCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Set the homepage",
	Long: `Set the homepage. A URL without a scheme gets https://.
An empty value opens the new tab page.`,
	Example: `  miniworld homepage set example.com
  miniworld homepage set ""`,
	Args: cobra.ExactArgs(1),
	RunE: runHomepageSet,
}

var homepageResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Go back to the configured homepage",
	Args:  cobra.NoArgs,
	RunE:  runHomepageReset,
}

func init() {
	rootCmd.AddCommand(homepageCmd)
	homepageCmd.AddCommand(homepageSetCmd, homepageResetCmd)
}

func runHomepageShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	current, err := a.HomepageUC.Get(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(styles.NewHomepageCLIRenderer(a.Theme).RenderCurrent(current))
	return nil
}

func runHomepageSet(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	picker := dialog.NewHomePagePicker(a.HomepageUC)
	if err := picker.Load(a.Ctx()); err != nil {
		return err
	}
	saved, err := picker.Accept(a.Ctx(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(styles.NewHomepageCLIRenderer(a.Theme).RenderSaved(saved))
	return nil
}

func runHomepageReset(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.HomepageUC.Reset(a.Ctx()); err != nil {
		return err
	}
	return runHomepageShow(nil, nil)
}
