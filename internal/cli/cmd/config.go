package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/miniworld/internal/application/usecase"
	"github.com/bnema/miniworld/internal/cli"
	"github.com/bnema/miniworld/internal/cli/styles"
	"github.com/bnema/miniworld/internal/infrastructure/config"
	"github.com/bnema/miniworld/internal/logging"
)

var (
	schemaJSON   bool
	schemaPrefix string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List every config key with its type and default",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configJSONSchemaCmd = &cobra.Command{
	Use:   "jsonschema",
	Short: "Print the JSON schema of config.toml for editor completion",
	Args:  cobra.NoArgs,
	RunE:  runConfigJSONSchema,
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the effective popup settings whenever the config file changes",
	Args:  cobra.NoArgs,
	RunE:  runConfigWatch,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configJSONSchemaCmd, configWatchCmd)

	configSchemaCmd.Flags().BoolVar(&schemaJSON, "json", false, "output as JSON")
	configSchemaCmd.Flags().StringVar(&schemaPrefix, "prefix", "", "only keys starting with this prefix (e.g. popup.auto_close)")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigRenderer(a.Theme)

	_, statErr := os.Stat(a.ConfigFile)
	fmt.Println(renderer.RenderConfigInfo(a.ConfigFile, statErr == nil))
	fmt.Println(renderer.RenderEnvHint(config.EnvPrefix))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewConfigSchemaRenderer(a.Theme)

	out, err := a.ConfigSchemaUC.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Prefix: schemaPrefix})
	if err != nil {
		return fmt.Errorf("get config schema: %w", err)
	}
	if len(out.Keys) == 0 {
		return fmt.Errorf("no config keys match %q", schemaPrefix)
	}

	if schemaJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(data)
		return nil
	}
	fmt.Print(renderer.Render(out.Keys))
	return nil
}

func runConfigJSONSchema(_ *cobra.Command, _ []string) error {
	data, err := config.NewSchemaProvider().JSONSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runConfigWatch(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	log := logging.FromContext(a.Ctx())

	mgr, err := config.NewManager(a.ConfigFile)
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	mgr.OnConfigChange(func(cfg *config.Config) {
		opts := cli.PopupOptions(cfg)
		fmt.Printf("%s popup %dx%d scale=%.2f auto_close=%t delay=%s max_text=%d\n",
			styles.IconConfig,
			opts.DefaultSize.Width, opts.DefaultSize.Height, opts.Scale,
			opts.AutoClose.Enabled, opts.AutoClose.Delay, opts.AutoClose.MaxTextLength)
	})
	if err := mgr.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	log.Info().Str("file", mgr.GetConfigFile()).Msg("watching config")
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", mgr.GetConfigFile())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}
