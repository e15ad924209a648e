package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/arithtutor/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
	Long: `Inspect or create the configuration file.

Settings are layered: built-in defaults, then ~/.arithtutor/config.toml, then
ARITHTUTOR_* environment variables, then command-line flags.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return fmt.Errorf("failed to get config paths: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := os.Stat(paths.Config); err == nil && !configForce {
		PrintWarning(out, "Config file already exists (use --force to overwrite)")
		PrintLabelValue(out, "Path", paths.Config)
		return nil
	}

	if err := config.Save(paths.Config, config.Default()); err != nil {
		return err
	}
	logger.Info("config written", "path", paths.Config)

	if jsonOutput {
		return outputJSON(out, map[string]string{"path": paths.Config})
	}
	PrintSuccess(out, "Config file written")
	PrintLabelValue(out, "Path", paths.Config)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, settings)
	}

	data, err := config.Encode(settings)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
