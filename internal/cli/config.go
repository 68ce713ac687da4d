package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/omatheusmesmo/checksignals/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [root]",
	Short: "Show or write the effective check-signals.yaml",
	Long: `Prints the configuration a scan would use, as YAML.

The output merges built-in defaults, check-signals.yaml (or --config),
$CHECK_SIGNALS_ROOT and the optional [root] argument, so it can be saved and
edited as a starting point.

Examples:
  # Show the effective configuration
  check-signals config

  # Write it to ./check-signals.yaml
  check-signals config --write

  # Replace an existing file
  check-signals config web/src/app --write --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

var configFlags struct {
	configPath string
	write      bool
	force      bool
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configFlags.configPath, "config", "",
		"Path to a YAML config file to start from (default: ./check-signals.yaml when present)")
	configCmd.Flags().BoolVar(&configFlags.write, "write", false,
		"Write the configuration to ./"+config.ConfigFileName+" instead of printing it")
	configCmd.Flags().BoolVar(&configFlags.force, "force", false,
		"Overwrite an existing "+config.ConfigFileName+" when used with --write")
}

func runConfig(cmd *cobra.Command, args []string) error {
	settings, err := resolveBaseSettings(configFlags.configPath, args)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	projectCfg := config.FromSettings(settings)

	if !configFlags.write {
		data, err := yaml.Marshal(projectCfg)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if !configFlags.force {
		if _, err := config.Load("."); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.ConfigFileName)
		} else if !errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("failed to check existing %s: %w", config.ConfigFileName, err)
		}
	}

	if err := config.Save(".", projectCfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", config.ConfigFileName)
	return nil
}
