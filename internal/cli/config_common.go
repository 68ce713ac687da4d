package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/omatheusmesmo/checksignals/internal/config"
	"github.com/omatheusmesmo/checksignals/pkg/checksignals"
)

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if the default config file does not exist (not an error).
// An explicitly requested file must exist.
func loadProjectConfig(configPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	if configPath == "" {
		projectCfg, err := config.Load(".")
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: failed to load %s: %v", checksignals.ErrInvalidConfig, config.ConfigFileName, err)
		}
		return projectCfg, nil
	}

	projectCfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load %s: %v", checksignals.ErrInvalidConfig, configPath, err)
	}
	return projectCfg, nil
}

// resolveBaseSettings merges defaults, the config file, the environment and
// the positional root, in increasing order of precedence.
func resolveBaseSettings(configPath string, args []string) (config.Settings, error) {
	projectCfg, err := loadProjectConfig(configPath)
	if err != nil {
		return config.Settings{}, err
	}

	settings := config.Defaults().Apply(projectCfg)

	if root := os.Getenv(checksignals.RootEnvVar); root != "" {
		settings.Root = root
	}
	if len(args) == 1 {
		settings.Root = args[0]
	}
	return settings, nil
}

// resolveSettings resolves the base settings and applies the check flags on top.
func resolveSettings(cmd *cobra.Command, args []string) (config.Settings, error) {
	settings, err := resolveBaseSettings(checkFlags.configPath, args)
	if err != nil {
		return config.Settings{}, err
	}

	if cmd.Flags().Changed("extension") {
		settings.Rules.Extension = checkFlags.extension
	}
	if cmd.Flags().Changed("keep-going") {
		settings.KeepGoing = checkFlags.keepGoing
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}

// logSettingsVerbose logs resolved settings when verbose mode is enabled.
func logSettingsVerbose(logger checksignals.Logger, settings config.Settings) {
	logger.Verbose("Settings resolved:")
	logger.Verbose("  Root: %s", settings.Root)
	logger.Verbose("  Extension: %s", settings.Rules.Extension)
	logger.Verbose("  Component marker: %s", settings.Rules.ComponentMarker)
	logger.Verbose("  Name pattern: %s", settings.Rules.NamePattern)
	logger.Verbose("  OnPush marker: %s", settings.Rules.OnPushMarker)
	logger.Verbose("  Signal APIs: %v", settings.Rules.SignalAPIs)
	logger.Verbose("  Keep going: %t", settings.KeepGoing)
}
