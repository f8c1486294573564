// Package cli provides the shared cobra scaffolding for the statusline
// binary: standard flags, logger wiring, and user-facing error handling.
package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/statusline/config"
	"github.com/grovetools/statusline/logging"
)

// CommandOptions holds common options for statusline commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to statusline.yml config file")

	return cmd
}

// GetLogger creates a logger based on command flags
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	return GetLoggerWithConfig(cmd, nil)
}

// GetLoggerWithConfig creates a logger honoring the logging extension block
// of the loaded config. Flags win over the config file.
func GetLoggerWithConfig(cmd *cobra.Command, cfg *config.Config) *logrus.Logger {
	var logCfg logging.Config
	if cfg != nil {
		// An unparseable block falls back to defaults.
		_ = cfg.UnmarshalExtension("logging", &logCfg)
	}

	entry := logging.NewLoggerWithConfig("statusline-cli", logCfg)
	logger := entry.Logger

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadConfig loads the configuration honoring the --config flag.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return &config.Config{}, nil
	}
	return config.LoadFrom(cwd)
}
