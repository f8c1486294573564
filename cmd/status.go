package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/statusline/cli"
	"github.com/grovetools/statusline/render"
	"github.com/grovetools/statusline/segment"
)

// NewStatusCmd creates the status command: render the line once and print
// it. This is the entry point shell prompts call on every redraw, so it must
// be fast and must never write anything but the line to stdout.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the status line once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgErr := cli.LoadConfig(cmd)
			if cfgErr != nil {
				cfg = defaultConfig()
			}
			log := cli.GetLoggerWithConfig(cmd, cfg)
			if cfgErr != nil {
				// A broken config must not break the prompt. Log and
				// render with defaults.
				log.WithError(cfgErr).Warn("config load failed, using defaults")
			}

			ctx, editor := snapshotContext(log)
			registerProviders(cfg, editor)

			line := render.Line(ctx, segment.Providers(), renderOptions(cfg))
			if line != "" {
				fmt.Print(line)
			}
			return nil
		},
	}
}
