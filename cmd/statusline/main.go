package main

import (
	"os"

	"github.com/grovetools/statusline/cli"
	"github.com/grovetools/statusline/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"statusline",
		"Status line segments for Neovim and shell prompts",
	)

	rootCmd.AddCommand(cmd.NewStatusCmd())
	rootCmd.AddCommand(cmd.NewWatchCmd())
	rootCmd.AddCommand(cmd.NewInstallCmd())
	rootCmd.AddCommand(cmd.NewPreviewCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
