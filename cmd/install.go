package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/grovetools/statusline/errors"
	"github.com/grovetools/statusline/paths"
)

// NewInstallCmd creates the install command, which wires the statusline
// binary into the user's Starship prompt as a custom module.
func NewInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the statusline module to your starship.toml",
		Long: `Appends a custom module to your starship.toml configuration file so the
status line appears in your shell prompt, and attempts to add the module to
your main prompt format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall()
		},
	}
}

func runInstall() error {
	configHome := paths.ConfigHome()
	if configHome == "" {
		return errors.New(errors.ErrCodeStarshipSetup, "could not determine config directory")
	}

	configPath := filepath.Join(configHome, "starship.toml")

	contentBytes, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeStarshipSetup,
				fmt.Sprintf("starship config not found at %s. Please ensure starship is installed and configured", configPath))
		}
		return errors.Wrap(err, errors.ErrCodeStarshipSetup, "could not read starship config")
	}
	content := string(contentBytes)

	// --- 1. Add or update the custom module definition ---
	moduleConfig := `
# Added by 'statusline install'
[custom.statusline]
description = "Shows the statusline segments"
command = "statusline status"
when = true
format = " $output "
`

	if hasStatuslineModule(contentBytes) {
		if !strings.Contains(content, `command = "statusline status"`) {
			// Different command exists - keep the user's configuration.
			fmt.Printf("ℹ️  [custom.statusline] already exists with a different command.\n")
			fmt.Printf("   Keeping existing configuration to avoid conflicts.\n")
		} else {
			fmt.Println("✓ statusline module already configured.")
		}
	} else {
		content += moduleConfig
		fmt.Println("✓ Added [custom.statusline] module to starship config.")
	}

	// --- 2. Add the module to the prompt format if not already present ---
	if strings.Contains(content, "${custom.statusline}") || strings.Contains(content, "$custom.statusline") {
		fmt.Println("✓ statusline module already in starship format.")
	} else {
		// Try to insert it after git_branch, which is a common element.
		target := "$git_branch\\"
		if strings.Contains(content, target) {
			replacement := target + "\n${custom.statusline}\\"
			content = strings.Replace(content, target, replacement, 1)
			fmt.Println("✓ Added statusline module to starship format.")
		} else {
			fmt.Printf("⚠️  Could not automatically add '${custom.statusline}' to your starship format.\n")
			fmt.Printf("   Please add it manually to the 'format' string in %s\n", configPath)
		}
	}

	// --- 3. Write the updated config back ---
	err = os.WriteFile(configPath, []byte(content), 0o644)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStarshipSetup, "failed to write updated starship config")
	}

	fmt.Printf("\nSuccessfully updated %s. Please restart your shell to see the changes.\n", configPath)
	return nil
}

// hasStatuslineModule decodes the existing starship.toml and reports whether
// a [custom.statusline] table is already defined.
func hasStatuslineModule(data []byte) bool {
	var parsed struct {
		Custom map[string]interface{} `toml:"custom"`
	}
	if err := toml.Unmarshal(data, &parsed); err != nil {
		// Unparseable config: fall back to assuming the module is absent.
		return false
	}
	_, ok := parsed.Custom["statusline"]
	return ok
}
