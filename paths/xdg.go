// Package paths provides XDG-compliant path resolution for statusline.
//
// Resolution order:
// 1. STATUSLINE_HOME (portable root) → $STATUSLINE_HOME/{config,data,state,cache}
// 2. XDG env vars → $XDG_*_HOME/statusline
// 3. Platform defaults → ~/.config/statusline, ~/.local/share/statusline, etc.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appDir = "statusline"

// ConfigHome returns the base config home directory, without the
// statusline subdirectory. Files owned by other tools (starship.toml)
// live directly under it.
func ConfigHome() string {
	if root := os.Getenv("STATUSLINE_HOME"); root != "" {
		return filepath.Join(root, "config")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}
	return ""
}

func stateHome() string {
	if root := os.Getenv("STATUSLINE_HOME"); root != "" {
		return filepath.Join(root, "state")
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return xdg
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return ""
}

// ConfigDir returns the statusline configuration directory.
// Used for the global statusline.yml.
func ConfigDir() string {
	base := ConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appDir)
}

// StateDir returns the statusline state directory. Used for log files.
func StateDir() string {
	base := stateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appDir)
}

// Expand expands a leading ~ and environment variables in a path and
// returns an absolute path.
func Expand(path string) (string, error) {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	} else if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}

	path = os.ExpandEnv(path)

	return filepath.Abs(path)
}
