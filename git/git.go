// Package git answers the version-control questions the status-line segments
// ask: is this directory inside a repository, and which branch is checked
// out. All lookups shell out to the git CLI through command.SafeBuilder with
// short timeouts; failures degrade to "no repository" or an empty branch,
// never to an error the caller has to handle.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/statusline/command"
)

// detachedPrefix marks a short commit hash shown in place of a branch name.
const detachedPrefix = ":"

// IsRepo checks if the given directory is inside a git repository
func IsRepo(dir string) bool {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--git-dir")
	if err != nil {
		return false
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	err = execCmd.Run()
	return err == nil
}

// Root returns the root directory of the git repository
func Root(dir string) (string, error) {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", fmt.Errorf("get git root: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// CurrentBranch returns the checked-out branch name for the repository
// containing dir. A detached HEAD yields the short commit hash prefixed with
// ":" so the status line still shows something meaningful.
func CurrentBranch(dir string) (string, error) {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", fmt.Errorf("get current branch: %w", err)
	}

	branch := strings.TrimSpace(string(output))
	if branch == "HEAD" {
		return shortHead(dir)
	}
	return branch, nil
}

// shortHead resolves HEAD to its short commit hash for detached checkouts.
func shortHead(dir string) (string, error) {
	cmdBuilder := command.NewSafeBuilder()
	cmd, err := cmdBuilder.Build(context.Background(), "git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", fmt.Errorf("resolve detached HEAD: %w", err)
	}

	return detachedPrefix + strings.TrimSpace(string(output)), nil
}
