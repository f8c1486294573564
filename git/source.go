package git

import "github.com/grovetools/statusline/segment"

// CLISource adapts the git CLI lookups to segment.BranchSource.
type CLISource struct{}

// Ensure it implements the interface
var _ segment.BranchSource = CLISource{}

// NewCLISource creates a branch source backed by the git CLI.
func NewCLISource() CLISource {
	return CLISource{}
}

// IsRepo reports whether dir is inside a git repository.
func (CLISource) IsRepo(dir string) bool {
	return IsRepo(dir)
}

// Branch returns the checked-out branch for dir. Lookup failures yield an
// empty name; the provider contract forbids surfacing errors per redraw.
func (CLISource) Branch(dir string) string {
	branch, err := CurrentBranch(dir)
	if err != nil {
		return ""
	}
	return branch
}
