package segment

import "github.com/grovetools/statusline/icons"

// BranchSource answers whether a directory is inside a version-controlled
// workspace and, if so, which branch is checked out. Implementations must be
// cheap and side-effect-free; they are consulted on every redraw.
type BranchSource interface {
	IsRepo(dir string) bool
	Branch(dir string) string
}

// Branch returns a provider that shows the current branch name. The branch
// icon is always emitted; the name only when the working directory is under
// version control. The name may still be empty (detached HEAD, source
// failure) without suppressing the icon.
func Branch(source BranchSource) Provider {
	return func(ctx Context) Segment {
		seg := Segment{Icon: icons.Branch}
		if source != nil && source.IsRepo(ctx.WorkDir) {
			seg.Label = source.Branch(ctx.WorkDir)
		}
		return seg
	}
}
