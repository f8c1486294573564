package segment

import "github.com/grovetools/statusline/pathshort"

// FileLabel returns a provider that labels the current file with its shortest
// unambiguous path form: workspace-relative, then home-relative, then a
// marker prefix plus the base name.
func FileLabel() Provider {
	return func(ctx Context) Segment {
		return Segment{Label: pathshort.FileLabel(ctx.Path, ctx.RelPath, ctx.HomePath, ctx.Base)}
	}
}

// WorkDirOptions configures the WorkDir provider.
type WorkDirOptions struct {
	// Segments is the number of trailing directory segments to keep. Zero
	// means pathshort.DefaultSegments.
	Segments int
}

// WorkDir returns a provider that shows the trailing segments of the working
// directory, ellipsis-prefixed.
func WorkDir(opts WorkDirOptions) Provider {
	n := opts.Segments
	if n == 0 {
		n = pathshort.DefaultSegments
	}
	return func(ctx Context) Segment {
		return Segment{Label: pathshort.Truncate(ctx.WorkDir, n)}
	}
}
