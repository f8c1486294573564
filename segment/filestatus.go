package segment

import "github.com/grovetools/statusline/icons"

// FileStatusOptions overrides the icons used by the FileStatus provider.
// Empty fields fall back to the package defaults.
type FileStatusOptions struct {
	ReadonlyIcon string
	ModifiedIcon string
}

// FileStatus returns a provider that flags the current buffer's state.
// Readonly takes strict precedence over modified; when both flags are clear
// the segment is empty.
func FileStatus(opts FileStatusOptions) Provider {
	readonly := opts.ReadonlyIcon
	if readonly == "" {
		readonly = icons.Readonly
	}
	modified := opts.ModifiedIcon
	if modified == "" {
		modified = icons.Modified
	}
	return func(ctx Context) Segment {
		switch {
		case ctx.Readonly:
			return Segment{Icon: readonly}
		case ctx.Modified:
			return Segment{Icon: modified}
		default:
			return Segment{}
		}
	}
}
