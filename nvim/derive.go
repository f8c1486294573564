package nvim

import (
	"path/filepath"
	"strings"
)

// DerivePathForms computes the three path forms the file-label segment
// chooses between: the absolute path, the workspace-relative form, and the
// home-relative form. A form equals the absolute path when its anchor does
// not contain the file, which is exactly the signal pathshort.FileLabel keys
// on.
func DerivePathForms(abs, cwd, home string) (path, rel, homeRel, base string) {
	path = abs
	rel = relativeTo(abs, cwd)
	homeRel = abs
	if home != "" {
		if under := relativeTo(abs, home); under != abs {
			homeRel = "~/" + under
		}
	}
	base = ""
	if abs != "" {
		base = filepath.Base(abs)
	}
	return path, rel, homeRel, base
}

// relativeTo strips the anchor prefix from abs. When abs is not strictly
// inside anchor, abs is returned unchanged.
func relativeTo(abs, anchor string) string {
	if abs == "" || anchor == "" || anchor == "/" {
		return abs
	}
	anchor = strings.TrimSuffix(anchor, "/")
	if rest, ok := strings.CutPrefix(abs, anchor+"/"); ok && rest != "" {
		return rest
	}
	return abs
}
