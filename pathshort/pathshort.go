// Package pathshort turns absolute file and directory paths into the compact
// forms shown in a status line. All functions are pure and total: they never
// fail, and they never return an empty string for a non-empty input.
package pathshort

import "strings"

const (
	// Marker prefixes a bare file name when the file lies outside both the
	// working directory and the home directory.
	Marker = "/.../"

	// Ellipsis prefixes a truncated working-directory path.
	Ellipsis = ".../"

	// DefaultSegments is the number of trailing directory segments kept by
	// Truncate when the caller does not configure a count.
	DefaultSegments = 2
)

// FileLabel picks the shortest unambiguous label for a file given the three
// path forms supplied by the environment accessor: the absolute path, the
// workspace-relative form, and the home-relative form (already ~-prefixed).
// A relative form that equals the absolute form means the file is not under
// that anchor, so the next form is tried. When neither anchor applies, the
// label is Marker plus the base name.
func FileLabel(abs, rel, home, base string) string {
	if rel != abs {
		return rel
	}
	if home != abs {
		return home
	}
	return Marker + base
}

// Truncate keeps the last n segments of an absolute directory path, prefixed
// with Ellipsis and with every kept segment followed by a separator:
// Truncate("/a/b/c", 2) == ".../b/c/". Requesting more segments than exist
// returns the path unchanged; requesting zero or fewer returns just Ellipsis.
func Truncate(path string, n int) string {
	segments := Split(path)
	if n > len(segments) {
		return path
	}
	if n <= 0 {
		return Ellipsis
	}
	var b strings.Builder
	b.WriteString(Ellipsis)
	for _, seg := range segments[len(segments)-n:] {
		b.WriteString(seg)
		b.WriteString("/")
	}
	return b.String()
}

// Split breaks a path into its non-empty segments. Leading, trailing, and
// duplicate separators contribute no segments.
func Split(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
