// Package render composes segment providers into a single status line.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/grovetools/statusline/segment"
)

// Options controls line composition.
type Options struct {
	// Separator joins non-empty segments. Empty means " | ".
	Separator string

	// Color styles each segment when the output profile supports it.
	Color bool
}

var segmentStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

// Line invokes every provider against the context and joins the non-empty
// results. Providers are total functions, so composition cannot fail; an
// all-empty result renders as an empty string.
func Line(ctx segment.Context, providers []segment.Provider, opts Options) string {
	sep := opts.Separator
	if sep == "" {
		sep = " | "
	}

	var parts []string
	for _, p := range providers {
		seg := p(ctx)
		if seg.Empty() {
			continue
		}
		parts = append(parts, Format(seg, opts.Color))
	}

	return strings.Join(parts, sep)
}

// Format renders one segment as "icon label", omitting whichever half is
// empty.
func Format(seg segment.Segment, color bool) string {
	var text string
	switch {
	case seg.Icon == "":
		text = seg.Label
	case seg.Label == "":
		text = seg.Icon
	default:
		text = seg.Icon + " " + seg.Label
	}

	if color && termenv.ColorProfile() != termenv.Ascii {
		return segmentStyle.Render(text)
	}
	return text
}
