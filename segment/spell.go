package segment

import "github.com/grovetools/statusline/icons"

// Spell returns a provider that shows the configured spellcheck languages.
// The icon is always emitted; the language list only while spellchecking is
// enabled.
func Spell() Provider {
	return func(ctx Context) Segment {
		seg := Segment{Icon: icons.Spell}
		if ctx.Spell {
			seg.Label = ctx.SpellLangs
		}
		return seg
	}
}
