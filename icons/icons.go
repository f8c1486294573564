// Package icons holds the default glyphs used by the status-line segments.
// A Nerd Font set is used by default; setting STATUSLINE_ICONS=ascii selects
// a plain-text fallback set for terminals without patched fonts.
package icons

import "os"

// Nerd Font Icons (Private Constants)
const (
	nerdIconBranch    = "" // dev-git_branch (U+E725)
	nerdIconReadonly  = "" // fa-lock (U+F023)
	nerdIconModified  = "✎"
	nerdIconSpell     = "󰓆" // md-spellcheck (U+F04C6)
	nerdIconClientOff = "󰒲" // md-sleep (U+F04B2)
	nerdIconClient    = "" // oct-plug (U+F492)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconBranch    = "⎇"
	asciiIconReadonly  = "[RO]"
	asciiIconModified  = "✎"
	asciiIconSpell     = "[S]"
	asciiIconClientOff = "[off]"
	asciiIconClient    = "[lsp]"
)

// Public Icon Variables
var (
	Branch    string
	Readonly  string
	Modified  string
	Spell     string
	ClientOff string
	Client    string
)

// init function determines which icon set to use
func init() {
	if os.Getenv("STATUSLINE_ICONS") == "ascii" {
		Branch = asciiIconBranch
		Readonly = asciiIconReadonly
		Modified = asciiIconModified
		Spell = asciiIconSpell
		ClientOff = asciiIconClientOff
		Client = asciiIconClient
	} else {
		Branch = nerdIconBranch
		Readonly = nerdIconReadonly
		Modified = nerdIconModified
		Spell = nerdIconSpell
		ClientOff = nerdIconClientOff
		Client = nerdIconClient
	}
}
