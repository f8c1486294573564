package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/statusline/icons"
)

type fakeSource struct {
	repo   bool
	branch string
}

func (f fakeSource) IsRepo(dir string) bool   { return f.repo }
func (f fakeSource) Branch(dir string) string { return f.branch }

func TestBranch(t *testing.T) {
	tests := []struct {
		name     string
		source   BranchSource
		expected string
	}{
		{"inside a repository", fakeSource{repo: true, branch: "main"}, "main"},
		{"outside version control the name is suppressed", fakeSource{repo: false, branch: "main"}, ""},
		{"detached head yields an empty name", fakeSource{repo: true, branch: ""}, ""},
		{"nil source behaves like no repository", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := Branch(tt.source)(Context{WorkDir: "/tmp/ws"})
			assert.Equal(t, tt.expected, seg.Label)
			assert.Equal(t, icons.Branch, seg.Icon, "the branch icon is unconditional")
		})
	}
}

func TestSpell(t *testing.T) {
	on := Spell()(Context{Spell: true, SpellLangs: "en_us,de"})
	assert.Equal(t, "en_us,de", on.Label)
	assert.Equal(t, icons.Spell, on.Icon)

	off := Spell()(Context{Spell: false, SpellLangs: "en_us"})
	assert.Empty(t, off.Label)
	assert.Equal(t, icons.Spell, off.Icon, "the spell icon is unconditional")
}
