package nvim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePathForms(t *testing.T) {
	tests := []struct {
		name     string
		abs      string
		cwd      string
		home     string
		wantRel  string
		wantHome string
		wantBase string
	}{
		{
			name:     "file under cwd and home",
			abs:      "/home/user/project/main.go",
			cwd:      "/home/user/project",
			home:     "/home/user",
			wantRel:  "main.go",
			wantHome: "~/project/main.go",
			wantBase: "main.go",
		},
		{
			name:     "file under home only",
			abs:      "/home/user/notes/todo.md",
			cwd:      "/home/user/project",
			home:     "/home/user",
			wantRel:  "/home/user/notes/todo.md",
			wantHome: "~/notes/todo.md",
			wantBase: "todo.md",
		},
		{
			name:     "file outside both anchors",
			abs:      "/etc/hosts",
			cwd:      "/home/user/project",
			home:     "/home/user",
			wantRel:  "/etc/hosts",
			wantHome: "/etc/hosts",
			wantBase: "hosts",
		},
		{
			name:     "trailing separator on cwd is tolerated",
			abs:      "/home/user/project/cmd/main.go",
			cwd:      "/home/user/project/",
			home:     "/home/user",
			wantRel:  "cmd/main.go",
			wantHome: "~/project/cmd/main.go",
			wantBase: "main.go",
		},
		{
			name:     "empty buffer name",
			abs:      "",
			cwd:      "/home/user/project",
			home:     "/home/user",
			wantRel:  "",
			wantHome: "",
			wantBase: "",
		},
		{
			name:     "root cwd never strips",
			abs:      "/etc/hosts",
			cwd:      "/",
			home:     "",
			wantRel:  "/etc/hosts",
			wantHome: "/etc/hosts",
			wantBase: "hosts",
		},
		{
			name:     "prefix match must be on a segment boundary",
			abs:      "/home/user2/file.go",
			cwd:      "/home/user",
			home:     "/home/user",
			wantRel:  "/home/user2/file.go",
			wantHome: "/home/user2/file.go",
			wantBase: "file.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, rel, homeRel, base := DerivePathForms(tt.abs, tt.cwd, tt.home)
			assert.Equal(t, tt.abs, path)
			assert.Equal(t, tt.wantRel, rel)
			assert.Equal(t, tt.wantHome, homeRel)
			assert.Equal(t, tt.wantBase, base)
		})
	}
}
