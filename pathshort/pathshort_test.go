package pathshort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileLabel(t *testing.T) {
	tests := []struct {
		name     string
		abs      string
		rel      string
		home     string
		base     string
		expected string
	}{
		{
			name:     "file under working directory",
			abs:      "/home/user/project/main.go",
			rel:      "main.go",
			home:     "~/project/main.go",
			base:     "main.go",
			expected: "main.go",
		},
		{
			name:     "nested file under working directory",
			abs:      "/home/user/project/internal/app/server.go",
			rel:      "internal/app/server.go",
			home:     "~/project/internal/app/server.go",
			base:     "server.go",
			expected: "internal/app/server.go",
		},
		{
			name:     "file under home but outside workspace",
			abs:      "/home/user/notes/todo.md",
			rel:      "/home/user/notes/todo.md",
			home:     "~/notes/todo.md",
			base:     "todo.md",
			expected: "~/notes/todo.md",
		},
		{
			name:     "file outside both anchors",
			abs:      "/etc/hosts",
			rel:      "/etc/hosts",
			home:     "/etc/hosts",
			base:     "hosts",
			expected: "/.../hosts",
		},
		{
			name:     "degenerate accessor values fall through to marker",
			abs:      "/root",
			rel:      "/root",
			home:     "/root",
			base:     "root",
			expected: "/.../root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FileLabel(tt.abs, tt.rel, tt.home, tt.base)
			assert.Equal(t, tt.expected, result)
			assert.NotEmpty(t, result)
		})
	}
}

func TestFileLabelNeverRawAbsolute(t *testing.T) {
	// Unless the base name itself equals the absolute path, the label must
	// never be the raw absolute path.
	abs := "/opt/tools/bin/run.sh"
	result := FileLabel(abs, abs, abs, "run.sh")
	assert.NotEqual(t, abs, result)
	assert.Equal(t, "/.../run.sh", result)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		n        int
		expected string
	}{
		{"last two of three", "/3/2/1", 2, ".../2/1/"},
		{"single segment kept", "/home/user/project", 1, ".../project/"},
		{"count equals segment count", "/a/b", 2, ".../a/b/"},
		{"count exceeds segment count", "/a/b/c", 5, "/a/b/c"},
		{"zero count", "/a/b/c", 0, ".../"},
		{"negative count", "/a/b/c", -1, ".../"},
		{"trailing separator ignored", "/home/user/project/", 2, ".../user/project/"},
		{"duplicate separators ignored", "//var//log", 2, ".../var/log/"},
		{"root with positive count", "/", 1, "/"},
		{"root with zero count", "/", 0, ".../"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.path, tt.n))
		})
	}
}

func TestTruncateDeterministic(t *testing.T) {
	first := Truncate("/home/user/project/src", DefaultSegments)
	second := Truncate("/home/user/project/src", DefaultSegments)
	assert.Equal(t, first, second)
	assert.Equal(t, ".../project/src/", first)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Split("/a/b/c"))
	assert.Equal(t, []string{"a"}, Split("///a///"))
	assert.Nil(t, Split("/"))
	assert.Nil(t, Split(""))
}
