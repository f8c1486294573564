package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/statusline/icons"
)

func TestRegistry(t *testing.T) {
	Clear()
	defer Clear()

	assert.Empty(t, Providers())

	Register(FileLabel())
	Register(Spell())
	assert.Len(t, Providers(), 2)

	Clear()
	assert.Empty(t, Providers())
}

func TestSegmentEmpty(t *testing.T) {
	assert.True(t, Segment{}.Empty())
	assert.False(t, Segment{Label: "main"}.Empty())
	assert.False(t, Segment{Icon: icons.Branch}.Empty())
}

func TestProvidersAreIdempotent(t *testing.T) {
	ctx := Context{
		Path:     "/home/user/project/main.go",
		RelPath:  "main.go",
		HomePath: "~/project/main.go",
		Base:     "main.go",
		WorkDir:  "/home/user/project",
		Modified: true,
		Spell:    true,
		Client:   "gopls",
	}

	providers := []Provider{
		FileLabel(),
		WorkDir(WorkDirOptions{}),
		FileStatus(FileStatusOptions{}),
		Client(nil, ClientOptions{}),
		Spell(),
		Branch(fakeSource{repo: true, branch: "main"}),
	}

	for _, p := range providers {
		assert.Equal(t, p(ctx), p(ctx))
	}
}
