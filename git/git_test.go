package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/statusline/testutil"
)

func TestIsRepo(t *testing.T) {
	testutil.RequireGit(t)

	repoDir := t.TempDir()
	testutil.InitGitRepo(t, repoDir)

	plainDir := t.TempDir()

	assert.True(t, IsRepo(repoDir))
	assert.False(t, IsRepo(plainDir))
}

func TestRoot(t *testing.T) {
	testutil.RequireGit(t)

	repoDir := t.TempDir()
	testutil.InitGitRepo(t, repoDir)

	root, err := Root(repoDir)
	require.NoError(t, err)
	assert.Equal(t, testutil.ResolvePath(t, repoDir), testutil.ResolvePath(t, root))

	_, err = Root(t.TempDir())
	assert.Error(t, err)
}

func TestCurrentBranch(t *testing.T) {
	testutil.RequireGit(t)

	repoDir := t.TempDir()
	testutil.InitGitRepo(t, repoDir)

	branch, err := CurrentBranch(repoDir)
	require.NoError(t, err)
	assert.NotEmpty(t, branch)

	testutil.CreateBranch(t, repoDir, "feature/icons")

	branch, err = CurrentBranch(repoDir)
	require.NoError(t, err)
	assert.Equal(t, "feature/icons", branch)
}

func TestCurrentBranchDetached(t *testing.T) {
	testutil.RequireGit(t)

	repoDir := t.TempDir()
	testutil.InitGitRepo(t, repoDir)

	testutil.RunGitCommand(t, repoDir, "checkout", "--detach")

	branch, err := CurrentBranch(repoDir)
	require.NoError(t, err)
	assert.True(t, len(branch) > 1)
	assert.Equal(t, detachedPrefix, branch[:1])
}

func TestCLISource(t *testing.T) {
	testutil.RequireGit(t)

	repoDir := t.TempDir()
	testutil.InitGitRepo(t, repoDir)

	source := NewCLISource()
	assert.True(t, source.IsRepo(repoDir))
	assert.NotEmpty(t, source.Branch(repoDir))

	plainDir := t.TempDir()
	assert.False(t, source.IsRepo(plainDir))
	assert.Empty(t, source.Branch(plainDir))
}
