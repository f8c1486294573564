package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/statusline/cli"
)

// printLine must pick up config edits between redraws: the watcher fires on
// statusline.yml changes like any other file in the watched directory.
func TestPrintLineReloadsConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("NVIM", "")

	cfgPath := filepath.Join(dir, "statusline.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("separator: \" / \"\n"), 0o644))

	cmd := cli.NewStandardCommand("statusline", "test")
	var out bytes.Buffer
	cmd.SetOut(&out)

	printLine(cmd)
	assert.Contains(t, out.String(), " / ")

	require.NoError(t, os.WriteFile(cfgPath, []byte("separator: \" * \"\n"), 0o644))
	out.Reset()

	printLine(cmd)
	assert.Contains(t, out.String(), " * ")
	assert.NotContains(t, out.String(), " / ")
}
