package version

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, AppName, info.Name)
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), info.Platform)
}

func TestInfoString(t *testing.T) {
	out := Info{
		Name:      AppName,
		Version:   "1.2.3",
		Commit:    "abc1234",
		Branch:    "main",
		BuildDate: "2026-01-02",
		GoVersion: "go1.24.4",
		Platform:  "linux/amd64",
	}.String()

	assert.True(t, strings.HasPrefix(out, "statusline 1.2.3"))
	assert.Contains(t, out, "Commit:      abc1234")
	assert.Contains(t, out, "Platform:    linux/amd64")
}
