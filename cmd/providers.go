// Package cmd implements the statusline subcommands.
package cmd

import (
	"os"

	gonvim "github.com/neovim/go-client/nvim"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/statusline/config"
	"github.com/grovetools/statusline/git"
	"github.com/grovetools/statusline/icons"
	"github.com/grovetools/statusline/nvim"
	"github.com/grovetools/statusline/render"
	"github.com/grovetools/statusline/segment"
)

// registerProviders fills the segment registry from the loaded config.
// Editor-only segments (file label, flags, spell, client) are registered only
// when the context was captured from a live editor; a plain shell prompt gets
// the working directory and branch.
func registerProviders(cfg *config.Config, editor bool) {
	segment.Clear()

	if editor {
		segment.Register(segment.FileLabel())
		segment.Register(segment.FileStatus(segment.FileStatusOptions{
			ReadonlyIcon: cfg.FileStatus.ReadonlyIcon,
			ModifiedIcon: cfg.FileStatus.ModifiedIcon,
		}))
		segment.Register(segment.Client(icons.DefaultClients(), segment.ClientOptions{
			Icons:     cfg.Client.Icons,
			ClientOff: cfg.Client.ClientOff,
		}))
		segment.Register(segment.Spell())
	} else {
		segment.Register(segment.WorkDir(segment.WorkDirOptions{Segments: cfg.Path.Segments}))
	}

	segment.Register(segment.Branch(git.NewCLISource()))
}

// snapshotContext captures the freshest context available: a live Neovim
// instance when $NVIM points at one, the bare shell environment otherwise.
// The second return value reports whether the editor snapshot succeeded.
func snapshotContext(log *logrus.Logger) (segment.Context, bool) {
	if os.Getenv("NVIM") != "" {
		if ctx, ok := snapshotNvim(log); ok {
			return ctx, true
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.WithError(err).Warn("could not determine working directory")
		cwd = ""
	}
	return segment.Context{WorkDir: cwd}, false
}

func snapshotNvim(log *logrus.Logger) (segment.Context, bool) {
	v, err := nvim.Dial()
	if err != nil {
		log.WithError(err).Debug("nvim dial failed, falling back to shell context")
		return segment.Context{}, false
	}
	defer closeQuietly(v)

	ctx, err := nvim.Snapshot(v)
	if err != nil {
		log.WithError(err).Debug("nvim snapshot failed, falling back to shell context")
		return segment.Context{}, false
	}
	return ctx, true
}

func closeQuietly(v *gonvim.Nvim) {
	_ = v.Close()
}

// defaultConfig returns a config with every option at its default.
func defaultConfig() *config.Config {
	return &config.Config{}
}

// renderOptions maps the loaded config onto render options.
func renderOptions(cfg *config.Config) render.Options {
	return render.Options{
		Separator: cfg.SeparatorOrDefault(),
		Color:     cfg.Color,
	}
}
