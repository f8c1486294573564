package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/grovetools/statusline/cli"
	"github.com/grovetools/statusline/git"
	"github.com/grovetools/statusline/render"
	"github.com/grovetools/statusline/segment"
)

// watchDebounce coalesces filesystem event bursts into one redraw.
const watchDebounce = 200 * time.Millisecond

// NewWatchCmd creates the watch command: re-render the line whenever the
// working directory or the repository HEAD changes. Each render is printed
// on its own line, for consumers like tmux status scripts. The config is
// reloaded on every redraw, so edits to statusline.yml take effect live.
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-print the status line on filesystem changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgErr := cli.LoadConfig(cmd)
			if cfgErr != nil {
				cfg = defaultConfig()
			}
			log := cli.GetLoggerWithConfig(cmd, cfg)
			if cfgErr != nil {
				log.WithError(cfgErr).Warn("config load failed, using defaults")
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("could not create watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(cwd); err != nil {
				return fmt.Errorf("could not watch %s: %w", cwd, err)
			}

			// Branch changes rewrite .git/HEAD; watch the git dir when
			// there is one.
			if root, err := git.Root(cwd); err == nil {
				gitDir := filepath.Join(root, ".git")
				if err := watcher.Add(gitDir); err != nil {
					log.WithError(err).Debug("could not watch git dir")
				}
			}

			printLine(cmd)

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

			var timer *time.Timer
			redraw := make(chan struct{}, 1)

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					log.WithField("event", event.String()).Debug("filesystem change")
					// Debounce: restart the timer on every event.
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(watchDebounce, func() {
						select {
						case redraw <- struct{}{}:
						default:
						}
					})
				case <-redraw:
					printLine(cmd)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.WithError(err).Warn("watcher error")
				case <-sigs:
					return nil
				}
			}
		},
	}
}

// printLine renders one line with a freshly loaded config, so config edits
// picked up by the watcher are reflected in the very redraw they trigger.
func printLine(cmd *cobra.Command) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		cfg = defaultConfig()
	}
	log := cli.GetLoggerWithConfig(cmd, cfg)
	if err != nil {
		log.WithError(err).Warn("config load failed, using defaults")
	}
	ctx, editor := snapshotContext(log)
	registerProviders(cfg, editor)
	fmt.Fprintln(cmd.OutOrStdout(), render.Line(ctx, segment.Providers(), renderOptions(cfg)))
}
