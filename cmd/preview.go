package cmd

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/statusline/cli"
	"github.com/grovetools/statusline/config"
	"github.com/grovetools/statusline/render"
	"github.com/grovetools/statusline/segment"
)

// NewPreviewCmd creates the preview command: a small TUI that re-renders the
// status line every second, for checking icons and config changes.
func NewPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview the status line in a live TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgErr := cli.LoadConfig(cmd)
			if cfgErr != nil {
				cfg = defaultConfig()
			}
			log := cli.GetLoggerWithConfig(cmd, cfg)
			if cfgErr != nil {
				log.WithError(cfgErr).Warn("config load failed, using defaults")
			}

			model := newPreviewModel(cfg, log)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}
}

type previewKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

var previewKeys = previewKeyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh now"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type previewTickMsg time.Time

type previewModel struct {
	cfg  *config.Config
	log  *logrus.Logger
	line string
	help help.Model
}

var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	previewLineStyle  = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1)
)

func newPreviewModel(cfg *config.Config, log *logrus.Logger) previewModel {
	m := previewModel{cfg: cfg, log: log, help: help.New()}
	m.line = m.renderLine()
	return m
}

func (m previewModel) renderLine() string {
	ctx, editor := snapshotContext(m.log)
	registerProviders(m.cfg, editor)
	return render.Line(ctx, segment.Providers(), renderOptions(m.cfg))
}

func previewTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return previewTickMsg(t)
	})
}

func (m previewModel) Init() tea.Cmd {
	return previewTick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, previewKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, previewKeys.Refresh):
			m.line = m.renderLine()
			return m, nil
		}
	case previewTickMsg:
		m.line = m.renderLine()
		return m, previewTick()
	}
	return m, nil
}

func (m previewModel) View() string {
	line := m.line
	if line == "" {
		line = "(empty status line)"
	}
	return previewTitleStyle.Render("statusline preview") + "\n" +
		previewLineStyle.Render(line) + "\n\n" +
		m.help.View(previewKeys) + "\n"
}
