// Package app owns the bubbletea program: the screen router, global key
// handling, and the shared header/footer frame.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ducnm/elementary/internal/config"
	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screen"
	"github.com/ducnm/elementary/internal/screens/home"
	"github.com/ducnm/elementary/internal/ui/layout"
)

// Options carries everything the TUI needs from the command layer.
type Options struct {
	Translator *i18n.Translator
	History    history.Store
	Config     config.Config
}

// Model is the root bubbletea model.
type Model struct {
	router *router.Router
	tr     *i18n.Translator
	width  int
	height int
}

// NewModel builds the root model with the home screen on the stack.
func NewModel(opts Options) Model {
	return Model{
		router: router.New(home.New(opts.Translator, opts.History, opts.Config)),
		tr:     opts.Translator,
	}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(m.tr.T("app.name"), title, string(m.tr.Lang()), m.width)

	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: m.tr.T("hint.navigate")},
		{Key: "enter", Description: m.tr.T("hint.select")},
		{Key: "ctrl+c", Description: m.tr.T("hint.quit")},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = provider.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts))
	_, err := p.Run()
	return err
}
