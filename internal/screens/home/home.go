package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ducnm/elementary/internal/config"
	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screen"
	"github.com/ducnm/elementary/internal/screens/historyview"
	"github.com/ducnm/elementary/internal/screens/quizscreen"
	"github.com/ducnm/elementary/internal/screens/search"
	"github.com/ducnm/elementary/internal/screens/table"
	"github.com/ducnm/elementary/internal/ui/components"
	"github.com/ducnm/elementary/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	tr   *i18n.Translator
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen wired to the other screens.
func New(tr *i18n.Translator, hist history.Store, cfg config.Config) *HomeScreen {
	items := []components.MenuItem{
		{Label: tr.T("home.table"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: table.New(tr)}
			}
		}},
		{Label: tr.T("home.quiz"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(tr, hist, cfg.Settings())}
			}
		}},
		{Label: tr.T("home.history"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyview.New(tr, hist)}
			}
		}},
		{Label: tr.T("home.search"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: search.New(tr)}
			}
		}},
		{Label: tr.T("home.exit"), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		tr:   tr,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return ""
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render(h.tr.T("app.name")))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(h.tr.T("app.tagline")))
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
