package search

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/periodic"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screen"
	"github.com/ducnm/elementary/internal/screens/detail"
	"github.com/ducnm/elementary/internal/ui/components"
	"github.com/ducnm/elementary/internal/ui/layout"
	"github.com/ducnm/elementary/internal/ui/theme"
)

const maxResults = 12

// SearchScreen looks up elements by name, symbol or atomic number as the
// user types.
type SearchScreen struct {
	tr      *i18n.Translator
	input   components.TextInput
	results []periodic.Element
	cursor  int
}

var _ screen.Screen = (*SearchScreen)(nil)
var _ screen.KeyHintProvider = (*SearchScreen)(nil)

// New creates the search screen with an empty query.
func New(tr *i18n.Translator) *SearchScreen {
	return &SearchScreen{
		tr:    tr,
		input: components.NewTextInput(tr.T("search.prompt"), 32),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SearchScreen) Title() string {
	return s.tr.T("screen.search")
}

func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: s.tr.T("hint.navigate")},
		{Key: "enter", Description: s.tr.T("hint.details")},
		{Key: "esc", Description: s.tr.T("hint.back")},
	}
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down":
			if s.cursor < len(s.results)-1 {
				s.cursor++
			}
			return s, nil
		case "enter":
			if s.cursor < len(s.results) {
				e := s.results[s.cursor]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: detail.New(s.tr, e)}
				}
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	s.results = periodic.Search(s.input.Value())
	if len(s.results) > maxResults {
		s.results = s.results[:maxResults]
	}
	if s.cursor >= len(s.results) {
		s.cursor = 0
	}

	return s, cmd
}

func (s *SearchScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	if s.input.Value() != "" && len(s.results) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(s.tr.T("search.noResults"))))
		return b.String()
	}

	for i, e := range s.results {
		line := fmt.Sprintf("%3d  %-3s %-16s %s",
			e.AtomicNumber, e.Symbol, e.Name, s.tr.CategoryName(e.Category))
		var rendered string
		if i == s.cursor {
			rendered = theme.Selected.Render("▸ " + line)
		} else {
			rendered = theme.Unselected.Render("  " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered))
		b.WriteString("\n")
	}

	return b.String()
}
