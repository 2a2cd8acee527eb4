package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/periodic"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screen"
	"github.com/ducnm/elementary/internal/ui/layout"
	"github.com/ducnm/elementary/internal/ui/theme"
)

// DetailScreen shows one element's full data card.
type DetailScreen struct {
	tr      *i18n.Translator
	element periodic.Element
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a detail screen for the given element.
func New(tr *i18n.Translator, e periodic.Element) *DetailScreen {
	return &DetailScreen{tr: tr, element: e}
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Title() string {
	return d.tr.T("screen.detail")
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "esc", Description: d.tr.T("hint.back")},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}
	switch kmsg.String() {
	case "esc", "enter":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	e := d.element
	tr := d.tr

	symbol := lipgloss.NewStyle().
		Foreground(theme.CategoryColor(e.Category)).
		Bold(true).
		Render(e.Symbol)

	head := fmt.Sprintf("%s  %s", symbol, theme.Title.Render(e.Name))

	discovery := tr.T("element.ancient")
	if e.Discovered() {
		discovery = fmt.Sprintf("%d", e.DiscoveryYear)
	}

	group := "-"
	if e.Group > 0 {
		group = fmt.Sprintf("%d", e.Group)
	}

	rows := []struct {
		label string
		value string
	}{
		{tr.T("element.number"), fmt.Sprintf("%d", e.AtomicNumber)},
		{tr.T("element.mass"), fmt.Sprintf("%.4g u", e.AtomicMass)},
		{tr.T("element.category"), tr.CategoryName(e.Category)},
		{tr.T("element.group"), group},
		{tr.T("element.period"), fmt.Sprintf("%d", e.Period)},
		{tr.T("element.state"), tr.StateName(e.State)},
		{tr.T("element.discovery"), discovery},
	}

	labelWidth := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.label); w > labelWidth {
			labelWidth = w
		}
	}

	var body strings.Builder
	body.WriteString(head)
	body.WriteString("\n\n")
	for _, r := range rows {
		body.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(labelWidth + 2).
			Render(r.label))
		body.WriteString(theme.Body.Render(r.value))
		body.WriteString("\n")
	}

	card := theme.Card.Render(body.String())
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
