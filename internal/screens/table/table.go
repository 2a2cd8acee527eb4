package table

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
	"github.com/ducnm/elementary/internal/ui/layout"
	"github.com/ducnm/elementary/internal/ui/theme"
)

const cellWidth = 4

// TableScreen renders the full periodic table grid with a movable cursor.
// Lanthanides and actinides sit in their conventional detached rows below
// the main block.
type TableScreen struct {
	tr   *i18n.Translator
	grid [periodic.GridRows + 1][periodic.GridCols + 1]int
	row  int
	col  int
}

var _ screen.Screen = (*TableScreen)(nil)
var _ screen.KeyHintProvider = (*TableScreen)(nil)

// New creates the table screen with the cursor on hydrogen.
func New(tr *i18n.Translator) *TableScreen {
	return &TableScreen{
		tr:   tr,
		grid: periodic.Grid(),
		row:  1,
		col:  1,
	}
}

func (t *TableScreen) Init() tea.Cmd {
	return nil
}

func (t *TableScreen) Title() string {
	return t.tr.T("screen.table")
}

func (t *TableScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: t.tr.T("hint.navigate")},
		{Key: "enter", Description: t.tr.T("hint.details")},
		{Key: "esc", Description: t.tr.T("hint.back")},
	}
}

func (t *TableScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		t.move(-1, 0)
	case "down", "j":
		t.move(1, 0)
	case "left", "h":
		t.move(0, -1)
	case "right", "l":
		t.move(0, 1)
	case "enter":
		if e := t.selected(); e != nil {
			return t, func() tea.Msg {
				return router.PushScreenMsg{Screen: detail.New(t.tr, *e)}
			}
		}
	case "esc":
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return t, nil
}

// move steps the cursor one cell in the given direction, then keeps sliding
// until it lands on an occupied cell. Moves that leave the grid without
// reaching an element are ignored.
func (t *TableScreen) move(dr, dc int) {
	row, col := t.row+dr, t.col+dc
	for row >= 1 && row <= periodic.GridRows && col >= 1 && col <= periodic.GridCols {
		if t.grid[row][col] != 0 {
			t.row, t.col = row, col
			return
		}
		row += dr
		col += dc
	}
}

func (t *TableScreen) selected() *periodic.Element {
	n := t.grid[t.row][t.col]
	if n == 0 {
		return nil
	}
	return periodic.ByNumber(n)
}

func (t *TableScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	for row := 1; row <= periodic.GridRows; row++ {
		var line strings.Builder
		for col := 1; col <= periodic.GridCols; col++ {
			n := t.grid[row][col]
			if n == 0 {
				line.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			e := periodic.ByNumber(n)
			cell := fmt.Sprintf("%-*s", cellWidth, e.Symbol)
			style := lipgloss.NewStyle().Foreground(theme.CategoryColor(e.Category))
			if row == t.row && col == t.col {
				style = lipgloss.NewStyle().
					Foreground(theme.BgDark).
					Background(theme.CategoryColor(e.Category)).
					Bold(true)
			}
			line.WriteString(style.Render(cell))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line.String()))
		b.WriteString("\n")
		// Gap before the detached lanthanide row.
		if row == 7 {
			b.WriteString("\n")
		}
	}

	if e := t.selected(); e != nil {
		info := fmt.Sprintf("%d  %s  %s   %s   %.3f u",
			e.AtomicNumber, e.Symbol, e.Name,
			t.tr.CategoryName(e.Category), e.AtomicMass)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(info)))
	}

	return b.String()
}
