package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ducnm/elementary/internal/ui/theme"
)

// OptionList is the answer selector for a quiz question: four lettered
// options, cursor selection, and a reveal mode after submission that colors
// the correct option green and a wrong pick red.
type OptionList struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Chosen       int // submitted choice, -1 before submission
	Revealed     bool
}

// NewOptionList creates an option list with nothing chosen.
func NewOptionList(options []string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Update handles keyboard navigation. Selection locks once revealed.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// Reveal locks in the chosen index and switches to the scored display.
func (o OptionList) Reveal(chosen int) OptionList {
	o.Chosen = chosen
	o.Revealed = true
	return o
}

// IsCorrect reports whether the revealed choice was right.
func (o OptionList) IsCorrect() bool {
	return o.Revealed && o.Chosen == o.CorrectIndex
}

// View renders the option list.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D"}

	var s string
	for i, opt := range o.Options {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == o.Cursor && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Revealed && i == o.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.Revealed && i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
