package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screen"
	"github.com/ducnm/elementary/internal/ui/components"
	"github.com/ducnm/elementary/internal/ui/layout"
	"github.com/ducnm/elementary/internal/ui/theme"
)

// ResultsScreen shows the outcome of a finished quiz.
type ResultsScreen struct {
	tr       *i18n.Translator
	record   history.ScoreRecord
	prevBest *history.ScoreRecord
	timedOut bool
	saveErr  error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. prevBest is the best record before this
// quiz, nil on a first run. saveErr reports a failed history append; the
// score is still displayed.
func New(tr *i18n.Translator, rec history.ScoreRecord, prevBest *history.ScoreRecord, timedOut bool, saveErr error) *ResultsScreen {
	return &ResultsScreen{
		tr:       tr,
		record:   rec,
		prevBest: prevBest,
		timedOut: timedOut,
		saveErr:  saveErr,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return r.tr.T("screen.results")
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: r.tr.T("hint.back")},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	tr := r.tr
	rec := r.record

	var body strings.Builder

	if r.timedOut {
		body.WriteString(theme.Incorrect.Render(tr.T("quiz.timeUp")))
		body.WriteString("\n\n")
	}

	body.WriteString(theme.Title.Render(
		fmt.Sprintf(tr.T("results.score"), rec.Score, rec.TotalQuestions)))
	body.WriteString("\n\n")

	bar := components.NewProgressBar(tr.T("results.accuracy"), rec.Accuracy, true, 44)
	body.WriteString(bar.View())
	body.WriteString("\n\n")

	body.WriteString(theme.Body.Render(
		fmt.Sprintf("%s: %s", tr.T("results.time"), formatSeconds(rec.TimeSpent))))
	body.WriteString("\n")

	if r.prevBest == nil || rec.Accuracy > r.prevBest.Accuracy {
		body.WriteString(theme.Correct.Render(tr.T("results.newBest")))
	} else {
		body.WriteString(theme.Hint.Render(fmt.Sprintf("%s: %d/%d",
			tr.T("results.best"), r.prevBest.Score, r.prevBest.TotalQuestions)))
	}

	if r.saveErr != nil {
		body.WriteString("\n\n")
		body.WriteString(theme.Incorrect.Render(
			fmt.Sprintf(tr.T("quiz.saveFailed"), r.saveErr)))
	}

	card := theme.Card.Render(body.String())
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
