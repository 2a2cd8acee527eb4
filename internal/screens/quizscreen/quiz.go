package quizscreen

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/periodic"
	"github.com/ducnm/elementary/internal/quiz"
	"github.com/ducnm/elementary/internal/quizgen"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screen"
	"github.com/ducnm/elementary/internal/screens/results"
	"github.com/ducnm/elementary/internal/ui/components"
	"github.com/ducnm/elementary/internal/ui/layout"
	"github.com/ducnm/elementary/internal/ui/theme"
)

type mode int

const (
	modeIntro mode = iota
	modePlaying
)

// Settings form fields, top to bottom.
const (
	fieldCount = iota
	fieldSymbol
	fieldCategory
	fieldProperty
	fieldLimit
	fieldStart
	fieldEnd
)

var countChoices = []int{5, 10, 15, 20, 30}

var limitChoices = []time.Duration{
	0,
	30 * time.Second,
	time.Minute,
	2 * time.Minute,
	5 * time.Minute,
}

const storeTimeout = 5 * time.Second

// QuizScreen runs one quiz: a settings form, then the question flow. The
// quiz state itself lives in quiz.Session; this screen only translates key
// presses and timer ticks into session transitions.
type QuizScreen struct {
	tr   *i18n.Translator
	hist history.Store

	mode        mode
	settings    quizgen.Settings
	field       int
	countIdx    int
	limitIdx    int
	startErr    string
	confirmQuit bool

	session *quiz.Session
	options components.OptionList
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen showing the settings form, pre-filled from
// the user's configuration.
func New(tr *i18n.Translator, hist history.Store, settings quizgen.Settings) *QuizScreen {
	return &QuizScreen{
		tr:       tr,
		hist:     hist,
		settings: settings,
		countIdx: nearestChoice(countChoices, settings.QuestionCount),
		limitIdx: nearestLimit(limitChoices, settings.TimeLimit),
		field:    fieldStart,
	}
}

func nearestChoice(choices []int, v int) int {
	for i, c := range choices {
		if c >= v {
			return i
		}
	}
	return len(choices) - 1
}

func nearestLimit(choices []time.Duration, v time.Duration) int {
	for i, c := range choices {
		if c >= v {
			return i
		}
	}
	return len(choices) - 1
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return q.tr.T("screen.quiz")
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.mode == modeIntro {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: q.tr.T("hint.navigate")},
			{Key: "←/→", Description: q.tr.T("hint.toggle")},
			{Key: "enter", Description: q.tr.T("hint.start")},
			{Key: "esc", Description: q.tr.T("hint.back")},
		}
	}
	if q.session != nil && q.session.Sub() == quiz.SubPhaseSubmitted {
		return []layout.KeyHint{
			{Key: "enter", Description: q.tr.T("hint.next")},
			{Key: "esc", Description: q.tr.T("hint.back")},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: q.tr.T("hint.navigate")},
		{Key: "enter", Description: q.tr.T("hint.submit")},
		{Key: "esc", Description: q.tr.T("hint.back")},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if q.mode == modeIntro {
			return q.updateIntro(msg)
		}
		return q.updatePlaying(msg)

	case quizStartedMsg:
		if msg.err != nil {
			q.startErr = q.tr.T("quiz.cannotStart")
			return q, nil
		}
		q.session = msg.session
		q.mode = modePlaying
		q.resetOptions()
		return q, tickCmd()

	case timerTickMsg:
		if q.session == nil || q.session.Phase() != quiz.PhaseInProgress {
			return q, nil
		}
		if forced := q.session.Tick(time.Time(msg)); forced {
			return q, q.finishCmd(true)
		}
		return q, tickCmd()

	case quizFinishedMsg:
		return q, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(
				q.tr, msg.record, msg.prevBest, msg.timedOut, msg.saveErr,
			)}
		}
	}

	return q, nil
}

func (q *QuizScreen) updateIntro(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if q.field > 0 {
			q.field--
		}
	case "down", "j":
		if q.field < fieldEnd-1 {
			q.field++
		}
	case "left", "h":
		q.adjust(-1)
	case "right", "l":
		q.adjust(1)
	case "space":
		q.toggle()
	case "enter":
		if q.field == fieldStart {
			return q, q.startCmd()
		}
		q.toggle()
	}
	return q, nil
}

func (q *QuizScreen) adjust(delta int) {
	switch q.field {
	case fieldCount:
		q.countIdx = clamp(q.countIdx+delta, 0, len(countChoices)-1)
		q.settings.QuestionCount = countChoices[q.countIdx]
	case fieldLimit:
		q.limitIdx = clamp(q.limitIdx+delta, 0, len(limitChoices)-1)
		q.settings.TimeLimit = limitChoices[q.limitIdx]
	}
}

func (q *QuizScreen) toggle() {
	switch q.field {
	case fieldSymbol:
		q.settings.Types.Symbol = !q.settings.Types.Symbol
	case fieldCategory:
		q.settings.Types.Category = !q.settings.Types.Category
	case fieldProperty:
		q.settings.Types.Property = !q.settings.Types.Property
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// startCmd generates the question batch and opens the session. Generation is
// fast but runs as a command so a failure surfaces as a message, not a panic.
func (q *QuizScreen) startCmd() tea.Cmd {
	settings := q.settings
	tr := q.tr
	return func() tea.Msg {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		gen := quizgen.New(periodic.Elements, rng, tr)
		questions := gen.Questions(settings)
		session, err := quiz.NewSession(settings, questions, time.Now())
		return quizStartedMsg{session: session, err: err}
	}
}

func (q *QuizScreen) updatePlaying(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if q.confirmQuit {
		switch msg.String() {
		case "y", "Y", "enter":
			q.session.Reset()
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			q.confirmQuit = false
		}
		return q, nil
	}

	switch msg.String() {
	case "esc":
		q.confirmQuit = true
		return q, nil

	case "up", "k", "down", "j":
		var cmd tea.Cmd
		q.options, cmd = q.options.Update(msg)
		q.session.Select(q.options.Cursor)
		return q, cmd

	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if q.session.Select(idx) {
			q.options.Cursor = idx
			q.submit()
		}
		return q, nil

	case "enter":
		if q.session.Sub() == quiz.SubPhaseAnswering {
			if q.session.Select(q.options.Cursor) {
				q.submit()
			}
			return q, nil
		}
		if q.session.Next(time.Now()) {
			if q.session.Phase() == quiz.PhaseCompleted {
				return q, q.finishCmd(false)
			}
			q.resetOptions()
		}
		return q, nil
	}

	return q, nil
}

func (q *QuizScreen) submit() {
	if q.session.Submit() {
		q.options = q.options.Reveal(q.session.Selected())
	}
}

func (q *QuizScreen) resetOptions() {
	cur := q.session.Current()
	if cur == nil {
		return
	}
	correct := 0
	for i, opt := range cur.Options {
		if opt == cur.CorrectAnswer {
			correct = i
			break
		}
	}
	q.options = components.NewOptionList(cur.Options, correct)
}

// finishCmd persists the score record and reports the outcome. The previous
// best is read first so the results screen can tell whether this run beat it.
func (q *QuizScreen) finishCmd(timedOut bool) tea.Cmd {
	rec := *q.session.Record()
	hist := q.hist
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		prevBest, _ := hist.Best(ctx)
		saveErr := hist.Append(ctx, rec)

		return quizFinishedMsg{
			record:   rec,
			prevBest: prevBest,
			timedOut: timedOut,
			saveErr:  saveErr,
		}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (q *QuizScreen) View(width, height int) string {
	if q.mode == modeIntro {
		return q.viewIntro(width)
	}
	return q.viewPlaying(width)
}

func (q *QuizScreen) viewIntro(width int) string {
	tr := q.tr

	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}

	limit := tr.T("quiz.settings.none")
	if q.settings.TimeLimit > 0 {
		limit = formatDuration(q.settings.TimeLimit)
	}

	lines := []struct {
		field int
		text  string
	}{
		{fieldCount, fmt.Sprintf("%s   ◂ %d ▸", tr.T("quiz.settings.count"), q.settings.QuestionCount)},
		{fieldSymbol, fmt.Sprintf("%s %s", check(q.settings.Types.Symbol), tr.T("quiz.type.symbol"))},
		{fieldCategory, fmt.Sprintf("%s %s", check(q.settings.Types.Category), tr.T("quiz.type.category"))},
		{fieldProperty, fmt.Sprintf("%s %s", check(q.settings.Types.Property), tr.T("quiz.type.property"))},
		{fieldLimit, fmt.Sprintf("%s   ◂ %s ▸", tr.T("quiz.settings.limit"), limit)},
	}

	var body strings.Builder
	body.WriteString(theme.Title.Render(tr.T("quiz.intro.title")))
	body.WriteString("\n")
	body.WriteString(theme.Subtitle.Render(tr.T("quiz.intro.subtitle")))
	body.WriteString("\n\n")

	for _, l := range lines {
		if l.field == q.field {
			body.WriteString(theme.Selected.Render("▸ " + l.text))
		} else {
			body.WriteString(theme.Unselected.Render("  " + l.text))
		}
		body.WriteString("\n")
	}

	body.WriteString("\n")
	start := components.NewButton(tr.T("hint.start"), q.field == fieldStart, nil)
	body.WriteString(start.View())

	if q.startErr != "" {
		body.WriteString("\n\n")
		body.WriteString(theme.Incorrect.Render(q.startErr))
	}

	card := theme.Card.Render(body.String())
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (q *QuizScreen) viewPlaying(width int) string {
	tr := q.tr
	s := q.session

	cur := s.Current()
	if cur == nil {
		return ""
	}

	status := fmt.Sprintf(tr.T("quiz.question"), s.Index()+1, len(s.Questions()))
	status += fmt.Sprintf("   %s: %d", tr.T("quiz.score"), s.Score())
	if rem, ok := s.Remaining(); ok {
		status += fmt.Sprintf("   %s: %s", tr.T("quiz.timeLeft"), formatDuration(rem))
	}

	var body strings.Builder
	body.WriteString(theme.Hint.Render(status))
	body.WriteString("\n\n")
	body.WriteString(theme.Body.Bold(true).Render(cur.Prompt))
	body.WriteString("\n\n")
	body.WriteString(q.options.View())

	if s.Sub() == quiz.SubPhaseSubmitted {
		body.WriteString("\n")
		if s.Correct() {
			body.WriteString(theme.Correct.Render(tr.T("quiz.correct")))
		} else {
			body.WriteString(theme.Incorrect.Render(tr.T("quiz.incorrect")))
			body.WriteString("  ")
			body.WriteString(theme.Hint.Render(fmt.Sprintf(tr.T("quiz.correctAnswer"), cur.CorrectAnswer)))
		}
	}

	if q.confirmQuit {
		body.WriteString("\n\n")
		body.WriteString(theme.Incorrect.Render(tr.T("quiz.confirmQuit")))
	}

	card := theme.Card.Render(body.String())
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
