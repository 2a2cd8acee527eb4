package quizscreen

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/i18n"
	"github.com/ducnm/elementary/internal/quiz"
	"github.com/ducnm/elementary/internal/quizgen"
	"github.com/ducnm/elementary/internal/router"
	"github.com/ducnm/elementary/internal/screens/results"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() (*QuizScreen, *history.MemoryStore) {
	hist := history.NewMemoryStore()
	q := New(i18n.New(i18n.LangEN), hist, quizgen.Settings{
		QuestionCount: 3,
		Types:         quizgen.TypeSet{Symbol: true},
	})
	return q, hist
}

// startQuiz drives the intro form's start button and feeds the resulting
// message back, as the bubbletea runtime would.
func startQuiz(t *testing.T, q *QuizScreen) {
	t.Helper()
	_, cmd := q.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("start returned no command")
	}
	raw := cmd()
	msg, ok := raw.(quizStartedMsg)
	if !ok {
		t.Fatalf("start produced %T", raw)
	}
	if msg.err != nil {
		t.Fatalf("start failed: %v", msg.err)
	}
	if _, cmd := q.Update(msg); cmd == nil {
		t.Fatal("expected a timer tick command after start")
	}
}

func TestQuizScreen_StartsInIntroMode(t *testing.T) {
	q, _ := testScreen()
	if q.mode != modeIntro {
		t.Fatalf("mode = %v", q.mode)
	}
	if q.session != nil {
		t.Fatal("session exists before start")
	}
}

func TestQuizScreen_StartCreatesSession(t *testing.T) {
	q, _ := testScreen()
	startQuiz(t, q)

	if q.mode != modePlaying {
		t.Fatalf("mode = %v after start", q.mode)
	}
	if q.session == nil || q.session.Phase() != quiz.PhaseInProgress {
		t.Fatal("no running session after start")
	}
	if len(q.session.Questions()) != 3 {
		t.Errorf("%d questions generated", len(q.session.Questions()))
	}
}

func TestQuizScreen_AnswerAndAdvance(t *testing.T) {
	q, _ := testScreen()
	startQuiz(t, q)

	// Digit keys select and submit in one stroke.
	q.Update(keyPress('1'))
	if q.session.Sub() != quiz.SubPhaseSubmitted {
		t.Fatal("digit key did not submit")
	}

	q.Update(specialKey(tea.KeyEnter))
	if q.session.Index() != 1 {
		t.Errorf("index = %d after advancing", q.session.Index())
	}
	if q.session.Sub() != quiz.SubPhaseAnswering {
		t.Error("not back to answering after advancing")
	}
}

func TestQuizScreen_CompletionReplacesWithResults(t *testing.T) {
	q, hist := testScreen()
	startQuiz(t, q)

	var finished *quizFinishedMsg
	for i := 0; i < 3; i++ {
		q.Update(keyPress('1'))
		_, cmd := q.Update(specialKey(tea.KeyEnter))
		if i == 2 {
			if cmd == nil {
				t.Fatal("last question produced no finish command")
			}
			raw := cmd()
			msg, ok := raw.(quizFinishedMsg)
			if !ok {
				t.Fatalf("finish produced %T", raw)
			}
			finished = &msg
		}
	}

	if finished.timedOut {
		t.Error("normal completion reported as timeout")
	}
	if finished.saveErr != nil {
		t.Errorf("save failed: %v", finished.saveErr)
	}
	if n, _ := hist.Count(t.Context()); n != 1 {
		t.Errorf("history has %d records", n)
	}
	if finished.record.TotalQuestions != 3 {
		t.Errorf("record %+v", finished.record)
	}

	_, cmd := q.Update(*finished)
	if cmd == nil {
		t.Fatal("finished message produced no navigation")
	}
	nav, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("navigation is %T", cmd())
	}
	if _, ok := nav.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("replacement screen is %T", nav.Screen)
	}
}

func TestQuizScreen_TimerForcesCompletion(t *testing.T) {
	hist := history.NewMemoryStore()
	tr := i18n.New(i18n.LangEN)
	settings := quizgen.Settings{
		QuestionCount: 3,
		Types:         quizgen.TypeSet{Symbol: true},
		TimeLimit:     30 * time.Second,
	}
	q := New(tr, hist, settings)
	startQuiz(t, q)

	// A tick within the limit keeps the timer running.
	_, cmd := q.Update(timerTickMsg(time.Now().Add(5 * time.Second)))
	if cmd == nil {
		t.Fatal("in-limit tick stopped the timer")
	}

	// A tick past the limit finishes the quiz.
	_, cmd = q.Update(timerTickMsg(time.Now().Add(time.Minute)))
	if cmd == nil {
		t.Fatal("overdue tick produced no finish command")
	}
	raw := cmd()
	msg, ok := raw.(quizFinishedMsg)
	if !ok {
		t.Fatalf("overdue tick produced %T", raw)
	}
	if !msg.timedOut {
		t.Error("forced completion not flagged as timeout")
	}
	if n, _ := hist.Count(t.Context()); n != 1 {
		t.Errorf("history has %d records", n)
	}
}

func TestQuizScreen_TickStopsAfterCompletion(t *testing.T) {
	q, _ := testScreen()
	startQuiz(t, q)

	for i := 0; i < 3; i++ {
		q.Update(keyPress('1'))
		q.Update(specialKey(tea.KeyEnter))
	}

	// The completed session must not reschedule the timer.
	_, cmd := q.Update(timerTickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick rescheduled after completion")
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	q, hist := testScreen()
	startQuiz(t, q)

	q.Update(specialKey(tea.KeyEscape))
	if !q.confirmQuit {
		t.Fatal("escape did not ask for confirmation")
	}

	// Declining resumes the quiz.
	q.Update(keyPress('n'))
	if q.confirmQuit {
		t.Fatal("decline did not resume")
	}

	// Confirming abandons without a record.
	q.Update(specialKey(tea.KeyEscape))
	_, cmd := q.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("confirm produced no navigation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("confirm did not pop the screen")
	}
	if n, _ := hist.Count(t.Context()); n != 0 {
		t.Errorf("abandoned quiz left %d records", n)
	}
}

func TestQuizScreen_CannotStartWithTinyPool(t *testing.T) {
	q, _ := testScreen()

	// Starting with an error keeps the intro visible.
	q.Update(quizStartedMsg{err: quiz.ErrNoQuestions})
	if q.mode != modeIntro {
		t.Error("failed start left the intro")
	}
	if q.startErr == "" {
		t.Error("no error message shown")
	}
}
