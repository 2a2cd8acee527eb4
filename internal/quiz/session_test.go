package quiz

import (
	"errors"
	"testing"
	"time"

	"github.com/ducnm/elementary/internal/quizgen"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func testQuestions(n int) []quizgen.Question {
	qs := make([]quizgen.Question, n)
	for i := range qs {
		qs[i] = quizgen.Question{
			ID:            i + 1,
			Type:          quizgen.TypeSymbol,
			Prompt:        "What is the chemical symbol for Iron?",
			Options:       []string{"Fe", "Au", "Pb", "Sn"},
			CorrectAnswer: "Fe",
		}
	}
	return qs
}

func newTestSession(t *testing.T, n int, limit time.Duration) *Session {
	t.Helper()
	s, err := NewSession(quizgen.Settings{
		QuestionCount: n,
		Types:         quizgen.AllTypes(),
		TimeLimit:     limit,
	}, testQuestions(n), t0)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSession_EmptyBatch(t *testing.T) {
	_, err := NewSession(quizgen.DefaultSettings(), nil, t0)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("got %v, want ErrNoQuestions", err)
	}
}

func TestSession_FullRun(t *testing.T) {
	s := newTestSession(t, 3, 0)

	if s.Phase() != PhaseInProgress {
		t.Fatalf("phase = %v", s.Phase())
	}

	// Q1: correct.
	if !s.Select(0) || !s.Submit() {
		t.Fatal("select/submit rejected")
	}
	if !s.Correct() || s.Score() != 1 {
		t.Errorf("score = %d after correct answer", s.Score())
	}
	if !s.Next(t0.Add(5 * time.Second)) {
		t.Fatal("next rejected")
	}

	// Q2: wrong.
	s.Select(1)
	s.Submit()
	if s.Correct() || s.Score() != 1 {
		t.Errorf("score = %d after wrong answer", s.Score())
	}
	s.Next(t0.Add(10 * time.Second))

	// Q3: correct, completes the session.
	s.Select(0)
	s.Submit()
	s.Next(t0.Add(15 * time.Second))

	if s.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v after last question", s.Phase())
	}
	rec := s.Record()
	if rec == nil {
		t.Fatal("no record after completion")
	}
	if rec.Score != 2 || rec.TotalQuestions != 3 {
		t.Errorf("record %d/%d, want 2/3", rec.Score, rec.TotalQuestions)
	}
	if rec.TimeSpent != 15 {
		t.Errorf("time spent %d, want 15", rec.TimeSpent)
	}
	if rec.Accuracy < 0.66 || rec.Accuracy > 0.67 {
		t.Errorf("accuracy %f", rec.Accuracy)
	}
}

func TestSession_InvalidTransitions(t *testing.T) {
	s := newTestSession(t, 2, 0)

	if s.Submit() {
		t.Error("submit without selection accepted")
	}
	if s.Next(t0) {
		t.Error("next while answering accepted")
	}
	if s.Select(7) {
		t.Error("out-of-range selection accepted")
	}
	if s.Select(-1) {
		t.Error("negative selection accepted")
	}

	s.Select(0)
	s.Submit()
	if s.Submit() {
		t.Error("double submit accepted")
	}
	if s.Select(1) {
		t.Error("selection change after submit accepted")
	}
}

func TestSession_ScoreNeverDecreases(t *testing.T) {
	s := newTestSession(t, 5, 0)

	prev := 0
	for s.Phase() == PhaseInProgress {
		s.Select(s.Index() % 4)
		s.Submit()
		if s.Score() < prev {
			t.Fatalf("score decreased: %d -> %d", prev, s.Score())
		}
		prev = s.Score()
		s.Next(t0.Add(time.Second))
	}
}

func TestSession_TimeoutForcesCompletion(t *testing.T) {
	s := newTestSession(t, 10, 30*time.Second)

	if forced := s.Tick(t0.Add(10 * time.Second)); forced {
		t.Fatal("tick forced completion before the limit")
	}
	if rem, ok := s.Remaining(); !ok || rem != 20*time.Second {
		t.Errorf("remaining = %v, %v", rem, ok)
	}

	s.Select(0)
	s.Submit()

	if forced := s.Tick(t0.Add(31 * time.Second)); !forced {
		t.Fatal("tick past the limit did not force completion")
	}
	if s.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v", s.Phase())
	}

	rec := s.Record()
	if rec == nil {
		t.Fatal("no record after forced completion")
	}
	if rec.Score != 1 || rec.TotalQuestions != 10 {
		t.Errorf("record %d/%d, want 1/10", rec.Score, rec.TotalQuestions)
	}

	// Late inputs lose to the completed session.
	if s.Select(0) || s.Submit() || s.Next(t0.Add(time.Minute)) {
		t.Error("input accepted after forced completion")
	}
	if s.Tick(t0.Add(time.Minute)) {
		t.Error("tick on a completed session reported completion again")
	}
}

func TestSession_UnboundedHasNoRemaining(t *testing.T) {
	s := newTestSession(t, 2, 0)
	s.Tick(t0.Add(time.Hour))
	if s.Phase() != PhaseInProgress {
		t.Fatal("unbounded session completed by tick")
	}
	if _, ok := s.Remaining(); ok {
		t.Error("unbounded session reported remaining time")
	}
}

func TestSession_ElapsedFromStartInstant(t *testing.T) {
	s := newTestSession(t, 2, 0)

	// Ticks may arrive late or out of cadence; elapsed tracks the clock,
	// not the tick count.
	s.Tick(t0.Add(3 * time.Second))
	s.Tick(t0.Add(90 * time.Second))
	if s.Elapsed() != 90*time.Second {
		t.Errorf("elapsed = %v, want 90s", s.Elapsed())
	}
}

func TestSession_ResetDiscardsEverything(t *testing.T) {
	s := newTestSession(t, 2, 0)
	s.Select(0)
	s.Submit()
	s.Tick(t0.Add(5 * time.Second))

	s.Reset()
	if s.Phase() != PhaseNotStarted || s.Score() != 0 || s.Index() != 0 || s.Selected() != -1 {
		t.Error("reset left state behind")
	}
	if s.Record() != nil {
		t.Error("reset session still has a record")
	}

	// Idempotent.
	s.Reset()
	if s.Phase() != PhaseNotStarted {
		t.Error("second reset changed phase")
	}
}

func TestSession_AbandonedSessionHasNoRecord(t *testing.T) {
	s := newTestSession(t, 2, 0)
	s.Select(0)
	s.Submit()
	s.Reset()
	if s.Record() != nil {
		t.Error("abandoned session produced a record")
	}
}
