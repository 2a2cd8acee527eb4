// Package quiz drives one quiz attempt as a pure state machine. It owns no
// timers: the caller feeds wall-clock time into Tick, which keeps forced
// completion testable without real waiting and tolerant of suspension.
package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/quizgen"
)

// ErrNoQuestions is returned when a session would start with an empty batch.
var ErrNoQuestions = errors.New("quiz: no questions generated")

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseCompleted
)

// SubPhase splits PhaseInProgress per question: selecting an option, then
// locked with correctness revealed.
type SubPhase int

const (
	SubPhaseAnswering SubPhase = iota
	SubPhaseSubmitted
)

// Session is the ephemeral state of one quiz attempt. All mutation happens
// through the transition methods; invalid transitions are rejected as no-ops
// and never corrupt the score.
type Session struct {
	id        string
	settings  quizgen.Settings
	questions []quizgen.Question

	phase    Phase
	sub      SubPhase
	index    int
	selected int // option index, -1 when nothing selected
	score    int

	startedAt time.Time
	elapsed   time.Duration

	record *history.ScoreRecord
}

// NewSession starts a session over an already generated batch. It fails with
// ErrNoQuestions on an empty batch so the caller can surface a "cannot start"
// condition instead of entering an unplayable quiz.
func NewSession(settings quizgen.Settings, questions []quizgen.Question, now time.Time) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		id:        uuid.New().String(),
		settings:  settings,
		questions: questions,
		phase:     PhaseInProgress,
		sub:       SubPhaseAnswering,
		selected:  -1,
		startedAt: now,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Sub returns the per-question sub-phase. Meaningful only in PhaseInProgress.
func (s *Session) Sub() SubPhase { return s.sub }

// Questions returns the generated batch.
func (s *Session) Questions() []quizgen.Question { return s.questions }

// Index returns the current question index.
func (s *Session) Index() int { return s.index }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Current returns the active question, or nil outside PhaseInProgress.
func (s *Session) Current() *quizgen.Question {
	if s.phase != PhaseInProgress || s.index >= len(s.questions) {
		return nil
	}
	return &s.questions[s.index]
}

// Selected returns the currently selected option index, -1 if none.
func (s *Session) Selected() int { return s.selected }

// Elapsed returns time spent as of the last Tick (or completion).
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Remaining returns the time left under the configured limit, floored at
// zero. The second result is false when the session is unbounded.
func (s *Session) Remaining() (time.Duration, bool) {
	if s.settings.TimeLimit <= 0 {
		return 0, false
	}
	rem := s.settings.TimeLimit - s.elapsed
	if rem < 0 {
		rem = 0
	}
	return rem, true
}

// Select stores the chosen option index. Valid only while answering; the
// selection stays open until Submit locks it.
func (s *Session) Select(option int) bool {
	if s.phase != PhaseInProgress || s.sub != SubPhaseAnswering {
		return false
	}
	if option < 0 || option >= len(s.questions[s.index].Options) {
		return false
	}
	s.selected = option
	return true
}

// Submit locks in the selection and scores it. Rejected when nothing is
// selected, when already submitted, or when the session has been completed
// (a submit racing a timeout loses to the forced completion).
func (s *Session) Submit() bool {
	if s.phase != PhaseInProgress || s.sub != SubPhaseAnswering || s.selected < 0 {
		return false
	}
	q := s.questions[s.index]
	if q.Options[s.selected] == q.CorrectAnswer {
		s.score++
	}
	s.sub = SubPhaseSubmitted
	return true
}

// Correct reports whether the submitted answer was right. Meaningful only in
// SubPhaseSubmitted.
func (s *Session) Correct() bool {
	if s.sub != SubPhaseSubmitted || s.selected < 0 {
		return false
	}
	q := s.questions[s.index]
	return q.Options[s.selected] == q.CorrectAnswer
}

// Next advances past a submitted question, completing the session after the
// last one. Rejected while still answering.
func (s *Session) Next(now time.Time) bool {
	if s.phase != PhaseInProgress || s.sub != SubPhaseSubmitted {
		return false
	}
	if s.index+1 < len(s.questions) {
		s.index++
		s.selected = -1
		s.sub = SubPhaseAnswering
		return true
	}
	s.complete(now)
	return true
}

// Tick feeds the current wall-clock time into the session. Elapsed time is
// recomputed from the start instant rather than accumulated, so suspension
// does not drift. Returns true when the tick forced completion by exhausting
// the time limit.
func (s *Session) Tick(now time.Time) bool {
	if s.phase != PhaseInProgress {
		return false
	}
	s.elapsed = now.Sub(s.startedAt)
	if s.settings.TimeLimit > 0 && s.elapsed >= s.settings.TimeLimit {
		s.complete(now)
		return true
	}
	return false
}

// complete finalizes the session and builds the score record exactly once.
func (s *Session) complete(now time.Time) {
	s.elapsed = now.Sub(s.startedAt)
	s.phase = PhaseCompleted
	rec := history.NewScoreRecord(now, s.score, len(s.questions), s.elapsed)
	s.record = &rec
}

// Record returns the final score record, or nil before completion. Only a
// completed session yields a record; abandoned sessions never do.
func (s *Session) Record() *history.ScoreRecord {
	return s.record
}

// Reset discards all ephemeral state, returning to NotStarted. Idempotent;
// history is untouched.
func (s *Session) Reset() {
	s.phase = PhaseNotStarted
	s.sub = SubPhaseAnswering
	s.index = 0
	s.selected = -1
	s.score = 0
	s.elapsed = 0
	s.record = nil
}
