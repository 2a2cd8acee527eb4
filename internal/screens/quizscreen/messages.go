package quizscreen

import (
	"time"

	"github.com/ducnm/elementary/internal/history"
	"github.com/ducnm/elementary/internal/quiz"
)

// timerTickMsg carries the wall-clock time of a one-second timer tick.
type timerTickMsg time.Time

// quizStartedMsg carries the freshly generated session, or the error that
// prevented it from starting.
type quizStartedMsg struct {
	session *quiz.Session
	err     error
}

// quizFinishedMsg carries the completed quiz outcome: the score record, the
// best record from before this quiz (nil on a first run), whether the time
// limit forced completion, and any append error. The score is shown even
// when the append failed.
type quizFinishedMsg struct {
	record   history.ScoreRecord
	prevBest *history.ScoreRecord
	timedOut bool
	saveErr  error
}
