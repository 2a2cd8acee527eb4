// Package history keeps the append-only record of completed quizzes.
// Records are written exactly once, at quiz completion, and never mutated.
package history

import (
	"context"
	"time"
)

// ScoreRecord is the outcome of one completed quiz.
type ScoreRecord struct {
	// Date is when the quiz finished.
	Date time.Time `json:"date"`

	// Score is the number of correct answers.
	Score int `json:"score"`

	// TotalQuestions is the number of questions in the quiz.
	TotalQuestions int `json:"totalQuestions"`

	// Accuracy is Score/TotalQuestions, in [0,1]. Derived at creation,
	// stored for display.
	Accuracy float64 `json:"accuracy"`

	// TimeSpent is the quiz duration in whole seconds.
	TimeSpent int `json:"timeSpent"`
}

// NewScoreRecord derives a record from the final quiz state.
func NewScoreRecord(date time.Time, score, total int, timeSpent time.Duration) ScoreRecord {
	var accuracy float64
	if total > 0 {
		accuracy = float64(score) / float64(total)
	}
	return ScoreRecord{
		Date:           date,
		Score:          score,
		TotalQuestions: total,
		Accuracy:       accuracy,
		TimeSpent:      int(timeSpent.Seconds()),
	}
}

// Store is the durable, ordered quiz history.
type Store interface {
	// Append adds a record to the end of the history.
	Append(ctx context.Context, rec ScoreRecord) error

	// All returns every record, oldest first.
	All(ctx context.Context) ([]ScoreRecord, error)

	// Last returns the most recently appended record, or nil if empty.
	Last(ctx context.Context) (*ScoreRecord, error)

	// Best returns the record with the highest accuracy, or nil if empty.
	// Ties go to the earliest record.
	Best(ctx context.Context) (*ScoreRecord, error)

	// Count returns the number of records.
	Count(ctx context.Context) (int, error)
}

// BestOf scans records for the maximum accuracy, keeping the first
// occurrence on ties. Shared by store implementations.
func BestOf(records []ScoreRecord) *ScoreRecord {
	if len(records) == 0 {
		return nil
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.Accuracy > best.Accuracy {
			best = r
		}
	}
	return &best
}
