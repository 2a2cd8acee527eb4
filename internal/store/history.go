package store

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/ducnm/elementary/internal/history"
)

// scoreRow is the quiz_scores table layout. Insertion order is the history
// order; rows are never updated or deleted outside of a full reset.
type scoreRow struct {
	bun.BaseModel `bun:"table:quiz_scores"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Date           time.Time `bun:"date,notnull"`
	Score          int       `bun:"score,notnull"`
	TotalQuestions int       `bun:"total_questions,notnull"`
	Accuracy       float64   `bun:"accuracy,notnull"`
	TimeSpent      int       `bun:"time_spent,notnull"`
}

func (r scoreRow) record() history.ScoreRecord {
	return history.ScoreRecord{
		Date:           r.Date,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		Accuracy:       r.Accuracy,
		TimeSpent:      r.TimeSpent,
	}
}

// historyRepo implements history.Store on top of the bun client.
type historyRepo struct {
	db *bun.DB
}

var _ history.Store = (*historyRepo)(nil)

// History returns the durable history store.
func (s *Store) History() history.Store {
	return &historyRepo{db: s.db}
}

func (r *historyRepo) Append(ctx context.Context, rec history.ScoreRecord) error {
	row := &scoreRow{
		Date:           rec.Date,
		Score:          rec.Score,
		TotalQuestions: rec.TotalQuestions,
		Accuracy:       rec.Accuracy,
		TimeSpent:      rec.TimeSpent,
	}
	if _, err := r.db.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	return nil
}

func (r *historyRepo) All(ctx context.Context) ([]history.ScoreRecord, error) {
	var rows []scoreRow
	if err := r.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	records := make([]history.ScoreRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.record())
	}
	return records, nil
}

func (r *historyRepo) Last(ctx context.Context) (*history.ScoreRecord, error) {
	var rows []scoreRow
	err := r.db.NewSelect().Model(&rows).Order("id DESC").Limit(1).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("query last score: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	rec := rows[0].record()
	return &rec, nil
}

// Best scans in insertion order so accuracy ties resolve to the earliest
// record, which SQL ordering alone would not guarantee across equal floats.
func (r *historyRepo) Best(ctx context.Context) (*history.ScoreRecord, error) {
	records, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	return history.BestOf(records), nil
}

func (r *historyRepo) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().Model((*scoreRow)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count scores: %w", err)
	}
	return n, nil
}

// Reset deletes the entire quiz history.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.NewDelete().Model((*scoreRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}
	return nil
}
