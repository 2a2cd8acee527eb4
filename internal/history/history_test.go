package history

import (
	"testing"
	"time"
)

var day = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewScoreRecord_DerivesAccuracy(t *testing.T) {
	tests := []struct {
		score, total int
		want         float64
	}{
		{0, 10, 0},
		{7, 10, 0.7},
		{10, 10, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		rec := NewScoreRecord(day, tt.score, tt.total, 90*time.Second)
		if rec.Accuracy != tt.want {
			t.Errorf("NewScoreRecord(%d/%d).Accuracy = %f, want %f",
				tt.score, tt.total, rec.Accuracy, tt.want)
		}
	}
}

func TestNewScoreRecord_TimeInWholeSeconds(t *testing.T) {
	rec := NewScoreRecord(day, 5, 10, 90500*time.Millisecond)
	if rec.TimeSpent != 90 {
		t.Errorf("TimeSpent = %d, want 90", rec.TimeSpent)
	}
}

func TestBestOf_TiesKeepEarliest(t *testing.T) {
	records := []ScoreRecord{
		{Date: day, Score: 6, TotalQuestions: 10, Accuracy: 0.6},
		{Date: day.Add(time.Hour), Score: 9, TotalQuestions: 10, Accuracy: 0.9},
		{Date: day.Add(2 * time.Hour), Score: 9, TotalQuestions: 10, Accuracy: 0.9},
	}
	best := BestOf(records)
	if best == nil {
		t.Fatal("nil best")
	}
	if !best.Date.Equal(day.Add(time.Hour)) {
		t.Errorf("best = %v, want the earlier of the tied records", best.Date)
	}
}

func TestBestOf_Empty(t *testing.T) {
	if best := BestOf(nil); best != nil {
		t.Errorf("BestOf(nil) = %v", best)
	}
}

func TestMemoryStore_Ordering(t *testing.T) {
	ctx := t.Context()
	m := NewMemoryStore()

	if n, _ := m.Count(ctx); n != 0 {
		t.Fatalf("fresh store count = %d", n)
	}
	if last, _ := m.Last(ctx); last != nil {
		t.Fatalf("fresh store last = %v", last)
	}
	if best, _ := m.Best(ctx); best != nil {
		t.Fatalf("fresh store best = %v", best)
	}

	for i := 0; i < 3; i++ {
		rec := NewScoreRecord(day.Add(time.Duration(i)*time.Hour), i, 10, time.Minute)
		if err := m.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := m.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d", len(all))
	}
	for i := range all {
		if all[i].Score != i {
			t.Errorf("record %d out of order: score %d", i, all[i].Score)
		}
	}

	last, _ := m.Last(ctx)
	if last == nil || last.Score != 2 {
		t.Errorf("last = %v", last)
	}
	best, _ := m.Best(ctx)
	if best == nil || best.Score != 2 {
		t.Errorf("best = %v", best)
	}
	if n, _ := m.Count(ctx); n != 3 {
		t.Errorf("count = %d", n)
	}
}
