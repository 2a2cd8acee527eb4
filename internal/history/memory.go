package history

import "context"

// MemoryStore is an in-memory Store. It backs tests and serves as the
// degraded fallback when the database cannot be opened: the session still
// runs, history just does not survive the process.
type MemoryStore struct {
	records []ScoreRecord
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Append(_ context.Context, rec ScoreRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *MemoryStore) All(_ context.Context) ([]ScoreRecord, error) {
	out := make([]ScoreRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryStore) Last(_ context.Context) (*ScoreRecord, error) {
	if len(m.records) == 0 {
		return nil, nil
	}
	rec := m.records[len(m.records)-1]
	return &rec, nil
}

func (m *MemoryStore) Best(_ context.Context) (*ScoreRecord, error) {
	return BestOf(m.records), nil
}

func (m *MemoryStore) Count(_ context.Context) (int, error) {
	return len(m.records), nil
}
