package storage

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore keeps plays in process. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.Mutex
	plays []PlayRecord // ascending by PlayedAt, insertion order on ties
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) InsertPlay(_ context.Context, rec PlayRecord) error {
	rec.Effects = slices.Clone(rec.Effects)
	m.mu.Lock()
	defer m.mu.Unlock()
	i := len(m.plays)
	for i > 0 && m.plays[i-1].PlayedAt.After(rec.PlayedAt) {
		i--
	}
	m.plays = slices.Insert(m.plays, i, rec)
	return nil
}

// ListPlays returns up to limit plays, most recently played first, matching
// the Postgres store's ordering.
func (m *MemoryStore) ListPlays(_ context.Context, limit int) ([]PlayRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]PlayRecord, 0, min(limit, len(m.plays)))
	for i := len(m.plays) - 1; i >= 0 && len(out) < limit; i-- {
		rec := m.plays[i]
		rec.Effects = slices.Clone(rec.Effects)
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemoryStore) Summary(_ context.Context) (*Summary, error) {
	out := &Summary{ByHandType: map[string]int64{}, ByJoker: map[string]int64{}}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.plays {
		out.Plays++
		out.BestTotal = max(out.BestTotal, p.Total)
		out.ByHandType[p.HandType]++
		for _, e := range p.Effects {
			out.ByJoker[e.JokerName]++
		}
	}
	return out, nil
}

func (m *MemoryStore) Close() {}
