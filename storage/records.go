package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/tipsypastels/balatro/scoring"
)

// DefaultListLimit caps ListPlays when the caller passes no limit.
const DefaultListLimit = 50

// PlayRecord is one stored scored play.
type PlayRecord struct {
	ID        uuid.UUID
	PlayedAt  time.Time
	HandType  string
	Level     int
	BaseChips uint64
	BaseMult  uint64
	Chips     uint64
	Mult      uint64
	Total     uint64
	Effects   []EffectRecord
}

// EffectRecord is the running score after one joker acted.
type EffectRecord struct {
	Position   int
	JokerID    uuid.UUID
	JokerName  string
	Edition    string
	ChipsAfter uint64
	MultAfter  uint64
}

// Summary aggregates stored plays.
type Summary struct {
	Plays      int64
	BestTotal  uint64
	ByHandType map[string]int64
	ByJoker    map[string]int64 // effect rows per joker name
}

// RecordFromResult flattens a scoring result for storage.
func RecordFromResult(res scoring.Result) PlayRecord {
	rec := PlayRecord{
		ID:        res.ID,
		PlayedAt:  res.PlayedAt,
		HandType:  res.HandType.String(),
		Level:     int(res.Level),
		BaseChips: res.BaseChips.Value(),
		BaseMult:  res.BaseMult.Value(),
		Chips:     res.Chips.Value(),
		Mult:      res.Mult.Value(),
		Total:     res.Total(),
	}
	for _, st := range res.Steps {
		rec.Effects = append(rec.Effects, EffectRecord{
			Position:   st.Index,
			JokerID:    st.JokerID,
			JokerName:  st.Name,
			Edition:    st.Edition,
			ChipsAfter: st.Chips.Value(),
			MultAfter:  st.Mult.Value(),
		})
	}
	return rec
}
