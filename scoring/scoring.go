// Package scoring runs one play through the rules core: seed from the hand
// type's level, apply jokers in slot order, then count the play.
package scoring

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tipsypastels/balatro/gameerrors"
	"github.com/tipsypastels/balatro/hand"
	"github.com/tipsypastels/balatro/joker"
	"github.com/tipsypastels/balatro/random"
	"github.com/tipsypastels/balatro/score"
	"github.com/tipsypastels/balatro/slate"
)

// Request is one play to score.
type Request struct {
	States   hand.States
	HandType hand.HandType
	Jokers   *slate.Slate[joker.Joker]
	Rand     random.Source
}

// Step is the running score right after one joker acted.
type Step struct {
	Index   int
	JokerID uuid.UUID
	Name    string
	Edition string
	Chips   score.Chips
	Mult    score.Mult
}

// Result is a scored play.
type Result struct {
	ID        uuid.UUID
	PlayedAt  time.Time
	HandType  hand.HandType
	Level     uint16
	BaseChips score.Chips
	BaseMult  score.Mult
	Steps     []Step
	Chips     score.Chips
	Mult      score.Mult

	// States is the hand state after this play was counted.
	States hand.States
}

// Total is chips times mult.
func (r Result) Total() uint64 { return score.Product(r.Chips, r.Mult) }

// Sink receives every scored play. Implementations must not block the
// caller for long; see storage.Recorder.
type Sink interface {
	RecordPlay(Result)
}

// Pipeline scores plays. The zero value is ready to use.
type Pipeline struct {
	// Sink is optional.
	Sink Sink

	// Now defaults to time.Now.
	Now func() time.Time
}

// Play scores req. The hand type's leveled score seeds the scorer before
// any joker runs.
func (p *Pipeline) Play(req Request) (Result, error) {
	if !req.HandType.IsValid() {
		return Result{}, fmt.Errorf("%w: %d", gameerrors.ErrUnknownHandType, uint8(req.HandType))
	}
	jokers := req.Jokers
	if jokers == nil {
		jokers = slate.New[joker.Joker](0)
	}

	st := req.States.Get(req.HandType)
	baseChips, baseMult := st.Score()

	sc := joker.NewScorer(jokers, req.Rand)
	sc.Seed(baseChips, baseMult)

	steps := make([]Step, 0, jokers.Len())
	sc.RunIndependent(func(i int, j joker.Joker) {
		steps = append(steps, Step{
			Index:   i,
			JokerID: j.ID(),
			Name:    j.Name(),
			Edition: editionName(j.Edition()),
			Chips:   sc.Chips,
			Mult:    sc.Mult,
		})
	})

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	res := Result{
		ID:        uuid.New(),
		PlayedAt:  now(),
		HandType:  req.HandType,
		Level:     st.Level(),
		BaseChips: baseChips,
		BaseMult:  baseMult,
		Steps:     steps,
		Chips:     sc.Chips,
		Mult:      sc.Mult,
		States:    req.States.PlaysUp(req.HandType),
	}

	slog.Debug("play scored", "tag", "scoring",
		"play", res.ID,
		"hand", res.HandType,
		"level", res.Level,
		"jokers", len(steps),
		"chips", res.Chips.Value(),
		"mult", res.Mult.Value(),
		"total", res.Total(),
	)

	if p.Sink != nil {
		p.Sink.RecordPlay(res)
	}
	return res, nil
}

func editionName(e joker.Edition) string {
	if e.IsZero() {
		return ""
	}
	return e.String()
}
