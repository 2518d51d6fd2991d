package joker

import (
	"github.com/tipsypastels/balatro/random"
	"github.com/tipsypastels/balatro/score"
	"github.com/tipsypastels/balatro/slate"
)

// Scorer is the running chips and mult of one scoring pass, together with
// the context jokers read while they act.
type Scorer struct {
	Jokers *slate.Slate[Joker]
	Chips  score.Chips
	Mult   score.Mult
	Rand   random.Source
}

// NewScorer starts a pass at 1 chip and x1 mult.
func NewScorer(jokers *slate.Slate[Joker], src random.Source) *Scorer {
	return &Scorer{
		Jokers: jokers,
		Chips:  score.NewChips(1),
		Mult:   score.NewMult(1),
		Rand:   src,
	}
}

// Seed replaces the running score, normally with a hand type's score.
func (s *Scorer) Seed(chips score.Chips, mult score.Mult) {
	s.Chips = chips
	s.Mult = mult
}

// RunIndependent runs every joker's independent effect once, in slot
// order. observe, if not nil, is called after each joker.
func (s *Scorer) RunIndependent(observe func(i int, j Joker)) {
	if s.Jokers == nil {
		return
	}
	for i, j := range s.Jokers.All() {
		j.kind.RunIndependent(s)
		if observe != nil {
			observe(i, j)
		}
	}
}
