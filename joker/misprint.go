package joker

import (
	"github.com/tipsypastels/balatro/random"
	"github.com/tipsypastels/balatro/score"
)

// Misprint adds a random mult in [MinMult, MaxMult], drawn from the
// scorer's random source.
type Misprint struct {
	PriceValue score.Money
	MinMult    uint64
	MaxMult    uint64
}

func (*Misprint) Name() string         { return "Misprint" }
func (*Misprint) Rarity() Rarity       { return Common }
func (k *Misprint) Price() score.Money { return k.PriceValue }

func (k *Misprint) RunIndependent(s *Scorer) {
	s.Mult = s.Mult.AddN(random.Between(s.Rand, k.MinMult, k.MaxMult))
}
