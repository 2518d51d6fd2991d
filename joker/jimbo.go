package joker

import "github.com/tipsypastels/balatro/score"

// Jimbo is the plain "Joker": +Mult mult.
type Jimbo struct {
	PriceValue score.Money
	Mult       uint64
}

func (*Jimbo) Name() string         { return "Joker" }
func (*Jimbo) Rarity() Rarity       { return Common }
func (k *Jimbo) Price() score.Money { return k.PriceValue }

func (k *Jimbo) RunIndependent(s *Scorer) {
	s.Mult = s.Mult.AddN(k.Mult)
}
