package joker

import "github.com/tipsypastels/balatro/score"

// Stencil multiplies mult by the number of empty joker slots. Every
// Stencil, itself included, counts as an empty slot.
type Stencil struct {
	PriceValue score.Money
}

func (*Stencil) Name() string         { return "Joker Stencil" }
func (*Stencil) Rarity() Rarity       { return Uncommon }
func (k *Stencil) Price() score.Money { return k.PriceValue }

func (k *Stencil) RunIndependent(s *Scorer) {
	factor := s.Jokers.FreeLen() + CountKind[*Stencil](s.Jokers)
	s.Mult = s.Mult.MulN(uint64(factor))
}
