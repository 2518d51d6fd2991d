package joker

import "github.com/tipsypastels/balatro/score"

// CreditCard lets the player go into debt in the shop. It does nothing
// while scoring.
type CreditCard struct {
	NoIndependent
	PriceValue score.Money
}

func (*CreditCard) Name() string         { return "Credit Card" }
func (*CreditCard) Rarity() Rarity       { return Common }
func (k *CreditCard) Price() score.Money { return k.PriceValue }
