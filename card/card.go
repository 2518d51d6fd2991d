// Package card is the playing card data model: rank, suit and the optional
// enhancement, edition and seal a card can carry.
package card

import (
	"fmt"
	"strings"

	"github.com/tipsypastels/balatro/edition"
)

// Rank is a card rank, Two through Ace.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Ranks returns every rank, lowest first.
func Ranks() []Rank {
	out := make([]Rank, len(rankNames))
	for i := range out {
		out[i] = Rank(i)
	}
	return out
}

// Chips is the chip value the rank adds when the card scores: face value
// for 2 through 10, 10 for face cards and 11 for an ace.
func (r Rank) Chips() uint64 {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return uint64(r) + 2
	}
}

// IsFace reports whether r is a jack, queen or king.
func (r Rank) IsFace() bool { return r == Jack || r == Queen || r == King }

// IsOdd counts aces as odd and ignores face cards.
func (r Rank) IsOdd() bool {
	if r == Ace {
		return true
	}
	return r <= Nine && (uint8(r)+2)%2 == 1
}

// IsEven is true for 2, 4, 6, 8 and 10.
func (r Rank) IsEven() bool {
	return r <= Ten && (uint8(r)+2)%2 == 0
}

func (r Rank) String() string {
	if int(r) >= len(rankNames) {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Suit is one of the four suits.
type Suit uint8

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

// Family is the suit colour.
type Family uint8

const (
	Black Family = iota
	Red
)

func (f Family) String() string {
	if f == Red {
		return "red"
	}
	return "black"
}

// Family returns Red for diamonds and hearts, Black otherwise.
func (s Suit) Family() Family {
	if s == Diamond || s == Heart {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Enhancement is an optional card upgrade. The zero value is none.
type Enhancement uint8

const (
	EnhancementNone Enhancement = iota
	EnhancementBonus
	EnhancementMult
	EnhancementWild
	EnhancementGlass
	EnhancementSteel
	EnhancementStone
	EnhancementGold
	EnhancementLucky
)

func (e Enhancement) String() string {
	switch e {
	case EnhancementNone:
		return "none"
	case EnhancementBonus:
		return "bonus"
	case EnhancementMult:
		return "mult"
	case EnhancementWild:
		return "wild"
	case EnhancementGlass:
		return "glass"
	case EnhancementSteel:
		return "steel"
	case EnhancementStone:
		return "stone"
	case EnhancementGold:
		return "gold"
	case EnhancementLucky:
		return "lucky"
	default:
		return fmt.Sprintf("Enhancement(%d)", uint8(e))
	}
}

// Seal is an optional seal. The zero value is none.
type Seal uint8

const (
	SealNone Seal = iota
	SealGold
	SealRed
	SealBlue
	SealPurple
)

func (s Seal) String() string {
	switch s {
	case SealNone:
		return "none"
	case SealGold:
		return "gold"
	case SealRed:
		return "red"
	case SealBlue:
		return "blue"
	case SealPurple:
		return "purple"
	default:
		return fmt.Sprintf("Seal(%d)", uint8(s))
	}
}

// Edition is the edition a card can carry. Cards support the scoring
// editions but never Negative.
type Edition = edition.Edition[edition.Unit, edition.Never]

// Foil returns the foil card edition.
func Foil() Edition { return edition.Foil[edition.Never]() }

// Holographic returns the holographic card edition.
func Holographic() Edition { return edition.Holographic[edition.Never]() }

// Polychrome returns the polychrome card edition.
func Polychrome() Edition { return edition.Polychrome[edition.Never]() }

// Card is a single playing card.
type Card struct {
	Rank        Rank
	Suit        Suit
	Enhancement Enhancement
	Edition     Edition
	Seal        Seal
}

// Option customizes a card built by New.
type Option func(*Card)

// WithEnhancement sets the card enhancement.
func WithEnhancement(e Enhancement) Option { return func(c *Card) { c.Enhancement = e } }

// WithEdition sets the card edition.
func WithEdition(e Edition) Option { return func(c *Card) { c.Edition = e } }

// WithSeal sets the card seal.
func WithSeal(s Seal) Option { return func(c *Card) { c.Seal = s } }

// New returns a plain card of the given rank and suit with opts applied.
func New(rank Rank, suit Suit, opts ...Option) Card {
	c := Card{Rank: rank, Suit: suit}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// IsNegative is always false; it lets cards live in a slate.
func (c Card) IsNegative() bool { return false }

func (c Card) String() string {
	var b strings.Builder
	b.WriteString(c.Rank.String())
	b.WriteString(c.Suit.String())
	var extras []string
	if c.Enhancement != EnhancementNone {
		extras = append(extras, c.Enhancement.String())
	}
	if !c.Edition.IsZero() {
		extras = append(extras, c.Edition.String())
	}
	if c.Seal != SealNone {
		extras = append(extras, c.Seal.String()+" seal")
	}
	if len(extras) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(extras, ", "))
	}
	return b.String()
}
