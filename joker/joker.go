// Package joker holds joker abilities, the Joker instance type and the
// Scorer they act on.
//
// A Kind is the ability definition. Kinds are pointer types and are shared
// by every Joker built from them, so per-kind settings (prices, mult
// amounts) live on the kind and per-copy state (identity, edition) lives on
// the Joker.
package joker

import (
	"fmt"
	"iter"

	"github.com/google/uuid"

	"github.com/tipsypastels/balatro/edition"
	"github.com/tipsypastels/balatro/score"
	"github.com/tipsypastels/balatro/slate"
)

// Rarity orders jokers by how rarely they appear.
type Rarity uint8

const (
	Common Rarity = iota
	Uncommon
	Rare
	Legendary
)

func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	case Legendary:
		return "legendary"
	default:
		return fmt.Sprintf("Rarity(%d)", uint8(r))
	}
}

// Kind defines what a joker is and does.
type Kind interface {
	Name() string
	Rarity() Rarity
	Price() score.Money

	// RunIndependent applies the joker's effect once per scored play. It
	// must not change the joker collection it is read from.
	RunIndependent(s *Scorer)
}

// NoIndependent is embedded by kinds with no independent effect.
type NoIndependent struct{}

func (NoIndependent) RunIndependent(*Scorer) {}

// Edition is the edition a joker can carry: any of them, Negative included.
type Edition = edition.Edition[edition.Unit, edition.Unit]

func Foil() Edition        { return edition.Foil[edition.Unit]() }
func Holographic() Edition { return edition.Holographic[edition.Unit]() }
func Polychrome() Edition  { return edition.Polychrome[edition.Unit]() }
func Negative() Edition    { return edition.Negative[edition.Unit]() }

// Joker is one owned copy of a kind.
type Joker struct {
	id      uuid.UUID
	kind    Kind
	edition Edition
}

// Option customizes a Joker built by New.
type Option func(*Joker)

// WithEdition sets the joker edition.
func WithEdition(e Edition) Option { return func(j *Joker) { j.edition = e } }

// New returns a fresh joker of kind. It panics if kind is nil.
func New(kind Kind, opts ...Option) Joker {
	if kind == nil {
		panic("joker: nil kind")
	}
	j := Joker{id: uuid.New(), kind: kind}
	for _, opt := range opts {
		opt(&j)
	}
	return j
}

func (j Joker) ID() uuid.UUID      { return j.id }
func (j Joker) Kind() Kind         { return j.kind }
func (j Joker) Name() string       { return j.kind.Name() }
func (j Joker) Rarity() Rarity     { return j.kind.Rarity() }
func (j Joker) Price() score.Money { return j.kind.Price() }
func (j Joker) Edition() Edition   { return j.edition }

// IsNegative reports whether the joker carries the Negative edition, which
// makes room for itself in a slate.
func (j Joker) IsNegative() bool { return j.edition.IsNegative() }

func (j Joker) String() string {
	if j.edition.IsZero() {
		return j.Name()
	}
	return fmt.Sprintf("%s (%s)", j.Name(), j.edition)
}

// Is reports whether j's kind is K.
func Is[K Kind](j Joker) bool {
	_, ok := j.kind.(K)
	return ok
}

// OfKind yields the jokers in s whose kind is K, in slot order.
func OfKind[K Kind](s *slate.Slate[Joker]) iter.Seq[Joker] {
	return func(yield func(Joker) bool) {
		for j := range s.Values() {
			if Is[K](j) && !yield(j) {
				return
			}
		}
	}
}

// HasKind reports whether s holds at least one joker of kind K.
func HasKind[K Kind](s *slate.Slate[Joker]) bool {
	for range OfKind[K](s) {
		return true
	}
	return false
}

// CountKind returns how many jokers of kind K s holds.
func CountKind[K Kind](s *slate.Slate[Joker]) int {
	n := 0
	for range OfKind[K](s) {
		n++
	}
	return n
}
