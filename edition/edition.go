// Package edition models the Foil / Holographic / Polychrome / Negative
// modifier an item can carry.
//
// Which variants an item supports is decided by its edition type, not at
// runtime. Edition is parameterized by two capability markers:
//
//   - S, the scoring marker, gates Foil, Holographic and Polychrome.
//   - N, the negative marker, gates Negative.
//
// Each marker is either Unit (supported, no payload) or Never (unsupported).
// The constructors only return editions whose relevant marker is Unit, so a
// host that binds a marker to Never has no way to obtain that variant:
//
//	type CardEdition = edition.Edition[edition.Unit, edition.Never]
//
//	var e CardEdition = edition.Foil[edition.Never]()     // ok
//	var e CardEdition = edition.Negative[edition.Unit]() // does not compile
//
//	// Neither does converting another host's edition.
//	var e = CardEdition(edition.Negative[edition.Unit]()) // does not compile
package edition

// Unit marks a supported capability with no payload.
type Unit struct{}

// Never marks an unsupported capability. No edition value ever carries it.
type Never struct {
	_ never
}

type never struct{}

// Mode is the closed set of capability markers.
type Mode interface {
	Unit | Never
}

// Kind names an edition variant.
type Kind uint8

const (
	KindNone Kind = iota
	KindFoil
	KindHolographic
	KindPolychrome
	KindNegative
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFoil:
		return "foil"
	case KindHolographic:
		return "holographic"
	case KindPolychrome:
		return "polychrome"
	case KindNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Edition is an optional edition for a host whose capabilities are S and N.
// The zero value is "no edition".
//
// The markers are part of the underlying type, so editions of hosts with
// different capabilities cannot be converted into one another.
type Edition[S, N Mode] struct {
	_    [0]S
	_    [0]N
	kind Kind
}

// Foil returns the foil edition. Only hosts with a Unit scoring marker can
// hold it.
func Foil[N Mode]() Edition[Unit, N] { return Edition[Unit, N]{kind: KindFoil} }

// Holographic returns the holographic edition.
func Holographic[N Mode]() Edition[Unit, N] { return Edition[Unit, N]{kind: KindHolographic} }

// Polychrome returns the polychrome edition.
func Polychrome[N Mode]() Edition[Unit, N] { return Edition[Unit, N]{kind: KindPolychrome} }

// Negative returns the negative edition. Only hosts with a Unit negative
// marker can hold it.
func Negative[S Mode]() Edition[S, Unit] { return Edition[S, Unit]{kind: KindNegative} }

// Kind reports the variant, KindNone for the zero value.
func (e Edition[S, N]) Kind() Kind { return e.kind }

// IsZero reports whether no edition is set.
func (e Edition[S, N]) IsZero() bool { return e.kind == KindNone }

// IsNegative reports whether e is the Negative variant.
func (e Edition[S, N]) IsNegative() bool { return e.kind == KindNegative }

// IsScoring reports whether e is one of the scoring variants.
func (e Edition[S, N]) IsScoring() bool {
	return e.kind == KindFoil || e.kind == KindHolographic || e.kind == KindPolychrome
}

// Scoring returns the scoring payload when e is a scoring variant.
func (e Edition[S, N]) Scoring() (S, bool) {
	var s S
	return s, e.IsScoring()
}

func (e Edition[S, N]) String() string { return e.kind.String() }
