// Package score holds the value types a play is scored in: chips, mult and
// money.
//
// Chips only ever add. The one place that needs to multiply chips (level
// scaling of a hand type) has to go through ChipsAllowMul, so a stray chips
// multiplication cannot be written by accident.
package score

import (
	"fmt"
	"math"
	"math/bits"
)

// Chips is the additive half of a score.
type Chips struct {
	v uint64
}

// NewChips returns n chips.
func NewChips(n uint64) Chips { return Chips{v: n} }

// Value returns the raw chip count.
func (c Chips) Value() uint64 { return c.v }

// Add returns c + o, saturating at math.MaxUint64.
func (c Chips) Add(o Chips) Chips { return Chips{v: satAdd(c.v, o.v)} }

// AddN returns c + n, saturating at math.MaxUint64.
func (c Chips) AddN(n uint64) Chips { return Chips{v: satAdd(c.v, n)} }

func (c Chips) String() string { return fmt.Sprintf("%d chips", c.v) }

// Mult is the multiplicative half of a score.
type Mult struct {
	v uint64
}

// NewMult returns a mult of n.
func NewMult(n uint64) Mult { return Mult{v: n} }

// Value returns the raw mult.
func (m Mult) Value() uint64 { return m.v }

// Add returns m + o, saturating.
func (m Mult) Add(o Mult) Mult { return Mult{v: satAdd(m.v, o.v)} }

// AddN returns m + n, saturating.
func (m Mult) AddN(n uint64) Mult { return Mult{v: satAdd(m.v, n)} }

// Mul returns m * o, saturating.
func (m Mult) Mul(o Mult) Mult { return Mult{v: satMul(m.v, o.v)} }

// MulN returns m * n, saturating.
func (m Mult) MulN(n uint64) Mult { return Mult{v: satMul(m.v, n)} }

func (m Mult) String() string { return fmt.Sprintf("x%d mult", m.v) }

// ChipsAllowMul is a chips value that may be multiplied. Use AllowMul to
// enter it and Finish to get plain Chips back.
type ChipsAllowMul struct {
	v uint64
}

// AllowMul opts c into multiplication.
func AllowMul(c Chips) ChipsAllowMul { return ChipsAllowMul{v: c.v} }

// MulN returns c * n, saturating.
func (c ChipsAllowMul) MulN(n uint64) ChipsAllowMul { return ChipsAllowMul{v: satMul(c.v, n)} }

// Finish returns the result as plain Chips.
func (c ChipsAllowMul) Finish() Chips { return Chips{v: c.v} }

// Product is the final value of a play: chips times mult, saturating.
func Product(c Chips, m Mult) uint64 { return satMul(c.v, m.v) }

// Money is a whole-dollar amount. Negative values are debt.
type Money int

func (m Money) String() string {
	if m < 0 {
		return fmt.Sprintf("-$%d", -int64(m))
	}
	return fmt.Sprintf("$%d", int64(m))
}

func satAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func satMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
