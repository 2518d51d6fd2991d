package blind

import (
	"fmt"
	"math"
)

// Ante is the current ante, starting at 1. The zero value is ante 1.
type Ante struct {
	n uint8 // ante minus one
}

// NewAnte returns ante n. Ante 0 does not exist.
func NewAnte(n uint8) (Ante, bool) {
	if n == 0 {
		return Ante{}, false
	}
	return Ante{n: n - 1}, true
}

// Value is the ante number, at least 1.
func (a Ante) Value() uint8 { return a.n + 1 }

// Next is the following ante. It stays at the last ante once reached.
func (a Ante) Next() Ante {
	if a.n == math.MaxUint8-1 {
		return a
	}
	return Ante{n: a.n + 1}
}

// Less reports whether a comes before b.
func (a Ante) Less(b Ante) bool { return a.n < b.n }

func (a Ante) String() string { return fmt.Sprintf("ante %d", a.Value()) }
