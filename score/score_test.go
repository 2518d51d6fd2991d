package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChipsAdd(t *testing.T) {
	c := NewChips(5).Add(NewChips(10)).AddN(3)
	assert.Equal(t, uint64(18), c.Value())
}

func TestMultAddAndMul(t *testing.T) {
	m := NewMult(1).AddN(4)
	assert.Equal(t, NewMult(5), m)

	m = m.Mul(NewMult(3)).MulN(2)
	assert.Equal(t, uint64(30), m.Value())
}

func TestChipsAllowMul(t *testing.T) {
	c := AllowMul(NewChips(10)).MulN(2).Finish()
	assert.Equal(t, NewChips(20), c)

	assert.Equal(t, NewChips(0), AllowMul(NewChips(10)).MulN(0).Finish())
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
	}{
		{"chips add", NewChips(math.MaxUint64).AddN(1).Value()},
		{"mult add", NewMult(math.MaxUint64 - 1).Add(NewMult(2)).Value()},
		{"mult mul", NewMult(math.MaxUint64 / 2).MulN(3).Value()},
		{"chips allow mul", AllowMul(NewChips(math.MaxUint64)).MulN(2).Finish().Value()},
		{"product", Product(NewChips(math.MaxUint64), NewMult(2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, uint64(math.MaxUint64), tt.got)
		})
	}
}

func TestProduct(t *testing.T) {
	assert.Equal(t, uint64(75), Product(NewChips(15), NewMult(5)))
	assert.Equal(t, uint64(0), Product(Chips{}, NewMult(5)))
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "$4", Money(4).String())
	assert.Equal(t, "-$20", Money(-20).String())
}
