package edition

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type (
	cardLike  = Edition[Unit, Never]
	jokerLike = Edition[Unit, Unit]
	negOnly   = Edition[Never, Unit]
)

func TestZeroValueIsNone(t *testing.T) {
	var e jokerLike
	assert.True(t, e.IsZero())
	assert.False(t, e.IsNegative())
	assert.False(t, e.IsScoring())
	assert.Equal(t, KindNone, e.Kind())
}

func TestScoringVariants(t *testing.T) {
	tests := []struct {
		edition cardLike
		kind    Kind
	}{
		{Foil[Never](), KindFoil},
		{Holographic[Never](), KindHolographic},
		{Polychrome[Never](), KindPolychrome},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.edition.Kind())
			assert.True(t, tt.edition.IsScoring())
			assert.False(t, tt.edition.IsNegative())

			_, ok := tt.edition.Scoring()
			assert.True(t, ok)
		})
	}
}

func TestNegative(t *testing.T) {
	var j jokerLike = Negative[Unit]()
	assert.True(t, j.IsNegative())
	assert.False(t, j.IsScoring())

	var n negOnly = Negative[Never]()
	assert.True(t, n.IsNegative())
	_, ok := n.Scoring()
	assert.False(t, ok)
}

func TestEquality(t *testing.T) {
	assert.Equal(t, Foil[Unit](), Foil[Unit]())
	assert.NotEqual(t, Foil[Unit](), Polychrome[Unit]())
	assert.Equal(t, "negative", Negative[Unit]().String())
}

func TestHostEditionsDoNotConvert(t *testing.T) {
	card := reflect.TypeOf(cardLike{})
	joker := reflect.TypeOf(jokerLike{})
	neg := reflect.TypeOf(negOnly{})

	assert.False(t, joker.ConvertibleTo(card), "a joker edition must not convert to a card edition")
	assert.False(t, card.ConvertibleTo(joker))
	assert.False(t, neg.ConvertibleTo(card))
	assert.True(t, card.ConvertibleTo(reflect.TypeOf(Edition[Unit, Never]{})))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "polychrome", KindPolychrome.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
