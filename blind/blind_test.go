package blind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tipsypastels/balatro/gameerrors"
	"github.com/tipsypastels/balatro/score"
)

func TestRewardAndScoreMult(t *testing.T) {
	tests := []struct {
		blind  Blind
		name   string
		reward score.Money
		mult   uint64
	}{
		{Small, "Small Blind", 3, 2},
		{Big, "Big Blind", 4, 3},
		{ForBoss(Hook), "The Hook", 5, 5},
		{ForBoss(Wall), "The Wall", 5, 5},
		{ForBoss(Mark), "The Mark", 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.blind.String())
			assert.Equal(t, tt.reward, tt.blind.Reward())
			assert.Equal(t, tt.mult, tt.blind.ScoreMult())
		})
	}
}

func TestZeroBlindIsSmall(t *testing.T) {
	var b Blind
	assert.Equal(t, Small, b)
	assert.False(t, b.IsBoss())
	_, ok := b.Boss()
	assert.False(t, ok)
}

func TestBosses(t *testing.T) {
	all := Bosses()
	require.Len(t, all, 23)
	assert.Equal(t, Hook, all[0])
	assert.Equal(t, Mark, all[len(all)-1])

	seen := map[string]bool{}
	for _, b := range all {
		blind := ForBoss(b)
		got, ok := blind.Boss()
		assert.True(t, ok)
		assert.Equal(t, b, got)
		assert.False(t, seen[b.String()], "duplicate name %s", b)
		seen[b.String()] = true
	}
	assert.Equal(t, "Boss(23)", Boss(23).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Blind
	}{
		{"small", Small},
		{"Big Blind", Big},
		{"the hook", ForBoss(Hook)},
		{"PSYCHIC", ForBoss(Psychic)},
		{" the-serpent ", ForBoss(Serpent)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := Parse("the violet vessel")
	assert.ErrorIs(t, err, gameerrors.ErrUnknownBlind)
}

func TestAnte(t *testing.T) {
	var a Ante
	assert.Equal(t, uint8(1), a.Value(), "zero value is ante 1")
	assert.Equal(t, "ante 2", a.Next().String())
	assert.True(t, a.Less(a.Next()))

	_, ok := NewAnte(0)
	assert.False(t, ok)

	last, ok := NewAnte(255)
	require.True(t, ok)
	assert.Equal(t, uint8(255), last.Next().Value(), "next saturates")

	eight, ok := NewAnte(8)
	require.True(t, ok)
	assert.Equal(t, uint8(8), eight.Value())
}
