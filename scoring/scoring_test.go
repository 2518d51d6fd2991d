package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tipsypastels/balatro/gameerrors"
	"github.com/tipsypastels/balatro/hand"
	"github.com/tipsypastels/balatro/joker"
	"github.com/tipsypastels/balatro/random"
	"github.com/tipsypastels/balatro/slate"
)

type captureSink struct{ got []Result }

func (c *captureSink) RecordPlay(r Result) { c.got = append(c.got, r) }

type maxSource struct{}

func (maxSource) Uint64n(n uint64) uint64 { return n - 1 }

func jokers(t *testing.T, baseCap int, ids ...string) *slate.Slate[joker.Joker] {
	t.Helper()
	r := joker.NewRegistry()
	joker.RegisterAll(r, nil)
	s := slate.New[joker.Joker](baseCap)
	for _, id := range ids {
		j, err := r.Parse(id)
		require.NoError(t, err)
		require.NoError(t, s.Push(j))
	}
	return s
}

func TestPlaySeedsFromHandLevel(t *testing.T) {
	var p Pipeline
	states := hand.States{}.UsePlanet(hand.Pluto)

	res, err := p.Play(Request{States: states, HandType: hand.HighCard})
	require.NoError(t, err)

	assert.Equal(t, uint16(2), res.Level)
	assert.Equal(t, uint64(15), res.Chips.Value())
	assert.Equal(t, uint64(2), res.Mult.Value())
	assert.Equal(t, uint64(30), res.Total())
	assert.Empty(t, res.Steps)
}

func TestPlayRunsJokersAfterSeed(t *testing.T) {
	var p Pipeline
	res, err := p.Play(Request{
		HandType: hand.Pair,
		Jokers:   jokers(t, 3, joker.IDJimbo, joker.IDStencil),
	})
	require.NoError(t, err)

	// Pair is 10 x2; +4 then x2 (one free slot plus the stencil).
	assert.Equal(t, uint64(10), res.Chips.Value())
	assert.Equal(t, uint64((2+4)*2), res.Mult.Value())
	require.Len(t, res.Steps, 2)
	assert.Equal(t, "Joker", res.Steps[0].Name)
	assert.Equal(t, uint64(6), res.Steps[0].Mult.Value())
	assert.Equal(t, "Joker Stencil", res.Steps[1].Name)
	assert.Equal(t, uint64(12), res.Steps[1].Mult.Value())
}

func TestPlayCountsThePlay(t *testing.T) {
	var p Pipeline
	before := hand.States{}

	res, err := p.Play(Request{States: before, HandType: hand.FlushFive})
	require.NoError(t, err)

	assert.Equal(t, uint16(0), before.Get(hand.FlushFive).Plays())
	assert.False(t, before.Get(hand.FlushFive).IsUnlocked())
	assert.Equal(t, uint16(1), res.States.Get(hand.FlushFive).Plays())
	assert.True(t, res.States.Get(hand.FlushFive).IsUnlocked())
}

func TestPlayUsesInjectedRandom(t *testing.T) {
	var p Pipeline
	res, err := p.Play(Request{
		HandType: hand.HighCard,
		Jokers:   jokers(t, 5, joker.IDMisprint),
		Rand:     maxSource{},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1+23), res.Mult.Value())

	a, err := p.Play(Request{HandType: hand.HighCard, Jokers: jokers(t, 5, joker.IDMisprint), Rand: random.New(7)})
	require.NoError(t, err)
	b, err := p.Play(Request{HandType: hand.HighCard, Jokers: jokers(t, 5, joker.IDMisprint), Rand: random.New(7)})
	require.NoError(t, err)
	assert.Equal(t, a.Mult, b.Mult)
}

func TestPlayRejectsInvalidHandType(t *testing.T) {
	sink := &captureSink{}
	p := Pipeline{Sink: sink}

	_, err := p.Play(Request{HandType: hand.HandType(99)})
	assert.ErrorIs(t, err, gameerrors.ErrUnknownHandType)
	assert.Empty(t, sink.got)
}

func TestPlayNotifiesSink(t *testing.T) {
	sink := &captureSink{}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Pipeline{Sink: sink, Now: func() time.Time { return at }}

	res, err := p.Play(Request{HandType: hand.Flush, Jokers: jokers(t, 5, "credit_card:negative")})
	require.NoError(t, err)

	require.Len(t, sink.got, 1)
	assert.Equal(t, res.ID, sink.got[0].ID)
	assert.Equal(t, at, sink.got[0].PlayedAt)
	assert.Equal(t, "negative", sink.got[0].Steps[0].Edition)
}
