package hand

import (
	"math"

	"github.com/tipsypastels/balatro/score"
)

// States tracks level and play count for every hand type. It is a value
// type: transitions return a new States and leave the receiver untouched.
// The zero value is the starting state, every hand type at level 1 with no
// plays.
type States struct {
	entries [handTypeCount]entry
}

type entry struct {
	levelUps uint16
	plays    uint16
}

// State is a read-only view of one hand type.
type State struct {
	handType HandType
	e        entry
}

// Get returns the state of h. It panics if h is not a valid hand type.
func (s States) Get(h HandType) State {
	h.info()
	return State{handType: h, e: s.entries[h]}
}

// All returns the state of every hand type, weakest first.
func (s States) All() []State {
	out := make([]State, handTypeCount)
	for i := range out {
		out[i] = State{handType: HandType(i), e: s.entries[i]}
	}
	return out
}

// LevelUp raises h by one level.
func (s States) LevelUp(h HandType) States {
	h.info()
	s.entries[h].levelUps = satInc(s.entries[h].levelUps)
	return s
}

// PlaysUp counts one more play of h. Playing a secret hand type unlocks it.
func (s States) PlaysUp(h HandType) States {
	h.info()
	s.entries[h].plays = satInc(s.entries[h].plays)
	return s
}

// UsePlanet levels up the hand type p is tied to.
func (s States) UsePlanet(p Planet) States {
	return s.LevelUp(p.HandType())
}

// UseBlackHole levels up every hand type, locked ones included.
func (s States) UseBlackHole() States {
	for i := range s.entries {
		s.entries[i].levelUps = satInc(s.entries[i].levelUps)
	}
	return s
}

// HandType returns the hand type this state describes.
func (st State) HandType() HandType { return st.handType }

// IsUnlocked reports whether the hand type is visible. Non-secret hand
// types always are; secret ones once played.
func (st State) IsUnlocked() bool {
	return !st.handType.IsSecret() || st.e.plays > 0
}

// Level is at least 1 and saturates at math.MaxUint16.
func (st State) Level() uint16 {
	if st.e.levelUps == math.MaxUint16 {
		return math.MaxUint16
	}
	return st.e.levelUps + 1
}

// Plays returns how many times the hand type has been played.
func (st State) Plays() uint16 { return st.e.plays }

// Score returns base + perLevel * (level - 1).
func (st State) Score() (score.Chips, score.Mult) {
	baseChips, baseMult := st.handType.BaseScore()
	lvlChips, lvlMult := st.handType.ScorePerLevel()
	steps := uint64(st.Level() - 1)

	chips := baseChips.Add(score.AllowMul(lvlChips).MulN(steps).Finish())
	mult := baseMult.Add(lvlMult.MulN(steps))
	return chips, mult
}

func satInc(v uint16) uint16 {
	if v == math.MaxUint16 {
		return v
	}
	return v + 1
}
