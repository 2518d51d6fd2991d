package hand

import (
	"fmt"
	"strings"

	"github.com/tipsypastels/balatro/gameerrors"
	"github.com/tipsypastels/balatro/score"
)

// HandType is a poker hand category. Values are ordered weakest first.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive

	handTypeCount = int(FlushFive) + 1
)

type handTypeInfo struct {
	name          string
	baseChips     uint64
	baseMult      uint64
	perLevelChips uint64
	perLevelMult  uint64
	secret        bool
}

var handTypeTable = [handTypeCount]handTypeInfo{
	HighCard:      {"High Card", 5, 1, 10, 1, false},
	Pair:          {"Pair", 10, 2, 10, 2, false},
	TwoPair:       {"Two Pair", 20, 2, 20, 1, false},
	ThreeOfAKind:  {"Three of a Kind", 30, 3, 20, 2, false},
	Straight:      {"Straight", 30, 4, 30, 3, false},
	Flush:         {"Flush", 35, 4, 15, 2, false},
	FullHouse:     {"Full House", 40, 4, 25, 2, false},
	FourOfAKind:   {"Four of a Kind", 60, 7, 30, 3, false},
	StraightFlush: {"Straight Flush", 100, 8, 40, 4, false},
	FiveOfAKind:   {"Five of a Kind", 120, 12, 35, 3, false},
	FlushHouse:    {"Flush House", 140, 14, 40, 4, true},
	FlushFive:     {"Flush Five", 160, 16, 50, 3, true},
}

// Types returns every hand type, weakest first.
func Types() []HandType {
	out := make([]HandType, handTypeCount)
	for i := range out {
		out[i] = HandType(i)
	}
	return out
}

// IsValid reports whether h is one of the twelve hand types.
func (h HandType) IsValid() bool { return int(h) < handTypeCount }

// BaseScore is the score of h at level 1.
func (h HandType) BaseScore() (score.Chips, score.Mult) {
	info := h.info()
	return score.NewChips(info.baseChips), score.NewMult(info.baseMult)
}

// ScorePerLevel is what each level above 1 adds to h.
func (h HandType) ScorePerLevel() (score.Chips, score.Mult) {
	info := h.info()
	return score.NewChips(info.perLevelChips), score.NewMult(info.perLevelMult)
}

// IsSecret reports whether h stays hidden until it has been played.
func (h HandType) IsSecret() bool { return h.info().secret }

func (h HandType) String() string {
	if !h.IsValid() {
		return fmt.Sprintf("HandType(%d)", uint8(h))
	}
	return handTypeTable[h].name
}

// ParseHandType accepts a display name ("Full House") or a compact form
// ("full_house", "fullhouse"), case-insensitively.
func ParseHandType(s string) (HandType, error) {
	key := normalizeName(s)
	for _, h := range Types() {
		if normalizeName(h.String()) == key {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", gameerrors.ErrUnknownHandType, s)
}

func (h HandType) info() handTypeInfo {
	if !h.IsValid() {
		panic(fmt.Sprintf("hand: invalid hand type %d", uint8(h)))
	}
	return handTypeTable[h]
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
