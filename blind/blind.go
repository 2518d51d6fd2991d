// Package blind models the three blinds of an ante and the ante counter.
package blind

import (
	"fmt"
	"strings"

	"github.com/tipsypastels/balatro/gameerrors"
	"github.com/tipsypastels/balatro/score"
)

type kind uint8

const (
	kindSmall kind = iota
	kindBig
	kindBoss
)

// Blind is a small, big or boss blind. The zero value is the small blind.
type Blind struct {
	kind kind
	boss Boss
}

var (
	Small = Blind{kind: kindSmall}
	Big   = Blind{kind: kindBig}
)

// ForBoss returns the boss blind played against b.
func ForBoss(b Boss) Blind { return Blind{kind: kindBoss, boss: b} }

// Boss returns the boss of a boss blind.
func (b Blind) Boss() (Boss, bool) { return b.boss, b.kind == kindBoss }

// IsBoss reports whether b is a boss blind.
func (b Blind) IsBoss() bool { return b.kind == kindBoss }

// Reward is the money paid for beating the blind.
func (b Blind) Reward() score.Money {
	switch b.kind {
	case kindBig:
		return 4
	case kindBoss:
		return 5
	default:
		return 3
	}
}

// ScoreMult scales the ante's base requirement for this blind.
func (b Blind) ScoreMult() uint64 {
	switch b.kind {
	case kindBig:
		return 3
	case kindBoss:
		return 5
	default:
		return 2
	}
}

func (b Blind) String() string {
	switch b.kind {
	case kindSmall:
		return "Small Blind"
	case kindBig:
		return "Big Blind"
	case kindBoss:
		return b.boss.String()
	default:
		return fmt.Sprintf("Blind(%d)", uint8(b.kind))
	}
}

// Parse accepts "small", "big", a boss name with or without "the", or
// either blind's full name. Matching ignores case, spaces, '-' and '_'.
func Parse(s string) (Blind, error) {
	key := normalize(s)
	switch key {
	case "small", "smallblind":
		return Small, nil
	case "big", "bigblind":
		return Big, nil
	}
	key = strings.TrimPrefix(key, "the")
	for _, b := range Bosses() {
		if normalize(bossNames[b]) == key {
			return ForBoss(b), nil
		}
	}
	return Blind{}, fmt.Errorf("%w: %q", gameerrors.ErrUnknownBlind, s)
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
