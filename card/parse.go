package card

import (
	"fmt"
	"strings"

	"github.com/tipsypastels/balatro/gameerrors"
)

// Parse reads a card written as rank then suit, e.g. "AS", "10h" or "Q♦",
// optionally followed by ":edition". T is accepted for ten. Cards cannot be
// negative, so ":negative" is rejected along with unknown editions.
func Parse(s string) (Card, error) {
	body, ed, hasEdition := strings.Cut(strings.TrimSpace(s), ":")
	runes := []rune(strings.ToUpper(body))
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("%w: %q", gameerrors.ErrUnknownCard, s)
	}
	rank, ok := parseRank(string(runes[:len(runes)-1]))
	if !ok {
		return Card{}, fmt.Errorf("%w: %q: bad rank", gameerrors.ErrUnknownCard, s)
	}
	suit, ok := parseSuit(runes[len(runes)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: %q: bad suit", gameerrors.ErrUnknownCard, s)
	}

	c := New(rank, suit)
	if hasEdition {
		switch strings.ToLower(strings.TrimSpace(ed)) {
		case "", "none":
		case "foil":
			c.Edition = Foil()
		case "holographic", "holo":
			c.Edition = Holographic()
		case "polychrome", "poly":
			c.Edition = Polychrome()
		default:
			return Card{}, fmt.Errorf("%w: %q on card %q", gameerrors.ErrUnknownEdition, ed, body)
		}
	}
	return c, nil
}

func parseRank(s string) (Rank, bool) {
	if s == "T" {
		return Ten, true
	}
	for i, name := range rankNames {
		if name == s {
			return Rank(i), true
		}
	}
	return 0, false
}

func parseSuit(r rune) (Suit, bool) {
	switch r {
	case 'C', '♣':
		return Club, true
	case 'D', '♦':
		return Diamond, true
	case 'H', '♥':
		return Heart, true
	case 'S', '♠':
		return Spade, true
	}
	return 0, false
}
