package hand

import (
	"fmt"

	"github.com/tipsypastels/balatro/gameerrors"
)

// Planet is a consumable that levels up one hand type.
type Planet struct {
	handType HandType
}

var (
	Pluto   = Planet{HighCard}
	Mercury = Planet{Pair}
	Uranus  = Planet{TwoPair}
	Venus   = Planet{ThreeOfAKind}
	Saturn  = Planet{Straight}
	Jupiter = Planet{Flush}
	Earth   = Planet{FullHouse}
	Mars    = Planet{FourOfAKind}
	Neptune = Planet{StraightFlush}
	PlanetX = Planet{FiveOfAKind}
	Ceres   = Planet{FlushHouse}
	Eris    = Planet{FlushFive}
)

var planetNames = [handTypeCount]string{
	HighCard:      "Pluto",
	Pair:          "Mercury",
	TwoPair:       "Uranus",
	ThreeOfAKind:  "Venus",
	Straight:      "Saturn",
	Flush:         "Jupiter",
	FullHouse:     "Earth",
	FourOfAKind:   "Mars",
	StraightFlush: "Neptune",
	FiveOfAKind:   "Planet X",
	FlushHouse:    "Ceres",
	FlushFive:     "Eris",
}

// Planets returns every planet in hand type order.
func Planets() []Planet {
	out := make([]Planet, handTypeCount)
	for i := range out {
		out[i] = Planet{HandType(i)}
	}
	return out
}

// HandType is the hand type p levels up.
func (p Planet) HandType() HandType { return p.handType }

func (p Planet) String() string {
	if !p.handType.IsValid() {
		return fmt.Sprintf("Planet(%d)", uint8(p.handType))
	}
	return planetNames[p.handType]
}

// ParsePlanet looks a planet up by name, case-insensitively.
func ParsePlanet(s string) (Planet, error) {
	key := normalizeName(s)
	for _, p := range Planets() {
		if normalizeName(p.String()) == key {
			return p, nil
		}
	}
	return Planet{}, fmt.Errorf("%w: %q", gameerrors.ErrUnknownPlanet, s)
}
