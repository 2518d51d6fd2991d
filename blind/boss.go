package blind

import "fmt"

// Boss identifies the boss of a boss blind.
type Boss uint8

const (
	Hook Boss = iota
	Ox
	House
	Wall
	Wheel
	Arm
	Club
	Fish
	Psychic
	Goad
	Water
	Window
	Manacle
	Eye
	Mouth
	Plant
	Serpent
	Pillar
	Needle
	Head
	Tooth
	Flint
	Mark
	bossCount
)

var bossNames = [bossCount]string{
	Hook:    "Hook",
	Ox:      "Ox",
	House:   "House",
	Wall:    "Wall",
	Wheel:   "Wheel",
	Arm:     "Arm",
	Club:    "Club",
	Fish:    "Fish",
	Psychic: "Psychic",
	Goad:    "Goad",
	Water:   "Water",
	Window:  "Window",
	Manacle: "Manacle",
	Eye:     "Eye",
	Mouth:   "Mouth",
	Plant:   "Plant",
	Serpent: "Serpent",
	Pillar:  "Pillar",
	Needle:  "Needle",
	Head:    "Head",
	Tooth:   "Tooth",
	Flint:   "Flint",
	Mark:    "Mark",
}

// Bosses returns every boss in declaration order.
func Bosses() []Boss {
	out := make([]Boss, bossCount)
	for i := range out {
		out[i] = Boss(i)
	}
	return out
}

func (b Boss) String() string {
	if b >= bossCount {
		return fmt.Sprintf("Boss(%d)", uint8(b))
	}
	return "The " + bossNames[b]
}
