package c4

import "fmt"

type Color byte

const (
	NoColor  Color = 0
	Computer Color = 1
	Human    Color = 2
)

// Cell values in a decoded Grid. A disc's cell value equals its Color.
const (
	Empty         = 0
	ComputerPiece = int(Computer)
	HumanPiece    = int(Human)
)

func (c Color) String() string {
	switch c {
	case Computer:
		return "computer"
	case Human:
		return "human"
	case NoColor:
		return "no color"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

func (c Color) Flip() Color {
	switch c {
	case Computer:
		return Human
	case Human:
		return Computer
	case NoColor:
		return NoColor
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// Piece returns the grid cell value used for c's discs.
func (c Color) Piece() int {
	return int(c)
}

func ParseColor(s string) (Color, error) {
	switch s {
	case "computer", "c", "x":
		return Computer, nil
	case "human", "h", "o":
		return Human, nil
	}
	return NoColor, fmt.Errorf("bad color: %q", s)
}
