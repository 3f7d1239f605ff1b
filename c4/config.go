package c4

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nelhage/connect4/bitboard"
)

var (
	ErrBadDimensions = errors.New("board dimensions must be positive")
	ErrBoardTooLarge = errors.New("board does not fit in 64 bits")
)

// Config fixes the dimensions of a board. Every Position carries the
// Config it was built from; positions from different configs must not
// be mixed.
type Config struct {
	width, height int

	l bitboard.Layout
}

func NewConfig(width, height int) (*Config, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	l := bitboard.Precompute(uint(width), uint(height))
	if !l.Fits() {
		return nil, fmt.Errorf("%w: %dx%d needs %d bits", ErrBoardTooLarge, width, height, l.Bits)
	}
	return &Config{width: width, height: height, l: l}, nil
}

// MustConfig is NewConfig for dimensions known to be valid.
func MustConfig(width, height int) *Config {
	c, e := NewConfig(width, height)
	if e != nil {
		panic(e)
	}
	return c
}

func (c *Config) Width() int {
	return c.width
}

func (c *Config) Height() int {
	return c.height
}

func (c *Config) Layout() *bitboard.Layout {
	return &c.l
}

func (c *Config) String() string {
	return fmt.Sprintf("%dx%d", c.width, c.height)
}

// Lines returns every row, column and diagonal of the board that is
// long enough to hold four in a row.
func (c *Config) Lines() [][]Coord {
	return Lines(c.height, c.width)
}

// Coord addresses a Grid cell; Row 0 is the top row.
type Coord struct {
	Row, Col int
}

var lineCache sync.Map

// Lines returns the lines of length >= 4 of a rows x cols grid: rows
// left to right, columns top to bottom, then both diagonal families.
// Results are shared and must not be modified.
func Lines(rows, cols int) [][]Coord {
	key := [2]int{rows, cols}
	if ls, ok := lineCache.Load(key); ok {
		return ls.([][]Coord)
	}
	ls, _ := lineCache.LoadOrStore(key, buildLines(rows, cols))
	return ls.([][]Coord)
}

func buildLines(rows, cols int) [][]Coord {
	var out [][]Coord
	walk := func(r, c, dr, dc int) {
		var line []Coord
		for r >= 0 && r < rows && c >= 0 && c < cols {
			line = append(line, Coord{r, c})
			r += dr
			c += dc
		}
		if len(line) >= 4 {
			out = append(out, line)
		}
	}
	for r := 0; r < rows; r++ {
		walk(r, 0, 0, 1)
	}
	for c := 0; c < cols; c++ {
		walk(0, c, 1, 0)
	}
	// down-right
	for r := rows - 1; r >= 0; r-- {
		walk(r, 0, 1, 1)
	}
	for c := 1; c < cols; c++ {
		walk(0, c, 1, 1)
	}
	// up-right
	for r := 0; r < rows; r++ {
		walk(r, 0, -1, 1)
	}
	for c := 1; c < cols; c++ {
		walk(rows-1, c, -1, 1)
	}
	return out
}
