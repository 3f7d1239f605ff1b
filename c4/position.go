package c4

import (
	"errors"
	"fmt"
)

var ErrBadEncoding = errors.New("bad position encoding")

// Position is an immutable board state: the packed board contents and
// the side to move. Moves return a new Position.
type Position struct {
	cfg    *Config
	value  uint64
	toMove Color
}

func New(cfg *Config, toMove Color) *Position {
	if toMove != Computer && toMove != Human {
		panic(fmt.Sprintf("New: bad color to move: %d", toMove))
	}
	return &Position{cfg: cfg, toMove: toMove}
}

// FromValue rebuilds a Position from an encoded value, as returned by
// Value.
func FromValue(cfg *Config, value uint64, toMove Color) (*Position, error) {
	if value&^cfg.l.Mask != 0 {
		return nil, fmt.Errorf("%w: bits set above %d", ErrBadEncoding, cfg.l.Bits)
	}
	for col := 0; col < cfg.width; col++ {
		if h := cfg.l.ColumnHeight(value, uint(col)); h > uint(cfg.height) {
			return nil, fmt.Errorf("%w: column %d has height %d", ErrBadEncoding, col, h)
		}
	}
	p := New(cfg, toMove)
	p.value = value
	return p, nil
}

func (p *Position) Config() *Config {
	return p.cfg
}

// Value returns the packed board. It does not encode the side to move.
func (p *Position) Value() uint64 {
	return p.value
}

func (p *Position) ToMove() Color {
	return p.toMove
}

func (p *Position) IsComputerTurn() bool {
	return p.toMove == Computer
}

func (p *Position) Height(col int) int {
	return int(p.cfg.l.ColumnHeight(p.value, uint(col)))
}

func (p *Position) Playable(col int) bool {
	return col >= 0 && col < p.cfg.width && p.Height(col) < p.cfg.height
}

// Columns returns the playable columns in ascending order.
func (p *Position) Columns() []int {
	out := make([]int, 0, p.cfg.width)
	for col := 0; col < p.cfg.width; col++ {
		if p.Height(col) < p.cfg.height {
			out = append(out, col)
		}
	}
	return out
}

func (p *Position) Discs() int {
	n := 0
	for col := 0; col < p.cfg.width; col++ {
		n += p.Height(col)
	}
	return n
}

// Count returns the number of discs c has on the board.
func (p *Position) Count(c Color) int {
	human := p.cfg.l.Ones(p.value)
	switch c {
	case Human:
		return human
	case Computer:
		return p.Discs() - human
	}
	return 0
}

func (p *Position) Full() bool {
	return p.Discs() == p.cfg.width*p.cfg.height
}

// At returns the cell value at (row, col), with row 0 at the top, as
// in Grid.
func (p *Position) At(row, col int) int {
	bottom := p.cfg.height - 1 - row
	if bottom >= p.Height(col) {
		return Empty
	}
	if (p.value>>p.cfg.l.CellShift(uint(bottom), uint(col)))&1 == 1 {
		return HumanPiece
	}
	return ComputerPiece
}

func (p *Position) String() string {
	return fmt.Sprintf("%s[%#x %s to move]", p.cfg, p.value, p.toMove)
}
