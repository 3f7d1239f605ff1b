package c4

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadGrid = errors.New("bad grid")

// Grid is a dense decoding of a board. Row 0 is the top row; cells
// hold Empty, ComputerPiece or HumanPiece.
type Grid [][]int

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) At(c Coord) int {
	return g[c.Row][c.Col]
}

func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, v := range row {
			switch v {
			case ComputerPiece:
				b.WriteByte('x')
			case HumanPiece:
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *Position) Grid() Grid {
	w, h := p.cfg.width, p.cfg.height
	cells := make([]int, w*h)
	g := make(Grid, h)
	for row := range g {
		g[row] = cells[row*w : (row+1)*w]
	}
	l := &p.cfg.l
	for col := 0; col < w; col++ {
		height := int(l.ColumnHeight(p.value, uint(col)))
		bits := l.ColumnBits(p.value, uint(col))
		for i := 0; i < height; i++ {
			v := ComputerPiece
			if bits&(1<<uint(i)) != 0 {
				v = HumanPiece
			}
			g[h-1-i][col] = v
		}
	}
	return g
}

// FromGrid encodes g, which must match cfg's dimensions and have no
// disc above an empty cell.
func FromGrid(cfg *Config, g Grid, toMove Color) (*Position, error) {
	if g.Rows() != cfg.height || g.Cols() != cfg.width {
		return nil, fmt.Errorf("%w: %dx%d grid for a %s board", ErrBadGrid, g.Cols(), g.Rows(), cfg)
	}
	for r, row := range g {
		if len(row) != cfg.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadGrid, r, len(row), cfg.width)
		}
	}
	p := New(cfg, toMove)
	l := &cfg.l
	for col := 0; col < cfg.width; col++ {
		height := 0
		for i := 0; i < cfg.height; i++ {
			v := g[cfg.height-1-i][col]
			switch v {
			case Empty:
				continue
			case ComputerPiece, HumanPiece:
			default:
				return nil, fmt.Errorf("%w: bad cell %d at (%d,%d)", ErrBadGrid, v, cfg.height-1-i, col)
			}
			if height != i {
				return nil, fmt.Errorf("%w: floating disc at (%d,%d)", ErrBadGrid, cfg.height-1-i, col)
			}
			if v == HumanPiece {
				p.value |= 1 << l.CellShift(uint(i), uint(col))
			}
			height++
		}
		p.value |= uint64(height) << l.HeightShift(uint(col))
	}
	return p, nil
}

// Score counts piece's completed fours: each run of L >= 4 contiguous
// discs along a row, column or diagonal counts L-3 times.
func Score(g Grid, piece int) int {
	score := 0
	for _, line := range Lines(g.Rows(), g.Cols()) {
		run := 0
		for _, c := range line {
			if g.At(c) != piece {
				run = 0
				continue
			}
			run++
			if run >= 4 {
				score++
			}
		}
	}
	return score
}

type Outcome struct {
	Computer, Human int
	Winner          Color
}

// Outcome scores a finished game. The game ends when the board is
// full; the side with more fours wins.
func (p *Position) Outcome() (Outcome, bool) {
	if !p.Full() {
		return Outcome{}, false
	}
	g := p.Grid()
	o := Outcome{
		Computer: Score(g, ComputerPiece),
		Human:    Score(g, HumanPiece),
	}
	switch {
	case o.Computer > o.Human:
		o.Winner = Computer
	case o.Human > o.Computer:
		o.Winner = Human
	}
	return o, true
}
