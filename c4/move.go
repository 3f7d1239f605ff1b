package c4

import (
	"errors"
	"fmt"
)

var ErrInvalidColumn = errors.New("invalid column")

// Move drops a disc for the side to move into col and passes the turn.
func (p *Position) Move(col int) (*Position, error) {
	return p.drop(col, true)
}

// Place drops a disc for the side to move into col without passing the
// turn.
func (p *Position) Place(col int) (*Position, error) {
	return p.drop(col, false)
}

func (p *Position) drop(col int, flip bool) (*Position, error) {
	if col < 0 || col >= p.cfg.width {
		return nil, fmt.Errorf("%w: %d is outside [0,%d)", ErrInvalidColumn, col, p.cfg.width)
	}
	h := p.Height(col)
	if h >= p.cfg.height {
		return nil, fmt.Errorf("%w: column %d is full", ErrInvalidColumn, col)
	}
	l := &p.cfg.l
	next := &Position{cfg: p.cfg, value: p.value, toMove: p.toMove}
	bit := uint64(1) << l.CellShift(uint(h), uint(col))
	if p.toMove == Human {
		next.value |= bit
	} else {
		next.value &^= bit
	}
	next.value += 1 << l.HeightShift(uint(col))
	if flip {
		next.toMove = p.toMove.Flip()
	}
	return next, nil
}

// Successors returns the result of Move for every playable column, in
// ascending column order.
func (p *Position) Successors() []*Position {
	out := make([]*Position, 0, p.cfg.width)
	for col := 0; col < p.cfg.width; col++ {
		if p.Height(col) >= p.cfg.height {
			continue
		}
		next, e := p.Move(col)
		if e != nil {
			panic(fmt.Sprintf("Successors: %v", e))
		}
		out = append(out, next)
	}
	return out
}
