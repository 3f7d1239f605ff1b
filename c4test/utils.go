package c4test

import (
	"strings"

	"github.com/nelhage/connect4/c4"
)

func Moves(s string) []int {
	ms, e := c4.ParseMoves(s)
	if e != nil {
		panic(e)
	}
	return ms
}

// Position replays ms on an empty w x h board with first to move.
func Position(w, h int, first c4.Color, ms string) *c4.Position {
	p, e := c4.MustConfig(w, h).Replay(first, Moves(ms))
	if e != nil {
		panic(e)
	}
	return p
}

// Grid parses a picture of a board, top row first: 'x' is a computer
// disc, 'o' a human disc and '.' an empty cell. Spaces are ignored.
func Grid(rows ...string) c4.Grid {
	g := make(c4.Grid, len(rows))
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		g[i] = make([]int, len(row))
		for j, ch := range row {
			switch ch {
			case 'x':
				g[i][j] = c4.ComputerPiece
			case 'o':
				g[i][j] = c4.HumanPiece
			case '.':
			default:
				panic("bad cell: " + string(ch))
			}
		}
	}
	return g
}

// FromGrid builds a Position from a picture, as in Grid.
func FromGrid(toMove c4.Color, rows ...string) *c4.Position {
	g := Grid(rows...)
	p, e := c4.FromGrid(c4.MustConfig(g.Cols(), g.Rows()), g, toMove)
	if e != nil {
		panic(e)
	}
	return p
}
