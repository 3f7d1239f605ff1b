package cli

import (
	"errors"

	"github.com/nelhage/connect4/c4"
)

var ErrGameOver = errors.New("game over")

// Game is the controller a front-end drives: it holds the current
// position and applies moves for whichever side is to move.
type Game struct {
	p        *c4.Position
	moves    []int
	computer Player
}

func NewGame(cfg *c4.Config, first c4.Color, computer Player) *Game {
	return &Game{
		p:        c4.New(cfg, first),
		computer: computer,
	}
}

// Play drops a disc for the side to move. On error the game is
// unchanged; an illegal column reports c4.ErrInvalidColumn.
func (g *Game) Play(col int) (c4.Grid, error) {
	if g.Over() {
		return nil, ErrGameOver
	}
	next, e := g.p.Move(col)
	if e != nil {
		return nil, e
	}
	g.p = next
	g.moves = append(g.moves, col)
	return next.Grid(), nil
}

// ComputerMove asks the computer player for a column and plays it.
func (g *Game) ComputerMove() (int, c4.Grid, error) {
	if g.Over() {
		return -1, nil, ErrGameOver
	}
	col := g.computer.GetMove(g.p)
	grid, e := g.Play(col)
	if e != nil {
		return col, nil, e
	}
	return col, grid, nil
}

func (g *Game) Position() *c4.Position {
	return g.p
}

func (g *Game) Grid() c4.Grid {
	return g.p.Grid()
}

func (g *Game) ToMove() c4.Color {
	return g.p.ToMove()
}

func (g *Game) Over() bool {
	return g.p.Full()
}

func (g *Game) Moves() []int {
	return g.moves
}
