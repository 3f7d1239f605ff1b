package ai

import "github.com/nelhage/connect4/c4"

// Searcher picks a move for the side to move in a position.
type Searcher interface {
	// Run returns the position's value and the chosen successor, or
	// nil when there is no legal move.
	Run(p *c4.Position) (float64, *c4.Position)
	Analyze(p *c4.Position) Result
}

type Player interface {
	GetMove(p *c4.Position) int
}
