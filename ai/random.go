package ai

import (
	"math/rand"

	"github.com/nelhage/connect4/c4"
)

// RandomAI plays a uniformly random legal column.
type RandomAI struct {
	r *rand.Rand
}

func (r *RandomAI) GetMove(p *c4.Position) int {
	cols := p.Columns()
	if len(cols) == 0 {
		return -1
	}
	return cols[r.r.Intn(len(cols))]
}

func NewRandom(seed int64) Player {
	return &RandomAI{
		r: rand.New(rand.NewSource(seed)),
	}
}
