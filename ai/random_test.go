package ai

import (
	"testing"

	"github.com/matryer/is"

	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/c4test"
)

func TestRandom(t *testing.T) {
	is := is.New(t)
	p := c4test.Position(4, 4, c4.Computer, "0 0 0 0 1 1 1 1")
	ai := NewRandom(1)
	for i := 0; i < 50; i++ {
		col := ai.GetMove(p)
		is.True(col == 2 || col == 3)
	}
	full := c4test.Position(4, 4, c4.Computer, "0 0 0 0 1 1 1 1 2 2 2 2 3 3 3 3")
	is.Equal(ai.GetMove(full), -1)
}
