package ai

import (
	"math/rand"
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nelhage/connect4/c4"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func randomPosition(r *rand.Rand, cfg *c4.Config, first c4.Color, plies int) *c4.Position {
	p := c4.New(cfg, first)
	for i := 0; i < plies; i++ {
		cols := p.Columns()
		if len(cols) == 0 {
			break
		}
		next, e := p.Move(cols[r.Intn(len(cols))])
		if e != nil {
			panic(e)
		}
		p = next
	}
	return p
}
