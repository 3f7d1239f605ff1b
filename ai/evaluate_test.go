package ai

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/c4test"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		grid c4.Grid
		want float64
	}{
		{
			"open three",
			c4test.Grid(
				".......",
				".......",
				".......",
				".......",
				".......",
				"xxx....",
			),
			75,
		},
		{
			"vertical three",
			c4test.Grid(
				".......",
				".......",
				".......",
				"x......",
				"x......",
				"x......",
			),
			75,
		},
		{
			"open two",
			c4test.Grid(
				".......",
				".......",
				".......",
				".......",
				".......",
				"xx.....",
			),
			50,
		},
		{
			"four",
			c4test.Grid(
				".......",
				".......",
				".......",
				".......",
				".......",
				"xxxx...",
			),
			100,
		},
		{
			"five",
			c4test.Grid(
				".......",
				".......",
				".......",
				".......",
				".......",
				"xxxxx..",
			),
			200,
		},
		{
			"blocked three",
			c4test.Grid(
				".......",
				".......",
				".......",
				".......",
				".......",
				"oxxxo..",
			),
			0,
		},
		{
			"human two",
			c4test.Grid(
				".......",
				".......",
				".......",
				".......",
				".......",
				"xx.o.oo",
			),
			-50,
		},
		{
			"full board",
			c4test.Grid(
				"xoxo",
				"oxox",
				"xxxo",
				"xoox",
			),
			100,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Evaluate(tc.grid, c4.ComputerPiece, c4.HumanPiece))
			assert.Equal(t, -tc.want, Evaluate(tc.grid, c4.HumanPiece, c4.ComputerPiece))
		})
	}
}

func TestCountFeatures(t *testing.T) {
	g := c4test.Grid(
		".......",
		".......",
		".......",
		"x......",
		"x.o....",
		"xxo.oo.",
	)
	assert.Equal(t, Features{Threes: 1}, CountFeatures(g, c4.ComputerPiece))
	// o at (4,2) and (5,2) form a vertical two; (5,4),(5,5) a
	// horizontal one.
	assert.Equal(t, Features{Twos: 2}, CountFeatures(g, c4.HumanPiece))
}

func TestEvaluateAntisymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	cfg := c4.MustConfig(7, 6)
	for i := 0; i < 200; i++ {
		p := randomPosition(r, cfg, c4.Computer, r.Intn(43))
		g := p.Grid()
		a := Evaluate(g, c4.ComputerPiece, c4.HumanPiece)
		b := Evaluate(g, c4.HumanPiece, c4.ComputerPiece)
		require.Equal(t, a, -b, "position %s", p)
	}
}

func TestExplainScore(t *testing.T) {
	var buf bytes.Buffer
	g := c4test.Grid(
		"....",
		"....",
		"....",
		"xxx.",
	)
	ExplainScore(&DefaultWeights, &buf, g, c4.ComputerPiece, c4.HumanPiece)
	out := buf.String()
	assert.Contains(t, out, "threes")
	assert.Contains(t, out, "75")
}

func TestParseWeights(t *testing.T) {
	w, e := ParseWeights("")
	require.NoError(t, e)
	assert.Equal(t, DefaultWeights, w)

	w, e = ParseWeights(`{"three": 80}`)
	require.NoError(t, e)
	assert.Equal(t, Weights{Four: 100, Three: 80, Two: 50}, w)

	_, e = ParseWeights(`{"bogus": 1}`)
	assert.Error(t, e)
}

func TestOverlayWeights(t *testing.T) {
	base := Weights{Four: 90, Three: 10, Two: 5}
	w, e := OverlayWeights(base, `{"two": 7}`)
	require.NoError(t, e)
	assert.Equal(t, Weights{Four: 90, Three: 10, Two: 7}, w)

	w, e = OverlayWeights(base, "")
	require.NoError(t, e)
	assert.Equal(t, base, w)
}
