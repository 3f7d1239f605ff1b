package engine

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/c4test"
	"github.com/nelhage/connect4/config"
)

func newCommand(t *testing.T) *Command {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	cfg, err := config.Load("")
	require.NoError(t, err)
	c := &Command{cfg: cfg}
	c.board, _ = cfg.Board()
	return c
}

func TestProtocol(t *testing.T) {
	c := newCommand(t)
	var out bytes.Buffer
	in := strings.Join([]string{
		"c4i",
		"isready",
		"bogus",
		"go",
		"newgame 4 4",
		"position startpos human moves 0 0 0 0 1 1 1 1 2 2 2 2 3 3 3",
		"go depth 2",
		"position startpos moves 0 0 0 0 1 1 1 1 2 2 2 2 3 3 3 3",
		"go",
		"quit",
		"isready",
	}, "\n")
	require.NoError(t, c.run(strings.NewReader(in), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "id name connect4", lines[0])
	assert.Equal(t, "c4iok", lines[1])
	assert.Equal(t, "readyok", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "info depth 2 "), lines[3])
	assert.Equal(t, "bestmove 3", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "info depth 4 "), lines[5])
	assert.Equal(t, "bestmove none", lines[6])
}

func TestGoMatchesEngine(t *testing.T) {
	c := newCommand(t)
	var out bytes.Buffer
	require.NoError(t, c.run(strings.NewReader("position startpos moves 3 3 2 4\ngo depth 3"), &out))

	r := ai.New(ai.Config{Depth: 3, Algorithm: ai.AlphaBeta}).Analyze(c4test.Position(7, 6, c4.Computer, "3 3 2 4"))
	assert.Contains(t, out.String(), fmt.Sprintf("bestmove %d\n", r.Column))
}

func TestBadPosition(t *testing.T) {
	c := newCommand(t)
	for _, words := range [][]string{
		{},
		{"fen"},
		{"startpos", "nobody"},
		{"startpos", "moves", "9"},
		{"startpos", "computer", "3"},
	} {
		_, err := c.parsePosition(words)
		assert.Error(t, err, "%v", words)
	}
}
