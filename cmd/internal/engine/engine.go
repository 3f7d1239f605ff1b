package engine

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/config"
)

type Command struct {
	engine opt.Engine

	cfg   *config.Config
	board *c4.Config
	ai    *ai.Engine
	pos   *c4.Position
}

func (*Command) Name() string     { return "engine" }
func (*Command) Synopsis() string { return "Run the search engine behind a line-based protocol" }
func (*Command) Usage() string {
	return `engine [flags]

Read commands from stdin, one per line, suitable for being driven by an
external GUI or controller:

  c4i                                   identify
  isready                               answer readyok
  newgame [W H]                         start over, optionally resizing
  position startpos [computer|human] [moves C...]
  go [depth N]                          search and answer bestmove
  quit
`
}

func (c *Command) SetFlags(fs *flag.FlagSet) {
	c.engine.AddFlags(fs)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.engine.Load()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	c.cfg = cfg
	c.board, _ = cfg.Board()
	if err := c.run(os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("io")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *Command) run(in io.Reader, out io.Writer) error {
	rdr := bufio.NewReader(in)
	for {
		line, err := rdr.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		words := strings.Fields(line)
		if len(words) > 0 {
			switch words[0] {
			case "c4i":
				fmt.Fprintln(out, "id name connect4")
				fmt.Fprintln(out, "c4iok")
			case "quit":
				return nil
			case "isready":
				fmt.Fprintln(out, "readyok")
			case "newgame":
				if e := c.newGame(words[1:]); e != nil {
					log.Warn().Err(e).Msg("newgame")
				}
			case "position":
				pos, e := c.parsePosition(words[1:])
				if e != nil {
					log.Warn().Err(e).Msg("position")
					break
				}
				c.pos = pos
			case "go":
				if e := c.analyze(out, words[1:]); e != nil {
					log.Warn().Err(e).Msg("go")
				}
			default:
				log.Warn().Str("line", strings.TrimSpace(line)).Msg("unknown-command")
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

func (c *Command) newGame(words []string) error {
	c.ai = nil
	c.pos = nil
	if len(words) == 0 {
		return nil
	}
	if len(words) != 2 {
		return errors.New("expected newgame W H")
	}
	w, err := strconv.Atoi(words[0])
	if err != nil {
		return err
	}
	h, err := strconv.Atoi(words[1])
	if err != nil {
		return err
	}
	board, err := c4.NewConfig(w, h)
	if err != nil {
		return err
	}
	c.board = board
	return nil
}

func (c *Command) parsePosition(words []string) (*c4.Position, error) {
	if len(words) == 0 || words[0] != "startpos" {
		return nil, errors.New("expected startpos")
	}
	words = words[1:]
	first := c.cfg.First()
	if len(words) > 0 && words[0] != "moves" {
		var err error
		if first, err = c4.ParseColor(words[0]); err != nil {
			return nil, err
		}
		words = words[1:]
	}
	if len(words) == 0 {
		return c4.New(c.board, first), nil
	}
	if words[0] != "moves" {
		return nil, errors.New("position: expected `moves'")
	}
	moves, err := c4.ParseMoves(strings.Join(words[1:], " "))
	if err != nil {
		return nil, err
	}
	return c.board.Replay(first, moves)
}

func (c *Command) analyze(out io.Writer, words []string) error {
	if c.pos == nil {
		return errors.New("no position provided")
	}
	ec := c.engine.BuildConfig(c.cfg)
	switch {
	case len(words) == 0:
	case len(words) == 2 && words[0] == "depth":
		d, err := strconv.Atoi(words[1])
		if err != nil || d < 1 {
			return fmt.Errorf("bad depth: %q", words[1])
		}
		ec.Depth = d
	default:
		return errors.New("expected go [depth N]")
	}
	if c.ai == nil || c.ai.Config().Depth != ec.Depth {
		c.ai = ai.New(ec)
	}

	r := c.ai.Analyze(c.pos)
	fmt.Fprintf(out, "info depth %d time %d nodes %d score %g\n",
		r.Stats.Depth,
		r.Stats.Elapsed/time.Millisecond,
		r.Stats.Nodes(),
		r.Value,
	)
	if r.Column < 0 {
		fmt.Fprintln(out, "bestmove none")
	} else {
		fmt.Fprintf(out, "bestmove %d\n", r.Column)
	}
	return nil
}
