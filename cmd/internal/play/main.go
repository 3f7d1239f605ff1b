package play

import (
	"bufio"
	"context"
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
	"github.com/nelhage/connect4/cli"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/config"
)

type Command struct {
	computer string
	human    string
	svg      string

	unicode bool
	tree    bool
	engine  opt.Engine
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Connect Four from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Connect Four on the command-line. Each side is played by a human
at the terminal, the search engine, or a random mover.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.computer, "computer", "engine", "computer player (engine, minimax:DEPTH, alphabeta:DEPTH, rand[:SEED], human)")
	flags.StringVar(&c.human, "human", "human", "human player")
	flags.StringVar(&c.svg, "svg", "", "write the final board as SVG")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.tree, "tree", false, "print the search tree after each engine move")
	c.engine.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.engine.Load()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	board, _ := cfg.Board()

	in := bufio.NewReader(os.Stdin)
	computer, err := c.parsePlayer(in, cfg, c.computer)
	if err != nil {
		log.Error().Err(err).Msg("-computer")
		return subcommands.ExitUsageError
	}
	human, err := c.parsePlayer(in, cfg, c.human)
	if err != nil {
		log.Error().Err(err).Msg("-human")
		return subcommands.ExitUsageError
	}

	st := &cli.CLI{
		Config:   board,
		First:    cfg.First(),
		Out:      os.Stdout,
		Computer: computer,
		Human:    human,
		Glyphs:   glyphs(c.unicode),
	}
	p := st.Play()
	fmt.Printf("moves: %s\n", c4.FormatMoves(st.Moves()))

	if c.svg != "" {
		f, err := os.Create(c.svg)
		if err != nil {
			log.Error().Err(err).Str("path", c.svg).Msg("create-svg")
			return subcommands.ExitFailure
		}
		defer f.Close()
		cli.RenderSVG(f, p)
	}
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func (c *Command) parsePlayer(in *bufio.Reader, cfg *config.Config, s string) (cli.Player, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	switch name {
	case "human":
		return cli.NewCLIPlayer(os.Stdout, in), nil
	case "rand":
		var seed int64
		if hasArg {
			i, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, err
			}
			seed = i
		}
		return ai.NewRandom(seed), nil
	case "engine":
		return c.wrap(c.engine.BuildConfig(cfg)), nil
	case "minimax", "alphabeta":
		ec := c.engine.BuildConfig(cfg)
		ec.Algorithm, _ = ai.ParseAlgorithm(name)
		if hasArg {
			d, err := strconv.Atoi(arg)
			if err != nil {
				return nil, err
			}
			if d < 1 {
				return nil, fmt.Errorf("depth must be positive: %d", d)
			}
			ec.Depth = d
		}
		return c.wrap(ec), nil
	}
	return nil, fmt.Errorf("unparseable player: %q", s)
}

func (c *Command) wrap(ec ai.Config) *aiWrapper {
	ec.Tree = c.tree
	return &aiWrapper{engine: ai.New(ec), tree: c.tree, out: os.Stdout}
}

// aiWrapper plays an Engine, optionally printing its search tree and
// logging how long each move took.
type aiWrapper struct {
	engine *ai.Engine
	tree   bool
	out    io.Writer

	moves int
	total time.Duration
}

func (a *aiWrapper) GetMove(p *c4.Position) int {
	r := a.engine.Analyze(p)
	a.moves++
	a.total += r.Stats.Elapsed
	log.Info().
		Int("move", a.moves).
		Int("column", r.Column).
		Float64("value", r.Value).
		Uint64("nodes", r.Stats.Nodes()).
		Dur("elapsed", r.Stats.Elapsed).
		Dur("average", a.average()).
		Msg("engine-move")
	if a.tree && r.Tree != nil {
		fmt.Fprintln(a.out, "search tree:")
		if err := r.Tree.Render(a.out); err != nil {
			log.Error().Err(err).Msg("render-tree")
		}
	}
	return r.Column
}

func (a *aiWrapper) average() time.Duration {
	if a.moves == 0 {
		return 0
	}
	return a.total / time.Duration(a.moves)
}
