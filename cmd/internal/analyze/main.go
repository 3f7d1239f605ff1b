package analyze

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/cli"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/logs"
)

type Command struct {
	quiet    bool
	eval     bool
	explain  bool
	tree     bool
	dumpTree string
	svg      string
	record   string

	engine opt.Engine
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Evaluate a position given as a list of moves" }
func (*Command) Usage() string {
	return `analyze [options] [MOVES...]

Search the position reached by playing MOVES (0-based columns) from
the empty board and print the chosen column and its value.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")
	flags.BoolVar(&c.tree, "tree", false, "print the search tree")
	flags.StringVar(&c.dumpTree, "dump-tree", "", "write the search tree to PATH in graphviz format")
	flags.StringVar(&c.svg, "svg", "", "write the position as SVG")
	flags.StringVar(&c.record, "record", "", "record the search in the sqlite DB at PATH")
	c.engine.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.engine.Load()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	board, _ := cfg.Board()
	moves, err := c4.ParseMoves(strings.Join(flag.Args(), " "))
	if err != nil {
		log.Error().Err(err).Msg("parse-moves")
		return subcommands.ExitUsageError
	}
	p, err := board.Replay(cfg.First(), moves)
	if err != nil {
		log.Error().Err(err).Msg("replay")
		return subcommands.ExitUsageError
	}

	ec := c.engine.BuildConfig(cfg)
	ec.Tree = c.tree || c.dumpTree != ""
	engine := ai.New(ec)

	if !c.quiet {
		cli.RenderBoard(nil, os.Stdout, p)
		if c.explain {
			ai.ExplainScore(&cfg.Weights, os.Stdout, p.Grid(), c4.ComputerPiece, c4.HumanPiece)
		}
	}
	if c.svg != "" {
		if err := writeSVG(c.svg, p); err != nil {
			log.Error().Err(err).Str("path", c.svg).Msg("write-svg")
			return subcommands.ExitFailure
		}
	}
	if c.eval {
		fmt.Printf(" value=%g\n", engine.Evaluate(p))
		return subcommands.ExitSuccess
	}

	r := engine.Analyze(p)
	pr := message.NewPrinter(language.English)
	pr.Printf("AI analysis (%s, depth %d):\n", ec.Algorithm, ec.Depth)
	pr.Printf(" column=%d value=%g\n", r.Column, r.Value)
	pr.Printf(" visited=%d evaluated=%d terminal=%d cutoffs=%d tt-hits=%d table=%d time=%s\n",
		r.Stats.Visited, r.Stats.Evaluated, r.Stats.Terminal,
		r.Stats.Cutoffs, r.Stats.CacheHits, r.Stats.TableSize, r.Stats.Elapsed)

	if c.tree {
		r.Tree.Render(os.Stdout)
	}
	if c.dumpTree != "" {
		if err := writeDot(c.dumpTree, r.Tree); err != nil {
			log.Error().Err(err).Str("path", c.dumpTree).Msg("dump-tree")
			return subcommands.ExitFailure
		}
	}
	if c.record != "" {
		if err := record(c.record, logs.NewRun(board, moves, ec.Algorithm, &r)); err != nil {
			log.Error().Err(err).Str("db", c.record).Msg("record")
			return subcommands.ExitFailure
		}
	}

	if r.Next != nil && !c.quiet {
		fmt.Println("Resulting position:")
		cli.RenderBoard(nil, os.Stdout, r.Next)
		if c.explain {
			ai.ExplainScore(&cfg.Weights, os.Stdout, r.Next.Grid(), c4.ComputerPiece, c4.HumanPiece)
		}
	}
	return subcommands.ExitSuccess
}

func writeSVG(path string, p *c4.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	cli.RenderSVG(f, p)
	return f.Close()
}

func writeDot(path string, t *ai.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.DumpDot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func record(path string, run *logs.Run) error {
	repo, err := logs.Open(path)
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.InsertRun(run)
}
