package selfplay

import (
	"context"
	"flag"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/logs"
)

type Command struct {
	games   int
	opening int
	threads int
	seed    int64
	record  string
	verbose bool

	engine opt.Engine
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play minimax against alpha-beta and compare the searches" }
func (*Command) Usage() string {
	return `selfplay [flags]

Play games between the minimax and alpha-beta engines from random
openings. Every position is searched by both engines; the command
reports any disagreement in root values and the node counts of each.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.games, "games", 10, "number of games to play")
	flags.IntVar(&c.opening, "opening", 4, "random plies to play before the engines take over")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of parallel games")
	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.StringVar(&c.record, "record", "", "record every search in the sqlite DB at PATH")
	flags.BoolVar(&c.verbose, "v", false, "log each game")
	c.engine.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.engine.Load()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	board, _ := cfg.Board()
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}

	sim := &Config{
		Board:   board,
		First:   cfg.First(),
		Engine:  c.engine.BuildConfig(cfg),
		Games:   c.games,
		Opening: c.opening,
		Threads: c.threads,
		Seed:    c.seed,
		Record:  c.record != "",
		Verbose: c.verbose,
	}
	results, err := Simulate(ctx, sim)
	if err != nil {
		log.Error().Err(err).Msg("simulate")
		return subcommands.ExitFailure
	}

	if c.record != "" {
		repo, err := logs.Open(c.record)
		if err != nil {
			log.Error().Err(err).Str("db", c.record).Msg("open-db")
			return subcommands.ExitFailure
		}
		defer repo.Close()
		runs := lo.FlatMap(results, func(r Result, _ int) []*logs.Run { return r.Runs })
		if err := repo.InsertRuns(runs); err != nil {
			log.Error().Err(err).Msg("record")
			return subcommands.ExitFailure
		}
	}

	st := Summarize(results)
	log.Info().
		Int("games", len(results)).
		Int64("seed", c.seed).
		Int("computer", st.Wins[c4.Computer]).
		Int("human", st.Wins[c4.Human]).
		Int("draws", st.Wins[c4.NoColor]).
		Int("disagreements", st.Disagreements).
		Msg("selfplay-done")

	pr := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	pr.Fprintf(tw, "\tsearches\tnodes\tnodes/search\n")
	pr.Fprintf(tw, "minimax\t%d\t%d\t%.1f\n", st.Searches, st.MinimaxNodes, st.MeanMinimax())
	pr.Fprintf(tw, "alphabeta\t%d\t%d\t%.1f\n", st.Searches, st.AlphaBetaNodes, st.MeanAlphaBeta())
	tw.Flush()
	pr.Fprintf(os.Stderr, "alpha-beta searched %.1f%% of the minimax nodes\n", 100*st.Ratio())

	if st.Disagreements > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
