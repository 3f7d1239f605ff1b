package runs

import (
	"context"
	"flag"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nelhage/connect4/logs"
)

type Command struct {
	limit int
	stats bool
}

func (*Command) Name() string     { return "runs" }
func (*Command) Synopsis() string { return "List searches recorded in a run log" }
func (*Command) Usage() string {
	return `runs [flags] RUNS.db
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.limit, "n", 20, "number of runs to list")
	flags.BoolVar(&c.stats, "stats", false, "show per-algorithm averages instead")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(flag.Args()) != 1 {
		log.Error().Msg("must supply a run database")
		return subcommands.ExitUsageError
	}
	repo, err := logs.Open(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Str("db", flag.Arg(0)).Msg("open-db")
		return subcommands.ExitFailure
	}
	defer repo.Close()

	pr := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer tw.Flush()

	if c.stats {
		stats, err := repo.Stats()
		if err != nil {
			log.Error().Err(err).Msg("query")
			return subcommands.ExitFailure
		}
		pr.Fprintf(tw, "algorithm\tdepth\truns\tnodes\ttime\n")
		for _, s := range stats {
			pr.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%s\n",
				s.Algorithm, s.Depth, s.Runs, s.MeanNodes,
				time.Duration(s.MeanElapsedUS)*time.Microsecond)
		}
		return subcommands.ExitSuccess
	}

	runs, err := repo.Runs(c.limit)
	if err != nil {
		log.Error().Err(err).Msg("query")
		return subcommands.ExitFailure
	}
	pr.Fprintf(tw, "id\ttime\tboard\talgorithm\tdepth\tmoves\tcolumn\tvalue\tnodes\tcutoffs\ttt-hits\n")
	for _, r := range runs {
		pr.Fprintf(tw, "%d\t%s\t%dx%d\t%s\t%d\t%s\t%d\t%g\t%d\t%d\t%d\n",
			r.ID, r.Timestamp.Local().Format(time.DateTime),
			r.Width, r.Height, r.Algorithm, r.Depth, r.Moves,
			r.Column, r.Value, r.Visited+r.Evaluated, r.Cutoffs, r.CacheHits)
	}
	return subcommands.ExitSuccess
}
