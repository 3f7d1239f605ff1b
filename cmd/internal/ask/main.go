package ask

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/cmd/internal/opt"
	"github.com/nelhage/connect4/rpc"
)

type Command struct {
	server  string
	timeout time.Duration

	engine opt.Engine
}

func (*Command) Name() string     { return "ask" }
func (*Command) Synopsis() string { return "Ask an analysis server to evaluate a position" }
func (*Command) Usage() string {
	return `ask [flags] [MOVES...]

Send the position reached by MOVES to a running "serve" instance and
print its answer.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.server, "server", "localhost:55431", "analysis server address")
	flags.DurationVar(&c.timeout, "timeout", time.Minute, "RPC deadline")
	c.engine.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.engine.Load()
	if err != nil {
		log.Error().Err(err).Msg("config")
		return subcommands.ExitUsageError
	}
	moves, err := c4.ParseMoves(strings.Join(flag.Args(), " "))
	if err != nil {
		log.Error().Err(err).Msg("parse-moves")
		return subcommands.ExitUsageError
	}

	conn, err := grpc.NewClient(c.server, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Error().Err(err).Str("server", c.server).Msg("dial")
		return subcommands.ExitFailure
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := rpc.NewClient(conn).Analyze(ctx, &rpc.AnalyzeRequest{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Moves:         moves,
		Depth:         cfg.Depth,
		Algorithm:     cfg.Algorithm,
		ComputerFirst: cfg.ComputerFirst,
	})
	if err != nil {
		log.Error().Err(err).Msg("analyze")
		return subcommands.ExitFailure
	}
	fmt.Printf("column=%d value=%g visited=%d evaluated=%d\n",
		resp.Column, resp.Value, resp.Visited, resp.Evaluated)
	return subcommands.ExitSuccess
}
