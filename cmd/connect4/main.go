package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/connect4/cmd/internal/analyze"
	"github.com/nelhage/connect4/cmd/internal/ask"
	"github.com/nelhage/connect4/cmd/internal/engine"
	"github.com/nelhage/connect4/cmd/internal/play"
	"github.com/nelhage/connect4/cmd/internal/runs"
	"github.com/nelhage/connect4/cmd/internal/selfplay"
	"github.com/nelhage/connect4/cmd/internal/serve"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&runs.Command{}, "")
	subcommands.Register(&engine.Command{}, "")

	subcommands.Register(&serve.Command{}, "rpc")
	subcommands.Register(&ask.Command{}, "rpc")

	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := subcommands.Execute(ctx)
	stop()
	os.Exit(int(status))
}
