package serve

import (
	"context"
	"flag"
	"fmt"
	"net"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/nelhage/connect4/rpc"
)

type Command struct {
	port     int
	maxDepth int
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve position analysis via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55431, "bind port")
	flags.IntVar(&c.maxDepth, "max-depth", 8, "deepest search a client may request")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Error().Err(err).Int("port", c.port).Msg("listen")
		return subcommands.ExitFailure
	}
	log.Info().Int("port", c.port).Int("max-depth", c.maxDepth).Msg("listening")
	grpcServer := grpc.NewServer()
	rpc.RegisterAnalyzerServer(grpcServer, rpc.NewServer(c.maxDepth))

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Error().Err(err).Msg("serve")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
