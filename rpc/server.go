package rpc

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
)

type Server struct {
	maxDepth int

	sync.Mutex
	engine *ai.Engine
	cfg    ai.Config
}

var _ AnalyzerServer = &Server{}

// NewServer returns a server that refuses searches deeper than
// maxDepth.
func NewServer(maxDepth int) *Server {
	return &Server{maxDepth: maxDepth}
}

func (s *Server) getEngine(cfg ai.Config) *ai.Engine {
	if s.engine == nil || s.cfg.Depth != cfg.Depth || s.cfg.Algorithm != cfg.Algorithm {
		s.cfg = cfg
		s.engine = ai.New(cfg)
	}
	return s.engine
}

func (s *Server) Analyze(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := DecodeAnalyzeRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	board, err := c4.NewConfig(req.Width, req.Height)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if req.Depth < 1 || req.Depth > s.maxDepth {
		return nil, status.Errorf(codes.InvalidArgument, "depth %d outside [1,%d]", req.Depth, s.maxDepth)
	}
	alg, err := ai.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	first := c4.Human
	if req.ComputerFirst {
		first = c4.Computer
	}
	p, err := board.Replay(first, req.Moves)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	s.Lock()
	r := s.getEngine(ai.Config{Depth: req.Depth, Algorithm: alg}).Analyze(p)
	s.Unlock()

	log.Info().
		Str("board", board.String()).
		Str("moves", c4.FormatMoves(req.Moves)).
		Str("algorithm", alg.String()).
		Int("depth", req.Depth).
		Float64("value", r.Value).
		Int("column", r.Column).
		Msg("analyze")

	resp := AnalyzeResponse{
		Value:     r.Value,
		Column:    r.Column,
		Visited:   r.Stats.Visited,
		Evaluated: r.Stats.Evaluated,
	}
	return resp.Struct()
}
