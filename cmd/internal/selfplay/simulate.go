package selfplay

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/logs"
)

type Config struct {
	Board  *c4.Config
	First  c4.Color
	Engine ai.Config

	Games   int
	Opening int
	Threads int
	Seed    int64

	Record  bool
	Verbose bool
}

type Result struct {
	Game     int
	Opening  []int
	Moves    []int
	Outcome  c4.Outcome
	Minimax  c4.Color
	Searches int

	Disagreements  int
	MinimaxNodes   uint64
	AlphaBetaNodes uint64

	Runs []*logs.Run
}

type Stats struct {
	Wins           map[c4.Color]int
	Searches       int
	Disagreements  int
	MinimaxNodes   uint64
	AlphaBetaNodes uint64
}

func (s *Stats) MeanMinimax() float64 {
	if s.Searches == 0 {
		return 0
	}
	return float64(s.MinimaxNodes) / float64(s.Searches)
}

func (s *Stats) MeanAlphaBeta() float64 {
	if s.Searches == 0 {
		return 0
	}
	return float64(s.AlphaBetaNodes) / float64(s.Searches)
}

// Ratio returns alpha-beta's node count as a fraction of minimax's.
func (s *Stats) Ratio() float64 {
	if s.MinimaxNodes == 0 {
		return 0
	}
	return float64(s.AlphaBetaNodes) / float64(s.MinimaxNodes)
}

func Summarize(rs []Result) Stats {
	st := Stats{Wins: make(map[c4.Color]int)}
	for _, r := range rs {
		st.Wins[r.Outcome.Winner]++
	}
	st.Searches = lo.SumBy(rs, func(r Result) int { return r.Searches })
	st.Disagreements = lo.SumBy(rs, func(r Result) int { return r.Disagreements })
	st.MinimaxNodes = lo.SumBy(rs, func(r Result) uint64 { return r.MinimaxNodes })
	st.AlphaBetaNodes = lo.SumBy(rs, func(r Result) uint64 { return r.AlphaBetaNodes })
	return st
}

// Simulate plays c.Games games, up to c.Threads at a time. Results are
// returned in game order.
func Simulate(ctx context.Context, c *Config) ([]Result, error) {
	results := make([]Result, c.Games)
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(max(c.Threads, 1))
	for i := 0; i < c.Games; i++ {
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := playGame(c, i)
			if err != nil {
				return err
			}
			results[i] = r
			if c.Verbose {
				log.Info().
					Int("game", i).
					Str("opening", c4.FormatMoves(r.Opening)).
					Str("minimax", r.Minimax.String()).
					Str("winner", r.Outcome.Winner.String()).
					Int("computer-fours", r.Outcome.Computer).
					Int("human-fours", r.Outcome.Human).
					Msg("game-done")
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func playGame(c *Config, i int) (Result, error) {
	r := rand.New(rand.NewSource(c.Seed + int64(i)))
	res := Result{Game: i, Minimax: c4.Computer}
	if i%2 == 1 {
		res.Minimax = c4.Human
	}

	mmCfg, abCfg := c.Engine, c.Engine
	mmCfg.Algorithm = ai.Minimax
	abCfg.Algorithm = ai.AlphaBeta
	mm, ab := ai.New(mmCfg), ai.New(abCfg)

	p := c4.New(c.Board, c.First)
	var moves []int
	for ply := 0; ply < c.Opening && !p.Full(); ply++ {
		cols := p.Columns()
		col := cols[r.Intn(len(cols))]
		next, err := p.Move(col)
		if err != nil {
			return res, err
		}
		p = next
		moves = append(moves, col)
	}
	res.Opening = append([]int(nil), moves...)

	for !p.Full() {
		mr := mm.Analyze(p)
		ar := ab.Analyze(p)
		res.Searches++
		res.MinimaxNodes += mr.Stats.Nodes()
		res.AlphaBetaNodes += ar.Stats.Nodes()
		if mr.Value != ar.Value || mr.Column != ar.Column {
			res.Disagreements++
			log.Warn().
				Int("game", i).
				Str("moves", c4.FormatMoves(moves)).
				Float64("minimax", mr.Value).
				Float64("alphabeta", ar.Value).
				Int("minimax-column", mr.Column).
				Int("alphabeta-column", ar.Column).
				Msg("search-disagreement")
		}
		if c.Record {
			res.Runs = append(res.Runs,
				logs.NewRun(c.Board, moves, ai.Minimax, &mr),
				logs.NewRun(c.Board, moves, ai.AlphaBeta, &ar))
		}

		col := ar.Column
		if p.ToMove() == res.Minimax {
			col = mr.Column
		}
		next, err := p.Move(col)
		if err != nil {
			return res, err
		}
		p = next
		moves = append(moves, col)
	}

	res.Moves = moves
	res.Outcome, _ = p.Outcome()
	return res, nil
}
