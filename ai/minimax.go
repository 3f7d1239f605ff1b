package ai

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nelhage/connect4/c4"
)

type Algorithm byte

const (
	Minimax Algorithm = iota
	AlphaBeta
)

func (a Algorithm) String() string {
	switch a {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	default:
		panic(fmt.Sprintf("bad algorithm: %d", byte(a)))
	}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "ab":
		return AlphaBeta, nil
	}
	return Minimax, fmt.Errorf("unknown algorithm: %q", s)
}

// EvaluationFunc scores a cutoff position from the computer's point of
// view.
type EvaluationFunc func(e *Engine, p *c4.Position) float64

type Config struct {
	Depth     int
	Algorithm Algorithm

	NoTable bool
	Tree    bool

	Evaluate EvaluationFunc
}

type Stats struct {
	Depth     int
	Generated uint64
	Evaluated uint64
	Terminal  uint64
	Visited   uint64
	Cutoffs   uint64
	CacheHits uint64
	TableSize int

	Elapsed time.Duration
}

// Nodes returns the number of positions searched.
func (s *Stats) Nodes() uint64 {
	return s.Visited + s.Evaluated
}

type Result struct {
	Value  float64
	Next   *c4.Position
	Column int
	Stats  Stats
	Tree   *Tree
}

// Engine is a depth-limited game-tree searcher. It owns its cache and
// tree, which are reset by every call to Analyze; an Engine must not be
// used from more than one goroutine at a time.
type Engine struct {
	cfg Config
	st  Stats

	evaluate EvaluationFunc
	table    *Cache
	tree     *Tree
}

var _ Searcher = &Engine{}

func New(cfg Config) *Engine {
	if cfg.Depth < 1 {
		panic(fmt.Sprintf("ai.New: depth must be positive, got %d", cfg.Depth))
	}
	e := &Engine{cfg: cfg}
	e.evaluate = cfg.Evaluate
	if e.evaluate == nil {
		e.evaluate = DefaultEvaluate
	}
	if !cfg.NoTable {
		e.table = NewCache()
	}
	return e
}

func NewMinimax(depth int) *Engine {
	return New(Config{Depth: depth, Algorithm: Minimax})
}

func NewAlphaBeta(depth int) *Engine {
	return New(Config{Depth: depth, Algorithm: AlphaBeta})
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Evaluate returns the static evaluation of p.
func (e *Engine) Evaluate(p *c4.Position) float64 {
	return e.evaluate(e, p)
}

func (e *Engine) Run(p *c4.Position) (float64, *c4.Position) {
	r := e.Analyze(p)
	return r.Value, r.Next
}

// GetMove returns the column to play, or -1 if p has no legal move.
func (e *Engine) GetMove(p *c4.Position) int {
	return e.Analyze(p).Column
}

func (e *Engine) Analyze(p *c4.Position) Result {
	start := time.Now()
	e.st = Stats{Depth: e.cfg.Depth}
	e.table.Reset()
	e.tree = nil
	if e.cfg.Tree {
		e.tree = NewTree(p.Value())
	}

	r := Result{Column: -1, Tree: e.tree}
	cols := p.Columns()
	if len(cols) == 0 {
		e.st.Terminal++
		e.st.Evaluated++
		r.Value = e.evaluate(e, p)
	} else {
		e.st.Visited++
		e.st.Generated += uint64(len(cols))
		maximize := p.IsComputerTurn()
		α, β := math.Inf(-1), math.Inf(1)
		for i, child := range p.Successors() {
			v := e.value(child, 1, α, β)
			e.tree.AddEdge(p.Value(), child.Value(), v)
			if i == 0 || (maximize && v > r.Value) || (!maximize && v < r.Value) {
				r.Value = v
				r.Next = child
				r.Column = cols[i]
			}
			if e.prune() {
				if maximize {
					α = math.Max(α, r.Value)
				} else {
					β = math.Min(β, r.Value)
				}
			}
		}
	}
	e.tree.SetValue(p.Value(), r.Value)

	e.st.CacheHits = e.table.Hits()
	e.st.TableSize = e.table.Len()
	e.st.Elapsed = time.Since(start)
	r.Stats = e.st

	log.Debug().
		Str("algorithm", e.cfg.Algorithm.String()).
		Int("depth", e.cfg.Depth).
		Float64("value", r.Value).
		Int("column", r.Column).
		Uint64("visited", e.st.Visited).
		Uint64("evaluated", e.st.Evaluated).
		Uint64("cutoffs", e.st.Cutoffs).
		Uint64("tt-hits", e.st.CacheHits).
		Dur("elapsed", e.st.Elapsed).
		Msg("search-done")
	return r
}

func (e *Engine) prune() bool {
	return e.cfg.Algorithm == AlphaBeta
}

func (e *Engine) value(p *c4.Position, ply int, α, β float64) float64 {
	remaining := e.cfg.Depth - ply
	if v, ok := e.table.probe(p.Value(), remaining, α, β); ok {
		return v
	}

	var children []*c4.Position
	if remaining > 0 {
		children = p.Successors()
	}
	if len(children) == 0 {
		e.st.Evaluated++
		if remaining > 0 {
			e.st.Terminal++
		}
		v := e.evaluate(e, p)
		e.table.put(p.Value(), remaining, v, exactBound)
		return v
	}

	e.st.Visited++
	e.st.Generated += uint64(len(children))
	e.tree.Expand(p.Value())
	maximize := p.IsComputerTurn()
	α0, β0 := α, β
	v := math.Inf(1)
	if maximize {
		v = math.Inf(-1)
	}
	for _, child := range children {
		cv := e.value(child, ply+1, α, β)
		e.tree.AddEdge(p.Value(), child.Value(), cv)
		if maximize {
			v = math.Max(v, cv)
			if e.prune() {
				if v >= β {
					e.st.Cutoffs++
					break
				}
				α = math.Max(α, v)
			}
		} else {
			v = math.Min(v, cv)
			if e.prune() {
				if v <= α {
					e.st.Cutoffs++
					break
				}
				β = math.Min(β, v)
			}
		}
	}

	bound := exactBound
	if e.prune() {
		switch {
		case v <= α0:
			bound = upperBound
		case v >= β0:
			bound = lowerBound
		}
	}
	e.table.put(p.Value(), remaining, v, bound)
	return v
}
