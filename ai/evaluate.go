package ai

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/connect4/c4"
)

type Weights struct {
	Four  float64 `json:"four" mapstructure:"four"`
	Three float64 `json:"three" mapstructure:"three"`
	Two   float64 `json:"two" mapstructure:"two"`
}

var DefaultWeights = Weights{
	Four:  100,
	Three: 75,
	Two:   50,
}

// Features counts one side's lines. Fours are completed runs (a run
// of L counts L-3); Threes and Twos are runs of exactly three and two
// discs in a stretch of at least four cells free of enemy discs.
type Features struct {
	Fours  int
	Threes int
	Twos   int
}

func (w *Weights) Score(f Features) float64 {
	return w.Four*float64(f.Fours) + w.Three*float64(f.Threes) + w.Two*float64(f.Twos)
}

// Evaluate scores g for the side playing me.
func (w *Weights) Evaluate(g c4.Grid, me, them int) float64 {
	return w.Score(CountFeatures(g, me)) - w.Score(CountFeatures(g, them))
}

// Evaluate scores g for me with DefaultWeights.
func Evaluate(g c4.Grid, me, them int) float64 {
	return DefaultWeights.Evaluate(g, me, them)
}

func CountFeatures(g c4.Grid, piece int) Features {
	var f Features
	for _, line := range c4.Lines(g.Rows(), g.Cols()) {
		countLine(g, line, piece, &f)
	}
	return f
}

func countLine(g c4.Grid, line []c4.Coord, piece int, f *Features) {
	i := 0
	for i < len(line) {
		if v := g.At(line[i]); v != piece && v != c4.Empty {
			i++
			continue
		}
		start := i
		for i < len(line) {
			if v := g.At(line[i]); v != piece && v != c4.Empty {
				break
			}
			i++
		}
		seg := i - start
		run := 0
		for j := start; j < i; j++ {
			if g.At(line[j]) == piece {
				run++
				continue
			}
			classify(run, seg, f)
			run = 0
		}
		classify(run, seg, f)
	}
}

func classify(run, seg int, f *Features) {
	switch {
	case run >= 4:
		f.Fours += run - 3
	case seg < 4:
	case run == 3:
		f.Threes++
	case run == 2:
		f.Twos++
	}
}

func MakeEvaluator(w *Weights) EvaluationFunc {
	return func(e *Engine, p *c4.Position) float64 {
		return w.Evaluate(p.Grid(), c4.ComputerPiece, c4.HumanPiece)
	}
}

var DefaultEvaluate = MakeEvaluator(&DefaultWeights)

func ExplainScore(w *Weights, out io.Writer, g c4.Grid, me, them int) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	mine, theirs := CountFeatures(g, me), CountFeatures(g, them)
	fmt.Fprintf(tw, "\tme\tthem\tweight\n")
	fmt.Fprintf(tw, "fours\t%d\t%d\t%g\n", mine.Fours, theirs.Fours, w.Four)
	fmt.Fprintf(tw, "threes\t%d\t%d\t%g\n", mine.Threes, theirs.Threes, w.Three)
	fmt.Fprintf(tw, "twos\t%d\t%d\t%g\n", mine.Twos, theirs.Twos, w.Two)
	fmt.Fprintf(tw, "score\t%g\t%g\t%g\n", w.Score(mine), w.Score(theirs), w.Evaluate(g, me, them))
	tw.Flush()
}
