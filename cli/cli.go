package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nelhage/connect4/c4"
)

type Player interface {
	GetMove(p *c4.Position) int
}

type Glyphs struct {
	Computer, Human, Empty string
}

var DefaultGlyphs = Glyphs{
	Computer: "X",
	Human:    "O",
	Empty:    ".",
}

var UnicodeGlyphs = Glyphs{
	Computer: "●",
	Human:    "○",
	Empty:    "·",
}

type CLI struct {
	game *Game

	Config   *c4.Config
	First    c4.Color
	Glyphs   *Glyphs
	Out      io.Writer
	Computer Player
	Human    Player
}

// Play runs a game to completion and returns the final position. A
// player that returns a negative column abandons the game.
func (c *CLI) Play() *c4.Position {
	c.game = NewGame(c.Config, c.First, c.Computer)
	for {
		c.render()
		p := c.game.Position()
		if o, ok := p.Outcome(); ok {
			fmt.Fprintf(c.Out, "Game Over! ")
			if o.Winner == c4.NoColor {
				fmt.Fprintf(c.Out, "Draw.")
			} else {
				fmt.Fprintf(c.Out, "%s wins.", o.Winner)
			}
			fmt.Fprintf(c.Out, "\nfours: computer=%d human=%d\n", o.Computer, o.Human)
			return p
		}
		var col int
		if p.IsComputerTurn() {
			col = c.Computer.GetMove(p)
		} else {
			col = c.Human.GetMove(p)
		}
		if col < 0 {
			fmt.Fprintf(c.Out, "%s resigns.\n", p.ToMove())
			return p
		}
		if _, e := c.game.Play(col); e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
		} else {
			fmt.Fprintf(c.Out, "%d. %s plays %d\n", len(c.game.Moves()), p.ToMove(), col)
		}
	}
}

func (c *CLI) Moves() []int {
	if c.game == nil {
		return nil
	}
	return c.game.Moves()
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.game.Position())
}

func RenderBoard(g *Glyphs, out io.Writer, p *c4.Position) {
	if g == nil {
		g = &DefaultGlyphs
	}
	cfg := p.Config()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", p.ToMove())
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for row := 0; row < cfg.Height(); row++ {
		for col := 0; col < cfg.Width(); col++ {
			var s string
			switch p.At(row, col) {
			case c4.ComputerPiece:
				s = g.Computer
			case c4.HumanPiece:
				s = g.Human
			default:
				s = g.Empty
			}
			fmt.Fprintf(w, "%s\t", s)
		}
		fmt.Fprintf(w, "\n")
	}
	for col := 0; col < cfg.Width(); col++ {
		fmt.Fprintf(w, "%d\t", col)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	fmt.Fprintf(out, "discs: %d/%d (computer %d, human %d)\n",
		p.Discs(), cfg.Width()*cfg.Height(), p.Count(c4.Computer), p.Count(c4.Human))
	grid := p.Grid()
	fmt.Fprintf(out, "score: computer=%d human=%d\n",
		c4.Score(grid, c4.ComputerPiece), c4.Score(grid, c4.HumanPiece))
}
