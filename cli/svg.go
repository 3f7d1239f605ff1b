package cli

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/nelhage/connect4/c4"
)

const (
	svgCell   = 60
	svgMargin = 10
)

// RenderSVG draws p as a board of columns of discs.
func RenderSVG(out io.Writer, p *c4.Position) {
	cfg := p.Config()
	w := cfg.Width()*svgCell + 2*svgMargin
	h := cfg.Height()*svgCell + 2*svgMargin + svgCell/2

	canvas := svg.New(out)
	canvas.Start(w, h)
	canvas.Rect(0, 0, w, h, "fill:white")
	canvas.Rect(svgMargin, svgMargin, cfg.Width()*svgCell, cfg.Height()*svgCell, "fill:#1f4fbf")
	r := svgCell*2/5 - 1
	for row := 0; row < cfg.Height(); row++ {
		for col := 0; col < cfg.Width(); col++ {
			fill := "white"
			switch p.At(row, col) {
			case c4.ComputerPiece:
				fill = "#d62728"
			case c4.HumanPiece:
				fill = "#ffd92f"
			}
			cx := svgMargin + col*svgCell + svgCell/2
			cy := svgMargin + row*svgCell + svgCell/2
			canvas.Circle(cx, cy, r, "fill:"+fill+";stroke:black")
		}
	}
	for col := 0; col < cfg.Width(); col++ {
		x := svgMargin + col*svgCell + svgCell/2
		canvas.Text(x, h-svgMargin, fmt.Sprint(col), "text-anchor:middle;font-size:16px;font-family:monospace")
	}
	canvas.End()
}
