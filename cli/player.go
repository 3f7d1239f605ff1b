package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nelhage/connect4/c4"
)

// NewCLIPlayer reads columns from in. GetMove returns -1 once in is
// exhausted.
func NewCLIPlayer(out io.Writer, in *bufio.Reader) Player {
	return &cliPlayer{out, in}
}

type cliPlayer struct {
	out io.Writer
	in  *bufio.Reader
}

func (c *cliPlayer) GetMove(p *c4.Position) int {
	for {
		fmt.Fprintf(c.out, "%s> ", p.ToMove())
		line, err := c.in.ReadString('\n')
		if strings.TrimSpace(line) == "" && err != nil {
			return -1
		}
		col, perr := strconv.Atoi(strings.TrimSpace(line))
		if perr != nil {
			fmt.Fprintln(c.out, "parse error: ", perr)
			if err != nil {
				return -1
			}
			continue
		}
		return col
	}
}
