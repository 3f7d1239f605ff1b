package c4

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadNotation = errors.New("bad move notation")

// ParseMoves parses a list of 0-based column indices separated by
// spaces or commas.
func ParseMoves(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		col, e := strconv.Atoi(f)
		if e != nil || col < 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadNotation, f)
		}
		out = append(out, col)
	}
	return out, nil
}

func FormatMoves(ms []int) string {
	bits := make([]string, len(ms))
	for i, m := range ms {
		bits[i] = strconv.Itoa(m)
	}
	return strings.Join(bits, " ")
}

// Replay plays moves from the empty board, first moving first.
func (c *Config) Replay(first Color, moves []int) (*Position, error) {
	p := New(c, first)
	for i, col := range moves {
		next, e := p.Move(col)
		if e != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, e)
		}
		p = next
	}
	return p, nil
}
