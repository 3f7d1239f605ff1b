package c4_test

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/nelhage/connect4/c4"
	"github.com/nelhage/connect4/c4test"
)

func TestReplayGrid(t *testing.T) {
	is := is.New(t)
	p := c4test.Position(7, 6, c4.Computer, "3 3 4 2 3")
	want := c4test.Grid(
		".......",
		".......",
		".......",
		"...x...",
		"...o...",
		"..oxx..",
	)
	is.Equal(p.Grid(), want)
	is.Equal(p.ToMove(), c4.Human)
	is.Equal(p.Discs(), 5)
	is.Equal(p.Count(c4.Computer), 3)
	is.Equal(p.Count(c4.Human), 2)
	is.Equal(p.Height(3), 3)
	is.Equal(p.Height(0), 0)
	is.Equal(p.At(3, 3), c4.ComputerPiece)
	is.Equal(p.At(4, 3), c4.HumanPiece)
	is.Equal(p.At(2, 3), c4.Empty)
}

func TestHeightMonotonic(t *testing.T) {
	is := is.New(t)
	cfg := c4.MustConfig(4, 4)
	p := c4.New(cfg, c4.Human)
	for n := 1; n <= 4; n++ {
		next, e := p.Move(1)
		is.NoErr(e)
		is.Equal(next.Height(1), n)
		is.Equal(p.Height(1), n-1) // move mutated original
		p = next
	}
	before := p.Value()
	_, e := p.Move(1)
	is.True(errors.Is(e, c4.ErrInvalidColumn))
	is.Equal(p.Value(), before)

	for _, col := range []int{-1, 4, 100} {
		_, e := p.Move(col)
		if !errors.Is(e, c4.ErrInvalidColumn) {
			t.Errorf("Move(%d) err=%v", col, e)
		}
	}
}

func TestMoveTurn(t *testing.T) {
	is := is.New(t)
	p := c4.New(c4.MustConfig(5, 4), c4.Computer)

	n, e := p.Move(2)
	is.NoErr(e)
	is.Equal(n.ToMove(), c4.Human)
	is.Equal(n.At(3, 2), c4.ComputerPiece)

	n, e = n.Place(2)
	is.NoErr(e)
	is.Equal(n.ToMove(), c4.Human)
	is.Equal(n.At(2, 2), c4.HumanPiece)

	n, e = n.Place(2)
	is.NoErr(e)
	is.Equal(n.At(1, 2), c4.HumanPiece)
	is.Equal(n.Height(2), 3)
}

func TestSuccessors(t *testing.T) {
	cases := []struct {
		name  string
		w, h  int
		moves string
		want  []int
	}{
		{"empty", 7, 6, "", []int{0, 1, 2, 3, 4, 5, 6}},
		{"one full", 7, 6, "0 0 0 0 0 0", []int{1, 2, 3, 4, 5, 6}},
		{"two full", 4, 4, "1 1 1 1 3 3 3 3", []int{0, 2}},
		{"full", 4, 4, "0 0 0 0 1 1 1 1 2 2 2 2 3 3 3 3", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			p := c4test.Position(tc.w, tc.h, c4.Computer, tc.moves)
			succ := p.Successors()
			is.Equal(len(succ), len(tc.want))
			is.Equal(p.Columns(), tc.want)
			is.Equal(p.Full(), len(tc.want) == 0)
			for i, s := range succ {
				col := tc.want[i]
				is.Equal(s.Height(col), p.Height(col)+1)
				is.Equal(s.ToMove(), p.ToMove().Flip())
				for other := 0; other < tc.w; other++ {
					if other != col && s.Height(other) != p.Height(other) {
						t.Errorf("successor %d changed column %d", col, other)
					}
				}
			}
		})
	}
}

func TestFromValue(t *testing.T) {
	is := is.New(t)
	p := c4test.Position(7, 6, c4.Human, "0 6 6 5 4 3 3 3 2 1 1 0 0")
	back, e := c4.FromValue(p.Config(), p.Value(), p.ToMove())
	is.NoErr(e)
	is.Equal(back.Grid(), p.Grid())
	is.Equal(back.Value(), p.Value())

	cfg := c4.MustConfig(4, 4)
	_, e = c4.FromValue(cfg, 7<<cfg.Layout().HeightShift(0), c4.Human)
	is.True(errors.Is(e, c4.ErrBadEncoding))
	_, e = c4.FromValue(cfg, 1<<40, c4.Human)
	is.True(errors.Is(e, c4.ErrBadEncoding))
}

func TestValueLayout(t *testing.T) {
	is := is.New(t)
	cfg := c4.MustConfig(7, 6)
	p := c4.New(cfg, c4.Human)
	// rightmost column sits in the low bits: a human disc sets bit 0
	// and bumps the height field above the six content bits
	n, e := p.Move(6)
	is.NoErr(e)
	is.Equal(n.Value(), uint64(1|1<<6))

	n, e = n.Move(6)
	is.NoErr(e)
	is.Equal(n.Value(), uint64(1|2<<6))

	n, e = n.Move(0)
	is.NoErr(e)
	is.Equal(n.Value(), uint64(1|2<<6|1<<(54+6)|1<<54))
}

func TestConfig(t *testing.T) {
	is := is.New(t)
	_, e := c4.NewConfig(0, 6)
	is.True(errors.Is(e, c4.ErrBadDimensions))
	_, e = c4.NewConfig(8, 8)
	is.True(errors.Is(e, c4.ErrBoardTooLarge))
	cfg, e := c4.NewConfig(7, 6)
	is.NoErr(e)
	is.Equal(cfg.String(), "7x6")
	is.Equal(len(cfg.Lines()), 25)
	is.Equal(len(c4.Lines(4, 4)), 10)
	is.Equal(len(c4.Lines(3, 3)), 0)
}
