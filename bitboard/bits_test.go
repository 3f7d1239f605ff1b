package bitboard

import (
	"strconv"
	"testing"
)

func TestHeightBits(t *testing.T) {
	cases := []struct {
		h    uint
		bits uint
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{6, 3},
		{7, 3},
		{8, 4},
		{15, 4},
		{16, 5},
	}
	for _, tc := range cases {
		if got := HeightBits(tc.h); got != tc.bits {
			t.Errorf("HeightBits(%d)=%d != %d", tc.h, got, tc.bits)
		}
	}
}

func TestPrecompute(t *testing.T) {
	l := Precompute(7, 6)
	if l.HeightBits != 3 {
		t.Error("l.HeightBits(7x6):", l.HeightBits)
	}
	if l.Stride != 9 {
		t.Error("l.Stride(7x6):", l.Stride)
	}
	if l.Bits != 63 {
		t.Error("l.Bits(7x6):", l.Bits)
	}
	if !l.Fits() {
		t.Error("7x6 does not fit")
	}
	if l.Content != 0x3f {
		t.Error("l.Content(7x6):", strconv.FormatUint(l.Content, 2))
	}
	if l.HeightMask != 0x7 {
		t.Error("l.HeightMask(7x6):", strconv.FormatUint(l.HeightMask, 2))
	}
	if l.Mask != (1<<63)-1 {
		t.Error("l.Mask(7x6):", strconv.FormatUint(l.Mask, 2))
	}
	if l.Base(6) != 0 || l.Base(0) != 54 {
		t.Errorf("l.Base: right=%d left=%d", l.Base(6), l.Base(0))
	}
	if l.HeightShift(6) != 6 || l.CellShift(2, 5) != 11 {
		t.Errorf("shifts: height=%d cell=%d", l.HeightShift(6), l.CellShift(2, 5))
	}

	l = Precompute(8, 8)
	if l.Bits != 96 || l.Fits() {
		t.Errorf("8x8: bits=%d fits=%v", l.Bits, l.Fits())
	}

	l = Precompute(4, 4)
	if l.Stride != 7 || l.Bits != 28 || l.Mask != 0xfffffff {
		t.Errorf("4x4: stride=%d bits=%d mask=%x", l.Stride, l.Bits, l.Mask)
	}
}

func TestColumnFields(t *testing.T) {
	l := Precompute(4, 4)
	// column 3 (rightmost): height 2, discs 0b10
	// column 0 (leftmost): height 1, disc 0b1
	var v uint64
	v |= 2 << l.HeightShift(3)
	v |= 0x2 << l.Base(3)
	v |= 1 << l.HeightShift(0)
	v |= 0x1 << l.Base(0)
	// garbage above the stack must be ignored
	v |= 0x8 << l.Base(3)

	if h := l.ColumnHeight(v, 3); h != 2 {
		t.Errorf("height(3)=%d", h)
	}
	if h := l.ColumnHeight(v, 0); h != 1 {
		t.Errorf("height(0)=%d", h)
	}
	if h := l.ColumnHeight(v, 1); h != 0 {
		t.Errorf("height(1)=%d", h)
	}
	if got := l.Occupied(v, 3); got != 0x2 {
		t.Errorf("occupied(3)=%s", strconv.FormatUint(got, 2))
	}
	if got := l.ColumnBits(v, 3); got != 0xa {
		t.Errorf("bits(3)=%s", strconv.FormatUint(got, 2))
	}
	if n := Popcount(l.Occupied(v, 0)); n != 1 {
		t.Errorf("popcount(0)=%d", n)
	}
	if n := l.Ones(v); n != 2 {
		t.Errorf("ones=%d", n)
	}
}
