package bitboard

// Layout describes how a width x height board is packed into a single
// word. Columns are laid out from the rightmost visible column (lowest
// bits) to the leftmost. Each column holds Height content bits, bottom
// of the stack first, followed by a HeightBits-wide disc count.
type Layout struct {
	Width, Height uint
	HeightBits    uint
	Stride        uint
	Bits          uint

	Content    uint64
	HeightMask uint64
	Mask       uint64
}

// HeightBits returns ceil(log2(h+1)), the width of a field able to
// count 0..h discs.
func HeightBits(h uint) uint {
	return uint(Len(uint64(h)))
}

func Precompute(width, height uint) Layout {
	var l Layout
	l.Width = width
	l.Height = height
	l.HeightBits = HeightBits(height)
	l.Stride = height + l.HeightBits
	l.Bits = width * l.Stride
	l.Content = (1 << height) - 1
	l.HeightMask = (1 << l.HeightBits) - 1
	if l.Bits >= 64 {
		l.Mask = ^uint64(0)
	} else {
		l.Mask = (1 << l.Bits) - 1
	}
	return l
}

// Fits reports whether the layout can be held in a uint64.
func (l *Layout) Fits() bool {
	return l.Bits <= 64
}

func (l *Layout) Base(col uint) uint {
	return (l.Width - 1 - col) * l.Stride
}

func (l *Layout) CellShift(row, col uint) uint {
	return l.Base(col) + row
}

func (l *Layout) HeightShift(col uint) uint {
	return l.Base(col) + l.Height
}

// ColumnHeight extracts the disc count of col from an encoded value.
func (l *Layout) ColumnHeight(v uint64, col uint) uint {
	return uint((v >> l.HeightShift(col)) & l.HeightMask)
}

// ColumnBits extracts the content bits of col. Bits at or above the
// column's height are meaningless.
func (l *Layout) ColumnBits(v uint64, col uint) uint64 {
	return (v >> l.Base(col)) & l.Content
}

// Occupied returns the content bits of col masked to its height.
func (l *Layout) Occupied(v uint64, col uint) uint64 {
	h := l.ColumnHeight(v, col)
	return l.ColumnBits(v, col) & ((1 << h) - 1)
}

// Ones counts the set content bits below each column's height.
func (l *Layout) Ones(v uint64) int {
	n := 0
	for col := uint(0); col < l.Width; col++ {
		n += Popcount(l.Occupied(v, col))
	}
	return n
}
