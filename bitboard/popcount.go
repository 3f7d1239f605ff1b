package bitboard

import "math/bits"

func Popcount(x uint64) int {
	return bits.OnesCount64(x)
}

func Len(x uint64) int {
	return bits.Len64(x)
}
