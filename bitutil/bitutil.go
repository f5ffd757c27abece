/*
Package bitutil implements the 64-bit primitives the move generator and the
evaluator are built on: single-bit extraction, population count, bit
iteration, ray fills, single-step shifts, and per-piece attack masks.

Bit n of a bitboard is set iff the occupant is on square n, where
square = rank*8 + file, rank 0 being White's back rank and file 0 the a-file.
*/
package bitutil

import (
	"iter"
	"math/bits"
)

/*
LSB returns a bitboard containing only the lowest set bit of the given
bitboard, or 0 if the bitboard is empty.
*/
func LSB(bitboard uint64) uint64 {
	return bitboard & -bitboard
}

/*
MSB returns a bitboard containing only the highest set bit of the given
bitboard, or 0 if the bitboard is empty.
*/
func MSB(bitboard uint64) uint64 {
	if bitboard == 0 {
		return 0
	}
	return 1 << (63 - bits.LeadingZeros64(bitboard))
}

/*
CountBits returns the number of bits set within the bitboard.
*/
func CountBits(bitboard uint64) int {
	return bits.OnesCount64(bitboard)
}

/*
Iterate yields the single-bit bitboards forming the given bitboard, from the
lowest to the highest.
*/
func Iterate(bitboard uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for bitboard > 0 {
			lsb := bitboard & -bitboard
			if !yield(lsb) {
				return
			}
			bitboard ^= lsb
		}
	}
}

/*
FillFrom returns a bitboard with every bit at or above the given bit set.
FillFrom(0) returns 0.
*/
func FillFrom(bit uint64) uint64 {
	if bit == 0 {
		return 0
	}
	return ^(bit - 1)
}

/*
FillTo returns a bitboard with every bit at or below the given bit set.
FillTo(0) returns 0.
*/
func FillTo(bit uint64) uint64 {
	if bit == 0 {
		return 0
	}
	return bit | (bit - 1)
}

// ShiftLeft shifts the bit one file towards the a-file.  Returns 0 if the bit
// would fall off the board.
func ShiftLeft(bit uint64) uint64 { return bit &^ FileA >> 1 }

// ShiftRight shifts the bit one file towards the h-file.  Returns 0 if the bit
// would fall off the board.
func ShiftRight(bit uint64) uint64 { return bit &^ FileH << 1 }

// ShiftUp shifts the bit one rank towards the eighth rank.  Returns 0 if the
// bit would fall off the board.
func ShiftUp(bit uint64) uint64 { return bit &^ Rank8 << 8 }

// ShiftDown shifts the bit one rank towards the first rank.  Returns 0 if the
// bit would fall off the board.
func ShiftDown(bit uint64) uint64 { return bit &^ Rank1 >> 8 }

/*
BitRankFile returns the zero-indexed rank and file of the given single-bit
bitboard.
*/
func BitRankFile(bit uint64) (rank, file int) {
	square := bits.TrailingZeros64(bit)
	return square / 8, square % 8
}
