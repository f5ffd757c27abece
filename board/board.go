/*
Package board is the single source of truth for legal chess positions and
legal transitions between them.

A Board is a value: applying a move never mutates the receiver but yields a
fresh successor, so positions can be shared freely between the search tree
and the caller.  The twelve piece bitboards, the aggregate occupancies, and
the check, checkmate, and castling flags are all exported so a renderer can
paint the position without going through the package.
*/
package board

import (
	"github.com/jward0/crabablanca/bitutil"
	"github.com/jward0/crabablanca/enum"
)

/*
Board represents a single chess position.

The aggregate bitboards AllWhite, AllBlack, and AllPieces are maintained
identical to the disjunction of their constituent piece bitboards on every
transition.  WhiteCheck and BlackCheck state whether the respective king is
attacked in this position; the checkmate flags are only ever set for the
side to move.
*/
type Board struct {
	WhitePawns   uint64
	WhiteKnights uint64
	WhiteBishops uint64
	WhiteRooks   uint64
	WhiteQueens  uint64
	WhiteKing    uint64

	BlackPawns   uint64
	BlackKnights uint64
	BlackBishops uint64
	BlackRooks   uint64
	BlackQueens  uint64
	BlackKing    uint64

	AllWhite  uint64
	AllBlack  uint64
	AllPieces uint64

	ToMove enum.Color

	WhiteCheck     bool
	BlackCheck     bool
	WhiteCheckmate bool
	BlackCheckmate bool

	CastlingRights enum.CastlingRights
}

// New returns the standard starting position: White to move, both sides
// holding full castling rights.
func New() Board {
	return Board{
		WhitePawns:   0x000000000000FF00,
		WhiteKnights: 0x0000000000000042,
		WhiteBishops: 0x0000000000000024,
		WhiteRooks:   0x0000000000000081,
		WhiteQueens:  0x0000000000000008,
		WhiteKing:    0x0000000000000010,

		BlackPawns:   0x00FF000000000000,
		BlackKnights: 0x4200000000000000,
		BlackBishops: 0x2400000000000000,
		BlackRooks:   0x8100000000000000,
		BlackQueens:  0x0800000000000000,
		BlackKing:    0x1000000000000000,

		AllWhite:  0x000000000000FFFF,
		AllBlack:  0xFFFF000000000000,
		AllPieces: 0xFFFF00000000FFFF,

		ToMove: enum.ColorWhite,

		CastlingRights: enum.CastlingWhiteShort | enum.CastlingWhiteLong |
			enum.CastlingBlackShort | enum.CastlingBlackLong,
	}
}

/*
CheckCheck reports whether the white and black kings are attacked in this
position.  The stored WhiteCheck and BlackCheck flags hold the same values;
this recomputes them from the piece bitboards.
*/
func (b *Board) CheckCheck() (white, black bool) {
	return b.kingAttacked(enum.ColorWhite), b.kingAttacked(enum.ColorBlack)
}

/*
kingAttacked reports whether the king of the given color is attacked by any
enemy piece under that piece's movement rules on the present occupancy.  The
attack masks are cast outward from the king's square: a pawn-capture mask of
the king's own color intersected with enemy pawns, and so on for every enemy
piece set.  Slider masks take the king's side as own occupancy so interposing
pieces block the ray.
*/
func (b *Board) kingAttacked(c enum.Color) bool {
	var king, own, enemy uint64
	var pawns, knights, bishops, rooks, theirKing uint64

	if c == enum.ColorWhite {
		king, own, enemy = b.WhiteKing, b.AllWhite, b.AllBlack
		pawns, knights, theirKing = b.BlackPawns, b.BlackKnights, b.BlackKing
		bishops = b.BlackBishops | b.BlackQueens
		rooks = b.BlackRooks | b.BlackQueens
	} else {
		king, own, enemy = b.BlackKing, b.AllBlack, b.AllWhite
		pawns, knights, theirKing = b.WhitePawns, b.WhiteKnights, b.WhiteKing
		bishops = b.WhiteBishops | b.WhiteQueens
		rooks = b.WhiteRooks | b.WhiteQueens
	}

	return bitutil.PawnCaptureMask(king, c)&pawns != 0 ||
		bitutil.KnightMask(king, own)&knights != 0 ||
		bitutil.BishopMask(king, own, enemy)&bishops != 0 ||
		bitutil.RookMask(king, own, enemy)&rooks != 0 ||
		bitutil.KingMask(king, own)&theirKing != 0
}
