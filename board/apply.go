// apply.go implements move application using the copy-make approach: every
// candidate transition yields a fresh Board, and illegal candidates (the
// mover left in check) are dropped at the gate.

package board

import (
	"github.com/jward0/crabablanca/bitutil"
	"github.com/jward0/crabablanca/enum"
)

/*
movePiece transplants a move onto one bitboard.  If the origin bit belongs to
this bitboard the bit travels to the destination; otherwise the destination
bit is cleared, which uniformly erases a captured piece from its own
bitboard.
*/
func movePiece(bits, from, to uint64) uint64 {
	if bits&from != 0 {
		return bits&^from | to
	}
	return bits &^ to
}

/*
ApplyMove applies the transition from one square bit to another and returns
the successor position, or ok == false when the move is illegal.  Castling is
requested as the two-square king move and co-moves the rook; a pawn reaching
its promotion rank becomes a queen.

The successor carries freshly computed check flags for both sides and, when
the opponent is checked with no reply, their checkmate flag.
*/
func (b Board) ApplyMove(from, to uint64) (Board, bool) {
	next, ok := b.applyMove(from, to)
	if !ok {
		return Board{}, false
	}

	// Stamp the checkmate flag for the side now to move.  The inner probes
	// run through applyMove, which stops at the legality gate, so the
	// recursion is bounded at one extra ply.
	if next.ToMove == enum.ColorWhite {
		next.WhiteCheckmate = next.WhiteCheck && !next.hasLegalMove()
	} else {
		next.BlackCheckmate = next.BlackCheck && !next.hasLegalMove()
	}

	return next, true
}

/*
applyMove performs the transition without checkmate detection: bit transplant
across all fifteen bitboards, castling rook co-move, castling-rights
maintenance, auto-queen promotion, check recomputation, and the legality
gate.
*/
func (b Board) applyMove(from, to uint64) (Board, bool) {
	next := Board{
		WhitePawns:   movePiece(b.WhitePawns, from, to),
		WhiteKnights: movePiece(b.WhiteKnights, from, to),
		WhiteBishops: movePiece(b.WhiteBishops, from, to),
		WhiteRooks:   movePiece(b.WhiteRooks, from, to),
		WhiteQueens:  movePiece(b.WhiteQueens, from, to),
		WhiteKing:    movePiece(b.WhiteKing, from, to),

		BlackPawns:   movePiece(b.BlackPawns, from, to),
		BlackKnights: movePiece(b.BlackKnights, from, to),
		BlackBishops: movePiece(b.BlackBishops, from, to),
		BlackRooks:   movePiece(b.BlackRooks, from, to),
		BlackQueens:  movePiece(b.BlackQueens, from, to),
		BlackKing:    movePiece(b.BlackKing, from, to),

		AllWhite:  movePiece(b.AllWhite, from, to),
		AllBlack:  movePiece(b.AllBlack, from, to),
		AllPieces: movePiece(b.AllPieces, from, to),

		ToMove:         b.ToMove.Opposite(),
		CastlingRights: b.CastlingRights,
	}

	// Castling: a king travelling two files co-moves its rook from the home
	// corner to the square the king crossed.
	if b.WhiteKing&from != 0 {
		switch to {
		case from << 2: // O-O
			next.WhiteRooks ^= enum.H1 | enum.F1
			next.AllWhite ^= enum.H1 | enum.F1
			next.AllPieces ^= enum.H1 | enum.F1
		case from >> 2: // O-O-O
			next.WhiteRooks ^= enum.A1 | enum.D1
			next.AllWhite ^= enum.A1 | enum.D1
			next.AllPieces ^= enum.A1 | enum.D1
		}
		next.CastlingRights &^= enum.CastlingWhiteShort | enum.CastlingWhiteLong
	} else if b.BlackKing&from != 0 {
		switch to {
		case from << 2:
			next.BlackRooks ^= enum.H8 | enum.F8
			next.AllBlack ^= enum.H8 | enum.F8
			next.AllPieces ^= enum.H8 | enum.F8
		case from >> 2:
			next.BlackRooks ^= enum.A8 | enum.D8
			next.AllBlack ^= enum.A8 | enum.D8
			next.AllPieces ^= enum.A8 | enum.D8
		}
		next.CastlingRights &^= enum.CastlingBlackShort | enum.CastlingBlackLong
	}

	// A right is lost as soon as the rook's home corner is left or entered:
	// leaving means the rook moved, entering means it was captured.
	if (from|to)&enum.H1 != 0 {
		next.CastlingRights &^= enum.CastlingWhiteShort
	}
	if (from|to)&enum.A1 != 0 {
		next.CastlingRights &^= enum.CastlingWhiteLong
	}
	if (from|to)&enum.H8 != 0 {
		next.CastlingRights &^= enum.CastlingBlackShort
	}
	if (from|to)&enum.A8 != 0 {
		next.CastlingRights &^= enum.CastlingBlackLong
	}

	// Auto-queen promotion.
	if promoted := next.WhitePawns & bitutil.Rank8; promoted != 0 {
		next.WhitePawns ^= promoted
		next.WhiteQueens |= promoted
	}
	if promoted := next.BlackPawns & bitutil.Rank1; promoted != 0 {
		next.BlackPawns ^= promoted
		next.BlackQueens |= promoted
	}

	// Legality gate: the side that just moved must not be left in check.
	next.WhiteCheck, next.BlackCheck = next.CheckCheck()
	if (b.ToMove == enum.ColorWhite && next.WhiteCheck) ||
		(b.ToMove == enum.ColorBlack && next.BlackCheck) {
		return Board{}, false
	}

	return next, true
}
