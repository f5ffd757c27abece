// movegen.go implements legal move enumeration.  Candidate transitions are
// produced in a deterministic order (pawns, knights, bishops, rooks, queens,
// king, castles; bit-order of sources and destinations within a piece type)
// and every candidate is routed through the move-application legality gate.

package board

import (
	"github.com/jward0/crabablanca/bitutil"
	"github.com/jward0/crabablanca/enum"
)

/*
GenerateMoveList returns every legal successor of this position, in a
deterministic order.  The returned Boards carry recomputed check and
checkmate flags and a flipped ToMove.  An empty list means the side to move
has no legal moves; with the check flag set that is checkmate.
*/
func (b Board) GenerateMoveList() []Board {
	moves := make([]Board, 0, 40)

	b.forEachCandidate(func(from, to uint64) bool {
		if next, ok := b.ApplyMove(from, to); ok {
			moves = append(moves, next)
		}
		return true
	})

	if next, ok := b.castle(true); ok {
		moves = append(moves, next)
	}
	if next, ok := b.castle(false); ok {
		moves = append(moves, next)
	}

	return moves
}

/*
hasLegalMove reports whether the side to move has at least one legal move.
Castling is not probed: a legal castle implies the one-step king move towards
the rook is also legal, so it can never be the only legal move.
*/
func (b Board) hasLegalMove() bool {
	found := false
	b.forEachCandidate(func(from, to uint64) bool {
		if _, ok := b.applyMove(from, to); ok {
			found = true
			return false
		}
		return true
	})
	return found
}

/*
LegalMoveCount returns the number of legal moves available to the side to
move, castling included.  Cheaper than GenerateMoveList since the successor
positions are discarded after the legality probe.
*/
func (b Board) LegalMoveCount() int {
	cnt := 0
	b.forEachCandidate(func(from, to uint64) bool {
		if _, ok := b.applyMove(from, to); ok {
			cnt++
		}
		return true
	})
	if _, ok := b.castle(true); ok {
		cnt++
	}
	if _, ok := b.castle(false); ok {
		cnt++
	}
	return cnt
}

/*
forEachCandidate calls fn with every pseudo-legal (from, to) pair for the
side to move, excluding castling, until fn returns false.  Pseudo-legal
means the geometry and occupancy rules hold; leaving the own king in check
is only rejected later, by the apply gate.
*/
func (b *Board) forEachCandidate(fn func(from, to uint64) bool) {
	var pawns, knights, bishops, rooks, queens, king uint64
	var own, enemy, startRank uint64

	if b.ToMove == enum.ColorWhite {
		pawns, knights, bishops = b.WhitePawns, b.WhiteKnights, b.WhiteBishops
		rooks, queens, king = b.WhiteRooks, b.WhiteQueens, b.WhiteKing
		own, enemy = b.AllWhite, b.AllBlack
		startRank = bitutil.Rank2
	} else {
		pawns, knights, bishops = b.BlackPawns, b.BlackKnights, b.BlackBishops
		rooks, queens, king = b.BlackRooks, b.BlackQueens, b.BlackKing
		own, enemy = b.AllBlack, b.AllWhite
		startRank = bitutil.Rank7
	}

	push := bitutil.ShiftUp
	if b.ToMove == enum.ColorBlack {
		push = bitutil.ShiftDown
	}

	for pawn := range bitutil.Iterate(pawns) {
		dests := bitutil.PawnCaptureMask(pawn, b.ToMove) & enemy

		if single := push(pawn); single&b.AllPieces == 0 {
			dests |= single
			if pawn&startRank != 0 {
				if double := push(single); double&b.AllPieces == 0 {
					dests |= double
				}
			}
		}

		for to := range bitutil.Iterate(dests) {
			if !fn(pawn, to) {
				return
			}
		}
	}

	for knight := range bitutil.Iterate(knights) {
		for to := range bitutil.Iterate(bitutil.KnightMask(knight, own)) {
			if !fn(knight, to) {
				return
			}
		}
	}

	for bishop := range bitutil.Iterate(bishops) {
		for to := range bitutil.Iterate(bitutil.BishopMask(bishop, own, enemy)) {
			if !fn(bishop, to) {
				return
			}
		}
	}

	for rook := range bitutil.Iterate(rooks) {
		for to := range bitutil.Iterate(bitutil.RookMask(rook, own, enemy)) {
			if !fn(rook, to) {
				return
			}
		}
	}

	for queen := range bitutil.Iterate(queens) {
		for to := range bitutil.Iterate(bitutil.QueenMask(queen, own, enemy)) {
			if !fn(queen, to) {
				return
			}
		}
	}

	for to := range bitutil.Iterate(bitutil.KingMask(king, own)) {
		if !fn(king, to) {
			return
		}
	}
}

/*
castle attempts the castling move for the side to move and returns the
successor position if it is legal.  The king must hold the right, the squares
between king and rook must be empty, the rook must stand on its home corner,
and the king must not start in, pass through, or end in check.  The two
intermediate king positions are verified by probing the one-step and the
two-step king moves through the apply gate.
*/
func (b Board) castle(short bool) (Board, bool) {
	var right enum.CastlingRights
	var king, rook, rookHome, between uint64

	if b.ToMove == enum.ColorWhite {
		if b.WhiteCheck {
			return Board{}, false
		}
		king, rook = b.WhiteKing, b.WhiteRooks
		if short {
			right, rookHome, between = enum.CastlingWhiteShort, enum.H1, enum.F1|enum.G1
		} else {
			right, rookHome, between = enum.CastlingWhiteLong, enum.A1, enum.B1|enum.C1|enum.D1
		}
	} else {
		if b.BlackCheck {
			return Board{}, false
		}
		king, rook = b.BlackKing, b.BlackRooks
		if short {
			right, rookHome, between = enum.CastlingBlackShort, enum.H8, enum.F8|enum.G8
		} else {
			right, rookHome, between = enum.CastlingBlackLong, enum.A8, enum.B8|enum.C8|enum.D8
		}
	}

	if b.CastlingRights&right == 0 || b.AllPieces&between != 0 || rook&rookHome == 0 {
		return Board{}, false
	}

	transit, dest := king<<1, king<<2
	if !short {
		transit, dest = king>>1, king>>2
	}

	// Both the transit square and the destination must be legal king
	// positions.
	if _, ok := b.applyMove(king, transit); !ok {
		return Board{}, false
	}
	return b.ApplyMove(king, dest)
}
