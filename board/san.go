/*
san.go implements resolution of short-algebraic move input against the
current position.

The accepted grammar: the last two characters are the destination square, a
leading B/N/R/Q/K selects the piece (a lowercase file letter means a pawn),
an 'x' marks a capture, and any characters between the piece letter and the
destination disambiguate the source by file or rank.  For a pawn capture the
leading file letter is the disambiguator.  "O-O" and "O-O-O" request
castling.
*/

package board

import (
	"strings"

	"github.com/jward0/crabablanca/bitutil"
	"github.com/jward0/crabablanca/enum"
)

/*
ParseInput resolves a short-algebraic move string against this position and
returns the successor Board.  ok == false covers every rejection: malformed
or non-ASCII input, no piece able to reach the destination, ambiguous input,
and moves that leave the own king in check.
*/
func (b Board) ParseInput(s string) (Board, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return Board{}, false
		}
	}

	switch s {
	case "O-O":
		return b.castle(true)
	case "O-O-O":
		return b.castle(false)
	}

	if len(s) < 2 || len(s) > 6 {
		return Board{}, false
	}

	file := int(s[len(s)-2] - 'a')
	rank := int(s[len(s)-1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Board{}, false
	}
	to := uint64(1) << (rank*8 + file)

	head := s[:len(s)-2]
	isCapture := strings.IndexByte(s, 'x') >= 0

	piece := enum.PiecePawn
	rest := head
	if len(head) > 0 {
		switch head[0] {
		case 'N':
			piece, rest = enum.PieceKnight, head[1:]
		case 'B':
			piece, rest = enum.PieceBishop, head[1:]
		case 'R':
			piece, rest = enum.PieceRook, head[1:]
		case 'Q':
			piece, rest = enum.PieceQueen, head[1:]
		case 'K':
			piece, rest = enum.PieceKing, head[1:]
		}
	}

	// The capture marker must sit immediately before the destination.
	if isCapture {
		if len(rest) == 0 || rest[len(rest)-1] != 'x' {
			return Board{}, false
		}
		rest = rest[:len(rest)-1]
	}

	// A pawn push carries no disambiguator; a pawn capture exactly one, its
	// originating file.
	if piece == enum.PiecePawn && len(rest) != 0 && !(isCapture && len(rest) == 1) {
		return Board{}, false
	}

	candidates := b.inputCandidates(piece, to, isCapture)

	for i := 0; i < len(rest); i++ {
		switch d := rest[i]; {
		case d >= 'a' && d <= 'h':
			candidates &= bitutil.Files[d-'a']
		case d >= '1' && d <= '8':
			candidates &= bitutil.Ranks[d-'1']
		default:
			return Board{}, false
		}
	}

	if bitutil.CountBits(candidates) != 1 {
		return Board{}, false
	}

	var enemy uint64
	if b.ToMove == enum.ColorWhite {
		enemy = b.AllBlack
	} else {
		enemy = b.AllWhite
	}
	if isCapture && to&enemy == 0 {
		return Board{}, false
	}
	if !isCapture && to&b.AllPieces != 0 {
		return Board{}, false
	}

	return b.ApplyMove(candidates, to)
}

/*
inputCandidates returns the bitboard of the side to move's pieces of the
given type that can reach the destination square.  The attack masks are cast
from the destination with the colors swapped, which recovers the candidate
origin squares: an own piece on the ray stays reachable the way an enemy
capture target would.
*/
func (b *Board) inputCandidates(piece enum.Piece, to uint64, isCapture bool) uint64 {
	var own, enemy uint64
	var pawns, knights, bishops, rooks, queens, king uint64

	if b.ToMove == enum.ColorWhite {
		own, enemy = b.AllWhite, b.AllBlack
		pawns, knights, bishops = b.WhitePawns, b.WhiteKnights, b.WhiteBishops
		rooks, queens, king = b.WhiteRooks, b.WhiteQueens, b.WhiteKing
	} else {
		own, enemy = b.AllBlack, b.AllWhite
		pawns, knights, bishops = b.BlackPawns, b.BlackKnights, b.BlackBishops
		rooks, queens, king = b.BlackRooks, b.BlackQueens, b.BlackKing
	}

	switch piece {
	case enum.PiecePawn:
		if isCapture {
			return bitutil.PawnCaptureMask(to, b.ToMove.Opposite()) & pawns
		}
		// A push originates one square behind the destination, or two when
		// the intervening square is empty and the destination is on the
		// double-push rank.
		back, doubleRank := bitutil.ShiftDown(to), bitutil.Rank4
		if b.ToMove == enum.ColorBlack {
			back, doubleRank = bitutil.ShiftUp(to), bitutil.Rank5
		}
		if back&pawns != 0 {
			return back
		}
		if back&b.AllPieces == 0 && to&doubleRank != 0 {
			back2 := bitutil.ShiftDown(back)
			if b.ToMove == enum.ColorBlack {
				back2 = bitutil.ShiftUp(back)
			}
			return back2 & pawns
		}
		return 0
	case enum.PieceKnight:
		return bitutil.KnightMask(to, enemy) & knights
	case enum.PieceBishop:
		return bitutil.BishopMask(to, enemy, own) & bishops
	case enum.PieceRook:
		return bitutil.RookMask(to, enemy, own) & rooks
	case enum.PieceQueen:
		return bitutil.QueenMask(to, enemy, own) & queens
	case enum.PieceKing:
		return bitutil.KingMask(to, enemy) & king
	}
	return 0
}
