// eval.go implements the static position evaluator.  Scores are from
// White's point of view: positive favours White, negative favours Black,
// and the infinities mark decided positions.

package engine

import (
	"math"

	"github.com/jward0/crabablanca/bitutil"
	"github.com/jward0/crabablanca/board"
	"github.com/jward0/crabablanca/enum"
)

// Term weights.  Material is in pawns; the positional terms are fractions of
// a pawn except king safety, which counts castling rights and shield pawns
// at full weight.
const (
	centrePawnWeight  = 0.1
	checkWeight       = 0.5
	mobilityWeight    = 0.1
	doubledPawnWeight = 0.5
)

/*
Evaluate returns the static heuristic score of the position without any
lookahead.  A checkmate overrides every other term: -Inf when White is
checkmated, +Inf when Black is.
*/
func Evaluate(b *board.Board) float64 {
	if b.WhiteCheckmate {
		return math.Inf(-1)
	}
	if b.BlackCheckmate {
		return math.Inf(1)
	}

	score := material(b)

	score += centrePawnWeight * float64(
		bitutil.CountBits(b.WhitePawns&bitutil.Centre)-
			bitutil.CountBits(b.BlackPawns&bitutil.Centre))

	if b.BlackCheck {
		score += checkWeight
	}
	if b.WhiteCheck {
		score -= checkWeight
	}

	score += mobilityWeight * float64(mobility(b, enum.ColorWhite)-mobility(b, enum.ColorBlack))

	score += float64(kingSafety(b, enum.ColorWhite) - kingSafety(b, enum.ColorBlack))

	score -= doubledPawnWeight * float64(doubledFiles(b.WhitePawns)-doubledFiles(b.BlackPawns))

	return score
}

// material returns the piece-value balance: pawn 1, knight and bishop 3,
// rook 5, queen 9.  Kings are not counted.
func material(b *board.Board) float64 {
	white := bitutil.CountBits(b.WhitePawns) +
		3*bitutil.CountBits(b.WhiteKnights) +
		3*bitutil.CountBits(b.WhiteBishops) +
		5*bitutil.CountBits(b.WhiteRooks) +
		9*bitutil.CountBits(b.WhiteQueens)

	black := bitutil.CountBits(b.BlackPawns) +
		3*bitutil.CountBits(b.BlackKnights) +
		3*bitutil.CountBits(b.BlackBishops) +
		5*bitutil.CountBits(b.BlackRooks) +
		9*bitutil.CountBits(b.BlackQueens)

	return float64(white - black)
}

// mobility counts the legal moves the given side would have if it were to
// move in this position.
func mobility(b *board.Board, c enum.Color) int {
	flipped := *b
	flipped.ToMove = c
	return flipped.LegalMoveCount()
}

/*
kingSafety scores shelter for one side: one point per castling right still
held plus one per shield pawn, where the shield is the side's own pawns one
rank in front of the king on the king's file and the two adjacent files.
*/
func kingSafety(b *board.Board, c enum.Color) int {
	var king, pawns uint64
	var rights enum.CastlingRights

	if c == enum.ColorWhite {
		king, pawns = b.WhiteKing, b.WhitePawns
		rights = b.CastlingRights & (enum.CastlingWhiteShort | enum.CastlingWhiteLong)
	} else {
		king, pawns = b.BlackKing, b.BlackPawns
		rights = b.CastlingRights & (enum.CastlingBlackShort | enum.CastlingBlackLong)
	}

	row := king | bitutil.ShiftLeft(king) | bitutil.ShiftRight(king)
	shield := bitutil.ShiftUp(row)
	if c == enum.ColorBlack {
		shield = bitutil.ShiftDown(row)
	}

	return bitutil.CountBits(uint64(rights)) + bitutil.CountBits(shield&pawns)
}

// doubledFiles returns the number of files holding more than one pawn of the
// given pawn set.
func doubledFiles(pawns uint64) int {
	doubled := 0
	for _, file := range bitutil.Files {
		if bitutil.CountBits(pawns&file) > 1 {
			doubled++
		}
	}
	return doubled
}
