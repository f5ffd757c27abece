// fen.go implements conversions between Forsyth-Edwards Notation (FEN)
// strings and Boards.  Functions in this file expect the passed FEN strings
// to be valid, and may panic if they are not.

package board

import (
	"strings"

	"github.com/jward0/crabablanca/bitutil"
	"github.com/jward0/crabablanca/enum"
)

// Standard initial chess position.
const InitialPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

/*
ParseFEN parses the given FEN string into a Board.  The en passant, halfmove,
and fullmove fields are accepted and ignored; check and checkmate flags are
recomputed so the result is a valid Board.  It's a caller responsibility to
validate the provided FEN string.
*/
func ParseFEN(fen string) Board {
	fields := strings.SplitN(fen, " ", 6)

	b := parsePlacement(fields[0])

	// Active color.  White by default.
	if len(fields) > 1 && fields[1] == "b" {
		b.ToMove = enum.ColorBlack
	}

	// Castling rights.
	if len(fields) > 2 {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.CastlingRights |= enum.CastlingWhiteShort
			case 'Q':
				b.CastlingRights |= enum.CastlingWhiteLong
			case 'k':
				b.CastlingRights |= enum.CastlingBlackShort
			case 'q':
				b.CastlingRights |= enum.CastlingBlackLong
			}
		}
	}

	b.WhiteCheck, b.BlackCheck = b.CheckCheck()
	if b.ToMove == enum.ColorWhite {
		b.WhiteCheckmate = b.WhiteCheck && !b.hasLegalMove()
	} else {
		b.BlackCheckmate = b.BlackCheck && !b.hasLegalMove()
	}

	return b
}

/*
SerializeFEN serializes the Board into a FEN string.  The en passant field is
always "-" and the move counters are not tracked, so they serialize as
"0 1".
*/
func SerializeFEN(b Board) string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(serializePlacement(b))

	if b.ToMove == enum.ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	cnt := 4
	if b.CastlingRights&enum.CastlingWhiteShort != 0 {
		fen.WriteByte('K')
		cnt--
	}
	if b.CastlingRights&enum.CastlingWhiteLong != 0 {
		fen.WriteByte('Q')
		cnt--
	}
	if b.CastlingRights&enum.CastlingBlackShort != 0 {
		fen.WriteByte('k')
		cnt--
	}
	if b.CastlingRights&enum.CastlingBlackLong != 0 {
		fen.WriteByte('q')
		cnt--
	}
	if cnt == 4 {
		fen.WriteByte('-')
	}

	fen.WriteString(" - 0 1")

	return fen.String()
}

/*
parsePlacement converts the first part of a FEN string into a Board with the
piece and aggregate bitboards filled.  May panic if the provided string is
not valid.
*/
func parsePlacement(placement string) Board {
	var b Board
	square := 56

	// Piece placement data describes each rank beginning from the eighth.
	for i := 0; i < len(placement); i++ {
		char := placement[i]

		if char == '/' { // Rank separator.
			square -= 16
		} else if char >= '1' && char <= '8' {
			// Number of consecutive empty squares.
			square += int(char - '0')
		} else { // There is a piece on the square.
			bit := uint64(1) << square

			switch char {
			case 'P':
				b.WhitePawns |= bit
			case 'N':
				b.WhiteKnights |= bit
			case 'B':
				b.WhiteBishops |= bit
			case 'R':
				b.WhiteRooks |= bit
			case 'Q':
				b.WhiteQueens |= bit
			case 'K':
				b.WhiteKing |= bit
			case 'p':
				b.BlackPawns |= bit
			case 'n':
				b.BlackKnights |= bit
			case 'b':
				b.BlackBishops |= bit
			case 'r':
				b.BlackRooks |= bit
			case 'q':
				b.BlackQueens |= bit
			case 'k':
				b.BlackKing |= bit
			default:
				panic("invalid piece placement character")
			}

			if char >= 'A' && char <= 'Z' {
				b.AllWhite |= bit
			} else {
				b.AllBlack |= bit
			}
			b.AllPieces |= bit

			square++
		}
	}

	return b
}

// serializePlacement converts the piece bitboards into the first part of a
// FEN string.
func serializePlacement(b Board) string {
	var out strings.Builder
	out.Grow(20)

	var squares [64]byte

	fill := func(bits uint64, symbol byte) {
		for bit := range bitutil.Iterate(bits) {
			rank, file := bitutil.BitRankFile(bit)
			squares[rank*8+file] = symbol
		}
	}

	fill(b.WhitePawns, 'P')
	fill(b.WhiteKnights, 'N')
	fill(b.WhiteBishops, 'B')
	fill(b.WhiteRooks, 'R')
	fill(b.WhiteQueens, 'Q')
	fill(b.WhiteKing, 'K')
	fill(b.BlackPawns, 'p')
	fill(b.BlackKnights, 'n')
	fill(b.BlackBishops, 'b')
	fill(b.BlackRooks, 'r')
	fill(b.BlackQueens, 'q')
	fill(b.BlackKing, 'k')

	empty := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			char := squares[rank*8+file]

			if char == 0 { // Empty square.
				empty++
			} else {
				if empty > 0 {
					out.WriteByte('0' + empty)
					empty = 0
				}
				out.WriteByte(char)
			}
		}
		if empty > 0 {
			out.WriteByte('0' + empty)
			empty = 0
		}
		if rank != 0 {
			out.WriteByte('/')
		}
	}

	return out.String()
}
