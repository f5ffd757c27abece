// Package format provides functions to render chess boards and positions as
// terminal text.  It is used by the interactive driver and to visualize test
// cases.
package format

import (
	"strings"

	"github.com/fatih/color"

	"github.com/jward0/crabablanca/bitutil"
	"github.com/jward0/crabablanca/board"
	"github.com/jward0/crabablanca/enum"
	"github.com/jward0/crabablanca/internal/config"
)

// Unicode figurines, white then black, pawn to king.
var pieceRunes = [2][6]rune{
	{'♙', '♘', '♗', '♖', '♕', '♔'},
	{'♟', '♞', '♝', '♜', '♛', '♚'},
}

// ASCII fallback symbols, same layout.
var pieceLetters = [2][6]rune{
	{'P', 'N', 'B', 'R', 'Q', 'K'},
	{'p', 'n', 'b', 'r', 'q', 'k'},
}

var checkColor = color.New(color.FgRed, color.Bold)

/*
Board renders the full position rank by rank, eighth rank on top, with file
and rank legends.  Castling rights and the side to move are appended below
the grid; a checked side is called out, in red when colored output is
enabled.
*/
func Board(b *board.Board) string {
	var out strings.Builder

	symbols := &pieceLetters
	if config.Settings.UI.Unicode {
		symbols = &pieceRunes
	}

	for rank := 7; rank >= 0; rank-- {
		out.WriteByte(byte(rank) + 1 + '0')
		out.WriteString("  ")

		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)

			symbol := '.'
			for c, sets := range [2][6]uint64{
				{b.WhitePawns, b.WhiteKnights, b.WhiteBishops,
					b.WhiteRooks, b.WhiteQueens, b.WhiteKing},
				{b.BlackPawns, b.BlackKnights, b.BlackBishops,
					b.BlackRooks, b.BlackQueens, b.BlackKing},
			} {
				for p, set := range sets {
					if set&square != 0 {
						symbol = symbols[c][p]
					}
				}
			}

			out.WriteRune(symbol)
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}
	out.WriteString("   a  b  c  d  e  f  g  h\n")

	out.WriteString("To move: ")
	out.WriteString(b.ToMove.String())
	out.WriteString("   Castling: ")
	out.WriteString(castlingString(b.CastlingRights))
	out.WriteByte('\n')

	if b.WhiteCheckmate {
		out.WriteString(paint("Checkmate - black wins\n"))
	} else if b.BlackCheckmate {
		out.WriteString(paint("Checkmate - white wins\n"))
	} else if b.WhiteCheck {
		out.WriteString(paint("White is in check\n"))
	} else if b.BlackCheck {
		out.WriteString(paint("Black is in check\n"))
	}

	return out.String()
}

// Bitboard renders a single bitboard, set squares as x.  Useful when
// debugging masks and test cases.
func Bitboard(bitboard uint64) string {
	var out strings.Builder

	for rank := 7; rank >= 0; rank-- {
		out.WriteByte(byte(rank) + 1 + '0')
		out.WriteString("  ")

		for file := 0; file < 8; file++ {
			if bitboard&(uint64(1)<<(8*rank+file)) != 0 {
				out.WriteString("x  ")
			} else {
				out.WriteString(".  ")
			}
		}
		out.WriteByte('\n')
	}
	out.WriteString("   a  b  c  d  e  f  g  h\n")

	return out.String()
}

/*
DescribeMove names the transition between a position and one of its
successors in coordinate form ("e2e4"), or as O-O / O-O-O for castling.
The squares are recovered by diffing the mover's occupancy.
*/
func DescribeMove(prev, next *board.Board) string {
	var before, after, kingBefore, kingAfter uint64
	if prev.ToMove == enum.ColorWhite {
		before, after = prev.AllWhite, next.AllWhite
		kingBefore, kingAfter = prev.WhiteKing, next.WhiteKing
	} else {
		before, after = prev.AllBlack, next.AllBlack
		kingBefore, kingAfter = prev.BlackKing, next.BlackKing
	}

	if kingBefore != kingAfter {
		if kingAfter == kingBefore<<2 {
			return "O-O"
		}
		if kingAfter == kingBefore>>2 {
			return "O-O-O"
		}
	}

	return square(before&^after) + square(after&^before)
}

func square(bit uint64) string {
	rank, file := bitutil.BitRankFile(bit)
	return enum.Square2String[rank*8+file]
}

func castlingString(rights enum.CastlingRights) string {
	var out strings.Builder
	if rights&enum.CastlingWhiteShort != 0 {
		out.WriteByte('K')
	}
	if rights&enum.CastlingWhiteLong != 0 {
		out.WriteByte('Q')
	}
	if rights&enum.CastlingBlackShort != 0 {
		out.WriteByte('k')
	}
	if rights&enum.CastlingBlackLong != 0 {
		out.WriteByte('q')
	}
	if out.Len() == 0 {
		return "-"
	}
	return out.String()
}

func paint(s string) string {
	if !config.Settings.UI.Color {
		return s
	}
	return checkColor.Sprint(s)
}
