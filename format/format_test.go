package format

import (
	"strings"
	"testing"

	"github.com/jward0/crabablanca/board"
	"github.com/jward0/crabablanca/enum"
)

func TestDescribeMove(t *testing.T) {
	b := board.New()

	next, ok := b.ApplyMove(enum.E2, enum.E4)
	if !ok {
		t.Fatalf("expected e4 to be legal")
	}
	if got := DescribeMove(&b, &next); got != "e2e4" {
		t.Fatalf("expected e2e4 got %s", got)
	}

	castled := board.ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	next, ok = castled.ParseInput("O-O")
	if !ok {
		t.Fatalf("expected O-O to be legal")
	}
	if got := DescribeMove(&castled, &next); got != "O-O" {
		t.Fatalf("expected O-O got %s", got)
	}
}

func TestBoardRendering(t *testing.T) {
	b := board.New()

	out := Board(&b)
	if !strings.Contains(out, "a  b  c  d  e  f  g  h") {
		t.Fatalf("missing the file legend:\n%s", out)
	}
	if !strings.Contains(out, "To move: white") {
		t.Fatalf("missing the side to move:\n%s", out)
	}
	if !strings.Contains(out, "Castling: KQkq") {
		t.Fatalf("missing the castling rights:\n%s", out)
	}
}

func TestBitboardRendering(t *testing.T) {
	out := Bitboard(enum.A1 | enum.H8)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 8 ranks plus the legend, got %d lines", len(lines))
	}
	// h8 is the last square of the top rank, a1 the first of the bottom one.
	if !strings.HasSuffix(strings.TrimSpace(lines[0]), "x") {
		t.Fatalf("h8 not set in:\n%s", out)
	}
	if !strings.HasPrefix(lines[7], "1  x") {
		t.Fatalf("a1 not set in:\n%s", out)
	}
}
