package board

import (
	"testing"

	"github.com/jward0/crabablanca/enum"
)

func TestParseInputPawnMoves(t *testing.T) {
	b := New()

	next, ok := b.ParseInput("e4")
	if !ok {
		t.Fatalf("expected e4 to resolve")
	}
	if next.WhitePawns&enum.E4 == 0 || next.WhitePawns&enum.E2 != 0 {
		t.Fatalf("expected the e-pawn on e4")
	}

	next, ok = b.ParseInput("e3")
	if !ok {
		t.Fatalf("expected e3 to resolve")
	}
	if next.WhitePawns&enum.E3 == 0 {
		t.Fatalf("expected the e-pawn on e3")
	}
}

func TestParseInputPawnCapture(t *testing.T) {
	b := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")

	next, ok := b.ParseInput("exd5")
	if !ok {
		t.Fatalf("expected exd5 to resolve")
	}
	if next.WhitePawns&enum.D5 == 0 || next.BlackPawns&enum.D5 != 0 {
		t.Fatalf("expected the white pawn to capture on d5")
	}

	// The capture marker against an empty square is malformed.
	if _, ok := b.ParseInput("exf5"); ok {
		t.Fatalf("exf5 must be rejected: nothing to capture")
	}
	// A plain pawn push onto an occupied square is malformed.
	if _, ok := b.ParseInput("d5"); ok {
		t.Fatalf("d5 must be rejected: the square is occupied")
	}
}

func TestParseInputPieceMoves(t *testing.T) {
	b := New()

	next, ok := b.ParseInput("Nf3")
	if !ok {
		t.Fatalf("expected Nf3 to resolve")
	}
	if next.WhiteKnights != enum.B1|enum.F3 {
		t.Fatalf("expected knights on b1 and f3, got %#x", next.WhiteKnights)
	}

	// The queen cannot reach d8 through its own pawns.
	if _, ok := b.ParseInput("Qd8"); ok {
		t.Fatalf("Qd8 must be rejected: no queen reaches d8")
	}
}

func TestParseInputDisambiguation(t *testing.T) {
	// Two rooks converge on d1: a bare rook move is ambiguous, a file
	// disambiguator resolves it.
	b := ParseFEN("4k3/8/8/8/8/4K3/8/R6R w - - 0 1")

	if _, ok := b.ParseInput("Rd1"); ok {
		t.Fatalf("Rd1 must be rejected as ambiguous")
	}

	next, ok := b.ParseInput("Rad1")
	if !ok {
		t.Fatalf("expected Rad1 to resolve")
	}
	if next.WhiteRooks != enum.D1|enum.H1 {
		t.Fatalf("expected rooks on d1 and h1, got %#x", next.WhiteRooks)
	}

	next, ok = b.ParseInput("Rhd1")
	if !ok {
		t.Fatalf("expected Rhd1 to resolve")
	}
	if next.WhiteRooks != enum.A1|enum.D1 {
		t.Fatalf("expected rooks on a1 and d1, got %#x", next.WhiteRooks)
	}

	// Rooks doubled on a file disambiguate by rank.
	b2 := ParseFEN("4k3/8/8/R7/8/8/8/R3K3 w - - 0 1")

	if _, ok := b2.ParseInput("Ra3"); ok {
		t.Fatalf("Ra3 must be rejected as ambiguous")
	}
	next, ok = b2.ParseInput("R1a3")
	if !ok {
		t.Fatalf("expected R1a3 to resolve")
	}
	if next.WhiteRooks != enum.A3|enum.A5 {
		t.Fatalf("expected rooks on a3 and a5, got %#x", next.WhiteRooks)
	}
}

func TestParseInputCastling(t *testing.T) {
	b := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")

	next, ok := b.ParseInput("O-O")
	if !ok {
		t.Fatalf("expected O-O to resolve")
	}
	if next.WhiteKing != enum.G1 || next.WhiteRooks&enum.F1 == 0 {
		t.Fatalf("expected the castled position")
	}

	if _, ok := b.ParseInput("O-O-O"); ok {
		t.Fatalf("O-O-O must be rejected without the queenside right")
	}
}

func TestParseInputRejectsMalformed(t *testing.T) {
	b := New()

	testcases := []string{
		"",
		"e",
		"e9",
		"i4",
		"zz9",
		"Nxe4",    // nothing to capture
		"Ke2e4",   // no king reaches e4
		"\xc3\xa94", // non-ASCII
		"e4 ",
		"exd5",  // no white pawn attacks d5 from the start
		"toolong",
	}

	for _, input := range testcases {
		if _, ok := b.ParseInput(input); ok {
			t.Fatalf("%q must be rejected", input)
		}
	}
}

func TestParseInputRejectsIllegal(t *testing.T) {
	// The e2 pawn is pinned against the king by the rook on e7: a pin-line
	// push resolves, leaving the pin is rejected at the apply gate.
	b := ParseFEN("4k3/4r3/8/8/8/8/3PP3/4K3 w - - 0 1")

	if _, ok := b.ParseInput("e3"); !ok {
		t.Fatalf("expected e3 to stay within the pin line")
	}

	// A king move into the rook's file is rejected.
	b2 := ParseFEN("4k3/4r3/8/8/8/8/8/3K4 w - - 0 1")
	if _, ok := b2.ParseInput("Ke1"); ok {
		t.Fatalf("Ke1 must be rejected: the king moves into check")
	}
}

func BenchmarkParseInput(b *testing.B) {
	pos := New()

	for b.Loop() {
		pos.ParseInput("Nf3")
	}
}
