package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward0/crabablanca/board"
)

func TestSearchDepthOne(t *testing.T) {
	// At depth one the root value is the best static evaluation over the
	// twenty children, and the chosen successor realises it.
	b := board.New()

	best := math.Inf(-1)
	for _, succ := range b.GenerateMoveList() {
		best = math.Max(best, Evaluate(&succ))
	}

	root := NewNode(b)
	next, ok := root.Search(1)

	require.True(t, ok)
	assert.InDelta(t, best, root.DeepEval, 1e-9)
	assert.InDelta(t, best, Evaluate(&next), 1e-9)
	require.NotNil(t, root.BestNextMove)
	assert.Equal(t, next, *root.BestNextMove)
}

func TestSearchFoolsMate(t *testing.T) {
	// After 1.f3 e5 2.g4 Black mates in one; at depth two the search must
	// find it and propagate the terminal score.
	b := board.ParseFEN("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")

	root := NewNode(b)
	next, ok := root.Search(2)

	require.True(t, ok)
	assert.True(t, next.WhiteCheckmate, "expected the mating move to be chosen")
	assert.True(t, math.IsInf(root.DeepEval, -1),
		"white checkmated must evaluate to -Inf, got %f", root.DeepEval)
}

func TestSearchBackRankMate(t *testing.T) {
	b := board.ParseFEN("4r1k1/8/8/8/8/8/R4PPP/6K1 b - - 0 1")

	root := NewNode(b)
	next, ok := root.Search(1)

	require.True(t, ok)
	assert.True(t, next.WhiteCheckmate)
	assert.Equal(t, true, math.IsInf(root.DeepEval, -1))
}

func TestSearchDeterministic(t *testing.T) {
	b := board.ParseFEN("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1")

	for _, depth := range []int{1, 2, 3} {
		first, ok1 := NewNode(b).Search(depth)
		second, ok2 := NewNode(b).Search(depth)

		require.True(t, ok1)
		require.True(t, ok2)
		assert.Equal(t, board.SerializeFEN(first), board.SerializeFEN(second),
			"depth %d must be deterministic", depth)
	}
}

func TestSearchReturnsLegalSuccessor(t *testing.T) {
	b := board.New()

	root := NewNode(b)
	next, ok := root.Search(2)
	require.True(t, ok)

	// The chosen board must be one of the legal successors.
	found := false
	for _, succ := range b.GenerateMoveList() {
		if succ == next {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSearchNoLegalMoves(t *testing.T) {
	// A checkmated root has nothing to search; the caller learns the
	// outcome from the board flags.
	b := board.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3")

	root := NewNode(b)
	_, ok := root.Search(3)

	assert.False(t, ok)
	assert.True(t, math.IsInf(root.DeepEval, -1))
	assert.True(t, root.Board.WhiteCheckmate)
}

func TestSearchTreeStructure(t *testing.T) {
	b := board.New()

	root := NewNode(b)
	root.Search(2)

	// The root owns its children; every child points back at its parent.
	require.NotEmpty(t, root.Children)
	for _, child := range root.Children {
		assert.Equal(t, root, child.Parent)
		assert.Equal(t, 1, child.Depth)
	}
	assert.Greater(t, root.Size(), len(root.Children))
}

func BenchmarkSearchDepth2(b *testing.B) {
	pos := board.New()

	for b.Loop() {
		NewNode(pos).Search(2)
	}
}
