/*
Package engine implements the game-tree search: a static evaluator and a
depth-limited alpha-beta minimax over successor Boards.

The tree is owned top-down; each Node owns its children and holds a
non-owning back-reference to its parent.  A fresh tree is allocated per
search and dropped when the search returns.
*/
package engine

import (
	"math"

	"github.com/op/go-logging"

	"github.com/jward0/crabablanca/board"
	"github.com/jward0/crabablanca/enum"
	mylogging "github.com/jward0/crabablanca/internal/logging"
)

var log *logging.Logger

/*
Node is one position in the search tree.  DeepEval holds the minimax value
established below the node; until the node is searched it equals StaticEval.
BestNextMove points at the child board realising DeepEval.
*/
type Node struct {
	Depth        int
	Board        board.Board
	StaticEval   float64
	DeepEval     float64
	BestNextMove *board.Board
	Parent       *Node
	Children     []*Node
}

// NewNode returns a fresh search tree root wrapping the given position.
func NewNode(b board.Board) *Node {
	if log == nil {
		log = mylogging.GetLog()
	}
	static := Evaluate(&b)
	return &Node{
		Board:      b,
		StaticEval: static,
		DeepEval:   static,
	}
}

/*
Search fills the tree below the root to the given depth with alpha-beta
pruned minimax, White maximising, and returns the root player's best
immediate successor.  ok == false means the side to move has no legal moves,
or depth is zero so no successor was examined; in the first case the caller
learns the outcome from the checkmate flags of the root board.

At a fixed depth the search is deterministic: the same root board always
selects the same successor.
*/
func (n *Node) Search(depth int) (board.Board, bool) {
	n.alphaBeta(depth, math.Inf(-1), math.Inf(1))

	log.Debugf("searched %d nodes to depth %d, eval %.2f", n.Size(), depth, n.DeepEval)

	if n.BestNextMove == nil {
		return board.Board{}, false
	}
	return *n.BestNextMove, true
}

/*
alphaBeta recursively expands the node to the given remaining depth and
returns its minimax value.  Children are generated in the deterministic
order of GenerateMoveList; siblings are pruned as soon as the running best
crosses the window bound, and the narrowed window is passed down.
*/
func (n *Node) alphaBeta(remaining int, alpha, beta float64) float64 {
	if remaining == 0 {
		n.DeepEval = n.StaticEval
		return n.DeepEval
	}

	moves := n.Board.GenerateMoveList()
	if len(moves) == 0 {
		// Checkmate (or no moves at all): the static evaluation already
		// carries the terminal override.
		n.DeepEval = n.StaticEval
		return n.DeepEval
	}

	white := n.Board.ToMove == enum.ColorWhite
	best := math.Inf(1)
	if white {
		best = math.Inf(-1)
	}
	var bestBoard *board.Board

	for i := range moves {
		child := &Node{
			Depth:      n.Depth + 1,
			Board:      moves[i],
			StaticEval: Evaluate(&moves[i]),
			Parent:     n,
		}
		child.DeepEval = child.StaticEval
		n.Children = append(n.Children, child)

		eval := child.alphaBeta(remaining-1, alpha, beta)

		if white {
			if eval > best || bestBoard == nil {
				best, bestBoard = eval, &child.Board
			}
			alpha = math.Max(alpha, best)
			if best >= beta {
				break
			}
		} else {
			if eval < best || bestBoard == nil {
				best, bestBoard = eval, &child.Board
			}
			beta = math.Min(beta, best)
			if best <= alpha {
				break
			}
		}
	}

	n.DeepEval = best
	n.BestNextMove = bestBoard
	return best
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node) Size() int {
	s := 1
	for _, child := range n.Children {
		s += child.Size()
	}
	return s
}
