/*
Package cli implements the interactive terminal driver: a line-oriented
command loop over the current position.

Recognised verbs: exit and quit terminate the session; next adopts the
engine's best reply as the current position; preview shows the engine's best
reply without adopting it; play lets the engine play itself to the end;
white and black hand that color to the human, the engine answering for the
other side; showme and !showme toggle the display of all legal moves.  Any
other input is resolved as a short-algebraic move.
*/
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jward0/crabablanca/board"
	"github.com/jward0/crabablanca/engine"
	"github.com/jward0/crabablanca/enum"
	"github.com/jward0/crabablanca/format"
	"github.com/jward0/crabablanca/internal/config"
	mylogging "github.com/jward0/crabablanca/internal/logging"
)

var log *logging.Logger

// CLI drives one interactive session.
type CLI struct {
	board     board.Board
	depth     int
	showMoves bool
	// human is the color played by the human, or nil when the engine only
	// moves on demand.
	human *enum.Color

	in  *bufio.Scanner
	w   io.Writer
	out *message.Printer
}

// New returns a session starting from the standard position, reading
// commands from in and writing to w.  The search depth comes from the
// application settings.
func New(in io.Reader, w io.Writer) *CLI {
	if log == nil {
		log = mylogging.GetLog()
	}
	return &CLI{
		board: board.New(),
		depth: config.Settings.Search.Depth,
		in:    bufio.NewScanner(in),
		w:     w,
		out:   message.NewPrinter(language.English),
	}
}

// SetDepth overrides the configured search depth.
func (c *CLI) SetDepth(depth int) {
	if depth > 0 {
		c.depth = depth
	}
}

/*
Run executes the command loop until the session is terminated or the game
reaches checkmate.
*/
func (c *CLI) Run() {
	for {
		fmt.Fprint(c.w, format.Board(&c.board))

		if c.board.WhiteCheckmate || c.board.BlackCheckmate {
			return
		}

		if c.showMoves {
			c.printLegalMoves()
		}

		if c.human != nil && c.board.ToMove != *c.human {
			if !c.engineMove() {
				return
			}
			continue
		}

		fmt.Fprint(c.w, "> ")
		if !c.in.Scan() {
			return
		}
		input := strings.TrimSpace(c.in.Text())
		log.Debugf("command %q", input)

		switch input {
		case "":
			// Ignore blank lines.
		case "exit", "quit":
			return
		case "next":
			if !c.engineMove() {
				return
			}
		case "preview":
			c.preview()
		case "play":
			c.human = nil
			for !c.board.WhiteCheckmate && !c.board.BlackCheckmate {
				if !c.engineMove() {
					return
				}
				fmt.Fprint(c.w, format.Board(&c.board))
			}
			return
		case "white":
			white := enum.ColorWhite
			c.human = &white
		case "black":
			black := enum.ColorBlack
			c.human = &black
		case "showme":
			c.showMoves = true
		case "!showme":
			c.showMoves = false
		default:
			next, ok := c.board.ParseInput(input)
			if !ok {
				fmt.Fprintln(c.w, "Invalid or ambiguous command")
				continue
			}
			c.board = next
		}
	}
}

// engineMove searches the current position and adopts the best reply.
// Returns false when the side to move has no legal moves.
func (c *CLI) engineMove() bool {
	root := engine.NewNode(c.board)
	next, ok := root.Search(c.depth)
	if !ok {
		fmt.Fprintln(c.w, "No legal moves")
		return false
	}

	c.out.Fprintf(c.w, "%s plays %s (eval %.2f, %d nodes)\n",
		c.board.ToMove, format.DescribeMove(&c.board, &next),
		root.DeepEval, root.Size())

	c.board = next
	return true
}

// preview shows the engine's preferred reply without adopting it.
func (c *CLI) preview() {
	root := engine.NewNode(c.board)
	next, ok := root.Search(c.depth)
	if !ok {
		fmt.Fprintln(c.w, "No legal moves")
		return
	}

	c.out.Fprintf(c.w, "Engine suggests %s (eval %.2f)\n",
		format.DescribeMove(&c.board, &next), root.DeepEval)
	fmt.Fprint(c.w, format.Board(&next))
}

func (c *CLI) printLegalMoves() {
	moves := c.board.GenerateMoveList()

	names := make([]string, len(moves))
	for i := range moves {
		names[i] = format.DescribeMove(&c.board, &moves[i])
	}

	c.out.Fprintf(c.w, "%d legal moves: %s\n", len(moves), strings.Join(names, " "))
}
