// perft.go implements a debugging tool for the move generator.  It walks the
// tree of legal successor positions to a given depth and counts the visited
// leaf nodes; the counts are compared against predetermined values to find
// invalid branches in move generation.
//
// See https://www.chessprogramming.org/Perft_Results

package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jward0/crabablanca/board"
)

var out = message.NewPrinter(language.English)

func perft(b board.Board, depth int) int {
	moves := b.GenerateMoveList()

	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for i := range moves {
		nodes += perft(moves[i], depth-1)
	}
	return nodes
}

func main() {
	depth := flag.Int("depth", 4, "perft depth in plies")
	fen := flag.String("fen", board.InitialPos, "position to search from")
	cpuprofile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	b := board.ParseFEN(*fen)

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		nodes := perft(b, d)
		out.Printf("perft(%d) = %d nodes in %v\n", d, nodes, time.Since(start))
	}
}
