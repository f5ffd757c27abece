// Crabablanca is a terminal chess program: a bitboard move generator with an
// alpha-beta engine behind a small interactive command loop.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jward0/crabablanca/cli"
	"github.com/jward0/crabablanca/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	depth := flag.Int("depth", 0, "override the configured search depth (plies)")
	flag.Parse()

	if err := config.Setup(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "cannot read config %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	c := cli.New(os.Stdin, os.Stdout)
	c.SetDepth(*depth)
	c.Run()
}
