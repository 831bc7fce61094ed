// chesscore is a movegen debugging tool in the style of perft. See:
// https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/herohde/chesscore/pkg/board"
	"github.com/herohde/chesscore/pkg/fen"
	"github.com/herohde/chesscore/pkg/movegen"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	depth     = flag.Int("depth", 4, "Search depth")
	position  = flag.String("fen", "", "Start position (default to standard)")
	strict    = flag.Bool("strict", false, "Parse the FEN in strict mode")
	divide    = flag.Bool("divide", false, "Divide counts by initial move")
	printVers = flag.Bool("version", false, "Print the version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `usage: chesscore [options]

chesscore counts legal move paths from a position, for validating the move
generator against known perft results.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *printVers {
		fmt.Printf("chesscore %v\n", version)
		return
	}

	if *position == "" {
		*position = fen.Initial
	}

	decode := fen.Decode
	if *strict {
		decode = fen.DecodeStrict
	}

	pos, _, _, err := decode(*position)
	if err != nil {
		logw.Exitf(ctx, "invalid fen %q: %v", *position, err)
	}
	if !pos.IsLegal() {
		logw.Exitf(ctx, "fen %q decodes to an illegal position", *position)
	}

	logw.Infof(ctx, "counting legal move paths for %q to depth %v", *position, *depth)

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(pos, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

func perft(pos *board.Position, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range movegen.GenerateMoves(pos) {
		next := pos.Copy()
		movegen.Play(next, m)

		count := perft(next, depth-1, false)
		if d {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
