// perft is a movegen debugging tool: it counts the exact number of leaf nodes in the legal
// move tree at each depth from a position, the standard correctness oracle for move
// generators. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Max depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Print per-root-move counts at the final depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, turn, _, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}
	state := &board.GameState{Pos: pos, Turn: turn}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(state, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

func perft(state *board.GameState, depth int, divideRoot bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range state.LegalMoves() {
		child := state.Clone()
		if _, err := board.Do(child, m); err != nil {
			continue
		}
		count := perft(child, depth-1, false)
		if divideRoot {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
