// Package search implements fixed-depth negamax search with alpha-beta pruning.
package search

import (
	"fmt"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/eval"
)

// Result is the outcome of a fixed-depth search: the best line found, its score from the
// searching side's perspective, the number of nodes visited, and whether the search was cut
// short by a stop signal before reaching the requested depth.
type Result struct {
	PV      []board.MoveAction
	Score   eval.Score
	Nodes   uint64
	Stopped bool

	// Mate is board.Checkmate or board.Stalemate if the root position had no legal move
	// (PV is empty), and board.NoReason otherwise. The search itself only ever sees this at a
	// leaf; at the root it is filled in by Negamax so callers need not re-probe the safety
	// oracle themselves.
	Mate board.Reason
}

// Best returns the first move of the principal variation, and false if the PV is empty (no
// legal moves).
func (r Result) Best() (board.MoveAction, bool) {
	if len(r.PV) == 0 {
		return board.MoveAction{}, false
	}
	return r.PV[0], true
}

func (r Result) String() string {
	return fmt.Sprintf("score=%v nodes=%v stopped=%v mate=%v pv=%v", r.Score, r.Nodes, r.Stopped, r.Mate, r.PV)
}
