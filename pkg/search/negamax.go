package search

import (
	"context"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Negamax runs a fixed-depth negamax search with alpha-beta pruning from state, returning the
// best line found from the side to move's perspective. depth is plies, not full moves. The
// search checks stop once per move considered at the root; a stop mid-search returns the best
// line found so far with Result.Stopped set.
//
// On a beta cutoff the returned score for that node is clamped to beta, regardless of whether
// an earlier sibling already set a tentative best score: the cutoff itself, not the best score
// seen, is authoritative once a refutation is found. This mirrors the original engine's
// fail-hard convention rather than the fail-soft alternative of returning the (possibly higher)
// score that triggered the cutoff.
func Negamax(ctx context.Context, state *board.GameState, depth int, stop StopSignal, feedback FeedbackSink) Result {
	var nodes uint64
	score, pv, stopped := negamax(ctx, state, depth, 0, eval.Inf.Neg(), eval.Inf, stop, &nodes, true)
	feedback.Update(depth, nodes, score, pv)

	mate := board.NoReason
	if len(pv) == 0 && !stopped {
		// A stopped search can return an empty PV merely because it was cancelled before
		// scoring any move, not because none exists; only an uncancelled empty PV means the
		// root genuinely has no legal reply.
		if state.Pos.IsChecked(state.Turn) {
			mate = board.Checkmate
		} else {
			mate = board.Stalemate
		}
	}
	return Result{PV: pv, Score: score, Nodes: nodes, Stopped: stopped, Mate: mate}
}

func negamax(ctx context.Context, state *board.GameState, depth, ply int, alpha, beta eval.Score, stop StopSignal, nodes *uint64, isRoot bool) (eval.Score, []board.MoveAction, bool) {
	*nodes++

	if depth == 0 {
		return eval.Unit(state.Turn, eval.Material(state.Pos)), nil, false
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		if state.Pos.IsChecked(state.Turn) {
			return eval.Mate(ply).Neg(), nil, false
		}
		return 0, nil, false
	}

	board.SortByPriority(moves, moveOrderingPriority(state.Pos))

	var bestPV []board.MoveAction
	best := alpha
	stopped := false

	for _, m := range moves {
		if isRoot && stop.Stopped() {
			stopped = true
			break
		}
		if contextx.IsCancelled(ctx) {
			stopped = true
			break
		}

		child := state.Clone()
		if _, err := board.Do(child, m); err != nil {
			continue // pseudo-legal filtering guarantees this never fires; skip defensively
		}

		score, childPV, childStopped := negamax(ctx, child, depth-1, ply+1, beta.Neg(), alpha.Neg(), stop, nodes, false)
		score = score.Neg()
		if childStopped {
			stopped = true
		}

		if score >= beta {
			return beta, prepend(m, childPV), stopped
		}
		if score > best {
			best = score
			bestPV = prepend(m, childPV)
			alpha = best
		}

		if stopped {
			break
		}
	}

	return best, bestPV, stopped
}

func prepend(m board.MoveAction, rest []board.MoveAction) []board.MoveAction {
	ret := make([]board.MoveAction, 0, len(rest)+1)
	ret = append(ret, m)
	return append(ret, rest...)
}

// moveOrderingPriority orders captures ahead of quiet moves, highest-value victim first, so
// alpha-beta finds cutoffs earlier. Ties preserve generation order, keeping search output
// deterministic across runs.
func moveOrderingPriority(pos *board.Position) board.MovePriorityFn {
	return func(m board.MoveAction) board.MovePriority {
		target, ok := pos.At(m.Move.To)
		if !ok {
			return 0
		}
		mover, _ := pos.At(m.Move.From)
		return board.MovePriority(eval.NominalValue(target.Kind)) - board.MovePriority(eval.NominalValue(mover.Kind))/10
	}
}
