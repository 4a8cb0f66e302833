package search_test

import (
	"context"
	"testing"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/board/fen"
	"github.com/ochess/chusst/pkg/eval"
	"github.com/ochess/chusst/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(t *testing.T, f string) *board.GameState {
	t.Helper()
	pos, turn, _, _, err := fen.Decode(f)
	require.NoError(t, err)
	return &board.GameState{Pos: pos, Turn: turn}
}

func TestNegamaxFindsMateInOne(t *testing.T) {
	state := newState(t, "8/8/8/8/7k/1q6/2q5/K7 b - - 0 1")

	result := search.Negamax(context.Background(), state, 2, search.Never, search.NoopFeedback{})

	best, ok := result.Best()
	require.True(t, ok)
	// Qb2 and Qd1 both mate; the first mating move in generation order (Qc2-d1) is kept.
	assert.Equal(t, "c2d1", best.String())

	if ply, ok := eval.IsMate(result.Score); ok {
		assert.LessOrEqual(t, ply, 1)
	} else {
		t.Fatalf("score %v is not reported as mate", result.Score)
	}
}

func TestNegamaxReportsCheckmate(t *testing.T) {
	// White to move, already mated: no legal replies and the king is attacked. The black king
	// is kept far from white's so the position itself stays legal (kings may never be adjacent).
	state := newState(t, "8/8/8/8/7k/8/1qq5/K7 w - - 0 1")

	result := search.Negamax(context.Background(), state, 2, search.Never, search.NoopFeedback{})

	_, ok := result.Best()
	assert.False(t, ok)
	assert.Equal(t, board.Checkmate, result.Mate)
}

func TestNegamaxReportsStalemate(t *testing.T) {
	// Black king h8 boxed in by the white king on f7 and pawn on g6; Black to move, not in
	// check, and has no legal move: a textbook stalemate.
	state := newState(t, "7k/5K2/6P1/8/8/8/8/8 b - - 0 1")

	result := search.Negamax(context.Background(), state, 2, search.Never, search.NoopFeedback{})

	_, ok := result.Best()
	assert.False(t, ok)
	assert.Equal(t, board.Stalemate, result.Mate)
}

func TestNegamaxDeterministic(t *testing.T) {
	state := newState(t, fen.Initial)

	r1 := search.Negamax(context.Background(), state.Clone(), 3, search.Never, search.NoopFeedback{})
	r2 := search.Negamax(context.Background(), state.Clone(), 3, search.Never, search.NoopFeedback{})

	assert.Equal(t, r1.Score, r2.Score)
	assert.Equal(t, r1.PV, r2.PV)
	assert.Equal(t, r1.Nodes, r2.Nodes)
}

func TestNegamaxCancellation(t *testing.T) {
	state := newState(t, fen.Initial)

	stop := search.NewAtomicStopSignal()
	stop.Stop()

	result := search.Negamax(context.Background(), state, 4, stop, search.NoopFeedback{})
	assert.True(t, result.Stopped)
	// A position with legal moves that was cancelled before scoring any of them must not be
	// reported as mate: cancellation is advisory, not a terminal result.
	assert.Equal(t, board.NoReason, result.Mate)
}
