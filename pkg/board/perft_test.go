package board_test

import (
	"testing"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/board/fen"
	"github.com/stretchr/testify/require"
)

// perft counts the exact number of leaves in the legal move tree at the given depth: the
// standard correctness oracle for move generators. See
// https://www.chessprogramming.org/Perft_Results.
func perft(state *board.GameState, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range state.LegalMoves() {
		child := state.Clone()
		if _, err := board.Do(child, m); err != nil {
			continue
		}
		nodes += perft(child, depth-1)
	}
	return nodes
}

func TestPerftInitialPosition(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	state := &board.GameState{Pos: pos, Turn: turn}

	expected := []int64{20, 400, 8902, 197281}
	if !testing.Short() {
		expected = append(expected, 4865609)
	}

	for depth, want := range expected {
		require.Equal(t, want, perft(state, depth+1), "depth %v", depth+1)
	}
}

func TestPerftKiwipete(t *testing.T) {
	// A well-known stress position exercising castling, promotion, and en passant together.
	// See: https://www.chessprogramming.org/Perft_Results#Position_2.
	pos, turn, _, _, err := fen.Decode("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	state := &board.GameState{Pos: pos, Turn: turn}

	require.Equal(t, int64(48), perft(state, 1))
	require.Equal(t, int64(2039), perft(state, 2))
}
