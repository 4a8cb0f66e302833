package board_test

import (
	"testing"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZobristHashStableAcrossTables(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	z1 := board.NewZobristTable(0)
	z2 := board.NewZobristTable(0)

	assert.Equal(t, z1.Hash(pos, turn), z2.Hash(pos, turn), "same seed must produce the same hash")
}

func TestZobristHashDistinguishesPositions(t *testing.T) {
	zt := board.NewZobristTable(0)

	p1, t1, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	p2, t2, _, _, err := fen.Decode("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)

	assert.NotEqual(t, zt.Hash(p1, t1), zt.Hash(p2, t2))
}

func TestZobristHashMatchesAfterUndo(t *testing.T) {
	zt := board.NewZobristTable(0)
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	state := &board.GameState{Pos: pos, Turn: turn}
	b := board.NewBoard(zt, state, 0, 1)

	before := zt.Hash(b.Position(), b.Turn())

	moves := b.State().LegalMoves()
	require.NotEmpty(t, moves)
	_, ok := b.PushMove(moves[0])
	require.True(t, ok)

	_, ok = b.PopMove()
	require.True(t, ok)

	assert.Equal(t, before, zt.Hash(b.Position(), b.Turn()))
}
