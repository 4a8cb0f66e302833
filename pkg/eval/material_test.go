package eval_test

import (
	"testing"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/board/fen"
	"github.com/ochess/chusst/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialInitialPositionIsBalanced(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, eval.Score(0), eval.Material(pos))
}

func TestMaterialFavorsExtraPiece(t *testing.T) {
	pieces := []board.Placement{
		{Square: board.E1, Color: board.White, Piece: board.King},
		{Square: board.E8, Color: board.Black, Piece: board.King},
		{Square: board.D1, Color: board.White, Piece: board.Queen},
	}
	pos, err := board.NewPosition(pieces, 0, board.ZeroSquare)
	require.NoError(t, err)

	assert.Equal(t, eval.NominalValue(board.Queen), eval.Material(pos))
}

func TestUnitFlipsForBlack(t *testing.T) {
	assert.Equal(t, eval.Score(100), eval.Unit(board.White, 100))
	assert.Equal(t, eval.Score(-100), eval.Unit(board.Black, 100))
}
