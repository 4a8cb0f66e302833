package board_test

import (
	"testing"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toMailbox converts every placed piece of a Position into the equivalent Mailbox, so the
// square-scanning safety oracle can be exercised against the same position as the bitboard one.
func toMailbox(t *testing.T, pos *board.Position) *board.Mailbox {
	t.Helper()
	var placements []board.Placement
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		if p, ok := pos.At(sq); ok {
			placements = append(placements, board.Placement{Square: sq, Color: p.Color, Piece: p.Kind})
		}
	}
	m, err := board.NewMailbox(placements)
	require.NoError(t, err)
	return m
}

func TestIsAttackedScanAgreesWithBitboardOracle(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/7k/1q6/2q5/K7 b - - 0 1",
		"7k/5K2/6P1/8/8/8/8/8 b - - 0 1",
	}

	for _, f := range positions {
		pos, _, _, _, err := fen.Decode(f)
		require.NoError(t, err)
		mb := toMailbox(t, pos)

		for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
			for _, c := range []board.Color{board.White, board.Black} {
				assert.Equal(t, pos.IsAttacked(c, sq), board.IsAttackedScan(mb, c, sq),
					"fen=%v sq=%v color=%v", f, sq, c)
			}
		}
	}
}
