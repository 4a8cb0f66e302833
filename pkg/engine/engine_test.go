package engine_test

import (
	"context"
	"testing"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/engine"
	"github.com/ochess/chusst/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*engine.Engine, context.Context) {
	t.Helper()
	ctx := context.Background()
	return engine.New(ctx, "test", "test"), ctx
}

func playMoves(t *testing.T, e *engine.Engine, ctx context.Context, moves ...string) {
	t.Helper()
	for _, m := range moves {
		_, err := e.Move(ctx, m)
		require.NoError(t, err, "move %v", m)
	}
}

func TestInitialPositionLegalMoveCount(t *testing.T) {
	e, _ := newEngine(t)
	assert.Len(t, e.LegalMoves(), 20)
}

func TestEnPassantCapture(t *testing.T) {
	e, ctx := newEngine(t)
	playMoves(t, e, ctx, "e2e4", "a7a6", "e4e5", "d7d5")

	san, err := e.Move(ctx, "e5d6")
	require.NoError(t, err)
	assert.Equal(t, "exd6", san)

	pos := e.Board().Position()

	p, ok := pos.At(board.D6)
	require.True(t, ok)
	assert.Equal(t, "P", p.String())

	_, ok = pos.At(board.D5)
	assert.False(t, ok, "captured en passant pawn should be removed from d5")
}

func TestKingsideCastling(t *testing.T) {
	e, ctx := newEngine(t)
	playMoves(t, e, ctx, "e2e3", "a7a6", "f1e2", "b7b6", "g1h3", "c7c6")

	san, err := e.Move(ctx, "e1g1")
	require.NoError(t, err)
	assert.Equal(t, "O-O", san)

	b := e.Board()
	p, ok := b.Position().At(board.G1)
	require.True(t, ok)
	assert.Equal(t, "K", p.String())

	rook, ok := b.Position().At(board.F1)
	require.True(t, ok)
	assert.Equal(t, "R", rook.String())
}

func TestPromotionChoices(t *testing.T) {
	tests := []struct {
		move  string
		piece string
	}{
		{"g7h8q", "Q"},
		{"g7h8n", "N"},
		{"g7h8b", "B"},
		{"g7h8r", "R"},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			e, ctx := newEngine(t)
			require.NoError(t, e.Reset(ctx, "7r/6P1/8/8/8/8/8/4K2k w - - 0 1"))

			san, err := e.Move(ctx, tt.move)
			require.NoError(t, err)
			assert.Contains(t, san, "="+tt.piece)

			b := e.Board()
			p, ok := b.Position().At(board.H8)
			require.True(t, ok)
			assert.Equal(t, tt.piece, p.String())
		})
	}
}

func TestBackRankCheckmate(t *testing.T) {
	e, ctx := newEngine(t)
	require.NoError(t, e.Reset(ctx, "8/8/8/8/7k/1q6/2q5/K7 b - - 0 1"))

	san, err := e.Move(ctx, "b3b2")
	require.NoError(t, err)
	assert.Equal(t, "#", san[len(san)-1:])

	assert.Empty(t, e.LegalMoves())
}

func TestIllegalMoveRejected(t *testing.T) {
	e, ctx := newEngine(t)
	before := e.Position()

	_, err := e.Move(ctx, "e2e5")
	assert.Error(t, err)
	assert.Equal(t, before, e.Position())
}

func TestSearchFindsMateInOne(t *testing.T) {
	e, ctx := newEngine(t)
	require.NoError(t, e.Reset(ctx, "8/8/8/8/7k/1q6/2q5/K7 b - - 0 1"))

	result := e.Search(ctx, 2, search.Never, search.NoopFeedback{})
	best, ok := result.Best()
	require.True(t, ok)
	// Qb2 and Qd1 both mate; the first mating move in generation order (Qc2-d1) is kept.
	assert.Equal(t, "c2d1", best.String())
}

func TestSearchDeterministic(t *testing.T) {
	e, ctx := newEngine(t)

	r1 := e.Search(ctx, 3, search.Never, search.NoopFeedback{})
	r2 := e.Search(ctx, 3, search.Never, search.NoopFeedback{})

	assert.Equal(t, r1.Score, r2.Score)
	assert.Equal(t, r1.PV, r2.PV)
}

func TestWithZobristSeedIsReproducible(t *testing.T) {
	ctx := context.Background()
	e1 := engine.New(ctx, "test", "test", engine.WithZobristSeed(42))
	e2 := engine.New(ctx, "test", "test", engine.WithZobristSeed(42))

	playMoves(t, e1, ctx, "e2e4")
	playMoves(t, e2, ctx, "e2e4")

	assert.Equal(t, e1.Position(), e2.Position())
	// Board.String includes the current position's Zobrist hash.
	assert.Equal(t, e1.Board().String(), e2.Board().String())
}
