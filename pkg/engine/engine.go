// Package engine exposes the playable chess engine: a mutable game, move application, legal
// move queries, and fixed-depth search.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/ochess/chusst/pkg/board"
	"github.com/ochess/chusst/pkg/board/fen"
	"github.com/ochess/chusst/pkg/eval"
	"github.com/ochess/chusst/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

const (
	// MinDepth and MaxDepth bound the search depth a caller may request.
	MinDepth = 2
	MaxDepth = 5

	// DefaultDepth is used when no depth is specified.
	DefaultDepth = 4
)

// Options are engine creation options.
type Options struct {
	// Depth is the default search depth, clamped to [MinDepth, MaxDepth].
	Depth int
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v}", o.Depth)
}

// ClampDepth constrains a requested depth to the supported range.
func ClampDepth(depth int) int {
	switch {
	case depth < MinDepth:
		return MinDepth
	case depth > MaxDepth:
		return MaxDepth
	default:
		return depth
	}
}

// Engine encapsulates game-playing logic: a single game in progress, its history, and search.
type Engine struct {
	name, author string

	zobristSeed int64
	zt          *board.ZobristTable
	opts        Options

	b  *board.Board
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets the default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithZobristSeed fixes the seed used to derive the Zobrist hash table, instead of the default
// 0. Two engines constructed with the same seed assign identical hashes to identical positions,
// which test fixtures rely on; production callers have no reason to set this.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) {
		e.zobristSeed = seed
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		opts:   Options{Depth: DefaultDepth},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.opts.Depth = ClampDepth(e.opts.Depth)
	e.zt = board.NewZobristTable(e.zobristSeed)

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

// SetDepth updates the default search depth, clamped to [MinDepth, MaxDepth].
func (e *Engine) SetDepth(depth int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = ClampDepth(depth)
}

// Board returns a forked board, safe for the caller to inspect or search without locking out
// further engine calls.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Fork()
}

// Position returns the current position in FEN format.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position(), e.b.Turn(), e.b.NoProgress(), e.b.FullMoves())
}

// Reset resets the engine to the position given in FEN format.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	if err != nil {
		return err
	}
	state := &board.GameState{Pos: pos, Turn: turn}
	e.b = board.NewBoard(e.zt, state, noprogress, fullmoves)

	logw.Infof(ctx, "New board: %v", e.b)
	return nil
}

// LegalMoves returns every legal move in the current position.
func (e *Engine) LegalMoves() []board.MoveAction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.State().LegalMoves()
}

// LegalMovesFrom returns the legal moves originating from a single square.
func (e *Engine) LegalMovesFrom(from board.Square) []board.MoveAction {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.State().LegalMovesFrom(from)
}

// Move applies the given move, given in long algebraic coordinate notation (e.g. "e2e4" or
// "a7a8q"). Returns the SAN name of the move as played.
func (e *Engine) Move(ctx context.Context, move string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	candidate, err := board.ParseMoveAction(move)
	if err != nil {
		return "", fmt.Errorf("invalid move: %w", err)
	}

	legal := e.b.State().LegalMoves()
	var matched board.MoveAction
	found := false
	for _, m := range legal {
		if m.Equals(candidate) {
			matched = m
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("illegal move: %v", candidate)
	}

	before := e.b.Position()
	side := e.b.Turn()

	record, ok := e.b.PushMove(matched)
	if !ok {
		return "", fmt.Errorf("illegal move: %v", matched)
	}

	after := e.b.State()
	opponentMoves := after.LegalMoves()
	san := board.SANName(before, side, record, legal, after.Pos.IsChecked(after.Turn), len(opponentMoves) > 0)

	logw.Infof(ctx, "Move %v (%v): %v", matched, san, e.b)
	return san, nil
}

// TakeBack undoes the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.b.PopMove()
	if !ok {
		return fmt.Errorf("no move to take back")
	}

	logw.Infof(ctx, "Takeback %v", m)
	return nil
}

// Search runs a fixed-depth search from the current position and returns the best line found.
// If depth is zero, the engine's default depth is used.
func (e *Engine) Search(ctx context.Context, depth int, stop search.StopSignal, feedback search.FeedbackSink) search.Result {
	e.mu.Lock()
	state := e.b.State().Clone()
	if depth == 0 {
		depth = e.opts.Depth
	}
	e.mu.Unlock()

	if feedback == nil {
		feedback = search.NoopFeedback{}
	}
	if stop == nil {
		stop = search.Never
	}

	depth = ClampDepth(depth)
	result := search.Negamax(ctx, state, depth, stop, feedback)

	logw.Infof(ctx, "Search depth=%v: %v", depth, result)
	return result
}

// Evaluate returns the static material evaluation of the current position, from the side to
// move's perspective.
func (e *Engine) Evaluate() eval.Score {
	e.mu.Lock()
	defer e.mu.Unlock()

	return eval.Unit(e.b.Turn(), eval.Material(e.b.Position()))
}
