// Package board contains the chess board representation, move generation, and game history
// bookkeeping.
package board

import "fmt"

const (
	repetition3Limit   = 3
	repetition5Limit   = 5
	noprogressPlyLimit = 100
)

type node struct {
	state      *GameState
	hash       ZobristHash
	noprogress int

	nextMove   MoveAction // valid only if next != nil
	nextRecord MoveRecord
	next       *node
	prev       *node
}

// Board tracks a GameState plus the history of positions needed to correctly adjudicate draws
// by repetition and the no-progress rule. Not thread-safe.
type Board struct {
	zt          *ZobristTable
	repetitions map[ZobristHash]int

	fullmoves int
	result    Result
	current   *node
}

// NewBoard wraps a GameState in history bookkeeping, given the starting no-progress ply count
// and full-move number (as carried by a FEN record).
func NewBoard(zt *ZobristTable, state *GameState, noprogress, fullmoves int) *Board {
	current := &node{
		state:      state,
		noprogress: noprogress,
		hash:       zt.Hash(state.Pos, state.Turn),
	}

	return &Board{
		zt:          zt,
		repetitions: map[ZobristHash]int{current.hash: 1},
		fullmoves:   fullmoves,
		current:     current,
	}
}

// Fork branches off a new board, sharing the node history for past positions. If forked, the
// shared history must not be mutated via PopMove, since forward links might then go stale.
func (b *Board) Fork() *Board {
	fork := &Board{
		zt:          b.zt,
		repetitions: map[ZobristHash]int{},
		fullmoves:   b.fullmoves,
		result:      b.result,
		current: &node{
			state:      b.current.state.Clone(),
			hash:       b.current.hash,
			noprogress: b.current.noprogress,
			prev:       b.current.prev,
		},
	}
	for k, v := range b.repetitions {
		fork.repetitions[k] = v
	}
	return fork
}

// State returns the current game state.
func (b *Board) State() *GameState {
	return b.current.state
}

func (b *Board) Position() *Position {
	return b.current.state.Pos
}

func (b *Board) Turn() Color {
	return b.current.state.Turn
}

func (b *Board) NoProgress() int {
	return b.current.noprogress
}

func (b *Board) FullMoves() int {
	return b.fullmoves
}

func (b *Board) Result() Result {
	return b.result
}

// PushMove attempts to play a legal move. Returns the resulting MoveRecord and true iff the
// move was legal; on false the board is unchanged.
func (b *Board) PushMove(a MoveAction) (MoveRecord, bool) {
	if b.result.Reason == Checkmate || b.result.Reason == Stalemate {
		return MoveRecord{}, false // no legal moves
	}

	legal := false
	for _, c := range b.current.state.LegalMoves() {
		if c.Equals(a) {
			legal = true
			break
		}
	}
	if !legal {
		return MoveRecord{}, false
	}

	next := b.current.state.Clone()
	record, err := Do(next, a)
	if err != nil {
		return MoveRecord{}, false
	}

	n := &node{
		state:      next,
		hash:       b.zt.Hash(next.Pos, next.Turn),
		noprogress: updateNoProgress(b.current.noprogress, record),
		prev:       b.current,
	}

	b.current.next = n
	b.current.nextMove = a
	b.current.nextRecord = record
	b.current = n

	if b.current.state.Turn == White {
		b.fullmoves++
	}

	b.repetitions[b.current.hash]++
	b.adjudicateDraws(record)

	return record, true
}

func (b *Board) adjudicateDraws(record MoveRecord) {
	if b.repetitions[b.current.hash] >= repetition3Limit {
		actual := b.identicalPositionCount()
		switch {
		case actual >= repetition5Limit:
			b.result = Result{Outcome: Draw, Reason: Repetition5}
		case actual >= repetition3Limit:
			b.result = Result{Outcome: Draw, Reason: Repetition3}
		}
	}

	if b.current.noprogress >= noprogressPlyLimit {
		b.result = Result{Outcome: Draw, Reason: NoProgress}
	}

	if record.IsCapture() || record.Extra == PromotionExtra {
		if b.current.state.Pos.HasInsufficientMaterial() {
			b.result = Result{Outcome: Draw, Reason: InsufficientMaterial}
		}
	}
}

// PopMove undoes the last move. Returns the undone MoveAction and true iff there was one.
func (b *Board) PopMove() (MoveAction, bool) {
	if b.current.prev == nil {
		return MoveAction{}, false
	}

	b.repetitions[b.current.hash]--
	b.result = Result{} // a legal move was made, so not terminal
	if b.current.state.Turn == White {
		b.fullmoves--
	}

	prev := b.current.prev
	m := prev.nextMove
	prev.next = nil
	b.current = prev
	return m, true
}

// AdjudicateNoLegalMoves adjudicates the position assuming no legal moves exist: the result is
// then either checkmate or stalemate, depending on whether the side to move is in check.
func (b *Board) AdjudicateNoLegalMoves() Result {
	turn := b.current.state.Turn
	result := Result{Outcome: Draw, Reason: Stalemate}
	if b.current.state.Pos.IsChecked(turn) {
		result = Result{Outcome: Loss(turn), Reason: Checkmate}
	}
	b.Adjudicate(result)
	return result
}

// Adjudicate sets the result directly, e.g. by resignation or agreement.
func (b *Board) Adjudicate(result Result) {
	b.result = result
}

func (b *Board) identicalPositionCount() int {
	ret := 1
	cur := b.current
	tmp := cur.prev

	for tmp != nil {
		if tmp.hash == cur.hash && tmp.state.Turn == cur.state.Turn && samePosition(tmp.state.Pos, cur.state.Pos) {
			ret++
		}
		tmp = tmp.prev
	}
	return ret
}

func samePosition(a, b *Position) bool {
	return *a == *b
}

// LastMove returns the last move played and its record, if any.
func (b *Board) LastMove() (MoveAction, MoveRecord, bool) {
	if b.current.prev != nil {
		return b.current.prev.nextMove, b.current.prev.nextRecord, true
	}
	return MoveAction{}, MoveRecord{}, false
}

// HasCastled returns true iff color c has castled at some point in this game's history.
func (b *Board) HasCastled(c Color) bool {
	for cur := b.current.prev; cur != nil; cur = cur.prev {
		if cur.nextRecord.Mover.Color == c &&
			(cur.nextRecord.Extra == CastleKingside || cur.nextRecord.Extra == CastleQueenside) {
			return true
		}
	}
	return false
}

func (b *Board) String() string {
	return fmt.Sprintf("board{state=%v, hash=%x (%v) noprogress=%v, fullmoves=%v, result=%v}",
		b.current.state, b.current.hash, b.repetitions[b.current.hash], b.current.noprogress, b.fullmoves, b.result)
}

func updateNoProgress(old int, record MoveRecord) int {
	if record.IsCapture() || record.Mover.Kind == Pawn {
		return 0
	}
	return old + 1
}
