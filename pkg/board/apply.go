package board

import "fmt"

// Do applies a move to the game state, mutating it in place, and returns the MoveRecord the
// engine derived for it: which of the five side effects (plain, pawn jump, en passant capture,
// promotion, castle) it turned out to be, which piece moved, and what it captured, if anything.
// The caller is responsible for having validated the move is legal (see GameState.LegalMoves);
// Do does not re-check legality, only shape.
func Do(g *GameState, a MoveAction) (MoveRecord, error) {
	mover, ok := g.Pos.At(a.Move.From)
	if !ok {
		return MoveRecord{}, fmt.Errorf("no piece on %v", a.Move.From)
	}
	if mover.Color != g.Turn {
		return MoveRecord{}, fmt.Errorf("piece on %v does not belong to %v", a.Move.From, g.Turn)
	}

	ep, hasEP := g.Pos.EnPassant()
	captured := NoPiece
	extra := Other

	if target, found := g.Pos.At(a.Move.To); found {
		captured = target.Kind
	}

	switch {
	case mover.Kind == Pawn && hasEP && a.Move.To == ep:
		extra = EnPassant
		captured = Pawn
		g.Pos.Update(enPassantCapturedSquare(mover.Color, a.Move.To), nil)

	case mover.Kind == Pawn && isDoubleAdvance(a.Move):
		extra = Passed

	case mover.Kind == King && isCastleMove(a.Move):
		if a.Move.To.File() == FileG {
			extra = CastleKingside
		} else {
			extra = CastleQueenside
		}
	}

	g.Pos.MovePiece(a.Move.From, a.Move.To)

	if a.IsPromotion() {
		extra = PromotionExtra
		promoted := Piece{Kind: a.Promotion, Color: mover.Color}
		g.Pos.Update(a.Move.To, &promoted)
	}

	if extra == CastleKingside || extra == CastleQueenside {
		rank := a.Move.From.Rank()
		if extra == CastleKingside {
			g.Pos.MovePiece(NewSquare(FileH, rank), NewSquare(FileF, rank))
		} else {
			g.Pos.MovePiece(NewSquare(FileA, rank), NewSquare(FileD, rank))
		}
	}

	g.Pos.SetCastling(nextCastlingRights(g.Pos.Castling(), mover, a.Move))

	nextEP := ZeroSquare
	if extra == Passed {
		nextEP = NewSquare(a.Move.To.File(), midRank(a.Move.From, a.Move.To))
	}
	g.Pos.SetEnPassant(nextEP)

	record := MoveRecord{Action: a, Extra: extra, Mover: mover, Captured: captured}
	g.LastMove = &record
	g.Turn = g.Turn.Opponent()

	return record, nil
}

func isDoubleAdvance(m Move) bool {
	d := int(m.To.Rank()) - int(m.From.Rank())
	return d == 2 || d == -2
}

func isCastleMove(m Move) bool {
	d := int(m.To.File()) - int(m.From.File())
	return d == 2 || d == -2
}

func midRank(from, to Square) Rank {
	return Rank((int(from.Rank()) + int(to.Rank())) / 2)
}

// nextCastlingRights clears the rights a king or rook move (or a rook capture on its home
// square) extinguishes. Rights once lost are never regained.
func nextCastlingRights(cur Castling, mover Piece, m Move) Castling {
	ret := cur
	switch mover.Kind {
	case King:
		ret = ret.Without(BothSidesCastling(mover.Color))
	case Rook:
		ret = ret.Without(rookHomeRight(mover.Color, m.From))
	}
	ret = ret.Without(rookHomeRight(White, m.To))
	ret = ret.Without(rookHomeRight(Black, m.To))
	return ret
}

func rookHomeRight(c Color, sq Square) Castling {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	if sq.Rank() != rank {
		return 0
	}
	switch sq.File() {
	case FileA:
		return QueenSideCastling(c)
	case FileH:
		return KingSideCastling(c)
	default:
		return 0
	}
}
