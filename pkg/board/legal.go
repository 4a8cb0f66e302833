package board

// Legal filters pseudo-legal candidates down to moves that do not leave the mover's own king
// in check, and additionally requires that a castling king never starts, passes through, or
// lands on an attacked square. Each candidate is tried on a cloned position and discarded by
// the same safety oracle (Position.IsAttacked) used to detect check.
func Legal(pos *Position, side Color, ep Square, candidates []MoveAction) []MoveAction {
	var ret []MoveAction
	for _, a := range candidates {
		if isCastle(pos, side, a) {
			if !castlePathSafe(pos, side, a) {
				continue
			}
		}

		cp := pos.Clone()
		cp.MovePiece(a.Move.From, a.Move.To)
		if isEnPassantCapture(pos, side, a, ep) {
			cp.Update(enPassantCapturedSquare(side, a.Move.To), nil)
		}
		if !cp.IsChecked(side) {
			ret = append(ret, a)
		}
	}
	return ret
}

func isCastle(pos *Position, side Color, a MoveAction) bool {
	p, ok := pos.At(a.Move.From)
	if !ok || p.Kind != King {
		return false
	}
	df := int(a.Move.To.File()) - int(a.Move.From.File())
	return df == 2 || df == -2
}

// castlePathSafe checks that the king's origin, transit, and landing squares are all free of
// attack. The rook's path emptiness was already checked by the pseudo-legal generator.
func castlePathSafe(pos *Position, side Color, a MoveAction) bool {
	rank := a.Move.From.Rank()
	var path []Square
	if a.Move.To.File() == FileG {
		path = []Square{NewSquare(FileE, rank), NewSquare(FileF, rank), NewSquare(FileG, rank)}
	} else {
		path = []Square{NewSquare(FileE, rank), NewSquare(FileD, rank), NewSquare(FileC, rank)}
	}
	for _, sq := range path {
		if pos.IsAttacked(side, sq) {
			return false
		}
	}
	return true
}

func isEnPassantCapture(pos *Position, side Color, a MoveAction, ep Square) bool {
	if ep == ZeroSquare || a.Move.To != ep {
		return false
	}
	p, ok := pos.At(a.Move.From)
	return ok && p.Kind == Pawn
}

// enPassantCapturedSquare returns the square of the pawn actually captured by an en passant
// move landing on `to` (one rank behind the target, from the capturing side's perspective).
func enPassantCapturedSquare(side Color, to Square) Square {
	if side == White {
		return NewSquare(to.File(), to.Rank()-1)
	}
	return NewSquare(to.File(), to.Rank()+1)
}
