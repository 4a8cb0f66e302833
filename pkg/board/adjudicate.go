package board

// HasInsufficientMaterial reports whether neither side has enough material left to deliver
// checkmate by any sequence of legal moves: king versus king, king and bishop versus king,
// king and knight versus king, or king and bishop versus king and bishop with both bishops on
// the same square color. Grounded in the standard FIDE dead-position rule; anything richer
// (e.g. two knights, which can only mate with cooperation) is left undecided rather than
// adjudicated, matching the conservative original ruleset this was distilled from.
func (p *Position) HasInsufficientMaterial() bool {
	if p.hasMajorOrPawn() {
		return false
	}

	wMinor := p.minorPieceCount(White)
	bMinor := p.minorPieceCount(Black)

	switch {
	case wMinor == 0 && bMinor == 0:
		return true
	case wMinor == 1 && bMinor == 0, wMinor == 0 && bMinor == 1:
		return true
	case wMinor == 1 && bMinor == 1:
		wBishop := p.Piece(White, Bishop)
		bBishop := p.Piece(Black, Bishop)
		if wBishop.PopCount() == 1 && bBishop.PopCount() == 1 {
			return bishopSquareColor(wBishop.LastPopSquare()) == bishopSquareColor(bBishop.LastPopSquare())
		}
		return false
	default:
		return false
	}
}

func (p *Position) hasMajorOrPawn() bool {
	for _, c := range []Color{White, Black} {
		if p.Piece(c, Pawn) != 0 || p.Piece(c, Rook) != 0 || p.Piece(c, Queen) != 0 {
			return true
		}
	}
	return false
}

// minorPieceCount returns the number of bishops and knights color c has; more than one rules
// out every insufficient-material case except the single-bishop-each one handled separately.
func (p *Position) minorPieceCount(c Color) int {
	return p.Piece(c, Bishop).PopCount() + p.Piece(c, Knight).PopCount()
}

func bishopSquareColor(sq Square) int {
	return (int(sq.File()) + int(sq.Rank())) % 2
}
