package board

import "fmt"

// SANName renders record as played from pos (the position before the move) in standard
// algebraic notation, disambiguating among other pieces of the same kind that could reach the
// same square as required. If opponentInCheck, it appends "+" when opponentHasMoves (the
// opponent has a legal move in the resulting position) and "#" when it does not.
func SANName(pos *Position, side Color, record MoveRecord, legalBefore []MoveAction, opponentInCheck, opponentHasMoves bool) string {
	if record.Extra == CastleKingside {
		return suffixed("O-O", opponentInCheck, opponentHasMoves)
	}
	if record.Extra == CastleQueenside {
		return suffixed("O-O-O", opponentInCheck, opponentHasMoves)
	}

	from, to := record.Action.Move.From, record.Action.Move.To
	isCapture := record.IsCapture()

	var sb string
	if record.Mover.Kind == Pawn {
		if isCapture {
			sb = from.File().String() + "x"
		}
		sb += to.String()
		if record.Action.IsPromotion() {
			sb += "=" + upperPiece(record.Action.Promotion)
		}
		return suffixed(sb, opponentInCheck, opponentHasMoves)
	}

	sb = upperPiece(record.Mover.Kind) + disambiguate(pos, side, record.Mover.Kind, from, to, legalBefore)
	if isCapture {
		sb += "x"
	}
	sb += to.String()
	return suffixed(sb, opponentInCheck, opponentHasMoves)
}

func suffixed(s string, check, hasMoves bool) string {
	if !check {
		return s
	}
	if hasMoves {
		return s + "+"
	}
	return s + "#"
}

// disambiguate returns the file, rank, or full-square qualifier needed to distinguish this
// move from other legal moves of the same piece kind landing on the same square, per standard
// SAN rules: file first, then rank, then both.
func disambiguate(pos *Position, side Color, kind PieceKind, from, to Square, legal []MoveAction) string {
	var sameFile, sameRank, any bool
	for _, m := range legal {
		if m.Move.From == from || m.Move.To != to {
			continue
		}
		p, ok := pos.At(m.Move.From)
		if !ok || p.Kind != kind || p.Color != side {
			continue
		}
		any = true
		if m.Move.From.File() == from.File() {
			sameFile = true
		}
		if m.Move.From.Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !any:
		return ""
	case !sameFile:
		return from.File().String()
	case !sameRank:
		return from.Rank().String()
	default:
		return from.String()
	}
}

func upperPiece(k PieceKind) string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%v", k)
	}
}
