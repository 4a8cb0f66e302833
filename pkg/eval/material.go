package eval

import "github.com/ochess/chusst/pkg/board"

// NominalValue is the material value of a piece kind in centipawns. Kings are never captured,
// so King has no finite value; callers that need a sentinel use MaxScore instead.
func NominalValue(k board.PieceKind) Score {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 300
	case board.Bishop:
		return 300
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

// Material evaluates a position by material count alone, from White's perspective: positive
// favors White. This is the sole static evaluation term; positional heuristics beyond material
// are intentionally not implemented.
func Material(pos *board.Position) Score {
	var total Score
	for _, c := range []board.Color{board.White, board.Black} {
		for k := board.Pawn; k < board.King; k++ {
			count := Score(pos.Piece(c, k).PopCount())
			total = total.Add(Unit(c, NominalValue(k)*count))
		}
	}
	return total
}
