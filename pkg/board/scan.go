package board

// knightSteps are the eight (Δfile, Δrank) knight offsets.
var knightSteps = []Direction{
	{DFile: 1, DRank: 2}, {DFile: 2, DRank: 1}, {DFile: 2, DRank: -1}, {DFile: 1, DRank: -2},
	{DFile: -1, DRank: -2}, {DFile: -2, DRank: -1}, {DFile: -2, DRank: 1}, {DFile: -1, DRank: 2},
}

// kingSteps are the eight adjacent-square offsets.
var kingSteps = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// pawnAttackerDirs returns the two directions, from the attacked square toward the attacker,
// along which a pawn of color attacker would have to stand to capture onto that square. White
// pawns attack northward, so an attacking white pawn sits one step south(-east/-west) of the
// square it attacks; black pawns attack southward, so the reverse.
func pawnAttackerDirs(attacker Color) []Direction {
	if attacker == White {
		return []Direction{SouthWest, SouthEast}
	}
	return []Direction{NorthWest, NorthEast}
}

// IsAttackedScan is the square-scanning safety oracle: it decides whether any piece of color
// ¬c could move to sq, ignoring pin and self-check, by scanning outward from sq rather than
// consulting precomputed attack tables. It works against any Repr (Mailbox or Compact), unlike
// Position.IsAttacked, which is specific to the bitboard encoding's rotated-occupancy tables.
func IsAttackedScan(b Repr, c Color, sq Square) bool {
	opp := c.Opponent()

	for _, d := range pawnAttackerDirs(opp) {
		if at, ok := d.Step(sq); ok {
			if p, found := b.At(at); found && p.Color == opp && p.Kind == Pawn {
				return true
			}
		}
	}

	for _, d := range knightSteps {
		if at, ok := d.Step(sq); ok {
			if p, found := b.At(at); found && p.Color == opp && p.Kind == Knight {
				return true
			}
		}
	}

	for _, d := range BishopDirections {
		if scanRayHitsSlider(b, sq, d, opp, Bishop, Queen) {
			return true
		}
	}
	for _, d := range RookDirections {
		if scanRayHitsSlider(b, sq, d, opp, Rook, Queen) {
			return true
		}
	}

	for _, d := range kingSteps {
		if at, ok := d.Step(sq); ok {
			if p, found := b.At(at); found && p.Color == opp && p.Kind == King {
				return true
			}
		}
	}
	return false
}

// scanRayHitsSlider walks the ray from sq in direction d until the first occupied square (or
// the board edge) and reports whether that square holds an enemy piece of either given kind.
func scanRayHitsSlider(b Repr, sq Square, d Direction, opp Color, kinds ...PieceKind) bool {
	hit := false
	cur := sq
	for {
		next, ok := d.Step(cur)
		if !ok {
			return false
		}
		cur = next
		p, found := b.At(cur)
		if !found {
			continue
		}
		if p.Color == opp {
			for _, k := range kinds {
				if p.Kind == k {
					hit = true
				}
			}
		}
		return hit
	}
}
