// Package eval contains position evaluation: material scoring and the search-facing Score
// type it is expressed in.
package eval

import (
	"fmt"
	"math"

	"github.com/ochess/chusst/pkg/board"
)

// Score is a signed position score in centipawns. Positive favors the side to move. It
// saturates rather than overflows at the mate bounds, so that negating a forced mate near one
// bound lands safely inside the other: see Neg.
type Score int32

const (
	// Inf is used as the initial window bound in alpha-beta search; it is deliberately outside
	// the saturation range so the first real score always narrows it.
	Inf Score = math.MaxInt32

	// MateScore is the magnitude assigned to a forced checkmate, biased by ply-to-mate so that
	// shorter mates sort ahead of longer ones (see Mate).
	MateScore Score = 1 << 20

	// MinScore and MaxScore bound every score a static evaluation can produce; Mate scores
	// exceed MaxScore in magnitude so they are never confused with material advantage.
	MinScore Score = -30000
	MaxScore Score = 30000
)

// Mate returns the score for a checkmate found ply moves from the current position: closer
// mates score higher in magnitude, so the search prefers the fastest forced win and the
// slowest forced loss among otherwise equal lines.
func Mate(ply int) Score {
	return MateScore - Score(ply)
}

// IsMate reports whether s represents a forced mate score (for either side), and if so how
// many plies away.
func IsMate(s Score) (int, bool) {
	switch {
	case s >= MateScore-Score(math.MaxInt16):
		return int(MateScore - s), true
	case s <= -MateScore+Score(math.MaxInt16):
		return int(MateScore + s), true
	default:
		return 0, false
	}
}

// Neg negates a score for the opponent's point of view, saturating at the int32 boundary
// instead of overflowing, the way the search's alpha-beta window bounds require.
func (s Score) Neg() Score {
	if s == math.MinInt32 {
		return math.MaxInt32
	}
	return -s
}

// Add returns s+o, saturating at the int32 boundary.
func (s Score) Add(o Score) Score {
	sum := int64(s) + int64(o)
	switch {
	case sum > math.MaxInt32:
		return math.MaxInt32
	case sum < math.MinInt32:
		return math.MinInt32
	default:
		return Score(sum)
	}
}

func (s Score) String() string {
	if ply, ok := IsMate(s); ok {
		if s > 0 {
			return fmt.Sprintf("mate %d", ply)
		}
		return fmt.Sprintf("mate -%d", ply)
	}
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Unit returns the signed unit for the color: s for White, -s for Black. Used to convert a
// White-relative material total into the side-to-move-relative score negamax expects.
func Unit(c board.Color, s Score) Score {
	if c == board.White {
		return s
	}
	return s.Neg()
}
