// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ochess/chusst/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Decode returns a new position and game status from a FEN record.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(fen string) (*board.Position, board.Color, int, int, error) {
	// A FEN record has six space-separated fields.

	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return nil, 0, 0, 0, fmt.Errorf("invalid number of sections in FEN: %q", fen)
	}

	// (1) Piece placement (from white's perspective), rank 8 down to rank 1, file a to file h.

	pieces, err := board.ParsePlacementField(parts[0])
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("invalid placement in FEN %q: %w", fen, err)
	}

	// (2) Active color: "w" white to move, "b" black to move.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid active color in FEN: %q", fen)
	}

	// (3) Castling availability: "-" or one or more of "K", "Q", "k", "q".

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("invalid castling in FEN: %q", fen)
	}

	// (4) En passant target square, or "-" if the last move was not a pawn jump.

	var ep board.Square
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("invalid en passant in FEN %q: %w", fen, err)
		}
		// The target square witnesses a two-square pawn advance by the side not to move: Black
		// just played a double push iff White is to move next, landing the target on Rank6;
		// White just played one iff Black is to move next, landing it on Rank3.
		want := board.Rank3
		if active == board.White {
			want = board.Rank6
		}
		if sq.Rank() != want {
			return nil, 0, 0, 0, fmt.Errorf("invalid en passant square in FEN %q: %v not on rank %v", fen, sq, want)
		}
		ep = sq
	}

	// (5) Halfmove clock: plies since the last pawn advance or capture.

	np, err := strconv.Atoi(parts[4])
	if err != nil || np < 0 {
		return nil, 0, 0, 0, fmt.Errorf("invalid halfmove clock in FEN: %q", fen)
	}

	// (6) Fullmove number, starting at 1 and incremented after Black's move.

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 1 {
		return nil, 0, 0, 0, fmt.Errorf("invalid fullmove number in FEN: %q", fen)
	}

	pos, err := board.NewPosition(pieces, castling, ep)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("invalid position in FEN %q: %w", fen, err)
	}
	return pos, active, np, fm, nil
}

// Encode renders the position and game data in FEN notation.
func Encode(pos *board.Position, c board.Color, noprogress, fullmoves int) string {
	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v",
		board.EncodePlacementField(pos), printColor(c), printCastling(pos.Castling()), ep, noprogress, fullmoves)
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}
