package board

import "fmt"

// Mailbox is the simplest board encoding: one square per array slot. It trades memory and
// cache density for directness — useful as a reference implementation to check the other
// encodings against, and as the substrate for the square-scanning safety oracle.
type Mailbox struct {
	squares [NumSquares]*Piece
}

var _ Repr = (*Mailbox)(nil)

// NewMailbox builds a Mailbox from a placement list, as produced by ParsePlacementField.
func NewMailbox(pieces []Placement) (*Mailbox, error) {
	ret := &Mailbox{}
	for _, p := range pieces {
		if ret.squares[p.Square] != nil {
			return nil, fmt.Errorf("duplicate placement: %v", p)
		}
		piece := Piece{Kind: p.Piece, Color: p.Color}
		ret.squares[p.Square] = &piece
	}
	return ret, nil
}

func (m *Mailbox) At(sq Square) (Piece, bool) {
	p := m.squares[sq]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (m *Mailbox) Update(sq Square, p *Piece) {
	if p == nil {
		m.squares[sq] = nil
		return
	}
	cp := *p
	m.squares[sq] = &cp
}

func (m *Mailbox) MovePiece(src, dst Square) {
	m.squares[dst] = m.squares[src]
	m.squares[src] = nil
}

func (m *Mailbox) String() string {
	return EncodePlacementField(m)
}
