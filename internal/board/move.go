package board

import (
	"fmt"
	"strings"
)

// Move packs a whole move into 16 bits: the from and to squares in the
// low 12, a promotion piece index in bits 12-13, and a kind flag in
// bits 14-15. Capture-ness is not encoded; it is derived from the
// position the move applies to.
type Move uint16

const (
	FlagNormal    uint16 = 0 << 14
	FlagPromotion uint16 = 1 << 14
	FlagEnPassant uint16 = 2 << 14
	FlagCastling  uint16 = 3 << 14
)

// NoMove is the null move.
const NoMove Move = 0

// promoChars maps the promotion index 0-3 to its UCI letter.
const promoChars = "nbrq"

// NewMove builds a plain move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion builds a promotion. promo must be Knight through Queen.
func NewPromotion(from, to Square, promo PieceType) Move {
	return NewMove(from, to) | Move(promo-Knight)<<12 | Move(FlagPromotion)
}

// NewEnPassant builds an en passant capture.
func NewEnPassant(from, to Square) Move {
	return NewMove(from, to) | Move(FlagEnPassant)
}

// NewCastling builds a castling move, expressed as the king's hop.
func NewCastling(from, to Square) Move {
	return NewMove(from, to) | Move(FlagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m>>6) & 0x3F
}

// Flag returns the kind bits.
func (m Move) Flag() uint16 {
	return uint16(m) & 0xC000
}

// Promotion returns the promoted-to type. Meaningful only when
// IsPromotion reports true.
func (m Move) Promotion() PieceType {
	return Knight + PieceType(m>>12&3)
}

func (m Move) IsPromotion() bool { return m.Flag() == FlagPromotion }
func (m Move) IsCastling() bool  { return m.Flag() == FlagCastling }
func (m Move) IsEnPassant() bool { return m.Flag() == FlagEnPassant }

// IsCapture reports whether the move takes a piece in the given
// position. En passant captures a pawn the destination square hides.
func (m Move) IsCapture(pos *Position) bool {
	return m.IsEnPassant() || !pos.IsEmpty(m.To())
}

// String renders the move in UCI long algebraic, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promoChars[m.Promotion()-Knight])
	}
	return s
}

// ParseMove reads a move in UCI long algebraic. The position is needed
// to recover the castling and en passant flags, which the notation
// spells as plain king and pawn moves.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		i := strings.IndexByte(promoChars, s[4])
		if i < 0 {
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, Knight+PieceType(i)), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("%w: %s", ErrNoPieceAtSquare, from)
	}

	switch {
	case piece.Type() == King && abs(int(to)-int(from)) == 2:
		return NewCastling(from, to), nil
	case piece.Type() == Pawn && to == pos.EnPassant:
		return NewEnPassant(from, to), nil
	}
	return NewMove(from, to), nil
}

// MoveList collects moves without allocating per move. 256 slots cover
// the 218-move bound on legal moves in any reachable position.
type MoveList struct {
	moves [256]Move
	count int
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves held.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Contains reports whether m is in the list.
func (ml *MoveList) Contains(m Move) bool {
	for _, have := range ml.moves[:ml.count] {
		if have == m {
			return true
		}
	}
	return false
}

// Slice views the collected moves. The backing array is shared with
// the list, so callers must not Add while holding the slice.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
