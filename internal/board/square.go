// Package board implements the rules of chess: board representation,
// attack geometry, move legality, castling, en passant, and terminal
// position status.
package board

import "fmt"

// Square indexes a board square 0-63, rank-major from white's side:
// A1=0, H1=7, A8=56, H8=63.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the column 0-7, a through h.
func (sq Square) File() int {
	return int(sq) % 8
}

// Rank returns the row 0-7, counting from white's first rank.
func (sq Square) Rank() int {
	return int(sq) / 8
}

// String returns the square in algebraic notation, or "-" for NoSquare.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// NewSquare creates a square from file and rank. Both must already be
// in 0-7; board-walking code guarantees this before calling.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// SquareAt creates a square from file and rank, reporting
// ErrSquareOutOfRange for coordinates outside 0-7. Out-of-range input
// is a construction error, never clamped.
func SquareAt(file, rank int) (Square, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("%w: file %d, rank %d", ErrSquareOutOfRange, file, rank)
	}
	return NewSquare(file, rank), nil
}

// ParseSquare reads a square in algebraic notation, e.g. "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// IsValid reports whether the square lies on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// RelativeRank returns the rank as seen by the given color: 0 is each
// side's own first rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}
