package board

import "fmt"

// Step and ray tables, expressed as (file, rank) deltas.
var (
	knightSteps = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopDirs  = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs    = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// Attacks returns every square the piece on sq attacks: the squares it
// would capture on if an enemy piece stood there. Geometric reach only,
// ignoring whose turn it is and ignoring self-check. Slider rays stop
// at, and include, the first occupied square of either color.
func (p *Position) Attacks(sq Square) ([]Square, error) {
	if !sq.IsValid() {
		return nil, fmt.Errorf("%w: index %d", ErrSquareOutOfRange, sq)
	}
	piece := p.Squares[sq]
	if piece == NoPiece {
		return nil, fmt.Errorf("%w: %s", ErrNoPieceAtSquare, sq)
	}
	return p.attacksFrom(piece, sq), nil
}

// attacksFrom computes the attack set for a piece on sq. This is the
// one geometry source; Attacks, IsSquareAttacked, and AttackersOf all
// answer through it.
func (p *Position) attacksFrom(piece Piece, sq Square) []Square {
	switch piece.Type() {
	case Pawn:
		return pawnAttacks(sq, piece.Color())
	case Knight:
		return stepAttacks(sq, knightSteps[:])
	case Bishop:
		return p.rayAttacks(sq, bishopDirs[:])
	case Rook:
		return p.rayAttacks(sq, rookDirs[:])
	case Queen:
		return append(p.rayAttacks(sq, rookDirs[:]), p.rayAttacks(sq, bishopDirs[:])...)
	case King:
		return stepAttacks(sq, kingSteps[:])
	}
	return nil
}

// pawnAttacks returns the two diagonal-forward squares for a pawn.
// The forward square is not an attack.
func pawnAttacks(sq Square, c Color) []Square {
	dir := 1
	if c == Black {
		dir = -1
	}
	out := make([]Square, 0, 2)
	for _, df := range [2]int{-1, 1} {
		f, r := sq.File()+df, sq.Rank()+dir
		if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			out = append(out, NewSquare(f, r))
		}
	}
	return out
}

// stepAttacks returns the on-board targets of a fixed offset table.
func stepAttacks(sq Square, steps [][2]int) []Square {
	out := make([]Square, 0, 8)
	for _, s := range steps {
		f, r := sq.File()+s[0], sq.Rank()+s[1]
		if f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			out = append(out, NewSquare(f, r))
		}
	}
	return out
}

// rayAttacks walks each direction until the board edge, stopping after
// the first occupied square.
func (p *Position) rayAttacks(sq Square, dirs [][2]int) []Square {
	out := make([]Square, 0, 8)
	for _, d := range dirs {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		for f >= 0 && f <= 7 && r >= 0 && r <= 7 {
			t := NewSquare(f, r)
			out = append(out, t)
			if p.Squares[t] != NoPiece {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return out
}

// PathClear reports whether every square strictly between from and to
// is empty. It is defined only for squares sharing a rank, file, or
// diagonal; for non-aligned squares there is no path and the report is
// false.
func (p *Position) PathClear(from, to Square) bool {
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}

	df := sign(to.File() - from.File())
	dr := sign(to.Rank() - from.Rank())
	if df != 0 && dr != 0 && abs(to.File()-from.File()) != abs(to.Rank()-from.Rank()) {
		return false
	}

	f, r := from.File()+df, from.Rank()+dr
	for f != to.File() || r != to.Rank() {
		if p.Squares[NewSquare(f, r)] != NoPiece {
			return false
		}
		f += df
		r += dr
	}
	return true
}

// IsSquareAttacked returns true if any piece of the given color attacks
// the square. This predicate is the single implementation of "can this
// square be captured"; check detection, castling safety, and king move
// legality all go through it.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	if !sq.IsValid() {
		return false
	}
	for from := A1; from <= H8; from++ {
		piece := p.Squares[from]
		if piece == NoPiece || piece.Color() != byColor {
			continue
		}
		for _, t := range p.attacksFrom(piece, from) {
			if t == sq {
				return true
			}
		}
	}
	return false
}

// AttackersOf returns the squares of every piece of the given color
// whose attack set contains sq.
func (p *Position) AttackersOf(sq Square, byColor Color) []Square {
	if !sq.IsValid() {
		return nil
	}
	var out []Square
	for from := A1; from <= H8; from++ {
		piece := p.Squares[from]
		if piece == NoPiece || piece.Color() != byColor {
			continue
		}
		for _, t := range p.attacksFrom(piece, from) {
			if t == sq {
				out = append(out, from)
				break
			}
		}
	}
	return out
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
