package board

import "fmt"

// KingSquare locates the unique king of the given color. Zero or
// multiple kings make the position unanalyzable and report
// ErrIncompleteState.
func (p *Position) KingSquare(c Color) (Square, error) {
	king := NewPiece(King, c)
	found := NoSquare
	for sq := A1; sq <= H8; sq++ {
		if p.Squares[sq] != king {
			continue
		}
		if found != NoSquare {
			return NoSquare, fmt.Errorf("%w: multiple %s kings", ErrIncompleteState, c)
		}
		found = sq
	}
	if found == NoSquare {
		return NoSquare, fmt.Errorf("%w: no %s king", ErrIncompleteState, c)
	}
	return found, nil
}

// InCheck returns true if the given color's king is attacked.
func (p *Position) InCheck(c Color) (bool, error) {
	ksq, err := p.KingSquare(c)
	if err != nil {
		return false, err
	}
	return p.IsSquareAttacked(ksq, c.Other()), nil
}

// CheckingPieces returns the squares of every enemy piece attacking the
// given color's king. Two attackers mean double check: only king moves
// can answer, since no block or capture resolves both at once.
func (p *Position) CheckingPieces(c Color) ([]Square, error) {
	ksq, err := p.KingSquare(c)
	if err != nil {
		return nil, err
	}
	return p.AttackersOf(ksq, c.Other()), nil
}
