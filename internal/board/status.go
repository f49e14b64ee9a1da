package board

// GameStatus classifies a position for the side to move. Exactly one
// value holds for any position with both kings present.
type GameStatus uint8

const (
	StatusNormal GameStatus = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Status classifies the position: with legal moves available it is
// Check or Normal depending on the king; with none it is Checkmate or
// Stalemate. Positions without exactly one king per side report
// ErrIncompleteState.
func (p *Position) Status() (GameStatus, error) {
	if _, err := p.KingSquare(p.SideToMove.Other()); err != nil {
		return StatusNormal, err
	}
	check, err := p.InCheck(p.SideToMove)
	if err != nil {
		return StatusNormal, err
	}

	if p.HasLegalMoves() {
		if check {
			return StatusCheck, nil
		}
		return StatusNormal, nil
	}

	if check {
		return StatusCheckmate, nil
	}
	return StatusStalemate, nil
}

// IsInsufficientMaterial returns true if neither side can ever deliver
// checkmate: bare kings, or king and one minor piece against king.
func (p *Position) IsInsufficientMaterial() bool {
	var minors [2]int
	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		switch piece.Type() {
		case Pawn, Rook, Queen:
			return false
		case Knight, Bishop:
			minors[piece.Color()]++
		}
	}

	if minors[White]+minors[Black] == 0 {
		return true
	}
	if minors[White] <= 1 && minors[Black] == 0 {
		return true
	}
	return minors[Black] <= 1 && minors[White] == 0
}

// IsFiftyMoveDraw returns true once 50 full moves have passed without
// a pawn move or capture.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.HalfMoveClock >= 100
}
