package board

import (
	"fmt"
	"strings"
)

// Position represents a complete chess position: a mailbox of 64
// squares plus the game state a caller threads across plies.
type Position struct {
	// Squares maps each square to the piece on it, NoPiece if empty.
	Squares [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // target behind a just-double-pushed pawn, NoSquare if none
	HalfMoveClock  int    // plies since the last pawn move or capture
	FullMoveNumber int    // starts at 1, increments after black moves
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the occupant of sq, NoPiece for empty or off-board
// squares.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.Squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	return p.PieceAt(sq) == NoPiece
}

// setPiece places a piece on a square.
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	p.Squares[sq] = piece
}

// removePiece removes a piece from a square and returns it.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.Squares[sq]
	p.Squares[sq] = NoPiece
	return piece
}

// movePiece moves a piece from one square to another.
func (p *Position) movePiece(from, to Square) {
	p.Squares[to] = p.Squares[from]
	p.Squares[from] = NoPiece
}

// String renders the board as text, white's side at the bottom,
// followed by the game state fields.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.Squares[NewSquare(file, rank)]
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(piece.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber)
	return sb.String()
}

// Clear empties the board and resets the game state fields.
func (p *Position) Clear() {
	*p = Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
	for sq := A1; sq <= H8; sq++ {
		p.Squares[sq] = NoPiece
	}
}

// count returns the number of pieces of the given kind on the board.
func (p *Position) count(piece Piece) int {
	n := 0
	for sq := A1; sq <= H8; sq++ {
		if p.Squares[sq] == piece {
			n++
		}
	}
	return n
}

// Validate checks if the position is a playable game state.
func (p *Position) Validate() error {
	// Each side needs exactly one king
	if n := p.count(WhiteKing); n != 1 {
		return fmt.Errorf("%w: white has %d kings", ErrIncompleteState, n)
	}
	if n := p.count(BlackKing); n != 1 {
		return fmt.Errorf("%w: black has %d kings", ErrIncompleteState, n)
	}

	// Pawns cannot stand on the back ranks
	for sq := A1; sq <= H1; sq++ {
		if p.Squares[sq].Type() == Pawn || p.Squares[sq+56].Type() == Pawn {
			return fmt.Errorf("pawns cannot be on rank 1 or 8")
		}
	}

	// The side that just moved may not have left its king in check
	if check, err := p.InCheck(p.SideToMove.Other()); err != nil {
		return err
	} else if check {
		return fmt.Errorf("side not to move is in check")
	}

	return nil
}
