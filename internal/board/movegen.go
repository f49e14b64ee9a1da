package board

import "fmt"

// GenerateLegalMoves generates all legal moves for the side to move.
// Each pseudo-legal move is simulated on a cloned position and kept
// only if the mover's own king is not then in check. This exhaustive
// simulate-and-filter is the only general method that covers blocks
// and captures by every piece type, not just king escapes.
func (p *Position) GenerateLegalMoves() *MoveList {
	pseudo := p.GeneratePseudoLegalMoves()
	legal := NewMoveList()
	us := p.SideToMove

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		check, err := p.Apply(m).InCheck(us)
		if err == nil && !check {
			legal.Add(m)
		}
	}
	return legal
}

// GeneratePseudoLegalMoves generates all moves obeying piece movement
// and occupancy rules. They may leave the mover's own king in check.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()
	us := p.SideToMove

	for from := A1; from <= H8; from++ {
		piece := p.Squares[from]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		if piece.Type() == Pawn {
			p.generatePawnMoves(ml, from, us)
		} else {
			p.generatePieceMoves(ml, from, piece)
		}
	}

	p.generateCastlingMoves(ml, us)
	return ml
}

// generatePawnMoves generates pushes, captures, promotions, and en
// passant for the pawn on from.
func (p *Position) generatePawnMoves(ml *MoveList, from Square, us Color) {
	dir := 1
	if us == Black {
		dir = -1
	}

	// Pushes: forward movement is not an attack, so it is handled here
	// rather than in the attack geometry.
	f, r := from.File(), from.Rank()+dir
	if r >= 0 && r <= 7 {
		one := NewSquare(f, r)
		if p.Squares[one] == NoPiece {
			if one.RelativeRank(us) == 7 {
				addPromotions(ml, from, one)
			} else {
				ml.Add(NewMove(from, one))
				if from.RelativeRank(us) == 1 {
					two := NewSquare(f, r+dir)
					if p.Squares[two] == NoPiece {
						ml.Add(NewMove(from, two))
					}
				}
			}
		}
	}

	// Captures on the diagonal-forward squares
	for _, to := range pawnAttacks(from, us) {
		if to == p.EnPassant {
			ml.Add(NewEnPassant(from, to))
			continue
		}
		target := p.Squares[to]
		if target == NoPiece || target.Color() == us {
			continue
		}
		if to.RelativeRank(us) == 7 {
			addPromotions(ml, from, to)
		} else {
			ml.Add(NewMove(from, to))
		}
	}
}

// addPromotions expands a pawn push or capture onto the back rank
// into the four promotion choices.
func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

// generatePieceMoves generates moves for a knight, bishop, rook, queen,
// or king: its attack squares minus those occupied by its own side.
func (p *Position) generatePieceMoves(ml *MoveList, from Square, piece Piece) {
	us := piece.Color()
	for _, to := range p.attacksFrom(piece, from) {
		if t := p.Squares[to]; t != NoPiece && t.Color() == us {
			continue
		}
		ml.Add(NewMove(from, to))
	}
}

// generateCastlingMoves adds whichever castles are fully legal. The
// evaluation lives in CanCastle, so castle generation and the castling
// verdict exposed to callers can never disagree.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	for _, kingSide := range [2]bool{true, false} {
		if p.CanCastle(us, kingSide) {
			ml.Add(CastleMove(us, kingSide))
		}
	}
}

// LegalDestinations returns the squares the piece on from may legally
// move to. An empty square is a caller error; a piece of the side not
// to move has no destinations this ply and yields an empty set.
func (p *Position) LegalDestinations(from Square) ([]Square, error) {
	if !from.IsValid() {
		return nil, fmt.Errorf("%w: index %d", ErrSquareOutOfRange, from)
	}
	piece := p.Squares[from]
	if piece == NoPiece {
		return nil, fmt.Errorf("%w: %s", ErrNoPieceAtSquare, from)
	}

	out := []Square{}
	if piece.Color() != p.SideToMove {
		return out, nil
	}

	ml := p.GenerateLegalMoves()
	for i := 0; i < ml.Len(); i++ {
		m := ml.Get(i)
		if m.From() != from {
			continue
		}
		// The four promotion choices share a destination
		if !containsSquare(out, m.To()) {
			out = append(out, m.To())
		}
	}
	return out, nil
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// EnPassantTargetAfter reports the en passant target square the given
// move would create: the square passed over by a two-rank pawn advance,
// NoSquare for every other move. Call it on the position the move is
// about to be played on.
func (p *Position) EnPassantTargetAfter(m Move) Square {
	piece := p.Squares[m.From()]
	if piece == NoPiece || piece.Type() != Pawn {
		return NoSquare
	}
	if abs(int(m.To())-int(m.From())) != 16 {
		return NoSquare
	}
	return Square((int(m.From()) + int(m.To())) / 2)
}

// EnPassantCapturers returns the squares of the side to move's pawns
// that may legally capture on the current en passant target. Nil when
// no opportunity exists; absence of a preceding double push is a
// legitimate state, not an error.
func (p *Position) EnPassantCapturers() []Square {
	if p.EnPassant == NoSquare {
		return nil
	}
	var out []Square
	ml := p.GenerateLegalMoves()
	for i := 0; i < ml.Len(); i++ {
		if m := ml.Get(i); m.IsEnPassant() {
			out = append(out, m.From())
		}
	}
	return out
}

// Apply plays a move on a clone of the position and returns the clone;
// the receiver is never mutated. The move must come from move
// generation; applying an arbitrary Move to a position it does not
// belong to leaves the clone unchanged when no piece sits on the
// origin square.
func (p *Position) Apply(m Move) *Position {
	next := p.Copy()

	us := p.SideToMove
	from, to := m.From(), m.To()
	piece := next.Squares[from]
	if piece == NoPiece || piece.Color() != us {
		return next
	}

	captured := next.Squares[to]
	if m.IsEnPassant() {
		// The captured pawn sits beside the target square, not on it
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		captured = next.removePiece(capSq)
	}

	next.movePiece(from, to)

	if m.IsPromotion() {
		next.Squares[to] = NewPiece(m.Promotion(), us)
	}

	if m.IsCastling() {
		var rookFrom, rookTo Square
		if to > from {
			rookFrom = NewSquare(7, from.Rank())
			rookTo = NewSquare(5, from.Rank())
		} else {
			rookFrom = NewSquare(0, from.Rank())
			rookTo = NewSquare(3, from.Rank())
		}
		next.movePiece(rookFrom, rookTo)
	}

	next.clearCastlingRights(piece, from, to)

	// The en passant opportunity lasts exactly one ply: whatever target
	// existed is gone, and only a fresh double push creates a new one.
	next.EnPassant = p.EnPassantTargetAfter(m)

	if piece.Type() == Pawn || captured != NoPiece {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}
	if us == Black {
		next.FullMoveNumber++
	}
	next.SideToMove = us.Other()

	return next
}

// HasLegalMoves returns true if the side to move has any legal move,
// stopping at the first one found.
func (p *Position) HasLegalMoves() bool {
	pseudo := p.GeneratePseudoLegalMoves()
	us := p.SideToMove

	for i := 0; i < pseudo.Len(); i++ {
		check, err := p.Apply(pseudo.Get(i)).InCheck(us)
		if err == nil && !check {
			return true
		}
	}
	return false
}
