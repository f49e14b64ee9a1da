package board

// CastlingRights represents the available castling options. A right is
// cleared irreversibly the first time the relevant king or rook moves
// or the rook is captured; it is never re-granted.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the rights still grant the given side and
// direction. This is the bookkeeping half only; Position.CanCastle
// evaluates the full position.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// castleLine describes the fixed squares of one castling option.
type castleLine struct {
	right    CastlingRights
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	kingPath [2]Square // squares the king crosses and lands on
}

var castleLines = [2][2]castleLine{
	White: {
		{WhiteQueenSideCastle, E1, C1, A1, D1, [2]Square{D1, C1}},
		{WhiteKingSideCastle, E1, G1, H1, F1, [2]Square{F1, G1}},
	},
	Black: {
		{BlackQueenSideCastle, E8, C8, A8, D8, [2]Square{D8, C8}},
		{BlackKingSideCastle, E8, G8, H8, F8, [2]Square{F8, G8}},
	},
}

func castleLineFor(c Color, kingSide bool) castleLine {
	side := 0
	if kingSide {
		side = 1
	}
	return castleLines[c][side]
}

// CastleMove returns the king's move for the given castle: e1-g1 or
// e1-c1 for White, e8-g8 or e8-c8 for Black.
func CastleMove(c Color, kingSide bool) Move {
	line := castleLineFor(c, kingSide)
	return NewCastling(line.kingFrom, line.kingTo)
}

// CastleRookMove returns the rook's matching move: h-file rook to f,
// or a-file rook to d, on the castling color's back rank.
func CastleRookMove(c Color, kingSide bool) Move {
	line := castleLineFor(c, kingSide)
	return NewMove(line.rookFrom, line.rookTo)
}

// CanCastle reports whether the given color may castle on the given
// side right now. All four conditions must hold, with no partial
// credit:
//  1. the rights still grant that side,
//  2. every square between king and rook is empty,
//  3. the king is not currently in check,
//  4. neither square the king crosses nor its destination is attacked.
func (p *Position) CanCastle(c Color, kingSide bool) bool {
	line := castleLineFor(c, kingSide)

	if !p.CastlingRights.CanCastle(c, kingSide) {
		return false
	}

	// Rights can outlive a hand-built position's pieces
	if p.Squares[line.kingFrom] != NewPiece(King, c) || p.Squares[line.rookFrom] != NewPiece(Rook, c) {
		return false
	}

	if !p.PathClear(line.kingFrom, line.rookFrom) {
		return false
	}

	them := c.Other()
	if p.IsSquareAttacked(line.kingFrom, them) {
		return false
	}
	for _, sq := range line.kingPath {
		if p.IsSquareAttacked(sq, them) {
			return false
		}
	}

	return true
}

// clearCastlingRights drops the rights invalidated by a move of piece
// from one square to another. Any move touching a rook's home corner
// kills that corner's right, whether the rook moves away or is
// captured on it.
func (p *Position) clearCastlingRights(piece Piece, from, to Square) {
	if piece.Type() == King {
		if piece.Color() == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
	}

	if from == A1 || to == A1 {
		p.CastlingRights &^= WhiteQueenSideCastle
	}
	if from == H1 || to == H1 {
		p.CastlingRights &^= WhiteKingSideCastle
	}
	if from == A8 || to == A8 {
		p.CastlingRights &^= BlackQueenSideCastle
	}
	if from == H8 || to == H8 {
		p.CastlingRights &^= BlackKingSideCastle
	}
}
