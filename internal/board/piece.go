package board

import "strings"

// Color identifies a side. NoColor marks empty squares and invalid input.
type Color uint8

const (
	White Color = iota
	Black
	NoColor
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

var colorNames = [...]string{"White", "Black"}

func (c Color) String() string {
	if c >= NoColor {
		return "NoColor"
	}
	return colorNames[c]
}

// PieceType is the kind of a piece, independent of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

var pieceTypeNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (pt PieceType) String() string {
	if pt >= NoPieceType {
		return "None"
	}
	return pieceTypeNames[pt]
}

// Piece packs a PieceType and a Color into one value: type + 6*color.
// The white pieces come first so Piece doubles as an index 0..11.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// fenPieceChars is indexed by Piece.
const fenPieceChars = "PNBRQKpnbrqk"

// NewPiece builds the packed value, or NoPiece for invalid input.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + 6*Piece(c)
}

// Type returns the kind of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the owner of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN letter, uppercase for white.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return string(fenPieceChars[p])
}

// PieceFromChar maps a FEN letter to its Piece, NoPiece otherwise.
func PieceFromChar(c byte) Piece {
	i := strings.IndexByte(fenPieceChars, c)
	if i < 0 {
		return NoPiece
	}
	return Piece(i)
}
