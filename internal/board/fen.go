package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a Position. The position is
// validated before it is returned, so a parsed position is always
// analyzable: one king per side, no pawns on the back ranks, side not
// to move not in check. Castling rights that the piece placement
// contradicts are dropped rather than trusted.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &Position{}
	pos.Clear()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}
	pos.sanitizeCastlingRights()

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		// The target must lie behind a pawn the opponent just double
		// pushed: rank 6 when White is to move, rank 3 when Black is.
		wantRank := 5
		if pos.SideToMove == Black {
			wantRank = 2
		}
		if sq.Rank() != wantRank {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pos.EnPassant = sq
	}

	// The clock fields are optional; diagram FENs often omit them.
	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	if err := pos.Validate(); err != nil {
		return nil, err
	}

	return pos, nil
}

func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	// Ranks arrive top down, so rank 8 is first.
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case file > 7:
				return fmt.Errorf("rank %d overflows the board", rank+1)
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece := PieceFromChar(c)
				if piece == NoPiece {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				pos.setPiece(piece, NewSquare(file, rank))
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("rank %d describes %d files, want 8", rank+1, file)
		}
	}

	return nil
}

// castlingChars pairs each FEN castling letter with its rights flag.
var castlingChars = [4]struct {
	c     byte
	right CastlingRights
}{
	{'K', WhiteKingSideCastle},
	{'Q', WhiteQueenSideCastle},
	{'k', BlackKingSideCastle},
	{'q', BlackQueenSideCastle},
}

func parseCastlingRights(pos *Position, castling string) error {
	pos.CastlingRights = NoCastling
	if castling == "-" {
		return nil
	}

next:
	for i := 0; i < len(castling); i++ {
		for _, cc := range castlingChars {
			if castling[i] == cc.c {
				pos.CastlingRights |= cc.right
				continue next
			}
		}
		return fmt.Errorf("invalid castling character: %c", castling[i])
	}

	return nil
}

// sanitizeCastlingRights drops any right whose king or rook is no
// longer on its home square. A stored exercise position can then never
// claim a castle the pieces cannot perform.
func (p *Position) sanitizeCastlingRights() {
	for _, c := range [2]Color{White, Black} {
		for _, kingSide := range [2]bool{true, false} {
			line := castleLineFor(c, kingSide)
			if p.Squares[line.kingFrom] != NewPiece(King, c) || p.Squares[line.rookFrom] != NewPiece(Rook, c) {
				p.CastlingRights &^= line.right
			}
		}
	}
}

// ToFEN serializes the position as a FEN string.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Squares[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	stm := "w"
	if p.SideToMove == Black {
		stm = "b"
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d",
		stm, p.CastlingRights, p.EnPassant, p.HalfMoveClock, p.FullMoveNumber)

	return sb.String()
}
