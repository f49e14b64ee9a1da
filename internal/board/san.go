package board

import (
	"fmt"
	"strings"
)

// ToSAN renders the move in Standard Algebraic Notation for the
// position it is played from.
func (m Move) ToSAN(pos *Position) string {
	if m == NoMove {
		return "-"
	}

	from := m.From()
	to := m.To()
	piece := pos.PieceAt(from)

	// Nothing on the origin square: fall back to the long form.
	if piece == NoPiece {
		return m.String()
	}

	var sb strings.Builder

	if m.IsCastling() {
		if to > from {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		writeCheckSuffix(&sb, pos, m)
		return sb.String()
	}

	pt := piece.Type()

	if pt != Pawn {
		sb.WriteByte("PNBRQK"[pt])
		sb.WriteString(disambiguation(pos, m, piece))
	}

	if m.IsCapture(pos) {
		// A capturing pawn is named by its origin file.
		if pt == Pawn {
			sb.WriteByte('a' + byte(from.File()))
		}
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte("PNBRQK"[m.Promotion()])
	}

	writeCheckSuffix(&sb, pos, m)
	return sb.String()
}

// writeCheckSuffix appends '+' or '#' by classifying the position the
// move leads to.
func writeCheckSuffix(sb *strings.Builder, pos *Position, m Move) {
	status, err := pos.Apply(m).Status()
	if err != nil {
		return
	}
	switch status {
	case StatusCheckmate:
		sb.WriteByte('#')
	case StatusCheck:
		sb.WriteByte('+')
	}
}

// disambiguation returns the origin file, rank, or both, when another
// piece of the same kind could also reach the destination.
func disambiguation(pos *Position, m Move, piece Piece) string {
	from := m.From()
	to := m.To()

	var candidates []Square
	for _, move := range pos.GenerateLegalMoves().Slice() {
		if move.To() != to || move.From() == from {
			continue
		}
		if pos.Squares[move.From()] == piece {
			candidates = append(candidates, move.From())
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	sameFile := false
	sameRank := false
	for _, sq := range candidates {
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}

	if !sameFile {
		return string('a' + byte(from.File()))
	}
	if !sameRank {
		return string('1' + byte(from.Rank()))
	}
	return from.String()
}

// ParseSAN parses a SAN string and returns the matching legal move.
func ParseSAN(s string, pos *Position) (Move, error) {
	s = strings.TrimSpace(s)
	orig := s

	if s == "O-O" || s == "0-0" || s == "O-O+" || s == "O-O#" {
		return matchLegalMove(pos, CastleMove(pos.SideToMove, true), orig)
	}
	if s == "O-O-O" || s == "0-0-0" || s == "O-O-O+" || s == "O-O-O#" {
		return matchLegalMove(pos, CastleMove(pos.SideToMove, false), orig)
	}

	// Check and mate markers carry no information the position lacks.
	s = strings.TrimSuffix(s, "+")
	s = strings.TrimSuffix(s, "#")

	// Promotion suffix, e.g. "e8=Q"
	promoPiece := NoPieceType
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		if idx+1 >= len(s) {
			return NoMove, fmt.Errorf("invalid SAN: %s", orig)
		}
		i := strings.IndexByte("NBRQ", s[idx+1])
		if i < 0 {
			return NoMove, fmt.Errorf("invalid promotion in SAN: %s", orig)
		}
		promoPiece = Knight + PieceType(i)
		s = s[:idx]
	}

	isCapture := strings.Contains(s, "x")
	s = strings.ReplaceAll(s, "x", "")

	// A leading uppercase letter names the piece; pawns go unnamed.
	pt := Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		i := strings.IndexByte("NBRQK", s[0])
		if i < 0 {
			return NoMove, fmt.Errorf("invalid piece in SAN: %s", orig)
		}
		pt = Knight + PieceType(i)
		s = s[1:]
	}

	// The destination is the trailing square; whatever precedes it
	// disambiguates the origin.
	if len(s) < 2 {
		return NoMove, fmt.Errorf("invalid SAN: %s", orig)
	}
	dest, err := ParseSquare(s[len(s)-2:])
	if err != nil {
		return NoMove, fmt.Errorf("invalid SAN: %s", orig)
	}
	s = s[:len(s)-2]

	disambigFile, disambigRank := -1, -1
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'h':
			disambigFile = int(c - 'a')
		case c >= '1' && c <= '8':
			disambigRank = int(c - '1')
		default:
			return NoMove, fmt.Errorf("invalid SAN: %s", orig)
		}
	}

	// First legal move consistent with every parsed constraint wins.
	for _, m := range pos.GenerateLegalMoves().Slice() {
		if m.To() != dest {
			continue
		}

		from := m.From()
		if pos.Squares[from].Type() != pt {
			continue
		}
		if disambigFile >= 0 && from.File() != disambigFile {
			continue
		}
		if disambigRank >= 0 && from.Rank() != disambigRank {
			continue
		}
		if isCapture && !m.IsCapture(pos) {
			continue
		}
		if promoPiece != NoPieceType {
			if !m.IsPromotion() || m.Promotion() != promoPiece {
				continue
			}
		} else if m.IsPromotion() {
			continue
		}

		return m, nil
	}

	return NoMove, fmt.Errorf("no matching legal move: %s", orig)
}

// matchLegalMove returns m if it is legal in pos.
func matchLegalMove(pos *Position, m Move, san string) (Move, error) {
	if pos.GenerateLegalMoves().Contains(m) {
		return m, nil
	}
	return NoMove, fmt.Errorf("no matching legal move: %s", san)
}

// MovesToSAN renders a sequence of moves played from pos.
func MovesToSAN(pos *Position, moves []Move) []string {
	result := make([]string, len(moves))
	p := pos

	for i, m := range moves {
		result[i] = m.ToSAN(p)
		p = p.Apply(m)
	}

	return result
}
