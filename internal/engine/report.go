package engine

import (
	"strings"

	"github.com/awaisrafeeq/chesstutor/internal/board"
)

// Snapshot is the full verdict set for the current position, shaped
// for JSON transport.
type Snapshot struct {
	FEN                  string          `json:"fen"`
	Turn                 string          `json:"turn"`
	FullMoveNumber       int             `json:"fullMoveNumber"`
	HalfMoveClock        int             `json:"halfMoveClock"`
	Status               string          `json:"status"`
	InCheck              bool            `json:"inCheck"`
	Checkers             []string        `json:"checkers"`
	Castling             []CastleOption  `json:"castling"`
	EnPassant            EnPassantReport `json:"enPassant"`
	InsufficientMaterial bool            `json:"insufficientMaterial"`
	FiftyMoveDraw        bool            `json:"fiftyMoveDraw"`
	LegalMoves           []MoveOption    `json:"legalMoves"`
	History              []MoveRecord    `json:"history"`
}

// CastleOption reports one castling possibility for the side to move.
// Right says the player still holds the right; Allowed says the move
// is legal on this very ply.
type CastleOption struct {
	Side    string `json:"side"` // "kingside" or "queenside"
	Right   bool   `json:"right"`
	Allowed bool   `json:"allowed"`
	KingTo  string `json:"kingTo"`
	RookTo  string `json:"rookTo"`
}

// EnPassantReport names the current en passant target, if any, and the
// pawns able to take it. Both fields are empty on the ply after the
// double push went unanswered.
type EnPassantReport struct {
	Target    string   `json:"target,omitempty"`
	Capturers []string `json:"capturers,omitempty"`
}

// MoveOption pairs the two notations of one legal move.
type MoveOption struct {
	UCI string `json:"uci"`
	SAN string `json:"san"`
}

// MoveRecord describes one played move.
type MoveRecord struct {
	Number    int    `json:"number"` // full move number when the move was played
	Color     string `json:"color"`
	UCI       string `json:"uci"`
	SAN       string `json:"san"`
	Capture   bool   `json:"capture"`
	Castle    bool   `json:"castle"`
	EnPassant bool   `json:"enPassant"`
	Promotion string `json:"promotion,omitempty"`
}

// SquareReport describes the piece on one square: what it is, which
// squares it attacks, where it may legally move this ply, and which
// enemy pieces bear on it.
type SquareReport struct {
	Square       string   `json:"square"`
	Piece        string   `json:"piece"` // FEN letter, "N" or "n"
	Color        string   `json:"color"`
	Type         string   `json:"type"`
	Attacks      []string `json:"attacks"`
	Destinations []string `json:"destinations"`
	AttackedBy   []string `json:"attackedBy"`
}

// Snapshot reports everything the teaching layer needs about the
// current position in one struct.
func (e *Engine) Snapshot() (Snapshot, error) {
	status, err := e.pos.Status()
	if err != nil {
		return Snapshot{}, err
	}
	inCheck, err := e.pos.InCheck(e.pos.SideToMove)
	if err != nil {
		return Snapshot{}, err
	}
	checkers, err := e.pos.CheckingPieces(e.pos.SideToMove)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		FEN:                  e.pos.ToFEN(),
		Turn:                 colorName(e.pos.SideToMove),
		FullMoveNumber:       e.pos.FullMoveNumber,
		HalfMoveClock:        e.pos.HalfMoveClock,
		Status:               status.String(),
		InCheck:              inCheck,
		Checkers:             squareNames(checkers),
		Castling:             castleOptions(e.pos),
		EnPassant:            enPassantReport(e.pos),
		InsufficientMaterial: e.pos.IsInsufficientMaterial(),
		FiftyMoveDraw:        e.pos.IsFiftyMoveDraw(),
		LegalMoves:           legalMoveOptions(e.pos),
		History:              e.History(),
	}, nil
}

// InspectSquare builds the report for the piece on the named square.
// An empty square reports board.ErrNoPieceAtSquare; resolving "what
// can this piece do" needs a piece.
func (e *Engine) InspectSquare(name string) (SquareReport, error) {
	sq, err := board.ParseSquare(name)
	if err != nil {
		return SquareReport{}, err
	}
	attacks, err := e.pos.Attacks(sq)
	if err != nil {
		return SquareReport{}, err
	}
	dests, err := e.pos.LegalDestinations(sq)
	if err != nil {
		return SquareReport{}, err
	}

	piece := e.pos.PieceAt(sq)
	return SquareReport{
		Square:       sq.String(),
		Piece:        piece.String(),
		Color:        colorName(piece.Color()),
		Type:         pieceName(piece.Type()),
		Attacks:      squareNames(attacks),
		Destinations: squareNames(dests),
		AttackedBy:   squareNames(e.pos.AttackersOf(sq, piece.Color().Other())),
	}, nil
}

func newMoveRecord(pos *board.Position, m board.Move) MoveRecord {
	rec := MoveRecord{
		Number:    pos.FullMoveNumber,
		Color:     colorName(pos.SideToMove),
		UCI:       m.String(),
		SAN:       m.ToSAN(pos),
		Capture:   m.IsCapture(pos),
		Castle:    m.IsCastling(),
		EnPassant: m.IsEnPassant(),
	}
	if m.IsPromotion() {
		rec.Promotion = pieceName(m.Promotion())
	}
	return rec
}

func castleOptions(pos *board.Position) []CastleOption {
	us := pos.SideToMove
	out := make([]CastleOption, 0, 2)
	for _, kingSide := range []bool{true, false} {
		side := "queenside"
		if kingSide {
			side = "kingside"
		}
		out = append(out, CastleOption{
			Side:    side,
			Right:   pos.CastlingRights.CanCastle(us, kingSide),
			Allowed: pos.CanCastle(us, kingSide),
			KingTo:  board.CastleMove(us, kingSide).To().String(),
			RookTo:  board.CastleRookMove(us, kingSide).To().String(),
		})
	}
	return out
}

func enPassantReport(pos *board.Position) EnPassantReport {
	if pos.EnPassant == board.NoSquare {
		return EnPassantReport{}
	}
	return EnPassantReport{
		Target:    pos.EnPassant.String(),
		Capturers: squareNames(pos.EnPassantCapturers()),
	}
}

func legalMoveOptions(pos *board.Position) []MoveOption {
	moves := pos.GenerateLegalMoves().Slice()
	sans := board.MovesToSAN(pos, moves)
	out := make([]MoveOption, len(moves))
	for i, m := range moves {
		out[i] = MoveOption{UCI: m.String(), SAN: sans[i]}
	}
	return out
}

func colorName(c board.Color) string {
	return strings.ToLower(c.String())
}

func pieceName(pt board.PieceType) string {
	return strings.ToLower(pt.String())
}

func squareNames(squares []board.Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}
