package engine

import (
	"errors"
	"fmt"

	"github.com/awaisrafeeq/chesstutor/internal/board"
)

// ErrIllegalMove is returned by Play when the requested move is not in
// the legal move set of the current position.
var ErrIllegalMove = errors.New("illegal move")

// Engine wraps a single game: the current position plus the move
// history that produced it. It re-exposes the rules engine's verdicts
// as JSON-shaped reports for the HTTP and CLI layers, and it threads
// castling rights and the en passant target across plies by replacing
// its position with the one Apply returns.
//
// Engine is not safe for concurrent use; the session layer serializes
// access to it.
type Engine struct {
	pos     *board.Position
	history []MoveRecord
}

// New creates an engine at the standard starting position.
func New() *Engine {
	return &Engine{pos: board.NewPosition()}
}

// NewFromFEN creates an engine at an arbitrary position.
func NewFromFEN(fen string) (*Engine, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Engine{pos: pos}, nil
}

// Restore rebuilds an engine from a stored game: the current position
// plus the records of the moves that produced it.
func Restore(fen string, history []MoveRecord) (*Engine, error) {
	e, err := NewFromFEN(fen)
	if err != nil {
		return nil, err
	}
	e.history = append([]MoveRecord(nil), history...)
	return e, nil
}

// Reset puts the engine back on the starting position and clears the
// move history.
func (e *Engine) Reset() {
	e.pos = board.NewPosition()
	e.history = nil
}

// LoadFEN replaces the current game with the given position. The move
// history is cleared: a loaded position has no known past, so en
// passant and castling state come from the FEN fields alone. On a
// parse error the engine keeps its current game.
func (e *Engine) LoadFEN(fen string) error {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}
	e.pos = pos
	e.history = nil
	return nil
}

// Position returns the current position. Callers must not mutate it;
// Play never does, each ply replaces it with a fresh copy.
func (e *Engine) Position() *board.Position {
	return e.pos
}

// FEN returns the current position in FEN.
func (e *Engine) FEN() string {
	return e.pos.ToFEN()
}

// History returns the moves played so far, oldest first.
func (e *Engine) History() []MoveRecord {
	out := make([]MoveRecord, len(e.history))
	copy(out, e.history)
	return out
}

// Play applies one move given in coordinate notation ("e2e4", "e7e8q")
// or SAN ("Nf3", "O-O", "exd8=Q+"). The move must be in the current
// legal move set; anything else is rejected with ErrIllegalMove and
// the position is left untouched. Nothing the generator has not
// enumerated is ever executed.
func (e *Engine) Play(notation string) (MoveRecord, error) {
	m, err := board.ParseMove(notation, e.pos)
	if err != nil {
		m, err = board.ParseSAN(notation, e.pos)
	}
	if err != nil {
		return MoveRecord{}, fmt.Errorf("%w: %q", ErrIllegalMove, notation)
	}
	if !e.pos.GenerateLegalMoves().Contains(m) {
		return MoveRecord{}, fmt.Errorf("%w: %q", ErrIllegalMove, notation)
	}

	rec := newMoveRecord(e.pos, m)
	e.pos = e.pos.Apply(m)
	e.history = append(e.history, rec)
	return rec, nil
}
