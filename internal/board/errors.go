package board

import "errors"

// Errors reported by position queries. Structural problems are caller
// or setup bugs and are never recovered internally; they propagate to
// the session layer, which owns user-visible messaging.
var (
	// ErrSquareOutOfRange reports a square index outside 0-63 or a
	// file/rank coordinate outside 0-7.
	ErrSquareOutOfRange = errors.New("square out of range")

	// ErrNoPieceAtSquare reports an attack or legality query anchored
	// on an empty square.
	ErrNoPieceAtSquare = errors.New("no piece at square")

	// ErrIncompleteState reports a position with zero or multiple kings
	// of a color. Queries that need "the king" cannot proceed.
	ErrIncompleteState = errors.New("incomplete game state")
)
