package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/awaisrafeeq/chesstutor/internal/board"
	"github.com/awaisrafeeq/chesstutor/internal/engine"
	"github.com/awaisrafeeq/chesstutor/internal/server/session"
)

// CreateGameRequest starts a session, from fen when one is given.
type CreateGameRequest struct {
	FEN string `json:"fen"`
}

// GameResponse carries a session id and the current verdict set.
type GameResponse struct {
	GameID   string          `json:"game_id"`
	Snapshot engine.Snapshot `json:"snapshot"`
}

// MoveRequest plays one move, in coordinate notation or SAN.
type MoveRequest struct {
	Move string `json:"move"`
}

// MoveResponse reports the played move and the position after it.
type MoveResponse struct {
	GameID   string            `json:"game_id"`
	Played   engine.MoveRecord `json:"played"`
	Snapshot engine.Snapshot   `json:"snapshot"`
}

// SquareResponse reports on one occupied square of a session's board.
type SquareResponse struct {
	GameID string              `json:"game_id"`
	Report engine.SquareReport `json:"report"`
}

// AnalyzeRequest asks for the verdict set of an arbitrary position,
// no session involved.
type AnalyzeRequest struct {
	FEN string `json:"fen"`
}

// AnalyzeResponse carries the verdicts for the analyzed position.
type AnalyzeResponse struct {
	Snapshot engine.Snapshot `json:"snapshot"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := s.manager.Create(strings.TrimSpace(req.FEN))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	snap, err := s.manager.Snapshot(sess.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, GameResponse{GameID: sess.ID, Snapshot: snap})
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snap, err := s.manager.Snapshot(id)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, GameResponse{GameID: id, Snapshot: snap})
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.Delete(r.PathValue("id")); err != nil {
		writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePlayMove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Move) == "" {
		writeError(w, http.StatusBadRequest, "missing move")
		return
	}

	rec, err := s.manager.Play(id, strings.TrimSpace(req.Move))
	if err != nil {
		writeSessionError(w, err)
		return
	}
	snap, err := s.manager.Snapshot(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, MoveResponse{GameID: id, Played: rec, Snapshot: snap})
}

func (s *Server) handleInspectSquare(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	rep, err := s.manager.Inspect(id, r.PathValue("square"))
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, SquareResponse{GameID: id, Report: rep})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.FEN) == "" {
		writeError(w, http.StatusBadRequest, "missing fen")
		return
	}

	eng, err := engine.NewFromFEN(strings.TrimSpace(req.FEN))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	snap, err := eng.Snapshot()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, AnalyzeResponse{Snapshot: snap})
}

// writeSessionError maps registry and rules errors onto HTTP statuses.
// Everything reachable here is a caller mistake, so the default is a
// 400 with the error text.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "game not found")
	case errors.Is(err, board.ErrNoPieceAtSquare):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
