package engine

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/awaisrafeeq/chesstutor/internal/board"
)

func newTestEngine(t *testing.T, fen string) *Engine {
	t.Helper()
	e, err := NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q): %v", fen, err)
	}
	return e
}

func mustPlay(t *testing.T, e *Engine, notation string) MoveRecord {
	t.Helper()
	rec, err := e.Play(notation)
	if err != nil {
		t.Fatalf("Play(%q): %v", notation, err)
	}
	return rec
}

func TestPlayRecordsHistory(t *testing.T) {
	e := New()
	for _, notation := range []string{"e2e4", "e5", "Nf3"} {
		mustPlay(t, e, notation)
	}

	want := []MoveRecord{
		{Number: 1, Color: "white", UCI: "e2e4", SAN: "e4"},
		{Number: 1, Color: "black", UCI: "e7e5", SAN: "e5"},
		{Number: 2, Color: "white", UCI: "g1f3", SAN: "Nf3"},
	}
	if diff := cmp.Diff(want, e.History()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}

	wantFEN := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := e.FEN(); got != wantFEN {
		t.Errorf("FEN after 1.e4 e5 2.Nf3: got %s, want %s", got, wantFEN)
	}
}

func TestPlayIllegal(t *testing.T) {
	e := New()
	startFEN := e.FEN()

	for _, notation := range []string{"e2e5", "Qh5", "d1h5", "e9e4", "", "O-O"} {
		if _, err := e.Play(notation); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Play(%q): got %v, want ErrIllegalMove", notation, err)
		}
	}

	if got := e.FEN(); got != startFEN {
		t.Errorf("position changed by rejected moves: %s", got)
	}
	if n := len(e.History()); n != 0 {
		t.Errorf("history grew by rejected moves: %d records", n)
	}
}

func TestPlayTracksTurn(t *testing.T) {
	e := New()
	mustPlay(t, e, "e2e4")

	// White piece, but it is black's turn.
	if _, err := e.Play("d2d4"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Play(d2d4) out of turn: got %v, want ErrIllegalMove", err)
	}
}

func TestPlayFlags(t *testing.T) {
	e := newTestEngine(t, "4k3/4p3/8/3P4/8/8/8/4K3 b - - 0 1")
	mustPlay(t, e, "e7e5")
	rec := mustPlay(t, e, "dxe6")
	if !rec.Capture || !rec.EnPassant {
		t.Errorf("en passant record flags: %+v", rec)
	}
	if rec.UCI != "d5e6" || rec.SAN != "dxe6" {
		t.Errorf("en passant record notation: got %s / %s", rec.UCI, rec.SAN)
	}

	e = newTestEngine(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	rec = mustPlay(t, e, "e1g1")
	if !rec.Castle || rec.SAN != "O-O" {
		t.Errorf("castle record: %+v", rec)
	}

	e = newTestEngine(t, "8/3P4/8/8/8/7k/7p/7K w - - 2 70")
	rec = mustPlay(t, e, "d8=Q")
	if rec.Promotion != "queen" || rec.UCI != "d7d8q" {
		t.Errorf("promotion record: %+v", rec)
	}
	if rec.Number != 70 {
		t.Errorf("promotion record move number: got %d, want 70", rec.Number)
	}
}

func TestSnapshotStartingPosition(t *testing.T) {
	e := New()
	snap, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if snap.FEN != board.StartFEN {
		t.Errorf("FEN: got %s", snap.FEN)
	}
	if snap.Turn != "white" {
		t.Errorf("Turn: got %q, want white", snap.Turn)
	}
	if snap.Status != "normal" {
		t.Errorf("Status: got %q, want normal", snap.Status)
	}
	if snap.InCheck || len(snap.Checkers) != 0 {
		t.Errorf("check report: inCheck=%v checkers=%v", snap.InCheck, snap.Checkers)
	}
	if len(snap.LegalMoves) != 20 {
		t.Errorf("legal moves: got %d, want 20", len(snap.LegalMoves))
	}
	if snap.FullMoveNumber != 1 || snap.HalfMoveClock != 0 {
		t.Errorf("clocks: fullMove=%d halfMove=%d", snap.FullMoveNumber, snap.HalfMoveClock)
	}
	if snap.InsufficientMaterial || snap.FiftyMoveDraw {
		t.Errorf("draw flags set on starting position")
	}

	// Both rights are held but neither castle is playable yet.
	wantCastling := []CastleOption{
		{Side: "kingside", Right: true, Allowed: false, KingTo: "g1", RookTo: "f1"},
		{Side: "queenside", Right: true, Allowed: false, KingTo: "c1", RookTo: "d1"},
	}
	if diff := cmp.Diff(wantCastling, snap.Castling); diff != "" {
		t.Errorf("castling mismatch (-want +got):\n%s", diff)
	}

	if snap.EnPassant.Target != "" || len(snap.EnPassant.Capturers) != 0 {
		t.Errorf("en passant report: %+v", snap.EnPassant)
	}
	if len(snap.History) != 0 {
		t.Errorf("history: %v", snap.History)
	}
}

func TestSnapshotCheck(t *testing.T) {
	e := newTestEngine(t, "8/4r3/8/8/4K3/8/8/4k3 w - - 0 1")
	snap, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Status != "check" || !snap.InCheck {
		t.Errorf("status=%q inCheck=%v, want check/true", snap.Status, snap.InCheck)
	}
	if diff := cmp.Diff([]string{"e7"}, snap.Checkers); diff != "" {
		t.Errorf("checkers mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotCastlingAllowed(t *testing.T) {
	e := newTestEngine(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	snap, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	for _, opt := range snap.Castling {
		if !opt.Right || !opt.Allowed {
			t.Errorf("white %s: %+v, want right and allowed", opt.Side, opt)
		}
	}

	mustPlay(t, e, "e1g1")
	snap, err = e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Turn != "black" {
		t.Fatalf("Turn: got %q, want black", snap.Turn)
	}
	wantCastling := []CastleOption{
		{Side: "kingside", Right: true, Allowed: true, KingTo: "g8", RookTo: "f8"},
		{Side: "queenside", Right: true, Allowed: true, KingTo: "c8", RookTo: "d8"},
	}
	if diff := cmp.Diff(wantCastling, snap.Castling); diff != "" {
		t.Errorf("black castling mismatch (-want +got):\n%s", diff)
	}
	if len(snap.History) != 1 {
		t.Errorf("history: %v", snap.History)
	}
}

func TestSnapshotEnPassant(t *testing.T) {
	e := newTestEngine(t, "4k3/4p3/8/3P4/8/8/8/4K3 b - - 0 1")
	mustPlay(t, e, "e7e5")

	snap, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.EnPassant.Target != "e6" {
		t.Errorf("target: got %q, want e6", snap.EnPassant.Target)
	}
	if diff := cmp.Diff([]string{"d5"}, snap.EnPassant.Capturers); diff != "" {
		t.Errorf("capturers mismatch (-want +got):\n%s", diff)
	}

	// Declining the capture expires the opportunity.
	mustPlay(t, e, "Kd1")
	snap, err = e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.EnPassant.Target != "" || len(snap.EnPassant.Capturers) != 0 {
		t.Errorf("en passant survived a ply: %+v", snap.EnPassant)
	}
}

func TestSnapshotCheckmate(t *testing.T) {
	e := New()
	for _, notation := range []string{"f3", "e5", "g4", "Qh4#"} {
		mustPlay(t, e, notation)
	}

	snap, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Status != "checkmate" || !snap.InCheck {
		t.Errorf("status=%q inCheck=%v, want checkmate/true", snap.Status, snap.InCheck)
	}
	if len(snap.LegalMoves) != 0 {
		t.Errorf("legal moves in mate: %v", snap.LegalMoves)
	}
	if diff := cmp.Diff([]string{"h4"}, snap.Checkers); diff != "" {
		t.Errorf("checkers mismatch (-want +got):\n%s", diff)
	}
	if last := snap.History[len(snap.History)-1]; last.SAN != "Qh4#" {
		t.Errorf("mating record SAN: got %q, want Qh4#", last.SAN)
	}
	t.Logf("fool's mate reached: %s", snap.FEN)
}

func TestInspectSquare(t *testing.T) {
	e := New()
	rep, err := e.InspectSquare("g1")
	if err != nil {
		t.Fatalf("InspectSquare(g1): %v", err)
	}
	sort.Strings(rep.Attacks)
	sort.Strings(rep.Destinations)

	want := SquareReport{
		Square:       "g1",
		Piece:        "N",
		Color:        "white",
		Type:         "knight",
		Attacks:      []string{"e2", "f3", "h3"},
		Destinations: []string{"f3", "h3"},
		AttackedBy:   []string{},
	}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Errorf("g1 report mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectSquareTension(t *testing.T) {
	e := newTestEngine(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	rep, err := e.InspectSquare("e4")
	if err != nil {
		t.Fatalf("InspectSquare(e4): %v", err)
	}
	sort.Strings(rep.Attacks)
	sort.Strings(rep.Destinations)

	want := SquareReport{
		Square:       "e4",
		Piece:        "P",
		Color:        "white",
		Type:         "pawn",
		Attacks:      []string{"d5", "f5"},
		Destinations: []string{"d5", "e5"},
		AttackedBy:   []string{"d5"},
	}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Errorf("e4 report mismatch (-want +got):\n%s", diff)
	}

	// The same pawn from the other player's point of view: attacks
	// stay, destinations vanish because it is not black's piece to move.
	mustPlay(t, e, "exd5")
	rep, err = e.InspectSquare("d5")
	if err != nil {
		t.Fatalf("InspectSquare(d5): %v", err)
	}
	if rep.Color != "white" || len(rep.Destinations) != 0 {
		t.Errorf("d5 after capture: %+v", rep)
	}
}

func TestInspectSquareErrors(t *testing.T) {
	e := New()
	if _, err := e.InspectSquare("e4"); !errors.Is(err, board.ErrNoPieceAtSquare) {
		t.Errorf("empty square: got %v, want ErrNoPieceAtSquare", err)
	}
	if _, err := e.InspectSquare("z9"); err == nil {
		t.Error("expected error for z9")
	}
	if _, err := e.InspectSquare(""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestLoadFEN(t *testing.T) {
	e := New()
	mustPlay(t, e, "e2e4")

	if err := e.LoadFEN("7k/Q7/6K1/8/8/8/8/8 w - - 0 1"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	if n := len(e.History()); n != 0 {
		t.Fatalf("history survived LoadFEN: %d records", n)
	}

	rec := mustPlay(t, e, "Qh7#")
	if rec.SAN != "Qh7#" {
		t.Errorf("record SAN: got %q", rec.SAN)
	}
	snap, err := e.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Status != "checkmate" {
		t.Errorf("status after Qh7: got %q, want checkmate", snap.Status)
	}
}

func TestLoadFENInvalid(t *testing.T) {
	e := New()
	mustPlay(t, e, "e2e4")
	fen := e.FEN()

	for _, bad := range []string{"", "not a fen", "8/8/8/8/8/8/8/8 w - - 0 1"} {
		if err := e.LoadFEN(bad); err == nil {
			t.Errorf("LoadFEN(%q): expected error", bad)
		}
	}

	if got := e.FEN(); got != fen {
		t.Errorf("engine lost its game on a failed load: %s", got)
	}
	if n := len(e.History()); n != 1 {
		t.Errorf("history after failed loads: %d records", n)
	}

	if _, err := NewFromFEN("not a fen"); err == nil {
		t.Error("NewFromFEN: expected error")
	}
}

func TestReset(t *testing.T) {
	e := newTestEngine(t, "7k/Q7/6K1/8/8/8/8/8 w - - 0 1")
	mustPlay(t, e, "a7h7")

	e.Reset()
	if e.FEN() != board.StartFEN {
		t.Errorf("FEN after reset: %s", e.FEN())
	}
	if n := len(e.History()); n != 0 {
		t.Errorf("history after reset: %d records", n)
	}
}

func TestHistoryIsCopy(t *testing.T) {
	e := New()
	mustPlay(t, e, "e2e4")

	h := e.History()
	h[0].SAN = "mangled"
	if got := e.History()[0].SAN; got != "e4" {
		t.Errorf("engine history shares caller memory: %q", got)
	}
}
