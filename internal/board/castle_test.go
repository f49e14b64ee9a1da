package board

import "testing"

func TestCastleMoveEncoding(t *testing.T) {
	tests := []struct {
		c        Color
		kingSide bool
		king     string
		rook     string
	}{
		{White, true, "e1g1", "h1f1"},
		{White, false, "e1c1", "a1d1"},
		{Black, true, "e8g8", "h8f8"},
		{Black, false, "e8c8", "a8d8"},
	}

	for _, tc := range tests {
		if got := CastleMove(tc.c, tc.kingSide).String(); got != tc.king {
			t.Errorf("CastleMove(%s, %v) = %s, want %s", tc.c, tc.kingSide, got, tc.king)
		}
		if got := CastleRookMove(tc.c, tc.kingSide).String(); got != tc.rook {
			t.Errorf("CastleRookMove(%s, %v) = %s, want %s", tc.c, tc.kingSide, got, tc.rook)
		}
	}
}

func TestCanCastleKingSide(t *testing.T) {
	// Bare kingside castle: king e1, rook h1, empty f1/g1, no attackers.
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")

	if !pos.CanCastle(White, true) {
		t.Fatal("expected White to be able to castle kingside")
	}

	moves := pos.GenerateLegalMoves()
	if !moves.Contains(CastleMove(White, true)) {
		t.Error("legal moves should contain e1g1 castling")
	}

	next := pos.Apply(CastleMove(White, true))
	if next.PieceAt(G1) != NewPiece(King, White) {
		t.Errorf("king should be on g1, found %v", next.PieceAt(G1))
	}
	if next.PieceAt(F1) != NewPiece(Rook, White) {
		t.Errorf("rook should be on f1, found %v", next.PieceAt(F1))
	}
	if next.PieceAt(E1) != NoPiece || next.PieceAt(H1) != NoPiece {
		t.Error("e1 and h1 should be empty after castling")
	}
	if next.CastlingRights.CanCastle(White, true) || next.CastlingRights.CanCastle(White, false) {
		t.Errorf("White retains castling rights %s after castling", next.CastlingRights)
	}
}

func TestCanCastleQueenSideBlack(t *testing.T) {
	pos := mustParseFEN(t, "r3k3/8/8/8/8/8/8/4K3 b q - 0 1")

	if !pos.CanCastle(Black, false) {
		t.Fatal("expected Black to be able to castle queenside")
	}

	next := pos.Apply(CastleMove(Black, false))
	if next.PieceAt(C8) != NewPiece(King, Black) {
		t.Errorf("king should be on c8, found %v", next.PieceAt(C8))
	}
	if next.PieceAt(D8) != NewPiece(Rook, Black) {
		t.Errorf("rook should be on d8, found %v", next.PieceAt(D8))
	}
}

func TestCanCastleDenied(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		c        Color
		kingSide bool
	}{
		// No right granted, pieces otherwise ready.
		{"no right", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", White, true},
		// Bishop still on f1.
		{"path blocked", "4k3/8/8/8/8/8/8/4KB1R w K - 0 1", White, true},
		// Rook on e7 gives check.
		{"king in check", "4k3/4r3/8/8/8/8/8/4K2R w K - 0 1", White, true},
		// Rook on f8 covers f1, the square the king crosses.
		{"transit square attacked", "4kr2/8/8/8/8/8/8/4K2R w K - 0 1", White, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			if pos.CanCastle(tc.c, tc.kingSide) {
				t.Errorf("CanCastle(%s, %v) = true, want false", tc.c, tc.kingSide)
			}
			if pos.GenerateLegalMoves().Contains(CastleMove(tc.c, tc.kingSide)) {
				t.Error("legal moves should not contain the castle")
			}
		})
	}
}

// TestCastleDeniedByCheckNotPath pins down which condition fails when a
// rook on a1 bears on the king: the ray stops at e1, so f1 and g1 are
// not attacked, and only the check itself denies the castle.
func TestCastleDeniedByCheckNotPath(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/8/r3K2R w K - 0 1")

	inCheck, err := pos.InCheck(White)
	if err != nil {
		t.Fatalf("InCheck(White): %v", err)
	}
	if !inCheck {
		t.Fatal("White should be in check from the a1 rook")
	}
	if pos.IsSquareAttacked(F1, Black) {
		t.Error("f1 should not be attacked; the rook's ray stops at e1")
	}
	if pos.IsSquareAttacked(G1, Black) {
		t.Error("g1 should not be attacked; the rook's ray stops at e1")
	}
	if pos.CanCastle(White, true) {
		t.Error("castling out of check must be denied")
	}
}

// TestQueenSideCastleIgnoresB1 covers the queenside asymmetry: b1 is
// crossed by the rook, not the king, so an attack on b1 alone does not
// deny the castle.
func TestQueenSideCastleIgnoresB1(t *testing.T) {
	pos := mustParseFEN(t, "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1")

	if !pos.IsSquareAttacked(B1, Black) {
		t.Fatal("b1 should be attacked by the b8 rook")
	}
	if !pos.CanCastle(White, false) {
		t.Error("queenside castle should be allowed with only b1 attacked")
	}
}

func TestCastlingRightsLifecycle(t *testing.T) {
	start := mustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	tests := []struct {
		name string
		move string
		want CastlingRights
	}{
		{"kingside rook move", "h1h2", WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle},
		{"queenside rook move", "a1a2", WhiteKingSideCastle | BlackKingSideCastle | BlackQueenSideCastle},
		{"king move clears both", "e1e2", BlackKingSideCastle | BlackQueenSideCastle},
		{"rook capture clears both corners", "h1h8", WhiteQueenSideCastle | BlackQueenSideCastle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMove(tc.move, start)
			if err != nil {
				t.Fatalf("ParseMove(%s): %v", tc.move, err)
			}
			next := start.Apply(m)
			if next.CastlingRights != tc.want {
				t.Errorf("rights after %s = %s, want %s", tc.move, next.CastlingRights, tc.want)
			}
		})
	}
}
