package chess

import "testing"

func TestStartingPositionOccupancyInvariant(t *testing.T) {
	b := StartingPosition()
	for sq := Square(0); sq < 64; sq++ {
		occupants := 0
		for _, c := range [2]Color{White, Black} {
			for _, pt := range allPieceTypes {
				if b.pieces[c][pt].Occupied(sq) {
					occupants++
				}
			}
		}
		if occupants > 1 {
			t.Fatalf("square %s is claimed by %d piece bitboards", sq, occupants)
		}
	}
	if b.Combined() != b.Occupied(White)|b.Occupied(Black) {
		t.Fatalf("combined occupancy is not the union of per-color occupancy")
	}
	if b.Occupied(White)&b.Occupied(Black) != 0 {
		t.Fatalf("White and Black occupancy overlap")
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := StartingPosition()
	before := b.FEN()

	moves := GenerateLegalMoves(b)
	for _, m := range moves {
		b.MakeMove(m)
		b.UnmakeMove()
		if got := b.FEN(); got != before {
			t.Fatalf("make/unmake of %s did not round trip: got %q want %q", m, got, before)
		}
	}
}

func TestMakeUnmakeRoundTripDeep(t *testing.T) {
	b := StartingPosition()
	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		before := b.FEN()
		for _, m := range GenerateLegalMoves(b) {
			b.MakeMove(m)
			walk(depth - 1)
			b.UnmakeMove()
			if got := b.FEN(); got != before {
				t.Fatalf("nested make/unmake of %s at depth %d did not round trip: got %q want %q", m, depth, got, before)
			}
		}
	}
	walk(3)
}

func TestCastlingRightsRevokedByKingMove(t *testing.T) {
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m := Move{From: NewSquare(FileE, Rank1), To: NewSquare(FileE, Rank2), Promoted: NoPieceType, Captured: NoPieceType}
	b.MakeMove(m)
	if b.Castling()&(WhiteKingSide|WhiteQueenSide) != 0 {
		t.Fatalf("king move did not revoke White's castling rights: %s", b.Castling())
	}
	if b.Castling()&(BlackKingSide|BlackQueenSide) == 0 {
		t.Fatalf("Black's castling rights were revoked by a White move")
	}
}

func TestCastlingRightsRevokedByRookCapture(t *testing.T) {
	b, err := FromFEN("4k2r/8/8/8/8/8/8/4K2R w Kk - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	// the h-file is open, so the h1 rook captures the h8 rook directly:
	// the capture revokes BlackKingSide and the departure from h1
	// revokes WhiteKingSide.
	m := Move{From: NewSquare(FileH, Rank1), To: NewSquare(FileH, Rank8), Promoted: NoPieceType, Captured: NoPieceType}
	b.MakeMove(m)
	if b.Castling().has(BlackKingSide) {
		t.Fatalf("capture of the h8 rook did not revoke BlackKingSide")
	}
	if b.Castling().has(WhiteKingSide) {
		t.Fatalf("rook departure from h1 did not revoke WhiteKingSide")
	}
}

func TestEnPassantCapture(t *testing.T) {
	b, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	found := false
	for _, m := range GenerateLegalMoves(b) {
		if m.Flags.Has(EnPassant) {
			found = true
			b.MakeMove(m)
			if b.PieceAt(NewSquare(FileD, Rank5)) != NoPiece {
				t.Fatalf("captured pawn still present after en passant")
			}
			if m.Captured != Pawn {
				t.Fatalf("en passant move did not record Captured=Pawn")
			}
			b.UnmakeMove()
			if b.PieceAt(NewSquare(FileD, Rank5)) != NewPiece(Pawn, Black) {
				t.Fatalf("unmake did not restore the captured pawn")
			}
		}
	}
	if !found {
		t.Fatalf("no en passant move generated from a position with a pending target")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		draw bool
	}{
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},             // K vs K
		{"4k3/8/8/8/8/8/8/4K1B1 w - - 0 1", true},           // K+B vs K
		{"4k3/8/8/8/8/8/8/4K1N1 w - - 0 1", true},           // K+N vs K
		{"4k3/8/8/8/8/4b3/8/4K1B1 w - - 0 1", true},         // same-color bishops
		{"4k3/8/8/8/8/8/8/4K2R w - - 0 1", false},           // K+R vs K
		{"4k3/8/8/8/8/8/6N1/4K1N1 w - - 0 1", false},        // K+2N vs K
	}
	for _, c := range cases {
		b, err := FromFEN(c.fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", c.fen, err)
		}
		if got := b.HasInsufficientMaterial(); got != c.draw {
			t.Fatalf("HasInsufficientMaterial(%q): got %v want %v", c.fen, got, c.draw)
		}
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	b, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 99 50")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if b.IsFiftyMoveDraw() {
		t.Fatalf("halfmove clock 99 already reports fifty-move draw")
	}
	m := Move{From: NewSquare(FileE, Rank1), To: NewSquare(FileD, Rank1), Promoted: NoPieceType, Captured: NoPieceType}
	b.MakeMove(m)
	if !b.IsFiftyMoveDraw() {
		t.Fatalf("halfmove clock 100 did not report fifty-move draw")
	}
}
