package chess

import "testing"

func TestFromFENStartingPosition(t *testing.T) {
	b, err := FromFEN(startFEN)
	if err != nil {
		t.Fatalf("FromFEN(startFEN): unexpected error %v", err)
	}
	if b.Turn() != White {
		t.Fatalf("expected White to move, got %s", b.Turn())
	}
	if b.Castling() != WhiteKingSide|WhiteQueenSide|BlackKingSide|BlackQueenSide {
		t.Fatalf("expected all castling rights, got %s", b.Castling())
	}
	if b.EnPassant() != NoSquare {
		t.Fatalf("expected no en-passant target, got %s", b.EnPassant())
	}
	if b.PieceAt(NewSquare(FileE, Rank1)) != NewPiece(King, White) {
		t.Fatalf("expected white king on e1")
	}
	if b.PieceAt(NewSquare(FileE, Rank8)) != NewPiece(King, Black) {
		t.Fatalf("expected black king on e8")
	}
	if b.KingSquare(White) != NewSquare(FileE, Rank1) {
		t.Fatalf("king square cache not synced for White")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		startFEN,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/8/4p3/8/3P4/8 w - e3 0 5",
		"4k3/8/8/8/8/8/8/4K2R w K - 3 17",
	}
	for _, fen := range fens {
		b, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): unexpected error %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Fatalf("round trip mismatch: parsed %q, re-encoded %q", fen, got)
		}
	}
}

func TestFromFENRejectsWrongFieldCount(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	assertTag(t, err, WrongFieldCount)
}

func TestFromFENRejectsUnknownPieceLetter(t *testing.T) {
	_, err := FromFEN("rnbqkbnz/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assertTag(t, err, InvalidPiece)
}

func TestFromFENRejectsBadRankSum(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assertTag(t, err, InvalidPiece)
}

func TestFromFENRejectsBadColor(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assertTag(t, err, InvalidColor)
}

func TestFromFENRejectsBadCastling(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqz - 0 1")
	assertTag(t, err, InvalidCastling)
}

func TestFromFENRejectsBadEnPassant(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	assertTag(t, err, InvalidEnPassant)

	_, err = FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1")
	assertTag(t, err, InvalidEnPassant)
}

func TestFromFENRejectsBadCounters(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1")
	assertTag(t, err, InvalidHalfmoveClock)

	_, err = FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0")
	assertTag(t, err, InvalidFullmoveNumber)
}

func assertTag(t *testing.T, err error, want ErrorTag) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error tagged %s, got nil", want)
	}
	ferr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if ferr.Tag != want {
		t.Fatalf("expected tag %s, got %s", want, ferr.Tag)
	}
}
