package chess

import "testing"

func TestParseLongAlgebraicOpeningMove(t *testing.T) {
	b := StartingPosition()
	m, err := ParseLongAlgebraic(b, "e2e4")
	if err != nil {
		t.Fatalf("ParseLongAlgebraic(e2e4): unexpected error %v", err)
	}
	if m.From != NewSquare(FileE, Rank2) || m.To != NewSquare(FileE, Rank4) {
		t.Fatalf("parsed move has wrong squares: %s", m)
	}
	if got := m.String(); got != "e2e4" {
		t.Fatalf("round-trip String(): got %q want %q", got, "e2e4")
	}
}

func TestParseLongAlgebraicPromotion(t *testing.T) {
	b, err := FromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m, err := ParseLongAlgebraic(b, "a7a8q")
	if err != nil {
		t.Fatalf("ParseLongAlgebraic(a7a8q): unexpected error %v", err)
	}
	if m.Promoted != Queen {
		t.Fatalf("expected promotion to Queen, got %s", m.Promoted)
	}
	if got := m.String(); got != "a7a8q" {
		t.Fatalf("round-trip String(): got %q want %q", got, "a7a8q")
	}
}

func TestParseLongAlgebraicRejectsIllegalMove(t *testing.T) {
	b := StartingPosition()
	_, err := ParseLongAlgebraic(b, "e2e5")
	if err == nil {
		t.Fatalf("expected an error for an illegal move, got nil")
	}
	ferr, ok := err.(*Error)
	if !ok || ferr.Tag != InvalidMoveString {
		t.Fatalf("expected InvalidMoveString error, got %v", err)
	}
}

func TestParseLongAlgebraicRejectsMalformedString(t *testing.T) {
	b := StartingPosition()
	for _, s := range []string{"e2", "e2e4q5", "z2e4", "e2z4"} {
		if _, err := ParseLongAlgebraic(b, s); err == nil {
			t.Fatalf("expected error parsing %q, got nil", s)
		}
	}
}

func TestEncodeSANOpeningMove(t *testing.T) {
	b := StartingPosition()
	m, err := ParseLongAlgebraic(b, "e2e4")
	if err != nil {
		t.Fatalf("ParseLongAlgebraic: %v", err)
	}
	if got := EncodeSAN(b, m); got != "e4" {
		t.Fatalf("EncodeSAN(e2e4): got %q want %q", got, "e4")
	}
}

func TestEncodeSANDisambiguatesByFile(t *testing.T) {
	// two white knights on a1 and c1 can both reach b3: disambiguation
	// must name the origin file.
	b, err := FromFEN("4k3/8/8/8/8/8/8/N1NK4 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	for _, m := range GenerateLegalMoves(b) {
		if b.PieceAt(m.From).Type() == Knight && m.To == NewSquare(FileB, Rank3) {
			san := EncodeSAN(b, m)
			if san != "Nab3" && san != "Ncb3" {
				continue
			}
			return
		}
	}
	t.Fatalf("expected to find a disambiguated knight move to b3")
}

func TestEncodeSANCheckAndMateSuffix(t *testing.T) {
	b, err := FromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	var mateMove Move
	found := false
	for _, m := range GenerateLegalMoves(b) {
		if m.To == NewSquare(FileA, Rank8) {
			mateMove = m
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a rook move to a8")
	}
	san := EncodeSAN(b, mateMove)
	if san != "Ra8#" {
		t.Fatalf("EncodeSAN: got %q want %q", san, "Ra8#")
	}
}

func TestParseSANRoundTrip(t *testing.T) {
	b := StartingPosition()
	for _, m := range GenerateLegalMoves(b) {
		san := EncodeSAN(b, m)
		parsed, err := ParseSAN(b, san)
		if err != nil {
			t.Fatalf("ParseSAN(%q): unexpected error %v", san, err)
		}
		if !parsed.Eq(m) {
			t.Fatalf("ParseSAN(%q): got %s want %s", san, parsed, m)
		}
	}
}
