package chess

import (
	"regexp"
	"strings"
)

// ParseLongAlgebraic parses a long algebraic move string such as
// "e2e4" or "e7e8q" against the board's current legal moves, returning
// the matching legal Move (carrying the flags and captured-piece data
// the generator attached). It rejects any string that does not name a
// legal move in this position, including syntactically valid strings
// whose move simply is not legal.
func ParseLongAlgebraic(b *Board, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, newError(InvalidMoveString, s, "expected 4 or 5 characters")
	}
	from, err := squareFromString(s[0:2])
	if err != nil {
		return Move{}, newError(InvalidMoveString, s, "malformed origin square")
	}
	to, err := squareFromString(s[2:4])
	if err != nil {
		return Move{}, newError(InvalidMoveString, s, "malformed destination square")
	}
	promo := NoPieceType
	if len(s) == 5 {
		promo = promoPieceTypeFromLower(s[4])
		if promo == NoPieceType {
			return Move{}, newError(InvalidMoveString, s, "unrecognized promotion letter")
		}
	}
	for _, m := range GenerateLegalMoves(b) {
		if m.From == from && m.To == to && m.Promoted == promo {
			return m, nil
		}
	}
	return Move{}, newError(InvalidMoveString, s, "not a legal move in this position")
}

var sanPattern = regexp.MustCompile(`^(?:([KQRBN]?)([a-h]?)([1-8]?)(x?)([a-h][1-8])(=[QRBN])?|(O-O(?:-O)?))[+#]?$`)

// EncodeSAN returns the Standard Algebraic Notation for a legal move m
// in the position b, which must be the position m was generated
// against. It disambiguates by file, then rank, then both, exactly as
// needed to distinguish m from other legal moves of the same piece
// type landing on the same square.
func EncodeSAN(b *Board, m Move) string {
	if m.Flags.Has(Castle) {
		s := "O-O"
		if m.To.File() == FileC {
			s = "O-O-O"
		}
		return s + sanCheckSuffix(b, m)
	}

	p := b.PieceAt(m.From)
	pt := p.Type()
	var sb strings.Builder
	sb.WriteString(pt.upperString())

	if pt == Pawn {
		if m.Flags.Has(Capture) {
			sb.WriteString(m.From.File().String())
		}
	} else {
		sb.WriteString(sanDisambiguation(b, m, pt))
	}

	if m.Flags.Has(Capture) {
		sb.WriteString("x")
	}
	sb.WriteString(m.To.String())
	if m.Flags.Has(Promotion) {
		sb.WriteString("=")
		sb.WriteString(m.Promoted.upperString())
	}
	sb.WriteString(sanCheckSuffix(b, m))
	return sb.String()
}

// sanDisambiguation returns the minimal file/rank/both prefix needed to
// distinguish m from other legal moves of the same piece type landing
// on the same square.
func sanDisambiguation(b *Board, m Move, pt PieceType) string {
	var sameFile, sameRank, any bool
	for _, other := range GenerateLegalMoves(b) {
		if other.To != m.To || other.From == m.From {
			continue
		}
		if b.PieceAt(other.From).Type() != pt {
			continue
		}
		any = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !any {
		return ""
	}
	if !sameFile {
		return m.From.File().String()
	}
	if !sameRank {
		return m.From.Rank().String()
	}
	return m.From.String()
}

func sanCheckSuffix(b *Board, m Move) string {
	mover := b.turn
	b.make(m)
	defer b.unmake()
	opponent := mover.Opposite()
	if !b.IsKingInCheck(opponent) {
		return ""
	}
	if len(GenerateLegalMoves(b)) == 0 {
		return "#"
	}
	return "+"
}

// ParseSAN parses a Standard Algebraic Notation move string against
// the board's current legal moves.
func ParseSAN(b *Board, s string) (Move, error) {
	trimmed := strings.TrimRight(s, "+#")
	for _, m := range GenerateLegalMoves(b) {
		if EncodeSAN(b, m) == s || EncodeSAN(b, m) == trimmed {
			return m, nil
		}
	}
	if !sanPattern.MatchString(s) {
		return Move{}, newError(InvalidMoveString, s, "does not match SAN grammar")
	}
	return Move{}, newError(InvalidMoveString, s, "not a legal move in this position")
}
