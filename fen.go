package chess

import (
	"strconv"
	"strings"
)

// FromFEN parses a Forsyth-Edwards Notation string into a Board. It
// rejects, without mutating any shared state, a string that does not
// carry exactly six space-separated fields, that names an unrecognized
// piece letter, a malformed castling-rights field, a malformed
// en-passant field, or a halfmove/fullmove field that is not a
// non-negative integer.
func FromFEN(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, newError(WrongFieldCount, s, "expected 6 space-separated fields")
	}

	b := NewEmptyBoard()
	if err := parsePlacement(b, fields[0], s); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, newError(InvalidColor, s, "side to move must be 'w' or 'b'")
	}

	castling, err := parseCastling(fields[2], s)
	if err != nil {
		return nil, err
	}
	b.castling = castling

	ep, err := parseEnPassant(fields[3], s)
	if err != nil {
		return nil, err
	}
	b.enPassant = ep

	halfmove, err := parseNonNegativeInt(fields[4], s, InvalidHalfmoveClock)
	if err != nil {
		return nil, err
	}
	b.halfmoveClock = halfmove

	fullmove, err := parseNonNegativeInt(fields[5], s, InvalidFullmoveNumber)
	if err != nil {
		return nil, err
	}
	if fullmove == 0 {
		return nil, newError(InvalidFullmoveNumber, s, "fullmove number must be at least 1")
	}
	b.fullmoveNum = fullmove

	b.recomputeOccupancy()
	b.syncKingSquares()
	return b, nil
}

func parsePlacement(b *Board, field, full string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return newError(InvalidPiece, full, "piece placement must have 8 ranks")
	}
	for i, rankField := range ranks {
		rank := Rank(7 - i)
		file := 0
		for j := 0; j < len(rankField); j++ {
			c := rankField[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file >= 8 {
				return newError(InvalidPiece, full, "too many squares on one rank")
			}
			p, err := pieceFromFENLetter(c, full)
			if err != nil {
				return err
			}
			b.SetPiece(NewSquare(File(file), rank), p)
			file++
		}
		if file != 8 {
			return newError(InvalidPiece, full, "rank does not sum to 8 files")
		}
	}
	return nil
}

func pieceFromFENLetter(c byte, full string) (Piece, error) {
	var color Color
	upper := c
	if c >= 'a' && c <= 'z' {
		color = Black
		upper = c - ('a' - 'A')
	} else {
		color = White
	}
	var pt PieceType
	switch upper {
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return NoPiece, newError(InvalidPiece, full, "unrecognized piece letter '"+string(c)+"'")
	}
	return NewPiece(pt, color), nil
}

func parseCastling(field, full string) (CastleRights, error) {
	if field == "-" {
		return 0, nil
	}
	var cr CastleRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			cr |= WhiteKingSide
		case 'Q':
			cr |= WhiteQueenSide
		case 'k':
			cr |= BlackKingSide
		case 'q':
			cr |= BlackQueenSide
		default:
			return 0, newError(InvalidCastling, full, "unrecognized castling letter '"+string(field[i])+"'")
		}
	}
	return cr, nil
}

func parseEnPassant(field, full string) (Square, error) {
	if field == "-" {
		return NoSquare, nil
	}
	sq, err := squareFromString(field)
	if err != nil {
		return NoSquare, newError(InvalidEnPassant, full, "malformed en-passant square")
	}
	if sq.Rank() != Rank3 && sq.Rank() != Rank6 {
		return NoSquare, newError(InvalidEnPassant, full, "en-passant target must be on rank 3 or 6")
	}
	return sq, nil
}

func parseNonNegativeInt(field, full string, tag ErrorTag) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, newError(tag, full, "must be a non-negative integer")
	}
	return n, nil
}

// FEN returns the Forsyth-Edwards Notation string for the board's
// current position.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.PieceAt(NewSquare(File(f), Rank(r)))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.turn.String())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNum))
	return sb.String()
}

// String returns the board's FEN representation.
func (b *Board) String() string {
	return b.FEN()
}
