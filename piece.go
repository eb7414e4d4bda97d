package chess

// PieceType is the type of a chess piece, independent of color. The
// ordering matches the evaluator's material and piece-square tables.
type PieceType uint8

const (
	// Pawn represents a pawn.
	Pawn PieceType = iota
	// Knight represents a knight.
	Knight
	// Bishop represents a bishop.
	Bishop
	// Rook represents a rook.
	Rook
	// Queen represents a queen.
	Queen
	// King represents a king.
	King
	// NoPieceType represents the absence of a piece type.
	NoPieceType
)

// allPieceTypes enumerates the six piece types, pawn first, king last.
var allPieceTypes = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the piece type's lowercase FEN letter.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return ""
}

// upperString returns the piece type's uppercase FEN/SAN letter. Pawns
// have no SAN letter.
func (pt PieceType) upperString() string {
	switch pt {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// pieceTypeFromUpper parses an uppercase SAN piece letter, returning
// NoPieceType for an unrecognized or pawn-implicit letter.
func pieceTypeFromUpper(c byte) PieceType {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPieceType
}

// promoPieceTypeFromLower parses a promotion letter as used in long
// algebraic move strings: one of q, r, b, n.
func promoPieceTypeFromLower(c byte) PieceType {
	switch c {
	case 'q':
		return Queen
	case 'r':
		return Rook
	case 'b':
		return Bishop
	case 'n':
		return Knight
	}
	return NoPieceType
}

// Piece is a piece type bound to a color. The encoding packs the color
// into the upper bits and the type into the lower bits, so a Piece can
// index directly into a flat per-piece table.
type Piece uint8

const (
	// NoPiece represents the absence of a piece on a square.
	NoPiece Piece = 0xFF
)

// NewPiece returns the Piece for the given type and color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece(uint8(c)<<4 | uint8(pt))
}

// Type returns the piece's type.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p & 0x0F)
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return Color(p >> 4)
}

// String implements the fmt.Stringer interface and returns the FEN
// letter for the piece: uppercase for White, lowercase for Black.
func (p Piece) String() string {
	if p == NoPiece {
		return ""
	}
	t := p.Type()
	if p.Color() == White {
		up := t.upperString()
		if up == "" {
			return "P"
		}
		return up
	}
	return t.String()
}
