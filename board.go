package chess

import "fmt"

// CastleRights tracks which of the four castling privileges remain.
// Bits are cleared permanently (except by unmake) and never restored
// once cleared by a king move, a rook move off its home square, or a
// capture of a rook on its home square.
type CastleRights uint8

const (
	WhiteKingSide CastleRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

func (cr CastleRights) has(f CastleRights) bool { return cr&f != 0 }

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (cr CastleRights) String() string {
	s := ""
	if cr.has(WhiteKingSide) {
		s += "K"
	}
	if cr.has(WhiteQueenSide) {
		s += "Q"
	}
	if cr.has(BlackKingSide) {
		s += "k"
	}
	if cr.has(BlackQueenSide) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Board is a mutable chess position: twelve piece/color bitboards, the
// derived occupancy bitboards, side to move, castling rights, the
// en-passant target, halfmove clock, fullmove number, and the history
// stacks that make unmake exact and O(1).
type Board struct {
	pieces   [2][6]Bitboard // pieces[color][type]
	occupied [2]Bitboard    // derived: union over piece types per color
	combined Bitboard       // derived: occupied[White] | occupied[Black]

	turn          Color
	castling      CastleRights
	enPassant     Square
	halfmoveClock int
	fullmoveNum   int

	kingSquare [2]Square

	history   []Move
	positions []Bitboard // combined-occupancy snapshot per applied move
}

// NewEmptyBoard returns a board with no pieces, White to move, no
// castling rights, no en-passant target, at move 1.
func NewEmptyBoard() *Board {
	b := &Board{
		turn:        White,
		enPassant:   NoSquare,
		fullmoveNum: 1,
		kingSquare:  [2]Square{NoSquare, NoSquare},
	}
	return b
}

// StartingPosition returns a board set to the standard chess starting
// position.
func StartingPosition() *Board {
	b, err := FromFEN(startFEN)
	if err != nil {
		panic("gochess: starting FEN failed to parse: " + err.Error())
	}
	return b
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Turn returns the side to move.
func (b *Board) Turn() Color { return b.turn }

// Castling returns the current castling rights.
func (b *Board) Castling() CastleRights { return b.castling }

// EnPassant returns the current en-passant target square, or NoSquare.
func (b *Board) EnPassant() Square { return b.enPassant }

// HalfmoveClock returns the current halfmove clock.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the current fullmove number.
func (b *Board) FullmoveNumber() int { return b.fullmoveNum }

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c Color) Square { return b.kingSquare[c] }

// History returns the moves applied so far, oldest first. The
// returned slice must not be mutated.
func (b *Board) History() []Move { return b.history }

// PieceBitboard returns the bitboard of pieces of the given type and
// color.
func (b *Board) PieceBitboard(c Color, pt PieceType) Bitboard {
	return b.pieces[c][pt]
}

// Occupied returns the combined occupancy of the given color.
func (b *Board) Occupied(c Color) Bitboard { return b.occupied[c] }

// Combined returns the union of both colors' occupancy.
func (b *Board) Combined() Bitboard { return b.combined }

// PieceAt returns the piece occupying sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	bb := bbForSquare(sq)
	for _, c := range [2]Color{White, Black} {
		for _, pt := range allPieceTypes {
			if b.pieces[c][pt]&bb != 0 {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// SetPiece places a piece on sq, clearing any prior occupant of that
// square first. It recomputes occupancy only: castling rights and the
// king-square cache are left untouched, so callers that build a
// position from scratch (FEN import) must finish initializing
// kingSquare via syncKingSquares.
func (b *Board) SetPiece(sq Square, p Piece) {
	bb := bbForSquare(sq)
	for _, c := range [2]Color{White, Black} {
		for _, pt := range allPieceTypes {
			b.pieces[c][pt] &^= bb
		}
	}
	if p != NoPiece {
		b.pieces[p.Color()][p.Type()] |= bb
	}
	b.recomputeOccupancy()
}

func (b *Board) recomputeOccupancy() {
	var w, bk Bitboard
	for _, pt := range allPieceTypes {
		w |= b.pieces[White][pt]
		bk |= b.pieces[Black][pt]
	}
	b.occupied[White] = w
	b.occupied[Black] = bk
	b.combined = w | bk
}

func (b *Board) syncKingSquares() {
	if bb := b.pieces[White][King]; bb != 0 {
		b.kingSquare[White] = bb.LSBSquare()
	} else {
		b.kingSquare[White] = NoSquare
	}
	if bb := b.pieces[Black][King]; bb != 0 {
		b.kingSquare[Black] = bb.LSBSquare()
	} else {
		b.kingSquare[Black] = NoSquare
	}
}

// movePiece relocates the piece at from to to, clearing whatever (if
// anything) previously sat on to. It is an internal-invariant
// violation to call this when from holds no piece.
func (b *Board) movePiece(from, to Square) Piece {
	p := b.PieceAt(from)
	if p == NoPiece {
		panic(fmt.Sprintf("gochess: movePiece: no piece at %s", from))
	}
	fromBB, toBB := bbForSquare(from), bbForSquare(to)
	// remove whatever was on the destination square
	for _, c := range [2]Color{White, Black} {
		for _, pt := range allPieceTypes {
			b.pieces[c][pt] &^= toBB
		}
	}
	b.pieces[p.Color()][p.Type()] = (b.pieces[p.Color()][p.Type()] &^ fromBB) | toBB
	if p.Type() == King {
		b.kingSquare[p.Color()] = to
	}
	return p
}

// MakeMove applies a legal move to the board, pushing history so
// UnmakeMove can reverse it exactly. Callers outside this package
// should only pass moves returned by GenerateLegalMoves for this
// exact position; passing anything else is an internal-invariant
// violation. A move whose origin square holds no piece of the side to
// move panics rather than returning an error; other invalid moves are
// not detected.
func (b *Board) MakeMove(m Move) { b.make(m) }

// UnmakeMove reverses the most recently applied move. It panics if no
// move has been made.
func (b *Board) UnmakeMove() { b.unmake() }

// make applies m to the board, pushing history so unmake can reverse
// it exactly. m must be a move this board's generator could have
// produced against this exact position; internal-invariant violations
// (e.g. no piece at m.From belonging to the side to move) are
// programming errors and panic rather than returning an error.
func (b *Board) make(m Move) {
	mover := b.turn
	p := b.PieceAt(m.From)
	if p == NoPiece || p.Color() != mover {
		panic(fmt.Sprintf("gochess: make: %s has no %s piece at %s", m, mover.Name(), m.From))
	}

	m.prevCastling = b.castling
	m.prevEnPassant = b.enPassant
	m.prevHalfmove = b.halfmoveClock
	b.enPassant = NoSquare

	if m.Flags.Has(Castle) {
		b.applyCastleRookMove(mover, m.To, false)
	}

	captured := b.PieceAt(m.To)
	if captured != NoPiece {
		m.Captured = captured.Type()
		m.Flags |= Capture
	}

	b.movePiece(m.From, m.To)

	if captured != NoPiece && captured.Type() == Rook {
		b.revokeRightsForRookCapture(captured.Color(), m.To)
	}

	if m.Flags.Has(EnPassant) {
		var capSq Square
		if mover == White {
			capSq = m.To - 8
		} else {
			capSq = m.To + 8
		}
		b.pieces[mover.Opposite()][Pawn] &^= bbForSquare(capSq)
		m.Captured = Pawn
	}

	if m.Flags.Has(Promotion) {
		pawnBB := bbForSquare(m.To)
		b.pieces[mover][Pawn] &^= pawnBB
		b.pieces[mover][m.Promoted] |= pawnBB
	}

	if p.Type() == King {
		b.revokeRights(mover)
	}
	if p.Type() == Rook {
		b.revokeRightForRookDeparture(mover, m.From)
	}

	if p.Type() == Pawn {
		diff := int(m.To) - int(m.From)
		if diff == 16 {
			b.enPassant = m.From + 8
		} else if diff == -16 {
			b.enPassant = m.From - 8
		}
	}

	if mover == Black {
		b.fullmoveNum++
	}
	if p.Type() == Pawn || m.Flags.Has(Capture) {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	b.recomputeOccupancy()
	b.positions = append(b.positions, b.combined)
	b.turn = mover.Opposite()
	b.history = append(b.history, m)
}

// unmake reverses the most recently applied move. It panics if no
// move has been made.
func (b *Board) unmake() {
	n := len(b.history)
	if n == 0 {
		panic("gochess: unmake: no move to undo")
	}
	m := b.history[n-1]
	b.history = b.history[:n-1]
	b.positions = b.positions[:len(b.positions)-1]

	mover := b.turn.Opposite()
	b.turn = mover
	if mover == Black {
		b.fullmoveNum--
	}

	if m.Flags.Has(Promotion) {
		toBB := bbForSquare(m.To)
		b.pieces[mover][m.Promoted] &^= toBB
		b.pieces[mover][Pawn] |= toBB
	}

	// move the piece (now a pawn again, if it was promoted) back home
	movedType := b.PieceAt(m.To).Type()
	fromBB, toBB := bbForSquare(m.From), bbForSquare(m.To)
	b.pieces[mover][movedType] = (b.pieces[mover][movedType] &^ toBB) | fromBB
	if movedType == King {
		b.kingSquare[mover] = m.From
	}

	if m.Flags.Has(EnPassant) {
		var capSq Square
		if mover == White {
			capSq = m.To - 8
		} else {
			capSq = m.To + 8
		}
		b.pieces[mover.Opposite()][Pawn] |= bbForSquare(capSq)
	} else if m.Flags.Has(Capture) {
		b.pieces[mover.Opposite()][m.Captured] |= toBB
	}

	if m.Flags.Has(Castle) {
		b.applyCastleRookMove(mover, m.To, true)
	}

	b.castling = m.prevCastling
	b.enPassant = m.prevEnPassant
	b.halfmoveClock = m.prevHalfmove

	b.recomputeOccupancy()
}

// applyCastleRookMove relocates the rook involved in a castling move.
// When undo is true it performs the inverse relocation.
func (b *Board) applyCastleRookMove(mover Color, kingTo Square, undo bool) {
	var rookFrom, rookTo Square
	switch kingTo {
	case 6: // white kingside
		rookFrom, rookTo = 7, 5
	case 2: // white queenside
		rookFrom, rookTo = 0, 3
	case 62: // black kingside
		rookFrom, rookTo = 63, 61
	case 58: // black queenside
		rookFrom, rookTo = 56, 59
	default:
		panic(fmt.Sprintf("gochess: applyCastleRookMove: unexpected king destination %s", kingTo))
	}
	if undo {
		rookFrom, rookTo = rookTo, rookFrom
	}
	fromBB, toBB := bbForSquare(rookFrom), bbForSquare(rookTo)
	b.pieces[mover][Rook] = (b.pieces[mover][Rook] &^ fromBB) | toBB
}

func (b *Board) revokeRights(c Color) {
	if c == White {
		b.castling &^= WhiteKingSide | WhiteQueenSide
	} else {
		b.castling &^= BlackKingSide | BlackQueenSide
	}
}

func (b *Board) revokeRightForRookDeparture(c Color, from Square) {
	switch {
	case c == White && from == 0:
		b.castling &^= WhiteQueenSide
	case c == White && from == 7:
		b.castling &^= WhiteKingSide
	case c == Black && from == 56:
		b.castling &^= BlackQueenSide
	case c == Black && from == 63:
		b.castling &^= BlackKingSide
	}
}

func (b *Board) revokeRightsForRookCapture(capturedColor Color, at Square) {
	b.revokeRightForRookDeparture(capturedColor, at)
}

// IsSquareAttacked reports whether sq is attacked by any piece of
// attacker.
func (b *Board) IsSquareAttacked(sq Square, attacker Color) bool {
	if pawnAttacks(attacker.Opposite(), sq)&b.pieces[attacker][Pawn] != 0 {
		return true
	}
	if knightAttacks(sq)&b.pieces[attacker][Knight] != 0 {
		return true
	}
	if kingAttacks(sq)&b.pieces[attacker][King] != 0 {
		return true
	}
	rooksQueens := b.pieces[attacker][Rook] | b.pieces[attacker][Queen]
	if rookAttacks(sq, b.combined)&rooksQueens != 0 {
		return true
	}
	bishopsQueens := b.pieces[attacker][Bishop] | b.pieces[attacker][Queen]
	if bishopAttacks(sq, b.combined)&bishopsQueens != 0 {
		return true
	}
	return false
}

// IsKingInCheck reports whether color c's king is currently attacked.
func (b *Board) IsKingInCheck(c Color) bool {
	if b.kingSquare[c] == NoSquare {
		return false
	}
	return b.IsSquareAttacked(b.kingSquare[c], c.Opposite())
}

const (
	lightSquares Bitboard = 0x55AA55AA55AA55AA
	darkSquares  Bitboard = 0xAA55AA55AA55AA55
)

// HasInsufficientMaterial reports whether neither side has enough
// material to deliver checkmate under the rules documented in §4.3:
// any pawn, rook, or queen on the board rules this out; a side with
// two or more knights rules this out; bishops for a side on both
// square colors rules this out; and a side holding a knight together
// with bishops of its own rules this out. A lone knight facing only
// enemy bishops still counts as insufficient, which is stricter than
// FIDE.
func (b *Board) HasInsufficientMaterial() bool {
	heavy := b.pieces[White][Queen] | b.pieces[White][Rook] | b.pieces[White][Pawn] |
		b.pieces[Black][Queen] | b.pieces[Black][Rook] | b.pieces[Black][Pawn]
	if heavy != 0 {
		return false
	}
	for _, c := range [2]Color{White, Black} {
		knights := b.pieces[c][Knight].Popcount()
		if knights >= 2 {
			return false
		}
		bishops := b.pieces[c][Bishop]
		if bishops&lightSquares != 0 && bishops&darkSquares != 0 {
			return false
		}
		if knights == 1 && bishops != 0 {
			return false
		}
	}
	return true
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached 100.
func (b *Board) IsFiftyMoveDraw() bool {
	return b.halfmoveClock >= 100
}

// IsRepetitionDraw reports whether the aggregate combined-occupancy
// bitboard has appeared at least three times in the applied-move
// history. This is the approximate repetition heuristic documented in
// the design notes: it does not distinguish side to move, castling
// rights, or en-passant rights.
func (b *Board) IsRepetitionDraw() bool {
	if len(b.positions) == 0 {
		return false
	}
	target := b.positions[len(b.positions)-1]
	count := 0
	for _, p := range b.positions {
		if p == target {
			count++
		}
	}
	return count >= 3
}

// IsDraw reports whether the position is drawn by any of the three
// detection rules: insufficient material, the fifty-move rule, or the
// aggregate-occupancy repetition heuristic.
func (b *Board) IsDraw() bool {
	return b.HasInsufficientMaterial() || b.IsFiftyMoveDraw() || b.IsRepetitionDraw()
}
