package chess

// promotionPieces lists the four pieces a pawn may promote to, in the
// order moves are emitted.
var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

type castleSpec struct {
	right            CastleRights
	kingFrom, kingTo Square
	rookFrom         Square
	transitSquares   [3]Square
	emptySquares     [3]Square
	emptyCount       int
}

var castleSpecs = [4]castleSpec{
	{WhiteKingSide, 4, 6, 7, [3]Square{4, 5, 6}, [3]Square{5, 6, 0}, 2},
	{WhiteQueenSide, 4, 2, 0, [3]Square{4, 3, 2}, [3]Square{1, 2, 3}, 3},
	{BlackKingSide, 60, 62, 63, [3]Square{60, 61, 62}, [3]Square{61, 62, 0}, 2},
	{BlackQueenSide, 60, 58, 56, [3]Square{60, 59, 58}, [3]Square{57, 58, 59}, 3},
}

// GeneratePseudoLegalMoves enumerates every pseudo-legal move for the
// side to move: it follows piece movement rules but may leave the
// mover's own king in check.
func GeneratePseudoLegalMoves(b *Board) []Move {
	moves := make([]Move, 0, 48)
	us := b.turn
	them := us.Opposite()
	friendly := b.occupied[us]
	enemy := b.occupied[them]
	empty := ^b.combined

	moves = appendPawnMoves(moves, b, us, enemy, empty)

	for _, sq := range b.pieces[us][Knight].Squares() {
		moves = appendLeaperMoves(moves, knightAttacks(sq), sq, friendly, enemy, empty)
	}
	for _, sq := range b.pieces[us][Bishop].Squares() {
		moves = appendLeaperMoves(moves, bishopAttacks(sq, b.combined), sq, friendly, enemy, empty)
	}
	for _, sq := range b.pieces[us][Rook].Squares() {
		moves = appendLeaperMoves(moves, rookAttacks(sq, b.combined), sq, friendly, enemy, empty)
	}
	for _, sq := range b.pieces[us][Queen].Squares() {
		moves = appendLeaperMoves(moves, queenAttacks(sq, b.combined), sq, friendly, enemy, empty)
	}
	for _, sq := range b.pieces[us][King].Squares() {
		moves = appendLeaperMoves(moves, kingAttacks(sq), sq, friendly, enemy, empty)
	}
	moves = appendCastleMoves(moves, b, us)

	// mark captures (including en passant) so callers can tell them
	// apart without replaying the move.
	for i := range moves {
		if captured := b.PieceAt(moves[i].To); captured != NoPiece {
			moves[i].Flags |= Capture
			moves[i].Captured = captured.Type()
		} else if moves[i].Flags.Has(EnPassant) {
			moves[i].Flags |= Capture
		}
	}

	return moves
}

// appendLeaperMoves splits an attack bitboard (already computed for a
// single origin square) into quiet moves and captures, subtracting
// friendly occupancy first.
func appendLeaperMoves(moves []Move, attacks Bitboard, from Square, friendly, enemy, empty Bitboard) []Move {
	attacks &^= friendly
	for _, to := range (attacks & empty).Squares() {
		moves = append(moves, Move{From: from, To: to, Promoted: NoPieceType, Captured: NoPieceType})
	}
	for _, to := range (attacks & enemy).Squares() {
		moves = append(moves, Move{From: from, To: to, Promoted: NoPieceType, Captured: NoPieceType})
	}
	return moves
}

func appendPawnMoves(moves []Move, b *Board, us Color, enemy, empty Bitboard) []Move {
	pawns := b.pieces[us][Pawn]
	var forward func(Bitboard) Bitboard
	var promoRank Bitboard
	var thirdRank Bitboard
	var capLeft, capRight Bitboard

	if us == White {
		forward = func(bb Bitboard) Bitboard { return bb << 8 }
		promoRank = bbRank8
		thirdRank = Bitboard(0xFF) << (8 * 2)
		capLeft = (pawns &^ bbFileA) << 7
		capRight = (pawns &^ bbFileH) << 9
	} else {
		forward = func(bb Bitboard) Bitboard { return bb >> 8 }
		promoRank = bbRank1
		thirdRank = Bitboard(0xFF) << (8 * 5)
		capLeft = (pawns &^ bbFileH) >> 7
		capRight = (pawns &^ bbFileA) >> 9
	}

	singlePush := forward(pawns) & empty
	doublePushSrc := singlePush & thirdRank
	doublePush := forward(doublePushSrc) & empty

	// origin offset for each push distance, used to fill in From.
	pushOffset := 8
	if us == Black {
		pushOffset = -8
	}
	for _, to := range singlePush.Squares() {
		from := Square(int(to) - pushOffset)
		moves = appendPawnTarget(moves, from, to, promoRank, NoPieceType)
	}
	for _, to := range doublePush.Squares() {
		from := Square(int(to) - 2*pushOffset)
		moves = append(moves, Move{From: from, To: to, Promoted: NoPieceType, Captured: NoPieceType})
	}

	capLeft &= enemy
	capRight &= enemy
	leftOffset, rightOffset := 7, 9
	if us == Black {
		leftOffset, rightOffset = -7, -9
	}
	for _, to := range capLeft.Squares() {
		from := Square(int(to) - leftOffset)
		moves = appendPawnTarget(moves, from, to, promoRank, NoPieceType)
	}
	for _, to := range capRight.Squares() {
		from := Square(int(to) - rightOffset)
		moves = appendPawnTarget(moves, from, to, promoRank, NoPieceType)
	}

	if b.enPassant != NoSquare {
		target := b.enPassant
		attackers := pawns & pawnAttacks(us.Opposite(), target)
		for _, from := range attackers.Squares() {
			moves = append(moves, Move{From: from, To: target, Flags: EnPassant, Promoted: NoPieceType, Captured: Pawn})
		}
	}

	return moves
}

// appendPawnTarget emits either a single quiet/capture move, or four
// promotion moves if to lands on the mover's eighth rank.
func appendPawnTarget(moves []Move, from, to Square, promoRank Bitboard, _ PieceType) []Move {
	if bbForSquare(to)&promoRank != 0 {
		for _, pt := range promotionPieces {
			moves = append(moves, Move{From: from, To: to, Flags: Promotion, Promoted: pt, Captured: NoPieceType})
		}
		return moves
	}
	moves = append(moves, Move{From: from, To: to, Promoted: NoPieceType, Captured: NoPieceType})
	return moves
}

func appendCastleMoves(moves []Move, b *Board, us Color) []Move {
	for _, cs := range castleSpecs {
		if !colorOwnsCastleRight(us, cs.right) {
			continue
		}
		if b.castling&cs.right == 0 {
			continue
		}
		if b.pieces[us][Rook]&bbForSquare(cs.rookFrom) == 0 {
			continue
		}
		empty := true
		for i := 0; i < cs.emptyCount; i++ {
			if b.combined&bbForSquare(cs.emptySquares[i]) != 0 {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		attacked := false
		for _, sq := range cs.transitSquares {
			if b.IsSquareAttacked(sq, us.Opposite()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		moves = append(moves, Move{From: cs.kingFrom, To: cs.kingTo, Flags: Castle, Promoted: NoPieceType, Captured: NoPieceType})
	}
	return moves
}

func colorOwnsCastleRight(c Color, r CastleRights) bool {
	if c == White {
		return r == WhiteKingSide || r == WhiteQueenSide
	}
	return r == BlackKingSide || r == BlackQueenSide
}

// GenerateLegalMoves enumerates every legal move for the side to move:
// each pseudo-legal candidate is played and rejected if it leaves the
// mover's own king in check. Castling's in-transit safety was already
// enforced during generation, before any move was made.
func GenerateLegalMoves(b *Board) []Move {
	pseudo := GeneratePseudoLegalMoves(b)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		mover := b.turn
		b.make(m)
		inCheck := b.IsKingInCheck(mover)
		b.unmake()
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}
