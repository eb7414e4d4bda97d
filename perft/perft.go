// Package perft counts leaf nodes of the legal-move tree to a fixed
// depth, the standard oracle for move-generator correctness: the
// counts for the standard starting position and several well-known
// test positions are published and depth-independent of any engine.
package perft

import chess "github.com/barakmich/gochess"

// Count returns the number of leaf positions reachable from b in
// exactly depth plies of legal moves. Count(b, 0) is always 1.
func Count(b *chess.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := chess.GenerateLegalMoves(b)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m)
		nodes += Count(b, depth-1)
		b.UnmakeMove()
	}
	return nodes
}

// Divide returns, for each legal move from b, the perft count of the
// subtree it leads to at depth-1. It is a debugging aid for comparing
// move-generator output against a reference engine one root move at a
// time.
func Divide(b *chess.Board, depth int) map[string]uint64 {
	moves := chess.GenerateLegalMoves(b)
	out := make(map[string]uint64, len(moves))
	for _, m := range moves {
		b.MakeMove(m)
		out[m.String()] = Count(b, depth-1)
		b.UnmakeMove()
	}
	return out
}
