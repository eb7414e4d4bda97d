// Package search implements a fixed-depth negamax search with
// alpha-beta pruning over the static evaluator in package eval.
package search

import (
	"sort"

	chess "github.com/barakmich/gochess"
	"github.com/barakmich/gochess/eval"
)

// Mate is the base score assigned to a checkmate found at the search
// root. A mate found at ply p scores as -(Mate-p) for the side being
// mated and Mate-p for the side delivering it, so shallower mates
// always outscore deeper ones.
const Mate = 100000

// Result is the outcome of a fixed-depth search: the best move found
// (absent only when the position has no legal move) and its score
// from the side-to-move's perspective, in centipawns.
type Result struct {
	Move  chess.Move
	Score int
	Found bool
}

// Search explores every line to exactly depth plies (no quiescence,
// no iterative deepening) and returns the best move for the side to
// move, alpha-beta pruned against the static evaluator in package
// eval. depth must be at least 1. A position with no legal move
// returns Found false: Score is -Mate if the side to move is
// checkmated, 0 if it is stalemated.
func Search(b *chess.Board, depth int) Result {
	moves := chess.GenerateLegalMoves(b)
	if len(moves) == 0 {
		if b.IsKingInCheck(b.Turn()) {
			return Result{Score: -Mate}
		}
		return Result{}
	}
	orderMoves(b, moves)

	alpha, beta := -Mate-1, Mate+1
	best := moves[0]
	bestScore := -Mate - 1
	for _, m := range moves {
		b.MakeMove(m)
		score := -negamax(b, depth-1, -beta, -alpha, 1)
		b.UnmakeMove()
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}
	return Result{Move: best, Score: bestScore, Found: true}
}

// negamax returns the score of b from the perspective of the side to
// move, searching depth further plies. ply counts moves made since
// the search root and is used to prefer shallower mates.
func negamax(b *chess.Board, depth, alpha, beta, ply int) int {
	moves := chess.GenerateLegalMoves(b)
	if len(moves) == 0 {
		if b.IsKingInCheck(b.Turn()) {
			return -Mate + ply
		}
		return 0
	}
	if b.IsDraw() {
		return 0
	}
	if depth == 0 {
		return sideToMoveScore(b)
	}
	orderMoves(b, moves)

	best := -Mate - 1
	for _, m := range moves {
		b.MakeMove(m)
		score := -negamax(b, depth-1, -beta, -alpha, ply+1)
		b.UnmakeMove()
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// sideToMoveScore returns eval.Evaluate(b), sign-flipped if Black is
// to move, so higher always means better for the side to move.
func sideToMoveScore(b *chess.Board) int {
	score := eval.Evaluate(b)
	if b.Turn() == chess.Black {
		return -score
	}
	return score
}

// orderMoves sorts captures before quiet moves, a cheap heuristic that
// tightens alpha-beta pruning without needing a prior search pass.
func orderMoves(b *chess.Board, moves []chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Flags.Has(chess.Capture) && !moves[j].Flags.Has(chess.Capture)
	})
}
