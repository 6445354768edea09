package searcher

import (
	"math"

	"divgame/experiments/metrics"
	"divgame/game"
)

// AlphaBeta is minimax with alpha-beta pruning. Moves are visited in the same
// ascending order, so it selects the same move with the same score while
// visiting a subset of the nodes.
type AlphaBeta struct {
	evaluate game.Evaluate
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	c := newConfig(options)
	return &AlphaBeta{evaluate: c.evaluate}
}

func (a *AlphaBeta) Algorithm() Algorithm {
	return AlgorithmAlphaBeta
}

func (a *AlphaBeta) SelectMove(state game.GameState, maxDepth int) (*Result, metrics.SearchMetric) {
	mustBeSearchable(state, maxDepth)
	s := newSearch(a.evaluate, AlgorithmAlphaBeta, maxDepth)

	s.metrics.AddNode() // Root
	alpha, beta := math.MinInt, math.MaxInt
	var best *Result
	for _, move := range game.LegalMoves(state.Number) {
		child := s.play(state, move)
		// A child that cannot beat alpha returns a bound <= alpha, which the
		// strict comparison never adopts; any better child returns its exact value.
		value := s.alphaBeta(child, maxDepth-1, alpha, beta)
		if best == nil || value > best.Score {
			best = &Result{State: child, Move: move, Score: value}
			alpha = max(alpha, value)
		}
	}
	return best, s.complete(best)
}

func (s *search) alphaBeta(state game.GameState, depth, alpha, beta int) int {
	if s.visit(state, depth) {
		return s.evaluate(state)
	}

	if state.Turn == game.Computer {
		best := math.MinInt
		for _, move := range game.LegalMoves(state.Number) {
			best = max(best, s.alphaBeta(s.play(state, move), depth-1, alpha, beta))
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range game.LegalMoves(state.Number) {
		best = min(best, s.alphaBeta(s.play(state, move), depth-1, alpha, beta))
		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}
	return best
}
