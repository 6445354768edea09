package searcher

import (
	"math"

	"divgame/experiments/metrics"
	"divgame/game"
)

// Minimax explores the whole depth-bounded tree without pruning.
type Minimax struct {
	evaluate game.Evaluate
}

func NewMinimax(options ...Option) *Minimax {
	c := newConfig(options)
	return &Minimax{evaluate: c.evaluate}
}

func (m *Minimax) Algorithm() Algorithm {
	return AlgorithmMinimax
}

func (m *Minimax) SelectMove(state game.GameState, maxDepth int) (*Result, metrics.SearchMetric) {
	mustBeSearchable(state, maxDepth)
	s := newSearch(m.evaluate, AlgorithmMinimax, maxDepth)

	s.metrics.AddNode() // Root
	var best *Result
	for _, move := range game.LegalMoves(state.Number) {
		child := s.play(state, move)
		value := s.minimax(child, maxDepth-1)
		// Strict improvement keeps the lowest divisor on ties
		if best == nil || value > best.Score {
			best = &Result{State: child, Move: move, Score: value}
		}
	}
	return best, s.complete(best)
}

func (s *search) minimax(state game.GameState, depth int) int {
	if s.visit(state, depth) {
		return s.evaluate(state)
	}

	if state.Turn == game.Computer {
		best := math.MinInt
		for _, move := range game.LegalMoves(state.Number) {
			best = max(best, s.minimax(s.play(state, move), depth-1))
		}
		return best
	}

	best := math.MaxInt
	for _, move := range game.LegalMoves(state.Number) {
		best = min(best, s.minimax(s.play(state, move), depth-1))
	}
	return best
}
