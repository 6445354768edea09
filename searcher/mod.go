package searcher

import (
	"fmt"
	"strings"

	"divgame/experiments/metrics"
	"divgame/game"
)

// Searcher picks the computer's move by depth-limited adversarial search.
type Searcher interface {
	// SelectMove searches maxDepth plies below state and returns the best
	// successor, or nil when the computer has no legal move. The metric
	// covers this call only.
	SelectMove(state game.GameState, maxDepth int) (*Result, metrics.SearchMetric)
	Algorithm() Algorithm
}

// Result is the successor chosen by a search.
type Result struct {
	State game.GameState `json:"state"`
	Move  game.Move      `json:"move"`
	Score int            `json:"score"`
}

type Algorithm string

const (
	AlgorithmMinimax   Algorithm = "minimax"
	AlgorithmAlphaBeta Algorithm = "alphabeta"
)

// Algorithms lists every strategy.
var Algorithms = []Algorithm{AlgorithmMinimax, AlgorithmAlphaBeta}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case AlgorithmMinimax, AlgorithmAlphaBeta:
		return a, nil
	case "alpha-beta":
		return AlgorithmAlphaBeta, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q: want minimax or alphabeta", s)
	}
}

// New returns the searcher implementing algorithm.
func New(algorithm Algorithm, options ...Option) (Searcher, error) {
	switch algorithm {
	case AlgorithmMinimax:
		return NewMinimax(options...), nil
	case AlgorithmAlphaBeta:
		return NewAlphaBeta(options...), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}
