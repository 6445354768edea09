package searcher

import (
	"fmt"

	"divgame/experiments/metrics"
	"divgame/game"

	"github.com/rs/zerolog/log"
)

// search holds the per-call state of one SelectMove. Nothing in it outlives
// the call.
type search struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func newSearch(evaluate game.Evaluate, algorithm Algorithm, maxDepth int) *search {
	s := &search{
		evaluate: evaluate,
		metrics:  metrics.NewCollector(),
	}
	s.metrics.Start(string(algorithm), maxDepth)
	return s
}

// visit counts a node and reports whether recursion stops there.
func (s *search) visit(state game.GameState, depth int) bool {
	s.metrics.AddNode()
	return depth <= 0 || game.IsTerminal(state)
}

func (s *search) play(state game.GameState, move game.Move) game.GameState {
	next, err := game.Apply(state, move)
	if err != nil { // Moves come from LegalMoves
		panic(err)
	}
	return next
}

func (s *search) complete(result *Result) metrics.SearchMetric {
	metric := s.metrics.Complete()
	event := log.Debug().
		Str("algorithm", metric.Algorithm).
		Int("depth", metric.Depth).
		Int64("nodes", metric.NodesVisited).
		Dur("duration", metric.Duration)
	if result == nil {
		event.Msg("no legal move for the computer")
	} else {
		event.Int("move", int(result.Move)).Int("score", result.Score).Msg("selected move")
	}
	return metric
}

// mustBeSearchable panics on inputs that are programming errors rather than
// game situations.
func mustBeSearchable(state game.GameState, maxDepth int) {
	if maxDepth < 0 {
		panic(fmt.Sprintf("search depth must not be negative, got %d", maxDepth))
	}
	if state.Number <= 0 {
		panic(fmt.Sprintf("number must be positive, got %d", state.Number))
	}
	if state.Turn != game.Computer {
		panic("search called on the human's turn")
	}
	if state.Number <= game.TerminalThreshold {
		panic(fmt.Sprintf("search called on a finished game (number %d)", state.Number))
	}
}
