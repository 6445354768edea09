package agent

import (
	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/searcher"
)

type Agent interface {
	// FindMove returns the chosen successor and the search metrics, or a nil
	// result when the mover has no legal move.
	FindMove(state game.GameState) (*searcher.Result, metrics.SearchMetric)
}
