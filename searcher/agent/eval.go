package agent

import (
	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
	depth    int
}

// NewSearchAgent returns an agent that searches depth plies with s on every move.
func NewSearchAgent(s searcher.Searcher, depth int) Agent {
	return searchAgent{searcher: s, depth: depth}
}

func (a searchAgent) FindMove(state game.GameState) (*searcher.Result, metrics.SearchMetric) {
	return a.searcher.SelectMove(state, a.depth)
}
