package agent

import (
	"sync"
	"time"

	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/searcher"

	"golang.org/x/exp/rand"
)

const AlgorithmRandom = "random"

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// It stands in for the human in simulated games.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.GameState) (*searcher.Result, metrics.SearchMetric) {
	metric := metrics.SearchMetric{Algorithm: AlgorithmRandom, StartTime: time.Now()}
	moves := game.LegalMoves(state.Number)
	if len(moves) == 0 {
		return nil, metric
	}

	a.mu.Lock()
	move := moves[a.rng.Intn(len(moves))]
	a.mu.Unlock()

	next, err := game.Apply(state, move)
	if err != nil {
		panic(err)
	}
	metric.Duration = time.Since(metric.StartTime)
	return &searcher.Result{State: next, Move: move, Score: game.EvaluateScoreDifference(next)}, metric
}
