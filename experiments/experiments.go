package experiments

import (
	"fmt"
	"time"

	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Output says where experiment records go. A zero Output keeps results in
// memory only.
type Output struct {
	Dir    string
	Format metrics.Format
}

func (o Output) enabled() bool {
	return o.Dir != ""
}

func (o Output) writer(name string) (*metrics.Writer, error) {
	writer, err := metrics.NewWriter(o.Dir, name, o.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msgf("storing %s results", name)
	return writer, nil
}

// agentConfigs numbers every algorithm at depth, starting from 1.
func agentConfigs(depths []int) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for _, depth := range depths {
		for _, algorithm := range searcher.Algorithms {
			configs = append(configs, metrics.AgentConfig{
				ID:        int32(len(configs) + 1),
				Algorithm: string(algorithm),
				Depth:     int32(depth),
			})
		}
	}
	return configs
}

// sampleState draws a start number and plays an even number of random moves
// so the computer is to move in a live position.
func sampleState(rng *rand.Rand, lo, hi int) (game.GameState, error) {
	state, err := game.RandomStart(rng, lo, hi, game.Computer)
	if err != nil {
		return game.GameState{}, err
	}
	plies := 2 * rng.Intn(3)
	for i := 0; i < plies; i++ {
		moves := game.LegalMoves(state.Number)
		next, err := game.Apply(state, moves[rng.Intn(len(moves))])
		if err != nil {
			return game.GameState{}, err
		}
		if game.IsTerminal(next) {
			break
		}
		state = next
	}
	if state.Turn != game.Computer {
		state = state.Pass()
	}
	return state, nil
}

// resolveSeed returns seed, or a time-based seed when seed is 0. The seed in
// use is logged so a run can be repeated.
func resolveSeed(seed uint64) uint64 {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) | 1
	}
	log.Info().Uint64("seed", seed).Msg("using random seed")
	return seed
}
