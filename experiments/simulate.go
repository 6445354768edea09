package experiments

import (
	"fmt"

	"divgame/engine"
	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/searcher"
	"divgame/searcher/agent"

	"github.com/rs/zerolog/log"
)

type SimulateConfig struct {
	Games    int // Per algorithm
	Depth    int
	StartMin int
	StartMax int
	Seed     uint64 // 0 picks a time-based seed
	Output   Output
}

// SimulateResult holds every record produced by a simulation run.
type SimulateResult struct {
	Configs []metrics.AgentConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

// Wins counts computer wins, human wins and draws for an agent config.
func (r SimulateResult) Wins(agentID int32) (computer, human, draw int) {
	for _, g := range r.Games {
		if g.Agent != agentID {
			continue
		}
		switch g.Outcome {
		case game.ComputerWins.String():
			computer++
		case game.HumanWins.String():
			human++
		default:
			draw++
		}
	}
	return computer, human, draw
}

// Simulate plays full games of each algorithm against a random human. Game i
// uses the same seed for every algorithm, so both face the same start
// numbers, and the starting player alternates between games.
func Simulate(cfg SimulateConfig) (SimulateResult, error) {
	if cfg.Games <= 0 {
		return SimulateResult{}, fmt.Errorf("simulation needs at least one game")
	}

	baseSeed := resolveSeed(cfg.Seed)
	result := SimulateResult{Configs: agentConfigs([]int{cfg.Depth})}
	count := 0

	log.Info().Msg("starting simulation experiment...")

	for ci, config := range result.Configs {
		s, err := searcher.New(searcher.Algorithm(config.Algorithm))
		if err != nil {
			return SimulateResult{}, err
		}
		log.Info().Msgf("starting agent %d of %d: %+v", ci+1, len(result.Configs), config)

		for i := 0; i < cfg.Games; i++ {
			first := game.Human
			if i%2 == 1 {
				first = game.Computer
			}
			seed := baseSeed + uint64(i)

			e, err := engine.New(engine.Config{
				First:    first,
				StartMin: cfg.StartMin,
				StartMax: cfg.StartMax,
				Seed:     seed,
			}, agent.NewSearchAgent(s, int(config.Depth)))
			if err != nil {
				return SimulateResult{}, err
			}

			gameMetric := e.Run(agent.NewRandomAgent(seed))
			count++
			result.Games = append(result.Games, metrics.NewGameRecord(count, int(config.ID), gameMetric))
			for _, mm := range e.MoveMetrics() {
				result.Moves = append(result.Moves, metrics.NewMoveRecord(count, mm))
			}

			log.Debug().Msgf("completed agent %d game %d with outcome: %s", config.ID, i+1, gameMetric.Outcome)
		}

		computer, human, draw := result.Wins(config.ID)
		log.Info().Msgf("completed agent %d: computer %d, human %d, draw %d", config.ID, computer, human, draw)
	}

	log.Info().Msg("completed simulation experiment")

	if cfg.Output.enabled() {
		if err := storeSimulation(cfg.Output, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func storeSimulation(out Output, result SimulateResult) error {
	writer, err := out.writer("simulation")
	if err != nil {
		return err
	}

	err = writer.WriteAgentConfigs(result.Configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return nil
}
