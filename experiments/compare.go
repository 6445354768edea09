package experiments

import (
	"context"
	"fmt"
	"time"

	"divgame/experiments/metrics"
	"divgame/game"
	"divgame/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type CompareConfig struct {
	Samples  int
	Depths   []int
	Workers  int
	StartMin int
	StartMax int
	Seed     uint64 // 0 picks a time-based seed
	Output   Output
}

// DepthSummary aggregates both algorithms over every sample at one depth.
type DepthSummary struct {
	Depth          int
	Samples        int
	MinimaxNodes   int64
	AlphaBetaNodes int64
	MinimaxTime    time.Duration
	AlphaBetaTime  time.Duration
}

// Pruned is the share of minimax's nodes that alpha-beta skipped.
func (s DepthSummary) Pruned() float64 {
	if s.MinimaxNodes == 0 {
		return 0
	}
	return 1 - float64(s.AlphaBetaNodes)/float64(s.MinimaxNodes)
}

// Compare runs minimax and alpha-beta on the same sampled states at every
// depth, fails if they ever disagree, and returns one record per search.
// Searches run concurrently, one sample per goroutine.
func Compare(ctx context.Context, cfg CompareConfig) ([]metrics.ComparisonRecord, []DepthSummary, error) {
	if cfg.Samples <= 0 || len(cfg.Depths) == 0 {
		return nil, nil, fmt.Errorf("comparison needs samples and depths")
	}

	rng := rand.New(rand.NewSource(resolveSeed(cfg.Seed)))
	states := make([]game.GameState, cfg.Samples)
	for i := range states {
		state, err := sampleState(rng, cfg.StartMin, cfg.StartMax)
		if err != nil {
			return nil, nil, err
		}
		states[i] = state
	}

	log.Info().Int("samples", cfg.Samples).Ints("depths", cfg.Depths).Msg("starting comparison experiment...")

	minimax, alphaBeta := searcher.NewMinimax(), searcher.NewAlphaBeta()
	perSample := make([][]metrics.ComparisonRecord, len(states))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i, state := range states {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := compareState(i, state, cfg.Depths, minimax, alphaBeta)
			perSample[i] = records
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	records := []metrics.ComparisonRecord{}
	for _, r := range perSample {
		records = append(records, r...)
	}
	summaries := summarize(cfg.Depths, records)
	for _, s := range summaries {
		log.Info().
			Int("depth", s.Depth).
			Int64("minimax_nodes", s.MinimaxNodes).
			Int64("alphabeta_nodes", s.AlphaBetaNodes).
			Dur("minimax_time", s.MinimaxTime).
			Dur("alphabeta_time", s.AlphaBetaTime).
			Msgf("depth %d: alpha-beta pruned %.1f%% of nodes", s.Depth, 100*s.Pruned())
	}
	log.Info().Msg("completed comparison experiment")

	if cfg.Output.enabled() {
		if err := storeComparison(cfg.Output, cfg.Depths, records); err != nil {
			return records, summaries, err
		}
	}
	return records, summaries, nil
}

func compareState(sample int, state game.GameState, depths []int, minimax, alphaBeta searcher.Searcher) ([]metrics.ComparisonRecord, error) {
	records := make([]metrics.ComparisonRecord, 0, 2*len(depths))
	for _, depth := range depths {
		want, wantMetric := minimax.SelectMove(state, depth)
		got, gotMetric := alphaBeta.SelectMove(state, depth)

		if (want == nil) != (got == nil) ||
			(want != nil && (want.Move != got.Move || want.Score != got.Score)) {
			return records, fmt.Errorf("sample %d (%v) depth %d: minimax chose %+v, alpha-beta chose %+v", sample, state, depth, want, got)
		}

		records = append(records,
			comparisonRecord(sample, state, want, wantMetric),
			comparisonRecord(sample, state, got, gotMetric),
		)
	}
	return records, nil
}

func comparisonRecord(sample int, state game.GameState, result *searcher.Result, metric metrics.SearchMetric) metrics.ComparisonRecord {
	r := metrics.ComparisonRecord{
		Sample:        int32(sample),
		Number:        int64(state.Number),
		HumanScore:    int32(state.HumanScore),
		ComputerScore: int32(state.ComputerScore),
		Depth:         int32(metric.Depth),
		Algorithm:     metric.Algorithm,
		NodesVisited:  metric.NodesVisited,
		DurationNs:    int64(metric.Duration),
	}
	if result != nil {
		r.Move = int32(result.Move)
		r.Score = int64(result.Score)
	}
	return r
}

func summarize(depths []int, records []metrics.ComparisonRecord) []DepthSummary {
	byDepth := make(map[int]*DepthSummary, len(depths))
	summaries := make([]DepthSummary, len(depths))
	for i, d := range depths {
		summaries[i].Depth = d
		byDepth[d] = &summaries[i]
	}
	for _, r := range records {
		s := byDepth[int(r.Depth)]
		switch searcher.Algorithm(r.Algorithm) {
		case searcher.AlgorithmMinimax:
			s.Samples++
			s.MinimaxNodes += r.NodesVisited
			s.MinimaxTime += time.Duration(r.DurationNs)
		case searcher.AlgorithmAlphaBeta:
			s.AlphaBetaNodes += r.NodesVisited
			s.AlphaBetaTime += time.Duration(r.DurationNs)
		}
	}
	return summaries
}

func storeComparison(out Output, depths []int, records []metrics.ComparisonRecord) error {
	writer, err := out.writer("comparison")
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(agentConfigs(depths)); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteComparisonRecords(records); err != nil {
		return fmt.Errorf("failed to write comparison records: %w", err)
	}
	log.Info().Msg("stored comparison records")
	return nil
}
