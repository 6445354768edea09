package searcher

import (
	"testing"

	"divgame/game"

	"github.com/stretchr/testify/require"
)

// searchers returns one instance of every strategy.
func searchers() []Searcher {
	return []Searcher{NewMinimax(), NewAlphaBeta()}
}

func TestSelectMove(t *testing.T) {
	t.Run("one ply from 24 ties on every move and keeps the lowest divisor", func(t *testing.T) {
		for _, s := range searchers() {
			state := game.GameState{Number: 24, Turn: game.Computer}

			got, metric := s.SelectMove(state, 1)

			require.NotNil(t, got, "%s should find a move", s.Algorithm())
			require.Equal(t, game.Move(2), got.Move, "%s should break ties towards the lowest divisor", s.Algorithm())
			require.Equal(t, 0, got.Score)
			require.Equal(t, game.GameState{Number: 12, Turn: game.Human}, got.State)
			require.Equal(t, int64(4), metric.NodesVisited, "Root plus three children")
			require.Equal(t, string(s.Algorithm()), metric.Algorithm)
			require.Equal(t, 1, metric.Depth)
		}
	})

	t.Run("one ply from 18 avoids the odd result", func(t *testing.T) {
		for _, s := range searchers() {
			got, _ := s.SelectMove(game.GameState{Number: 18, Turn: game.Computer}, 1)

			require.NotNil(t, got)
			require.Equal(t, game.Move(3), got.Move, "Dividing by 2 gives the human a point")
			require.Equal(t, 0, got.Score)
		}
	})

	t.Run("two plies from 24 looks past the human reply", func(t *testing.T) {
		for _, s := range searchers() {
			got, metric := s.SelectMove(game.GameState{Number: 24, Turn: game.Computer}, 2)

			require.NotNil(t, got)
			require.Equal(t, game.Move(3), got.Move, "Dividing by 2 lets the human reach 3")
			require.Equal(t, 0, got.Score)
			require.Equal(t, game.GameState{Number: 8, Turn: game.Human}, got.State)
			require.Equal(t, int64(7), metric.NodesVisited, "Only 12 is expanded below the root")
		}
	})

	t.Run("zero depth still looks one ply ahead", func(t *testing.T) {
		for _, s := range searchers() {
			state := game.GameState{Number: 18, Turn: game.Computer}
			zero, _ := s.SelectMove(state, 0)
			one, _ := s.SelectMove(state, 1)

			require.Equal(t, one, zero)
		}
	})

	t.Run("no legal move at the root", func(t *testing.T) {
		for _, s := range searchers() {
			got, metric := s.SelectMove(game.GameState{Number: 13, Turn: game.Computer}, 5)

			require.Nil(t, got, "%s should signal that the computer cannot move", s.Algorithm())
			require.Equal(t, int64(1), metric.NodesVisited, "Only the root is visited")
		}
	})

	t.Run("node counter resets on every call", func(t *testing.T) {
		for _, s := range searchers() {
			state := game.GameState{Number: 20736, Turn: game.Computer}
			_, first := s.SelectMove(state, 5)
			_, second := s.SelectMove(state, 5)

			require.Equal(t, first.NodesVisited, second.NodesVisited)
		}
	})

	t.Run("custom evaluation", func(t *testing.T) {
		smallest := func(s game.GameState) int { return -s.Number }
		for _, s := range []Searcher{NewMinimax(WithEvaluationFn(smallest)), NewAlphaBeta(WithEvaluationFn(smallest))} {
			got, _ := s.SelectMove(game.GameState{Number: 24, Turn: game.Computer}, 1)

			require.Equal(t, game.Move(4), got.Move, "Evaluation preferring small numbers should divide by 4")
			require.Equal(t, -6, got.Score)
		}
	})
}

func TestSelectMovePreconditions(t *testing.T) {
	for _, s := range searchers() {
		t.Run(string(s.Algorithm()), func(t *testing.T) {
			require.Panics(t, func() {
				s.SelectMove(game.GameState{Number: 24, Turn: game.Computer}, -1)
			}, "Should panic on negative depth")

			require.Panics(t, func() {
				s.SelectMove(game.GameState{Number: 0, Turn: game.Computer}, 3)
			}, "Should panic on a non-positive number")

			require.Panics(t, func() {
				s.SelectMove(game.GameState{Number: 24, Turn: game.Human}, 3)
			}, "Should panic on the human's turn")

			require.Panics(t, func() {
				s.SelectMove(game.GameState{Number: 8, Turn: game.Computer}, 3)
			}, "Should panic on a finished game")
		})
	}
}
