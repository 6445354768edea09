package metrics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testGames = []GameRecord{
	{ID: 1, Agent: 1, Session: "a", StartNumber: 24000, StartingPlayer: "Human", Outcome: "computer", HumanScore: 1, ComputerScore: 3, TotalMoves: 9, DurationNs: int64(time.Millisecond)},
	{ID: 2, Agent: 2, Session: "b", StartNumber: 29988, StartingPlayer: "Computer", Outcome: "draw", HumanScore: 2, ComputerScore: 2, TotalMoves: 8},
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" Parquet ")
	require.NoError(t, err)
	require.Equal(t, FormatParquet, f)

	f, err = ParseFormat("csv")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, f)

	_, err = ParseFormat("json")
	require.Error(t, err)
}

func TestWriter(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "simulation", FormatCSV)
		require.NoError(t, err)

		require.NoError(t, w.WriteGameRecords(testGames))

		rows, err := readCSV(filepath.Join(w.Dir(), "game_records.csv"))
		require.NoError(t, err)
		require.Len(t, rows, 3, "Header plus one row per record")
		require.Equal(t, gameHeader, rows[0])
		require.Equal(t, []string{"1", "1", "a", "24000", "Human", "computer", "1", "3", "9", "", "1ms"}, rows[1])
	})

	t.Run("parquet", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "simulation", FormatParquet)
		require.NoError(t, err)

		require.NoError(t, w.WriteGameRecords(testGames))

		games, err := readParquet[GameRecord](filepath.Join(w.Dir(), "game_records.parquet"))
		require.NoError(t, err)
		require.Equal(t, testGames, games)
	})

	t.Run("parquet move and config records", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "comparison", FormatParquet)
		require.NoError(t, err)
		configs := []AgentConfig{{ID: 1, Algorithm: "minimax", Depth: 3}, {ID: 2, Algorithm: "alphabeta", Depth: 3}}
		moves := []MoveRecord{{Game: 1, Step: 2, Player: "Computer", Algorithm: "alphabeta", NodesVisited: 31, DurationNs: 1200}}

		require.NoError(t, w.WriteAgentConfigs(configs))
		require.NoError(t, w.WriteMoveRecords(moves))

		gotConfigs, err := readParquet[AgentConfig](filepath.Join(w.Dir(), "agent_configs.parquet"))
		require.NoError(t, err)
		require.Equal(t, configs, gotConfigs)
		gotMoves, err := readParquet[MoveRecord](filepath.Join(w.Dir(), "move_records.parquet"))
		require.NoError(t, err)
		require.Equal(t, moves, gotMoves)
	})
}

func TestNewRecords(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	game := NewGameRecord(4, 2, GameMetric{
		Session:        "s",
		StartNumber:    24000,
		StartingPlayer: "Human",
		Outcome:        "human",
		StartTime:      start,
		Duration:       time.Second,
		TotalMoves:     7,
	})
	require.Equal(t, int32(4), game.ID)
	require.Equal(t, int32(2), game.Agent)
	require.Equal(t, "2024-03-01T12:00:00Z", game.StartTime)
	require.Equal(t, int64(time.Second), game.DurationNs)

	move := NewMoveRecord(4, MoveMetric{Step: 3, Player: "Computer", SearchMetric: SearchMetric{Algorithm: "minimax", NodesVisited: 40}})
	require.Equal(t, MoveRecord{Game: 4, Step: 3, Player: "Computer", Algorithm: "minimax", NodesVisited: 40}, move)
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("minimax", 3)
	c.AddNode()
	c.AddNode()
	m := c.Complete()
	require.Equal(t, "minimax", m.Algorithm)
	require.Equal(t, 3, m.Depth)
	require.Equal(t, int64(2), m.NodesVisited)

	c.Start("alphabeta", 1)
	require.Equal(t, int64(0), c.Complete().NodesVisited, "Start resets the node count")
}
