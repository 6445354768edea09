package metrics

import (
	"strconv"
	"time"
)

// Records are flat so the same rows serve both CSV and Parquet output.

type AgentConfig struct {
	ID        int32  `parquet:"id"`
	Algorithm string `parquet:"algorithm,dict"`
	Depth     int32  `parquet:"depth"`
}

var agentConfigHeader = []string{"id", "algorithm", "depth"}

func (r AgentConfig) csvRow() []string {
	return []string{
		strconv.Itoa(int(r.ID)),
		r.Algorithm,
		strconv.Itoa(int(r.Depth)),
	}
}

// ComparisonRecord is one algorithm's search from one sampled state.
type ComparisonRecord struct {
	Sample        int32  `parquet:"sample"`
	Number        int64  `parquet:"number"`
	HumanScore    int32  `parquet:"human_score"`
	ComputerScore int32  `parquet:"computer_score"`
	Depth         int32  `parquet:"depth"`
	Algorithm     string `parquet:"algorithm,dict"`
	Move          int32  `parquet:"move"`
	Score         int64  `parquet:"score"`
	NodesVisited  int64  `parquet:"nodes_visited"`
	DurationNs    int64  `parquet:"duration_ns"`
}

var comparisonHeader = []string{"sample", "number", "human_score", "computer_score", "depth", "algorithm", "move", "score", "nodes_visited", "duration"}

func (r ComparisonRecord) csvRow() []string {
	return []string{
		strconv.Itoa(int(r.Sample)),
		strconv.FormatInt(r.Number, 10),
		strconv.Itoa(int(r.HumanScore)),
		strconv.Itoa(int(r.ComputerScore)),
		strconv.Itoa(int(r.Depth)),
		r.Algorithm,
		strconv.Itoa(int(r.Move)),
		strconv.FormatInt(r.Score, 10),
		strconv.FormatInt(r.NodesVisited, 10),
		time.Duration(r.DurationNs).String(),
	}
}

type GameRecord struct {
	ID             int32  `parquet:"id"`
	Agent          int32  `parquet:"agent"`
	Session        string `parquet:"session"`
	StartNumber    int64  `parquet:"start_number"`
	StartingPlayer string `parquet:"starting_player,dict"`
	Outcome        string `parquet:"outcome,dict"`
	HumanScore     int32  `parquet:"human_score"`
	ComputerScore  int32  `parquet:"computer_score"`
	TotalMoves     int32  `parquet:"total_moves"`
	StartTime      string `parquet:"start_time"`
	DurationNs     int64  `parquet:"duration_ns"`
}

var gameHeader = []string{"id", "agent", "session", "start_number", "starting_player", "outcome", "human_score", "computer_score", "total_moves", "start_time", "duration"}

// NewGameRecord flattens a game metric played by the given agent config.
func NewGameRecord(id, agent int, m GameMetric) GameRecord {
	return GameRecord{
		ID:             int32(id),
		Agent:          int32(agent),
		Session:        m.Session,
		StartNumber:    int64(m.StartNumber),
		StartingPlayer: m.StartingPlayer,
		Outcome:        m.Outcome,
		HumanScore:     int32(m.HumanScore),
		ComputerScore:  int32(m.ComputerScore),
		TotalMoves:     int32(m.TotalMoves),
		StartTime:      m.StartTime.UTC().Format(time.RFC3339),
		DurationNs:     int64(m.Duration),
	}
}

func (r GameRecord) csvRow() []string {
	return []string{
		strconv.Itoa(int(r.ID)),
		strconv.Itoa(int(r.Agent)),
		r.Session,
		strconv.FormatInt(r.StartNumber, 10),
		r.StartingPlayer,
		r.Outcome,
		strconv.Itoa(int(r.HumanScore)),
		strconv.Itoa(int(r.ComputerScore)),
		strconv.Itoa(int(r.TotalMoves)),
		r.StartTime,
		time.Duration(r.DurationNs).String(),
	}
}

type MoveRecord struct {
	Game         int32  `parquet:"game"`
	Step         int32  `parquet:"step"`
	Player       string `parquet:"player,dict"`
	Algorithm    string `parquet:"algorithm,dict"`
	NodesVisited int64  `parquet:"nodes_visited"`
	DurationNs   int64  `parquet:"duration_ns"`
}

var moveHeader = []string{"game", "step", "player", "algorithm", "nodes_visited", "duration"}

func NewMoveRecord(game int, m MoveMetric) MoveRecord {
	return MoveRecord{
		Game:         int32(game),
		Step:         int32(m.Step),
		Player:       m.Player,
		Algorithm:    m.Algorithm,
		NodesVisited: m.NodesVisited,
		DurationNs:   int64(m.Duration),
	}
}

func (r MoveRecord) csvRow() []string {
	return []string{
		strconv.Itoa(int(r.Game)),
		strconv.Itoa(int(r.Step)),
		r.Player,
		r.Algorithm,
		strconv.FormatInt(r.NodesVisited, 10),
		time.Duration(r.DurationNs).String(),
	}
}
