package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes a single move search.
type SearchMetric struct {
	Algorithm    string
	Depth        int
	StartTime    time.Time
	Duration     time.Duration
	NodesVisited int64
}

// MoveMetric is a search metric tagged with its place in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	Session        string
	StartNumber    int
	StartingPlayer string
	Outcome        string
	HumanScore     int
	ComputerScore  int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector counts the work done by one search call. A fresh collector is
// used per call so counts never leak between searches.
type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth int) {
	m.algorithm = algorithm
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:    m.algorithm,
		Depth:        m.depth,
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		NodesVisited: m.nodes.Load(),
	}
}
