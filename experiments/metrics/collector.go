package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm   string
	Depth       int
	Goroutines  int
	Duration    time.Duration
	Nodes       int
	Evaluations int
	Cutoffs     int
	Score       int
}

type MoveMetric struct {
	Step   int
	Player string // Side name
	Row    int
	Col    int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector counts search work. Implementations are safe for concurrent use
// by root-split search workers.
type Collector interface {
	Start(algorithm string, depth, goroutines int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	SetScore(score int)
	Complete() SearchMetric
}

type collector struct {
	algorithm   string
	depth       int
	goroutines  int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
	score       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depth, goroutines int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
	m.score.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetScore(score int) {
	m.score.Store(int64(score))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Depth:       m.depth,
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Score:       int(m.score.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth, goroutines int) {}
func (m *dummyCollector) AddNode()                                       {}
func (m *dummyCollector) AddEvaluation()                                 {}
func (m *dummyCollector) AddCutoff()                                     {}
func (m *dummyCollector) SetScore(score int)                             {}
func (m *dummyCollector) Complete() SearchMetric                         { return SearchMetric{} }
