package metrics

import (
	"sync/atomic"
	"time"

	"othello/game"
)

type SearchMetric struct {
	Algorithm  string
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int64 // Every visited position, root included
	Leaves     int64 // Depth-0 evaluations
	Terminals  int64 // Positions where neither side can move
	Passes     int64
	Cutoffs    int64
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   int // External numbering
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // game.Empty on a draw
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

// Collector counts search work. Counters are safe for concurrent use so a
// parallel root search can share one collector; Start and Complete are not.
type Collector interface {
	Start(algorithm string, depth, goroutines int)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddPass()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm  string
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
	passes     atomic.Int64
	cutoffs    atomic.Int64
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
	m.leaves.Store(0)
	m.terminals.Store(0)
	m.passes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode()     { m.nodes.Add(1) }
func (m *collector) AddLeaf()     { m.leaves.Add(1) }
func (m *collector) AddTerminal() { m.terminals.Add(1) }
func (m *collector) AddPass()     { m.passes.Add(1) }
func (m *collector) AddCutoff()   { m.cutoffs.Add(1) }

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:  m.algorithm,
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Terminals:  m.terminals.Load(),
		Passes:     m.passes.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth, goroutines int) {}
func (m *dummyCollector) AddNode()                                      {}
func (m *dummyCollector) AddLeaf()                                      {}
func (m *dummyCollector) AddTerminal()                                  {}
func (m *dummyCollector) AddPass()                                      {}
func (m *dummyCollector) AddCutoff()                                    {}
func (m *dummyCollector) Complete() SearchMetric                        { return SearchMetric{} }
