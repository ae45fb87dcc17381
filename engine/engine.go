package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// MaxMoves bounds a game; Othello ends in at most 60 placements.
const MaxMoves = 60

type Engine interface {
	// Run plays a game until neither side can move or MaxMoves is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
