package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Result is the value of a position to the player to move and the move
// that achieves it. Move is game.NoMove at leaf, terminal and pass nodes.
type Result struct {
	Value int
	Move  game.Square
}

// Strategy picks a move for player on b.
type Strategy func(player game.Player, b *game.Board) game.Square

// Agent is a move finder that also reports the work its search did.
type Agent interface {
	FindMove(player game.Player, b *game.Board) (game.Square, metrics.SearchMetric)
}

// StrategyOf drops the metrics of an agent's search.
func StrategyOf(a Agent) Strategy {
	return func(player game.Player, b *game.Board) game.Square {
		move, _ := a.FindMove(player, b)
		return move
	}
}

// Algorithm names accepted by New.
const (
	MinimaxAlgorithm   = "minimax"
	AlphaBetaAlgorithm = "alphabeta"
	RandomAlgorithm    = "random"
)
