package searcher

import (
	"othello/experiments/metrics"
	"othello/game"
)

// AlphaBeta is Minimax with pruning. alpha is the value player can already
// guarantee, beta the value the opponent can already hold player to. With
// the window (game.MinValue, game.MaxValue) it returns the minimax value.
func AlphaBeta(player game.Player, b *game.Board, alpha, beta, depth int, evaluate game.Evaluate) Result {
	s := search{evaluate: evaluate, metrics: metrics.NewDummyCollector()}
	return s.alphaBeta(player, b, alpha, beta, depth)
}

func (s *search) alphaBeta(player game.Player, b *game.Board, alpha, beta, depth int) Result {
	opp := game.Opponent(player)
	moves, r, done := s.expand(player, b, depth, func() Result {
		return s.alphaBeta(opp, b, -beta, -alpha, depth-1)
	})
	if done {
		return r
	}

	// The first move is returned if nothing beats the initial alpha.
	bestMove := moves[0]
	for _, move := range moves {
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
		child := game.MakeMove(move, player, b.Copy())
		if v := -s.alphaBeta(opp, child, -beta, -alpha, depth-1).Value; v > alpha {
			alpha = v
			bestMove = move
		}
	}
	return Result{Value: alpha, Move: bestMove}
}
