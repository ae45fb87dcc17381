package searcher

import (
	"sync"

	"othello/experiments/metrics"
	"othello/game"
)

// Minimax searches depth plies ahead and returns the best value for player
// together with the move that reaches it.
func Minimax(player game.Player, b *game.Board, depth int, evaluate game.Evaluate) Result {
	s := search{evaluate: evaluate, metrics: metrics.NewDummyCollector()}
	return s.minimax(player, b, depth)
}

type search struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// expand handles the cases shared by minimax and alpha-beta. It returns
// done=true with the node's result when the node needs no move scan.
// recurse evaluates the same board for the opponent one ply deeper.
func (s *search) expand(player game.Player, b *game.Board, depth int, recurse func() Result) (moves []game.Square, r Result, done bool) {
	s.metrics.AddNode()
	if depth == 0 {
		s.metrics.AddLeaf()
		return nil, Result{Value: s.evaluate(player, b), Move: game.NoMove}, true
	}

	moves = game.LegalMoves(player, b)
	if len(moves) > 0 {
		return moves, Result{}, false
	}

	if !game.AnyLegalMove(game.Opponent(player), b) {
		s.metrics.AddTerminal()
		return nil, Result{Value: game.FinalValue(player, b), Move: game.NoMove}, true
	}

	// Pass: the opponent moves on the same board.
	s.metrics.AddPass()
	return nil, Result{Value: -recurse().Value, Move: game.NoMove}, true
}

func (s *search) minimax(player game.Player, b *game.Board, depth int) Result {
	opp := game.Opponent(player)
	moves, r, done := s.expand(player, b, depth, func() Result {
		return s.minimax(opp, b, depth-1)
	})
	if done {
		return r
	}

	values := make([]int, len(moves))
	for i, move := range moves {
		values[i] = s.value(player, b, move, depth)
	}
	return best(moves, values)
}

// value is the negated value to the opponent of b after player plays move.
func (s *search) value(player game.Player, b *game.Board, move game.Square, depth int) int {
	child := game.MakeMove(move, player, b.Copy())
	return -s.minimax(game.Opponent(player), child, depth-1).Value
}

// best returns the highest value. Ties go to the later (larger) square.
func best(moves []game.Square, values []int) Result {
	r := Result{Value: values[0], Move: moves[0]}
	for i := 1; i < len(moves); i++ {
		if values[i] >= r.Value {
			r = Result{Value: values[i], Move: moves[i]}
		}
	}
	return r
}

// parallelMinimax evaluates the root's candidate moves on up to goroutines
// workers. Subtrees below the root run sequentially.
func (s *search) parallelMinimax(player game.Player, b *game.Board, depth, goroutines int) Result {
	opp := game.Opponent(player)
	moves, r, done := s.expand(player, b, depth, func() Result {
		return s.minimax(opp, b, depth-1)
	})
	if done {
		return r
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	values := make([]int, len(moves))
	var wg sync.WaitGroup
	for w := 0; w < min(goroutines, len(moves)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				values[i] = s.value(player, b, moves[i], depth)
			}
		}()
	}
	wg.Wait()

	return best(moves, values)
}
