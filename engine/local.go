package engine

import (
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	Board  game.Board
	Player game.Player
	Agents map[game.Player]searcher.Agent
}

// NewLocalEngine sets up the opening position with black to move.
func NewLocalEngine(black, white searcher.Agent) *LocalEngine {
	if black == nil || white == nil {
		panic("need an agent for each player")
	}
	return &LocalEngine{
		Board:  game.NewBoard(),
		Player: game.Black,
		Agents: map[game.Player]searcher.Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run plays from the current position. A side without legal moves passes;
// the game ends when neither side can move.
func (e *LocalEngine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Player,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Player)

	for step := 1; gameMetric.TotalMoves < MaxMoves; {
		if !game.AnyLegalMove(e.Player, &e.Board) {
			if !game.AnyLegalMove(game.Opponent(e.Player), &e.Board) {
				break
			}
			log.Debug().Msgf("%s has no legal move and passes", e.Player)
			gameMetric.Passes++
			e.Player = game.Opponent(e.Player)
			continue
		}

		move, searchMetric, err := e.findMove()
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("move %d: %w", step, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       e.Player,
			Move:         game.ExternalMove(move),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("%s plays %d after visiting %d nodes", e.Player, game.ExternalMove(move), searchMetric.Nodes)

		game.MakeMove(move, e.Player, &e.Board)
		e.Player = game.Opponent(e.Player)
		gameMetric.TotalMoves++
		step++
	}

	winner := Winner(&e.Board)
	gameMetric.Winner = winner
	gameMetric.BlackDiscs = e.Board.Count(game.Black)
	gameMetric.WhiteDiscs = e.Board.Count(game.White)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Info().Msgf("game over after %d moves: black %d, white %d", gameMetric.TotalMoves, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)

	return winner, gameMetric, moveMetrics, nil
}

// findMove asks the current agent for a move and validates it.
func (e *LocalEngine) findMove() (game.Square, metrics.SearchMetric, error) {
	var searchMetric metrics.SearchMetric
	agent := e.Agents[e.Player]
	strategy := func(player game.Player, b *game.Board) game.Square {
		var move game.Square
		move, searchMetric = agent.FindMove(player, b)
		return move
	}
	move, err := searcher.GetMove(strategy, e.Player, &e.Board)
	return move, searchMetric, err
}

// Winner returns the player with more discs, or game.Empty on a tie.
func Winner(b *game.Board) game.Player {
	switch diff := game.Score(game.Black, b); {
	case diff > 0:
		return game.Black
	case diff < 0:
		return game.White
	}
	return game.Empty
}
