package player

import (
	"context"
	"errors"
	"fmt"

	"othello/communication"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

type Outcome int

const (
	Draw Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "draw"
}

// Settings identify the player to the game server.
type Settings struct {
	UserName     string
	TournamentID int
	UserRole     string
}

// Player answers game server events with moves from its agent.
type Player struct {
	settings Settings
	agent    searcher.Agent
}

func NewPlayer(settings Settings, agent searcher.Agent) *Player {
	return &Player{
		settings: settings,
		agent:    agent,
	}
}

// HandleReady picks a move for the position in a ready event.
func (p *Player) HandleReady(ready communication.Ready) (communication.Play, error) {
	board, err := game.ParseBoard(ready.Board)
	if err != nil {
		return communication.Play{}, fmt.Errorf("game %d: %w", ready.GameID, err)
	}
	if id := ready.PlayerTurnID; id != int(game.Black) && id != int(game.White) {
		return communication.Play{}, fmt.Errorf("game %d: invalid player turn id %d", ready.GameID, id)
	}
	player := game.Player(ready.PlayerTurnID)

	var searchMetric metrics.SearchMetric
	strategy := func(player game.Player, b *game.Board) game.Square {
		var move game.Square
		move, searchMetric = p.agent.FindMove(player, b)
		return move
	}
	move, err := searcher.GetMove(strategy, player, &board)
	if err != nil {
		return communication.Play{}, fmt.Errorf("game %d: %w", ready.GameID, err)
	}

	movement := game.ExternalMove(move)
	log.Debug().
		Int("game", ready.GameID).
		Str("player", player.String()).
		Str("algorithm", searchMetric.Algorithm).
		Int64("nodes", searchMetric.Nodes).
		Dur("duration", searchMetric.Duration).
		Msgf("playing %d", movement)

	return communication.Play{
		TournamentID: p.settings.TournamentID,
		PlayerTurnID: ready.PlayerTurnID,
		GameID:       ready.GameID,
		Movement:     movement,
	}, nil
}

// HandleFinish classifies the result and acknowledges readiness for the
// next game.
func (p *Player) HandleFinish(finish communication.Finish) (communication.PlayerReady, Outcome) {
	outcome := Draw
	if finish.WinnerTurnID != nil {
		if *finish.WinnerTurnID == finish.PlayerTurnID {
			outcome = Win
		} else {
			outcome = Loss
		}
	}
	return communication.PlayerReady{
		TournamentID: p.settings.TournamentID,
		PlayerTurnID: finish.PlayerTurnID,
		GameID:       finish.GameID,
	}, outcome
}

// Run signs in and serves events until ctx is cancelled or the connection
// fails. A move that cannot be computed ends the run with its error.
func (p *Player) Run(ctx context.Context, comm communication.Communicator) error {
	signin := communication.Signin{
		UserName:     p.settings.UserName,
		TournamentID: p.settings.TournamentID,
		UserRole:     p.settings.UserRole,
	}
	if err := comm.Send(ctx, communication.SigninEvent, signin); err != nil {
		return err
	}

	for {
		env, err := comm.Receive(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		switch env.Event {
		case communication.OkSigninEvent:
			log.Info().Msgf("signed in as %s to tournament %d", p.settings.UserName, p.settings.TournamentID)
		case communication.ReadyEvent:
			var ready communication.Ready
			if err := env.Decode(&ready); err != nil {
				return err
			}
			play, err := p.HandleReady(ready)
			if err != nil {
				return err
			}
			if err := comm.Send(ctx, communication.PlayEvent, play); err != nil {
				return err
			}
		case communication.FinishEvent:
			var finish communication.Finish
			if err := env.Decode(&finish); err != nil {
				return err
			}
			ready, outcome := p.HandleFinish(finish)
			if err := comm.Send(ctx, communication.PlayerReadyEvent, ready); err != nil {
				return err
			}
			log.Info().Int("game", finish.GameID).Msgf("game finished: %s", outcome)
		default:
			log.Debug().Msgf("ignoring %q event", env.Event)
		}
	}
}
