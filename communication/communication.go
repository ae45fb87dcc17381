package communication

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event names exchanged with the game server.
const (
	SigninEvent      = "signin"
	OkSigninEvent    = "ok_signin"
	ReadyEvent       = "ready"
	PlayEvent        = "play"
	FinishEvent      = "finish"
	PlayerReadyEvent = "player_ready"
)

// Envelope is one event on the wire.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Decode unmarshals the event payload into v.
func (e Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode %s event: %w", e.Event, err)
	}
	return nil
}

type Signin struct {
	UserName     string `json:"user_name"`
	TournamentID int    `json:"tournament_id"`
	UserRole     string `json:"user_role"`
}

// Ready asks the player to move. Board holds the 64 squares row-major
// (0 empty, 1 black, 2 white); PlayerTurnID is the colour to move.
type Ready struct {
	Board        []int `json:"board"`
	PlayerTurnID int   `json:"player_turn_id"`
	GameID       int   `json:"game_id"`
}

type Play struct {
	TournamentID int `json:"tournament_id"`
	PlayerTurnID int `json:"player_turn_id"`
	GameID       int `json:"game_id"`
	Movement     int `json:"movement"`
}

// Finish ends a game. WinnerTurnID is absent on a draw.
type Finish struct {
	PlayerTurnID int  `json:"player_turn_id"`
	GameID       int  `json:"game_id"`
	WinnerTurnID *int `json:"winner_turn_id,omitempty"`
}

type PlayerReady struct {
	TournamentID int `json:"tournament_id"`
	PlayerTurnID int `json:"player_turn_id"`
	GameID       int `json:"game_id"`
}

// Communicator abstracts the transport to the game server.
type Communicator interface {
	Send(ctx context.Context, event string, data any) error
	Receive(ctx context.Context) (Envelope, error)
	Close() error
}
