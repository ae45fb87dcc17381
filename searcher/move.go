package searcher

import (
	"fmt"

	"othello/game"
)

// IllegalMoveError reports a strategy output that is not a playable square
// or not legal for Player. Board is the copy the strategy searched.
type IllegalMoveError struct {
	Player game.Player
	Move   game.Square
	Board  game.Board
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s cannot move to square %d", e.Player, e.Move)
}

// GetMove runs strategy on a copy of b and checks the result against b.
// b is never modified.
func GetMove(strategy Strategy, player game.Player, b *game.Board) (game.Square, error) {
	searched := *b
	move := strategy(player, &searched)
	if !game.IsValid(move) || !game.IsLegal(move, player, b) {
		return game.NoMove, &IllegalMoveError{Player: player, Move: move, Board: searched}
	}
	return move, nil
}
