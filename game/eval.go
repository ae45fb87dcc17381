package game

import (
	"errors"
	"fmt"
)

// Evaluate scores a board from player's perspective. Higher is better.
type Evaluate func(player Player, b *Board) int

var ErrUnknownEvaluator = errors.New("unknown evaluator")

// squareWeights encodes positional value: corners are stable, the squares
// next to them hand corners to the opponent.
var squareWeights = [BoardSize]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 120, -20, 20, 5, 5, 20, -20, 120, 0,
	0, -20, -40, -5, -5, -5, -5, -40, -20, 0,
	0, 20, -5, 15, 3, 3, 15, -5, 20, 0,
	0, 5, -5, 3, 3, 3, 3, -5, 5, 0,
	0, 5, -5, 3, 3, 3, 3, -5, 5, 0,
	0, 20, -5, 15, 3, 3, 15, -5, 20, 0,
	0, -20, -40, -5, -5, -5, -5, -40, -20, 0,
	0, 120, -20, 20, 5, 5, 20, -20, 120, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// MaxValue and MinValue bound every evaluation: MaxValue is the sum of the
// absolute square weights. Terminal outcomes saturate to them.
const (
	MaxValue = 1176
	MinValue = -MaxValue
)

// SquareWeight returns the positional weight of sq.
func SquareWeight(sq Square) int {
	return squareWeights[sq]
}

// Score is the material difference between player and the opponent.
func Score(player Player, b *Board) int {
	mine, theirs := 0, 0
	opp := Opponent(player)
	for _, sq := range squares {
		switch b[sq] {
		case player:
			mine++
		case opp:
			theirs++
		}
	}
	return mine - theirs
}

// WeightedScore is the positional difference using the square weights.
func WeightedScore(player Player, b *Board) int {
	opp := Opponent(player)
	total := 0
	for _, sq := range squares {
		switch b[sq] {
		case player:
			total += squareWeights[sq]
		case opp:
			total -= squareWeights[sq]
		}
	}
	return total
}

// FinalValue scores a finished game: MaxValue for a win, MinValue for a
// loss, 0 for a draw.
func FinalValue(player Player, b *Board) int {
	diff := Score(player, b)
	switch {
	case diff < 0:
		return MinValue
	case diff > 0:
		return MaxValue
	}
	return 0
}

// Evaluator names accepted by EvaluatorByName.
const (
	Material   = "material"
	Positional = "positional"
)

// EvaluatorByName resolves a configured evaluator name.
func EvaluatorByName(name string) (Evaluate, error) {
	switch name {
	case Material:
		return Score, nil
	case Positional:
		return WeightedScore, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluator, name)
}
