package searcher

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

// Parameters of the dice experiment used to pick a searcher per move.
const (
	PickRuns      = 30
	PickDice      = 30
	PickThreshold = 15

	RandomMinimaxDepth   = 4
	RandomAlphaBetaDepth = 5
)

// PickProbability runs n experiments of rolling dice two-sided dice and
// returns the fraction of experiments in which at least threshold dice
// came up one.
func PickProbability(rng *rand.Rand, n, dice, threshold int) float64 {
	if n <= 0 {
		return 0
	}
	successes := 0
	for i := 0; i < n; i++ {
		ones := 0
		for j := 0; j < dice; j++ {
			if rng.Intn(2) == 0 {
				ones++
			}
		}
		if ones >= threshold {
			successes++
		}
	}
	return float64(successes) / float64(n)
}

// Random picks an algorithm and an evaluator for every move: minimax at
// RandomMinimaxDepth or alpha-beta at RandomAlphaBetaDepth, positional or
// material scoring. Its random source is not safe for concurrent use.
type Random struct {
	rng     *rand.Rand
	options []Option
}

func NewRandom(options ...Option) *Random {
	probe := &Searcher{}
	for _, option := range options {
		option(probe)
	}
	rng := probe.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Random{rng: rng, options: options}
}

// Pick draws the searcher for the next move.
func (r *Random) Pick() *Searcher {
	strategy := PickProbability(r.rng, PickRuns, PickDice, PickThreshold)
	heuristic := PickProbability(r.rng, PickRuns, PickDice, PickThreshold)

	evaluate := game.Score
	if heuristic < 0.5 {
		evaluate = game.WeightedScore
	}
	if strategy < 0.5 {
		return NewMinimax(RandomMinimaxDepth, evaluate, r.options...)
	}
	return NewAlphaBeta(RandomAlphaBetaDepth, evaluate, r.options...)
}

func (r *Random) FindMove(player game.Player, b *game.Board) (game.Square, metrics.SearchMetric) {
	return r.Pick().FindMove(player, b)
}

func (r *Random) Strategy() Strategy {
	return StrategyOf(r)
}
