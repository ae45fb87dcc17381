package searcher

import (
	"errors"
	"fmt"

	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

type Option func(s *Searcher)

// WithGoroutines spreads minimax's root moves over n goroutines. Alpha-beta
// ignores it since its pruning depends on sequential alpha updates.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// WithRand sets the random source of a random searcher.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// Searcher runs one search algorithm at a fixed depth with a fixed
// evaluator. It is not safe for concurrent use when metrics are enabled.
type Searcher struct {
	algorithm  string
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
	rng        *rand.Rand
}

func newSearcher(algorithm string, depth int, evaluate game.Evaluate, options ...Option) *Searcher {
	if depth <= 0 {
		panic("search depth must be positive")
	}
	if evaluate == nil {
		panic("evaluator must not be nil")
	}
	s := &Searcher{ // Default values
		algorithm:  algorithm,
		depth:      depth,
		goroutines: 1,
		evaluate:   evaluate,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func NewMinimax(depth int, evaluate game.Evaluate, options ...Option) *Searcher {
	return newSearcher(MinimaxAlgorithm, depth, evaluate, options...)
}

func NewAlphaBeta(depth int, evaluate game.Evaluate, options ...Option) *Searcher {
	return newSearcher(AlphaBetaAlgorithm, depth, evaluate, options...)
}

// New builds an agent from configured names. depth and evaluator are
// ignored by the random algorithm, which picks its own per move.
func New(algorithm string, depth int, evaluator string, options ...Option) (Agent, error) {
	if algorithm == RandomAlgorithm {
		return NewRandom(options...), nil
	}
	if depth <= 0 {
		return nil, fmt.Errorf("search depth must be positive, got %d", depth)
	}
	evaluate, err := game.EvaluatorByName(evaluator)
	if err != nil {
		return nil, err
	}
	switch algorithm {
	case MinimaxAlgorithm:
		return NewMinimax(depth, evaluate, options...), nil
	case AlphaBetaAlgorithm:
		return NewAlphaBeta(depth, evaluate, options...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

// Search runs the configured algorithm on b for player.
func (s *Searcher) Search(player game.Player, b *game.Board) Result {
	run := search{evaluate: s.evaluate, metrics: s.metrics}
	switch s.algorithm {
	case AlphaBetaAlgorithm:
		return run.alphaBeta(player, b, game.MinValue, game.MaxValue, s.depth)
	default:
		if s.goroutines > 1 {
			return run.parallelMinimax(player, b, s.depth, s.goroutines)
		}
		return run.minimax(player, b, s.depth)
	}
}

func (s *Searcher) FindMove(player game.Player, b *game.Board) (game.Square, metrics.SearchMetric) {
	goroutines := s.goroutines
	if s.algorithm == AlphaBetaAlgorithm {
		goroutines = 1
	}
	s.metrics.Start(s.algorithm, s.depth, goroutines)
	r := s.Search(player, b)
	return r.Move, s.metrics.Complete()
}

func (s *Searcher) Strategy() Strategy {
	return StrategyOf(s)
}

func (s *Searcher) String() string {
	return fmt.Sprintf("%s(depth=%d)", s.algorithm, s.depth)
}

// MinimaxSearcher returns a strategy running minimax to depth.
func MinimaxSearcher(depth int, evaluate game.Evaluate, options ...Option) Strategy {
	return NewMinimax(depth, evaluate, options...).Strategy()
}

// AlphaBetaSearcher returns a strategy running alpha-beta to depth with the
// full (game.MinValue, game.MaxValue) window.
func AlphaBetaSearcher(depth int, evaluate game.Evaluate, options ...Option) Strategy {
	return NewAlphaBeta(depth, evaluate, options...).Strategy()
}
