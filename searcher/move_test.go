package searcher

import (
	"errors"
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

func TestGetMove(t *testing.T) {
	t.Run("returns a legal move", func(t *testing.T) {
		b := game.NewBoard()
		move, err := GetMove(AlphaBetaSearcher(3, game.WeightedScore), game.Black, &b)
		require.NoError(t, err)
		require.Contains(t, game.LegalMoves(game.Black, &b), move)
	})

	t.Run("strategy works on a copy", func(t *testing.T) {
		b := game.NewBoard()
		before := b
		vandal := func(player game.Player, searched *game.Board) game.Square {
			game.MakeMove(34, player, searched)
			searched[88] = game.White
			return 43
		}

		move, err := GetMove(vandal, game.Black, &b)
		require.NoError(t, err, "43 is legal on the original board")
		require.Equal(t, game.Square(43), move)
		require.Equal(t, before, b, "Original board should not change")
	})

	t.Run("occupied square is illegal", func(t *testing.T) {
		b := game.NewBoard()
		_, err := GetMove(func(game.Player, *game.Board) game.Square { return 44 }, game.Black, &b)

		var illegal *IllegalMoveError
		require.True(t, errors.As(err, &illegal), "Error should be an IllegalMoveError")
		require.Equal(t, game.Black, illegal.Player)
		require.Equal(t, game.Square(44), illegal.Move)
		require.Equal(t, b, illegal.Board)
		require.EqualError(t, err, "Black cannot move to square 44")
	})

	t.Run("square outside the board is illegal", func(t *testing.T) {
		b := game.NewBoard()
		for _, sq := range []game.Square{game.NoMove, 0, 19, 100} {
			sq := sq
			_, err := GetMove(func(game.Player, *game.Board) game.Square { return sq }, game.White, &b)
			var illegal *IllegalMoveError
			require.ErrorAs(t, err, &illegal, "Square %d should be rejected", sq)
		}
	})

	t.Run("error carries the searched board", func(t *testing.T) {
		b := game.NewBoard()
		_, err := GetMove(func(player game.Player, searched *game.Board) game.Square {
			game.MakeMove(34, player, searched)
			return 34
		}, game.Black, &b)
		require.NoError(t, err)

		_, err = GetMove(func(player game.Player, searched *game.Board) game.Square {
			game.MakeMove(34, player, searched)
			return 35
		}, game.Black, &b)
		var illegal *IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		require.Equal(t, game.Black, illegal.Board[34], "Board should be the strategy's copy")
		require.Equal(t, game.Empty, b[34])
	})

	t.Run("player without moves gets an error", func(t *testing.T) {
		b := passBoard()
		_, err := GetMove(MinimaxSearcher(2, game.Score), game.White, &b)
		var illegal *IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		require.Equal(t, game.NoMove, illegal.Move)
	})
}

func TestLegalityClosure(t *testing.T) {
	boards, players := gamePositions()
	strategies := map[string]Strategy{
		"minimax":   MinimaxSearcher(2, game.WeightedScore),
		"alphabeta": AlphaBetaSearcher(3, game.Score),
	}
	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			for i := range boards {
				b := boards[i]
				legal := game.LegalMoves(players[i], &b)
				if len(legal) == 0 {
					continue
				}
				move, err := GetMove(strategy, players[i], &b)
				require.NoError(t, err)
				require.True(t, slices.Contains(legal, move), "Move %d should be legal at position %d", move, i)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("known algorithms", func(t *testing.T) {
		a, err := New(MinimaxAlgorithm, 3, game.Material)
		require.NoError(t, err)
		require.IsType(t, &Searcher{}, a)
		require.Equal(t, "minimax(depth=3)", a.(*Searcher).String())

		a, err = New(AlphaBetaAlgorithm, 5, game.Positional, WithMetrics())
		require.NoError(t, err)
		require.Equal(t, "alphabeta(depth=5)", a.(*Searcher).String())

		a, err = New(RandomAlgorithm, 0, "")
		require.NoError(t, err)
		require.IsType(t, &Random{}, a)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := New("expectimax", 3, game.Material)
		require.ErrorIs(t, err, ErrUnknownAlgorithm)
	})

	t.Run("unknown evaluator", func(t *testing.T) {
		_, err := New(MinimaxAlgorithm, 3, "mobility")
		require.ErrorIs(t, err, game.ErrUnknownEvaluator)
	})

	t.Run("non-positive depth", func(t *testing.T) {
		_, err := New(AlphaBetaAlgorithm, 0, game.Material)
		require.Error(t, err)
		require.Panics(t, func() { NewMinimax(0, game.Score) })
	})
}

func TestPickProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	p := PickProbability(rng, PickRuns, PickDice, PickThreshold)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)

	require.Equal(t, 1.0, PickProbability(rng, 10, 5, 0), "Zero threshold always succeeds")
	require.Equal(t, 0.0, PickProbability(rng, 10, 5, 6), "Threshold above the dice count never succeeds")
	require.Equal(t, 0.0, PickProbability(rng, 0, 5, 1))
}

func TestRandom(t *testing.T) {
	r := NewRandom(WithRand(rand.New(rand.NewSource(42))), WithMetrics())
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s := r.Pick()
		switch s.algorithm {
		case MinimaxAlgorithm:
			require.Equal(t, RandomMinimaxDepth, s.depth)
		case AlphaBetaAlgorithm:
			require.Equal(t, RandomAlphaBetaDepth, s.depth)
		default:
			t.Fatalf("unexpected algorithm %q", s.algorithm)
		}
		seen[s.algorithm] = true
	}
	require.Len(t, seen, 2, "Both algorithms should be picked over many draws")

	b := game.NewBoard()
	move, err := GetMove(r.Strategy(), game.Black, &b)
	require.NoError(t, err)
	require.True(t, game.IsLegal(move, game.Black, &b))
}
