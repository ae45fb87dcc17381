package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	configs := []metrics.AgentConfig{
		{ID: 1, Algorithm: searcher.MinimaxAlgorithm, Depth: 1, Evaluator: game.Material},
		{ID: 2, Algorithm: searcher.AlphaBetaAlgorithm, Depth: 2, Evaluator: game.Positional},
	}
	matchUps := [][2]metrics.AgentConfig{{configs[0], configs[1]}, {configs[1], configs[0]}}

	dir, err := Run("test", t.TempDir(), configs, matchUps, 1)
	require.NoError(t, err)

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, agents, 3, "Header plus one row per config")
	require.Equal(t, []string{"1", "minimax", "1", "material", "0"}, agents[1])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 3, "Header plus one row per game")
	require.Equal(t, "1", games[1][1], "Agent 1 should play black in the first matchup")
	require.Equal(t, "2", games[2][1], "Agent 2 should play black in the second matchup")
	require.Equal(t, "Black", games[1][3])

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 2, "Move records should be written")
	require.Equal(t, "1", moves[1][0])
	require.Equal(t, "minimax", moves[1][4], "Black's first move comes from agent 1")
}

func TestRunInvalidConfig(t *testing.T) {
	bad := metrics.AgentConfig{ID: 1, Algorithm: "expectimax", Depth: 2, Evaluator: game.Material}
	_, err := Run("test", t.TempDir(), []metrics.AgentConfig{bad}, [][2]metrics.AgentConfig{{bad, bad}}, 1)
	require.ErrorIs(t, err, searcher.ErrUnknownAlgorithm)
}

func TestRunThroughputComparison(t *testing.T) {
	dir, err := RunThroughputComparison(t.TempDir(), 1)
	require.NoError(t, err)

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, agents, 5)
	for i, goroutines := range []string{"1", "2", "4", "8"} {
		require.Equal(t, goroutines, agents[i+1][4])
	}

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 5, "One self-play game per config")
	for _, row := range games[1:] {
		require.Equal(t, row[1], row[2], "Each config should play itself")
	}
}
