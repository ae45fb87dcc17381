package experiments

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

const throughputDepth = 4

// RunThroughputComparison measures how the parallel minimax root scales with
// the number of goroutines. Each config plays itself so games stay similar in
// length and only the search time differs.
func RunThroughputComparison(outputDir string, games int) (string, error) {
	configs := []metrics.AgentConfig{}
	for i, goroutines := range []int{1, 2, 4, 8} {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Algorithm:  searcher.MinimaxAlgorithm,
			Depth:      throughputDepth,
			Evaluator:  game.Positional,
			Goroutines: goroutines,
		})
	}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}
	return Run("throughput", outputDir, configs, matchUps, games)
}
