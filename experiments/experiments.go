package experiments

import (
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

const DefaultGames = 4 // Per match up

var algorithmConfigs = []metrics.AgentConfig{
	{ID: 1, Algorithm: searcher.MinimaxAlgorithm, Depth: 3, Evaluator: game.Positional, Goroutines: 1},
	{ID: 2, Algorithm: searcher.AlphaBetaAlgorithm, Depth: 3, Evaluator: game.Positional, Goroutines: 1},
	{ID: 3, Algorithm: searcher.MinimaxAlgorithm, Depth: 3, Evaluator: game.Positional, Goroutines: 4},
	{ID: 4, Algorithm: searcher.AlphaBetaAlgorithm, Depth: 5, Evaluator: game.Positional, Goroutines: 1},
}

var evaluatorConfigs = []metrics.AgentConfig{
	{ID: 1, Algorithm: searcher.AlphaBetaAlgorithm, Depth: 4, Evaluator: game.Material, Goroutines: 1},
	{ID: 2, Algorithm: searcher.AlphaBetaAlgorithm, Depth: 4, Evaluator: game.Positional, Goroutines: 1},
}

// RunAlgorithmComparison pairs searchers of equal depth to compare search
// work, and a deeper alpha-beta against the minimax baseline.
func RunAlgorithmComparison(outputDir string, games int) (string, error) {
	c := algorithmConfigs
	matchUps := [][2]metrics.AgentConfig{
		{c[0], c[1]},
		{c[1], c[0]},
		{c[0], c[2]},
		{c[0], c[3]},
		{c[3], c[0]},
	}
	return Run("algorithms", outputDir, c, matchUps, games)
}

// RunEvaluatorComparison plays material against positional scoring with
// both colour assignments.
func RunEvaluatorComparison(outputDir string, games int) (string, error) {
	c := evaluatorConfigs
	matchUps := [][2]metrics.AgentConfig{
		{c[0], c[1]},
		{c[1], c[0]},
	}
	return Run("evaluators", outputDir, c, matchUps, games)
}

// Run plays games per match up, the first agent taking black, and writes
// the records under outputDir. It returns the directory written to.
func Run(name, outputDir string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(config1, config2)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(outputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %d game records and %d move records in %s", len(gameRecords), len(moveRecords), writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game, config1 as black
func runGame(config1, config2 metrics.AgentConfig) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	black, err := createSearcher(config1)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	white, err := createSearcher(config2)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	return engine.NewLocalEngine(black, white).Run()
}

func createSearcher(config metrics.AgentConfig) (searcher.Agent, error) {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return searcher.New(config.Algorithm, config.Depth, config.Evaluator, options...)
}
