package config

import (
	"fmt"

	"othello/searcher"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	Server      Server      `yaml:"server"`
	Search      Search      `yaml:"search"`
	Experiments Experiments `yaml:"experiments"`
}

type Server struct {
	URL          string `yaml:"url" env:"OTHELLO_SERVER_URL" env-default:"ws://localhost:3000/ws"`
	TournamentID int    `yaml:"tournament-id" env:"OTHELLO_TOURNAMENT_ID" env-default:"12"`
	UserName     string `yaml:"user-name" env:"OTHELLO_USER_NAME" env-default:"othello"`
	UserRole     string `yaml:"user-role" env:"OTHELLO_USER_ROLE" env-default:"player"`
}

type Search struct {
	Algorithm  string `yaml:"algorithm" env:"OTHELLO_SEARCH_ALGORITHM" env-default:"alphabeta"`
	Depth      int    `yaml:"depth" env:"OTHELLO_SEARCH_DEPTH" env-default:"5"`
	Evaluator  string `yaml:"evaluator" env:"OTHELLO_SEARCH_EVALUATOR" env-default:"positional"`
	Goroutines int    `yaml:"goroutines" env:"OTHELLO_SEARCH_GOROUTINES" env-default:"1"`
}

type Experiments struct {
	Games     int    `yaml:"games" env:"OTHELLO_EXPERIMENT_GAMES" env-default:"4"`
	OutputDir string `yaml:"output-dir" env:"OTHELLO_EXPERIMENT_OUTPUT_DIR" env-default:"experiments/results"`
}

// Load reads the yaml file at path; environment variables override it.
func Load(path string) (*Config, error) {
	config := &Config{}
	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return config, nil
}

// LoadEnv builds the configuration from environment variables and defaults.
func LoadEnv() (*Config, error) {
	config := &Config{}
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return config, nil
}

// MustLoad - load all configurations in the file at path.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// NewAgent builds the configured searcher.
func (s Search) NewAgent(options ...searcher.Option) (searcher.Agent, error) {
	if s.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(s.Goroutines))
	}
	agent, err := searcher.New(s.Algorithm, s.Depth, s.Evaluator, options...)
	if err != nil {
		return nil, fmt.Errorf("invalid search config: %w", err)
	}
	return agent, nil
}
