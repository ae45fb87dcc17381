package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"othello/communication/client"
	"othello/config"
	"othello/experiments"
	"othello/player"
	"othello/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to the yaml config; environment only when missing")
	mode := flag.String("mode", "play", "play: join the game server; experiment: run local matches")
	experiment := flag.String("experiment", "algorithms", "Experiment to run: algorithms, evaluators or throughput")
	flag.Parse()

	conf := initConfig(*configPath)
	initLogger(conf.LogLevel)

	var err error
	switch *mode {
	case "play":
		err = runPlayer(conf)
	case "experiment":
		err = runExperiment(conf, *experiment)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func initConfig(path string) *config.Config {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		conf, err := config.LoadEnv()
		if err != nil {
			panic(err)
		}
		return conf
	}
	return config.MustLoad(path)
}

func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func runPlayer(conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agent, err := conf.Search.NewAgent(searcher.WithMetrics())
	if err != nil {
		return err
	}
	log.Info().Msgf("searching with %+v", conf.Search)

	comm, err := client.Dial(ctx, conf.Server.URL)
	if err != nil {
		return err
	}
	defer comm.Close()

	p := player.NewPlayer(player.Settings{
		UserName:     conf.Server.UserName,
		TournamentID: conf.Server.TournamentID,
		UserRole:     conf.Server.UserRole,
	}, agent)
	return p.Run(ctx, comm)
}

func runExperiment(conf *config.Config, name string) error {
	var dir string
	var err error
	switch name {
	case "algorithms":
		dir, err = experiments.RunAlgorithmComparison(conf.Experiments.OutputDir, conf.Experiments.Games)
	case "evaluators":
		dir, err = experiments.RunEvaluatorComparison(conf.Experiments.OutputDir, conf.Experiments.Games)
	case "throughput":
		dir, err = experiments.RunThroughputComparison(conf.Experiments.OutputDir, conf.Experiments.Games)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", dir)
	return nil
}
