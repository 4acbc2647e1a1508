package main

import (
	"flag"
	"os"
	"time"

	"gomoku/config"
	"gomoku/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML match configuration")
	games := flag.Int("games", 0, "Override the number of games")
	depth := flag.Int("depth", -1, "Override the search depth of both search agents (at least 1)")
	logLevel := flag.String("log-level", "", "Override the log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
		cfg = loaded
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *depth >= 0 {
		for i := range cfg.Agents {
			if cfg.Agents[i].Kind == config.KindSearch {
				cfg.Agents[i].Depth = *depth
			}
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)

	summary, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().
		Interface("wins", summary.Wins).
		Int("draws", summary.Draws).
		Str("records", summary.Dir).
		Msg("match finished")
}
