package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gomoku/experiments/metrics"
	"gomoku/meta"
	"gomoku/searcher"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

// Config describes an experiment: a board, two agents and a number of games.
type Config struct {
	Name      string                 `yaml:"name"`
	Height    int                    `yaml:"height"`
	Width     int                    `yaml:"width"`
	Games     int                    `yaml:"games"`
	OutputDir string                 `yaml:"output_dir"`
	LogLevel  string                 `yaml:"log_level"`
	Agents    [2]metrics.AgentConfig `yaml:"agents"`
}

// Default is an alpha-beta versus minimax match on a standard board.
func Default() Config {
	return Config{
		Name:      "match",
		Height:    meta.BOARD_SIZE,
		Width:     meta.BOARD_SIZE,
		Games:     meta.GAMES,
		OutputDir: "experiments",
		LogLevel:  zerolog.InfoLevel.String(),
		Agents: [2]metrics.AgentConfig{
			{ID: 1, Kind: KindSearch, Algorithm: searcher.AlgorithmAlphaBeta.String(), Depth: meta.MATCH_DEPTH, Goroutines: meta.GO_ROUTINES},
			{ID: 2, Kind: KindSearch, Algorithm: searcher.AlgorithmMinimax.String(), Depth: meta.MATCH_DEPTH, Goroutines: meta.GO_ROUTINES},
		},
	}
}

// Load reads a YAML file over the defaults. Missing fields keep their
// default values, including fields missing from an agent entry, which fall
// back to the default agent in the same slot.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := mergeAgentDefaults(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeAgentDefaults re-decodes each agent entry over the default agent of
// its slot, since yaml decodes array elements into zero values. A random
// agent drops the inherited search settings.
func mergeAgentDefaults(data []byte, cfg *Config) error {
	var doc struct {
		Agents []yaml.Node `yaml:"agents"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}

	defaults := Default().Agents
	for i, node := range doc.Agents {
		if i >= len(cfg.Agents) {
			break
		}
		agent := defaults[i]
		if err := node.Decode(&agent); err != nil {
			return fmt.Errorf("agent %d: %w", i+1, err)
		}
		if agent.Kind == KindRandom {
			agent = metrics.AgentConfig{ID: agent.ID, Kind: KindRandom, Seed: agent.Seed}
		}
		cfg.Agents[i] = agent
	}
	return nil
}

func (c Config) Validate() error {
	if c.Height <= 0 || c.Width <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", c.Height, c.Width)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	for i, a := range c.Agents {
		if err := validateAgent(a); err != nil {
			return fmt.Errorf("agent %d: %w", i+1, err)
		}
	}
	if c.Agents[0].ID == c.Agents[1].ID {
		return fmt.Errorf("agents share id %d", c.Agents[0].ID)
	}
	return nil
}

func validateAgent(a metrics.AgentConfig) error {
	switch a.Kind {
	case KindRandom:
		return nil
	case KindSearch:
		if _, err := searcher.ParseAlgorithm(a.Algorithm); err != nil {
			return err
		}
		if a.Depth < 1 {
			return fmt.Errorf("search depth must be at least 1, got %d", a.Depth)
		}
		if a.Goroutines < 0 {
			return fmt.Errorf("negative goroutines %d", a.Goroutines)
		}
		return nil
	default:
		return fmt.Errorf("unknown agent kind %q", a.Kind)
	}
}
