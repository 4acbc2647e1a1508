package experiments

import (
	"fmt"

	"gomoku/agent"
	"gomoku/config"
	"gomoku/engine"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"

	"github.com/rs/zerolog/log"
)

// Summary tallies game outcomes by agent ID.
type Summary struct {
	Wins  map[int]int
	Draws int
	Dir   string // Where records were written
}

// Run plays cfg.Games games between the two configured agents, alternating
// which agent moves first, and stores configs, game and move records.
func Run(cfg config.Config) (Summary, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	summary := Summary{Wins: map[int]int{}, Dir: writer.Dir()}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment between agent1=%+v and agent2=%+v...", cfg.Name, cfg.Agents[0], cfg.Agents[1])

	for i := 0; i < cfg.Games; i++ {
		// Agent 1 plays AI, agent 2 plays Human; the first mover alternates
		first := game.AI
		if i%2 == 1 {
			first = game.Human
		}
		log.Info().Msgf("starting game %d of %d, %v first...", i+1, cfg.Games, first)

		winner, gameMetric, moveMetrics, err := runGame(cfg, first)
		if err != nil {
			return summary, err
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     cfg.Agents[0].ID,
			Agent2:     cfg.Agents[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		switch winner {
		case game.AI:
			summary.Wins[cfg.Agents[0].ID]++
		case game.Human:
			summary.Wins[cfg.Agents[1].ID]++
		default:
			summary.Draws++
		}
		log.Info().Msgf("completed game %d with winner: %v", i+1, winner)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if err := writer.WriteAgentConfigs(cfg.Agents[:]); err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame executes a single game between the configured agents
func runGame(cfg config.Config, first game.Side) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := createAgent(cfg.Agents[0])
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	agent2, err := createAgent(cfg.Agents[1])
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}

	b := game.NewBoard(cfg.Height, cfg.Width, first)
	e := engine.LocalEngine(b, map[game.Side]agent.Agent{
		game.AI:    agent1,
		game.Human: agent2,
	})

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func createAgent(ac metrics.AgentConfig) (agent.Agent, error) {
	switch ac.Kind {
	case config.KindRandom:
		return agent.NewRandomAgent(ac.Seed), nil
	case config.KindSearch:
		algorithm, err := searcher.ParseAlgorithm(ac.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", ac.ID, err)
		}
		// a depth 0 search never proposes a move and would end the game at once
		if ac.Depth < 1 {
			return nil, fmt.Errorf("agent %d: search depth must be at least 1, got %d", ac.ID, ac.Depth)
		}
		options := []searcher.Option{
			searcher.WithAlgorithm(algorithm),
			searcher.WithDepth(ac.Depth),
			searcher.WithMetrics(),
		}
		if ac.Goroutines > 0 {
			options = append(options, searcher.WithGoroutines(ac.Goroutines))
		}
		return agent.NewSearchAgent(searcher.New(options...)), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", ac.ID, ac.Kind)
	}
}
