package engine

import (
	"fmt"
	"time"

	"gomoku/agent"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/utils"

	"github.com/rs/zerolog/log"
)

// Engine plays one game between two agents on a shared board.
type Engine struct {
	Board  *game.Board
	sides  []game.Side
	agents []agent.Agent
}

func LocalEngine(b *game.Board, agents map[game.Side]agent.Agent) *Engine {
	eng := &Engine{Board: b}
	for _, side := range []game.Side{game.AI, game.Human} {
		a, ok := agents[side]
		if !ok || a == nil {
			panic(fmt.Sprintf("no agent for side %v", side))
		}
		eng.sides = append(eng.sides, side)
		eng.agents = append(eng.agents, a)
	}
	return eng
}

// Run plays until a five, a full board, or an agent without a move. It
// returns the winner (Empty for a draw) and the collected metrics.
func (e *Engine) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.CurrentSide().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%v is starting on a %dx%d board", e.Board.CurrentSide(), e.Board.Height(), e.Board.Width())

	winner := game.Empty
	step := 1
	for {
		over, w := e.Board.GameOver()
		if over {
			winner = w
			break
		}

		side := e.Board.CurrentSide()
		a := e.agents[utils.FindIndex(e.sides, side)]
		move, ok, searchMetric := a.FindMove(e.Board)
		if !ok {
			log.Warn().Msgf("%v has no move, ending game as a draw", side)
			break
		}

		if err := e.Board.PlaceStone(move, side); err != nil {
			// Fall back to the best generated candidate rather than abort the game
			log.Error().Err(err).Msgf("%v proposed an illegal move", side)
			fallback := e.Board.GenerateMoves(side)
			if len(fallback) == 0 {
				break
			}
			move = fallback[0]
			e.Board.ApplyMove(move, side)
		}

		log.Debug().Msgf("step %d: %v plays %v", step, side, move)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       side.String(),
			Row:          move.X,
			Col:          move.Y,
			SearchMetric: searchMetric,
		})
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("%v wins after %d moves", winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("draw after %d moves", gameMetric.TotalMoves)
	}
	log.Debug().Msgf("final board:\n%s", e.Board)

	return winner, gameMetric, moveMetrics
}
