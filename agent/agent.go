package agent

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns a move for the side to move on b, false if it has none,
	// and the search metrics (if collected). b must be left unchanged.
	FindMove(b *game.Board) (game.Position, bool, metrics.SearchMetric)
}

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's move.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(b *game.Board) (game.Position, bool, metrics.SearchMetric) {
	result, metric := a.searcher.FindMove(b)
	return result.Move, result.Found, metric
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the generated
// candidates. The same seed replays the same game.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board) (game.Position, bool, metrics.SearchMetric) {
	moves := b.GenerateMoves(b.CurrentSide())
	if len(moves) == 0 {
		return game.Position{}, false, metrics.SearchMetric{Algorithm: "random"}
	}
	return moves[a.rng.Intn(len(moves))], true, metrics.SearchMetric{Algorithm: "random"}
}
