package searcher

import (
	"sync"

	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/meta"

	"github.com/rs/zerolog/log"
)

const DefaultDepth = meta.DEPTH

type Option func(s *Searcher)

// Searcher picks moves with a fixed-depth adversarial search.
type Searcher struct {
	algorithm  Algorithm
	depth      int
	side       game.Side
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *Searcher) {
		s.algorithm = algorithm
	}
}

// WithDepth sets the search depth in plies. A depth of 0 evaluates the
// current position only.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithSide fixes the side the search plays for. By default it plays for the
// side to move.
func WithSide(side game.Side) Option {
	return func(s *Searcher) {
		s.side = side
	}
}

// WithGoroutines splits the root moves across n workers, each on its own
// board copy.
func WithGoroutines(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		algorithm:  AlgorithmAlphaBeta,
		depth:      DefaultDepth,
		goroutines: 1,
		evaluate:   game.EvaluateRuns,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Algorithm() Algorithm { return s.algorithm }
func (s *Searcher) Depth() int           { return s.depth }

// FindMove searches b and returns the chosen move. b is left as it was found.
func (s *Searcher) FindMove(b *game.Board) (Result, metrics.SearchMetric) {
	own := s.side
	if own == game.Empty {
		own = b.CurrentSide()
	}
	maximizing := b.CurrentSide() == own

	s.metrics.Start(s.algorithm.String(), s.depth, s.goroutines)
	var result Result
	if s.goroutines > 1 {
		result = s.splitRoot(b, own, maximizing)
	} else {
		w := s.walker(b, own)
		result = w.search(s.algorithm, s.depth, maximizing)
	}
	s.metrics.SetScore(result.Score)
	metric := s.metrics.Complete()

	log.Trace().
		Str("algorithm", s.algorithm.String()).
		Int("depth", s.depth).
		Stringer("side", own).
		Bool("found", result.Found).
		Stringer("move", result.Move).
		Int("score", result.Score).
		Int("nodes", metric.Nodes).
		Msg("search complete")

	return result, metric
}

func (s *Searcher) walker(b *game.Board, own game.Side) *walker {
	return &walker{board: b, own: own, evaluate: s.evaluate, metrics: s.metrics}
}

func (w *walker) search(algorithm Algorithm, depth int, maximizing bool) Result {
	if algorithm == AlgorithmMinimax {
		return w.minimax(depth, maximizing)
	}
	return w.alphaBeta(depth, NegInf, PosInf, maximizing)
}

// splitRoot scores every root move on a worker-private board copy and keeps
// the first best move in generator order, matching the sequential minimax
// result.
func (s *Searcher) splitRoot(b *game.Board, own game.Side, maximizing bool) Result {
	if s.depth <= 0 || b.CheckWinner() != game.Empty {
		return s.walker(b, own).search(s.algorithm, s.depth, maximizing)
	}
	moves := b.GenerateMoves(own)
	if len(moves) == 0 {
		return s.walker(b, own).search(s.algorithm, s.depth, maximizing)
	}
	s.metrics.AddNode()

	side := own
	if !maximizing {
		side = own.Opponent()
	}

	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	scores := make([]int, len(moves))
	var wg sync.WaitGroup
	for i := 0; i < min(s.goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := s.walker(b.Copy(), own)
			for idx := range task {
				undo := w.board.MakeMove(moves[idx], side)
				scores[idx] = w.search(s.algorithm, s.depth-1, !maximizing).Score
				w.board.UnmakeMove(undo)
			}
		}()
	}
	wg.Wait()

	best := Result{Score: scores[0], Move: moves[0], Found: true}
	for i, score := range scores[1:] {
		if (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Score: score, Move: moves[i+1], Found: true}
		}
	}
	return best
}
