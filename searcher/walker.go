package searcher

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
)

// walker runs a depth-first search over a single board, mutating it in place.
type walker struct {
	board    *game.Board
	own      game.Side
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// Minimax searches b to depth plies for own. maximizing selects whether own
// or its opponent moves at the root. b is restored before returning.
func Minimax(b *game.Board, own game.Side, depth int, maximizing bool) Result {
	w := &walker{board: b, own: own, evaluate: game.EvaluateRuns, metrics: metrics.NewDummyCollector()}
	return w.minimax(depth, maximizing)
}

// AlphaBeta is Minimax with alpha-beta pruning. It returns the same score as
// Minimax for the same arguments.
func AlphaBeta(b *game.Board, own game.Side, depth int, alpha, beta int, maximizing bool) Result {
	w := &walker{board: b, own: own, evaluate: game.EvaluateRuns, metrics: metrics.NewDummyCollector()}
	return w.alphaBeta(depth, alpha, beta, maximizing)
}

func (w *walker) leaf() Result {
	w.metrics.AddEvaluation()
	return Result{Score: w.evaluate(w.board, w.own)}
}

func (w *walker) mover(maximizing bool) game.Side {
	if maximizing {
		return w.own
	}
	return w.own.Opponent()
}

func (w *walker) minimax(depth int, maximizing bool) Result {
	w.metrics.AddNode()
	if depth <= 0 || w.board.CheckWinner() != game.Empty {
		return w.leaf()
	}
	moves := w.board.GenerateMoves(w.own)
	if len(moves) == 0 {
		return w.leaf()
	}

	side := w.mover(maximizing)
	best := Result{Score: PosInf}
	if maximizing {
		best.Score = NegInf
	}
	for _, move := range moves {
		undo := w.board.MakeMove(move, side)
		child := w.minimax(depth-1, !maximizing)
		w.board.UnmakeMove(undo)

		if (maximizing && child.Score > best.Score) || (!maximizing && child.Score < best.Score) {
			best = Result{Score: child.Score, Move: move, Found: true}
		}
	}
	return best
}

func (w *walker) alphaBeta(depth int, alpha, beta int, maximizing bool) Result {
	w.metrics.AddNode()
	if depth <= 0 || w.board.CheckWinner() != game.Empty {
		return w.leaf()
	}
	moves := w.board.GenerateMoves(w.own)
	if len(moves) == 0 {
		return w.leaf()
	}

	side := w.mover(maximizing)
	best := Result{Score: PosInf}
	if maximizing {
		best.Score = NegInf
	}
	for i, move := range moves {
		undo := w.board.MakeMove(move, side)
		child := w.alphaBeta(depth-1, alpha, beta, !maximizing)
		w.board.UnmakeMove(undo)

		if maximizing {
			if child.Score > best.Score {
				best = Result{Score: child.Score, Move: move, Found: true}
			}
			alpha = max(alpha, child.Score)
		} else {
			if child.Score < best.Score {
				best = Result{Score: child.Score, Move: move, Found: true}
			}
			beta = min(beta, child.Score)
		}
		if beta <= alpha {
			if i < len(moves)-1 {
				w.metrics.AddCutoff()
			}
			break
		}
	}
	return best
}
