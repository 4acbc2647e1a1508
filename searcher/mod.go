package searcher

import (
	"fmt"
	"math"
	"strings"

	"gomoku/game"
)

// Window bounds for a root alpha-beta call. Every score the evaluator can
// produce lies strictly inside them.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

type Algorithm int

const (
	AlgorithmMinimax Algorithm = iota
	AlgorithmAlphaBeta
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmMinimax:
		return "minimax"
	case AlgorithmAlphaBeta:
		return "alphabeta"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax":
		return AlgorithmMinimax, nil
	case "alphabeta", "alpha-beta", "alpha_beta":
		return AlgorithmAlphaBeta, nil
	default:
		return 0, fmt.Errorf("unknown search algorithm %q", s)
	}
}

// Result is a search outcome. Found is false when the node was not expanded
// or had no candidate moves.
type Result struct {
	Score int
	Move  game.Position
	Found bool
}
