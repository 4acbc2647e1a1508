package game

import "fmt"

// Side is both a cell value and a turn owner.
type Side int8

const (
	Empty Side = iota
	AI
	Human
)

const (
	WinLength    = 5
	StandardSize = 15
)

// Opponent returns the other playing side. Empty has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case AI:
		return Human
	case Human:
		return AI
	default:
		return Empty
	}
}

func (s Side) String() string {
	switch s {
	case AI:
		return "AI"
	case Human:
		return "Human"
	default:
		return "Empty"
	}
}

// Position is a (row, column) coordinate, 0-indexed.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Position) step(d direction, n int) Position {
	return Position{X: p.X + d.dx*n, Y: p.Y + d.dy*n}
}

type direction struct {
	dx, dy int
}

// lines are the four axes a five can lie on
var lines = [4]direction{{1, 0}, {1, 1}, {1, -1}, {0, 1}}

var neighbors = [8]direction{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// Evaluates a non-terminal or terminal board from own's perspective; positive favors own.
type Evaluate func(b *Board, own Side) int
