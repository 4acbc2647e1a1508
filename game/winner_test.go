package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fillWithoutFive fills every cell in row-major order with a pattern that
// never lines up five of a kind.
func fillWithoutFive(b *Board) {
	for x := 0; x < b.Height(); x++ {
		for y := 0; y < b.Width(); y++ {
			side := AI
			if (x/2+y)%2 == 1 {
				side = Human
			}
			b.ApplyMove(Position{X: x, Y: y}, side)
		}
	}
}

func TestCheckWinner(t *testing.T) {
	lines := map[string]Position{
		"horizontal":    {X: 0, Y: 1},
		"vertical":      {X: 1, Y: 0},
		"diagonal":      {X: 1, Y: 1},
		"anti-diagonal": {X: 1, Y: -1},
	}
	for name, step := range lines {
		t.Run(name, func(t *testing.T) {
			b := NewStandardBoard(Human)
			start := Position{X: 5, Y: 7}
			for i := 0; i < WinLength; i++ {
				require.Equal(t, Empty, b.CheckWinner(), "No winner before the fifth stone")
				b.ApplyMove(Position{X: start.X + i*step.X, Y: start.Y + i*step.Y}, Human)
			}
			require.Equal(t, Human, b.CheckWinner(), "Fifth stone should win")
		})
	}

	t.Run("fifth stone placed in the middle of the line", func(t *testing.T) {
		b := NewStandardBoard(AI)
		for _, y := range []int{3, 4, 6, 7} {
			b.ApplyMove(Position{X: 2, Y: y}, AI)
		}
		require.Equal(t, Empty, b.CheckWinner())

		b.ApplyMove(Position{X: 2, Y: 5}, AI)
		require.Equal(t, AI, b.CheckWinner())
	})

	t.Run("overline counts as a win", func(t *testing.T) {
		b := NewStandardBoard(AI)
		for _, y := range []int{0, 1, 2, 4, 5} {
			b.ApplyMove(Position{X: 9, Y: y}, AI)
		}
		b.ApplyMove(Position{X: 9, Y: 3}, AI)
		require.Equal(t, AI, b.CheckWinner())
	})

	t.Run("no move applied", func(t *testing.T) {
		require.Equal(t, Empty, NewStandardBoard(AI).CheckWinner())
	})

	t.Run("only lines through the last move are inspected", func(t *testing.T) {
		b := NewStandardBoard(AI)
		for y := 0; y < WinLength; y++ {
			b.ApplyMove(Position{X: 0, Y: y}, AI)
		}
		b.ApplyMove(Position{X: 10, Y: 10}, Human)
		require.Equal(t, Empty, b.CheckWinner(), "A five away from the last move is not rescanned")
	})

	t.Run("interrupted line does not win", func(t *testing.T) {
		b := NewStandardBoard(AI)
		for _, y := range []int{0, 1, 2, 4, 5} {
			b.ApplyMove(Position{X: 3, Y: y}, AI)
		}
		b.ApplyMove(Position{X: 3, Y: 3}, Human)
		require.Equal(t, Empty, b.CheckWinner())
	})

	t.Run("full board without five", func(t *testing.T) {
		b := NewBoard(7, 7, AI)
		fillWithoutFive(b)
		over, winner := b.GameOver()
		require.True(t, over, "Full board ends the game")
		require.Equal(t, Empty, winner, "Full board without five is a draw")
	})
}
