package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardIsValid(t *testing.T) {
	b := NewBoard(6, 9, Human)
	for x := -2; x < 9; x++ {
		for y := -2; y < 12; y++ {
			want := x >= 0 && x < 6 && y >= 0 && y < 9
			require.Equal(t, want, b.IsValid(Position{X: x, Y: y}), "bounds check at (%d,%d)", x, y)
		}
	}

	b.ApplyMove(Position{X: 2, Y: 2}, AI)
	require.True(t, b.IsValid(Position{X: 2, Y: 2}), "Validity should not depend on occupancy")
}

func TestBoardApplyMove(t *testing.T) {
	t.Run("updates cell, last move and side to move", func(t *testing.T) {
		b := NewStandardBoard(Human)
		pos := Position{X: 3, Y: 4}

		b.ApplyMove(pos, Human)

		require.Equal(t, Human, b.At(pos))
		last, ok := b.LastMove()
		require.True(t, ok)
		require.Equal(t, pos, last)
		require.Equal(t, AI, b.CurrentSide(), "Turn should pass to the opponent")
		require.Equal(t, 1, b.Stones())
	})

	t.Run("panics on an occupied cell", func(t *testing.T) {
		b := NewStandardBoard(Human)
		b.ApplyMove(Position{X: 1, Y: 1}, Human)

		require.Panics(t, func() {
			b.ApplyMove(Position{X: 1, Y: 1}, AI)
		}, "Overwriting a stone is a contract violation")
	})

	t.Run("panics off the board", func(t *testing.T) {
		b := NewStandardBoard(Human)
		require.Panics(t, func() {
			b.ApplyMove(Position{X: 15, Y: 0}, AI)
		})
	})
}

func TestBoardUndoMove(t *testing.T) {
	t.Run("restores every cell", func(t *testing.T) {
		b := NewStandardBoard(AI)
		b.ApplyMove(Position{X: 7, Y: 7}, AI)
		b.ApplyMove(Position{X: 7, Y: 8}, Human)
		before := b.Snapshot().Cells

		pos := Position{X: 8, Y: 8}
		b.ApplyMove(pos, AI)
		b.UndoMove(pos)

		require.Equal(t, before, b.Snapshot().Cells, "Apply then undo should leave the grid unchanged")
		require.Equal(t, 2, b.Stones())
	})

	t.Run("does not restore last move or side to move", func(t *testing.T) {
		b := NewStandardBoard(AI)
		for y := 0; y < 4; y++ {
			b.ApplyMove(Position{X: 0, Y: y}, AI)
			b.ApplyMove(Position{X: 5, Y: y}, Human)
		}
		b.ApplyMove(Position{X: 0, Y: 4}, AI)
		require.Equal(t, AI, b.CheckWinner())

		// A human reply elsewhere, applied and undone without restoring state
		pos := Position{X: 10, Y: 10}
		b.ApplyMove(pos, Human)
		b.UndoMove(pos)

		require.Equal(t, Empty, b.CheckWinner(), "Stale last move points at an empty cell")
		require.Equal(t, AI, b.CurrentSide(), "Side to move is stale after a bare undo")
	})

	t.Run("panics on an empty cell", func(t *testing.T) {
		b := NewStandardBoard(AI)
		require.Panics(t, func() {
			b.UndoMove(Position{X: 0, Y: 0})
		})
	})
}

func TestBoardMakeUnmake(t *testing.T) {
	b := NewStandardBoard(AI)
	for y := 0; y < 4; y++ {
		b.ApplyMove(Position{X: 0, Y: y}, AI)
		b.ApplyMove(Position{X: 5, Y: y}, Human)
	}
	b.ApplyMove(Position{X: 0, Y: 4}, AI)
	hash := b.Hash()

	u := b.MakeMove(Position{X: 10, Y: 10}, Human)
	require.NotEqual(t, hash, b.Hash())
	b.UnmakeMove(u)

	require.Equal(t, hash, b.Hash(), "Unmake should restore cells, last move and side to move")
	require.Equal(t, AI, b.CheckWinner(), "Restored last move should report the winner again")
	require.Equal(t, Human, b.CurrentSide())
}

func TestBoardPlaceStone(t *testing.T) {
	t.Run("accepts a legal move", func(t *testing.T) {
		b := NewStandardBoard(Human)
		require.NoError(t, b.PlaceStone(Position{X: 7, Y: 7}, Human))
		require.Equal(t, AI, b.CurrentSide())
	})

	t.Run("rejects out of bounds", func(t *testing.T) {
		b := NewStandardBoard(Human)
		err := b.PlaceStone(Position{X: -1, Y: 3}, Human)
		require.ErrorIs(t, err, ErrOutOfBounds)
		require.Zero(t, b.Stones(), "Rejected move should not mutate the board")
	})

	t.Run("rejects occupied cells", func(t *testing.T) {
		b := NewStandardBoard(Human)
		require.NoError(t, b.PlaceStone(Position{X: 7, Y: 7}, Human))
		err := b.PlaceStone(Position{X: 7, Y: 7}, AI)
		require.ErrorIs(t, err, ErrOccupied)
	})

	t.Run("rejects the wrong side", func(t *testing.T) {
		b := NewStandardBoard(Human)
		err := b.PlaceStone(Position{X: 7, Y: 7}, AI)
		require.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("rejects moves after a win", func(t *testing.T) {
		b := NewBoard(5, 5, AI)
		for y := 0; y < 4; y++ {
			require.NoError(t, b.PlaceStone(Position{X: 0, Y: y}, AI))
			require.NoError(t, b.PlaceStone(Position{X: 4, Y: y}, Human))
		}
		require.NoError(t, b.PlaceStone(Position{X: 0, Y: 4}, AI))

		over, winner := b.GameOver()
		require.True(t, over)
		require.Equal(t, AI, winner)
		require.ErrorIs(t, b.PlaceStone(Position{X: 2, Y: 2}, Human), ErrGameOver)
	})
}

func TestBoardSnapshotRestore(t *testing.T) {
	t.Run("replaying on a restored board matches the original", func(t *testing.T) {
		original := NewStandardBoard(Human)
		opening := []Position{{7, 7}, {7, 8}, {8, 8}, {6, 6}}
		for _, pos := range opening {
			require.NoError(t, original.PlaceStone(pos, original.CurrentSide()))
		}

		restored, err := Restore(original.Snapshot())
		require.NoError(t, err)
		require.Equal(t, original.Hash(), restored.Hash())

		for _, pos := range []Position{{9, 9}, {5, 5}, {10, 10}} {
			require.NoError(t, original.PlaceStone(pos, original.CurrentSide()))
			require.NoError(t, restored.PlaceStone(pos, restored.CurrentSide()))
		}
		require.Equal(t, original.Hash(), restored.Hash(), "Both boards should evolve identically")
		require.Equal(t, original.String(), restored.String())
	})

	t.Run("snapshot is detached from the board", func(t *testing.T) {
		b := NewBoard(3, 3, AI)
		s := b.Snapshot()
		b.ApplyMove(Position{X: 1, Y: 1}, AI)
		require.Equal(t, Empty, s.Cells[1][1])
	})

	t.Run("rejects ragged grids", func(t *testing.T) {
		_, err := Restore(Snapshot{Cells: [][]Side{{Empty, Empty}, {Empty}}, Current: AI})
		require.ErrorIs(t, err, ErrBadSnapshot)
	})

	t.Run("rejects a last move on an empty cell", func(t *testing.T) {
		_, err := Restore(Snapshot{
			Cells:    [][]Side{{Empty, Empty}, {Empty, Empty}},
			LastMove: &Position{X: 0, Y: 1},
			Current:  Human,
		})
		require.ErrorIs(t, err, ErrBadSnapshot)
	})
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(5, 5, Human)
	require.NoError(t, b.PlaceStone(Position{X: 2, Y: 2}, Human))
	require.NoError(t, b.PlaceStone(Position{X: 2, Y: 3}, AI))

	b.Reset()

	require.Zero(t, b.Stones())
	require.Equal(t, Human, b.CurrentSide())
	_, ok := b.LastMove()
	require.False(t, ok)
	require.Equal(t, NewBoard(5, 5, Human).Hash(), b.Hash())
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard(5, 5, Human)
	b.ApplyMove(Position{X: 2, Y: 2}, Human)
	c := b.Copy()
	c.ApplyMove(Position{X: 0, Y: 0}, AI)

	require.Equal(t, Empty, b.At(Position{X: 0, Y: 0}), "Copy must not share cells")
	require.Equal(t, 1, b.Stones())
	require.Equal(t, 2, c.Stones())
}
