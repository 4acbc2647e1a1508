package game

import "fmt"

// Snapshot is a detached copy of everything a Board needs to continue a game.
type Snapshot struct {
	Cells    [][]Side
	LastMove *Position
	Current  Side
	First    Side
}

func (b *Board) Snapshot() Snapshot {
	cells := make([][]Side, b.height)
	for x := range cells {
		cells[x] = make([]Side, b.width)
		copy(cells[x], b.cells[x*b.width:(x+1)*b.width])
	}
	s := Snapshot{Cells: cells, Current: b.current, First: b.first}
	if b.hasLast {
		last := b.lastMove
		s.LastMove = &last
	}
	return s
}

// Restore rebuilds a Board from s.
func Restore(s Snapshot) (*Board, error) {
	if len(s.Cells) == 0 || len(s.Cells[0]) == 0 {
		return nil, fmt.Errorf("empty grid: %w", ErrBadSnapshot)
	}
	if s.Current != AI && s.Current != Human {
		return nil, fmt.Errorf("side to move %v: %w", s.Current, ErrBadSnapshot)
	}
	first := s.First
	if first != AI && first != Human {
		first = s.Current
	}

	b := NewBoard(len(s.Cells), len(s.Cells[0]), first)
	b.current = s.Current
	for x, row := range s.Cells {
		if len(row) != b.width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", x, len(row), b.width, ErrBadSnapshot)
		}
		for y, cell := range row {
			switch cell {
			case Empty:
			case AI, Human:
				b.cells[x*b.width+y] = cell
				b.stones++
			default:
				return nil, fmt.Errorf("cell (%d,%d) holds %d: %w", x, y, cell, ErrBadSnapshot)
			}
		}
	}

	if s.LastMove != nil {
		if b.At(*s.LastMove) == Empty {
			return nil, fmt.Errorf("last move %v is not occupied: %w", *s.LastMove, ErrBadSnapshot)
		}
		b.lastMove = *s.LastMove
		b.hasLast = true
	}
	return b, nil
}
