package game

// CheckWinner reports the side with five in a row through the last move.
// It is only meaningful when LastMove is the most recent placement; with no
// last move it reports Empty.
func (b *Board) CheckWinner() Side {
	if !b.hasLast {
		return Empty
	}
	side := b.At(b.lastMove)
	if side == Empty {
		return Empty
	}
	if b.completesFive(b.lastMove, side) {
		return side
	}
	return Empty
}

// completesFive reports whether pos, taken as held by side, lies on a line
// of at least WinLength stones of side.
func (b *Board) completesFive(pos Position, side Side) bool {
	for _, d := range lines {
		count := 1 + b.countRay(pos, d, side) + b.countRay(pos, direction{-d.dx, -d.dy}, side)
		if count >= WinLength {
			return true
		}
	}
	return false
}

// countRay counts consecutive side stones from pos (exclusive) along d.
func (b *Board) countRay(pos Position, d direction, side Side) int {
	count := 0
	for next := pos.step(d, 1); b.IsValid(next) && b.At(next) == side; next = next.step(d, 1) {
		count++
	}
	return count
}
