package game

import "golang.org/x/exp/slices"

// Candidate scores. A win outranks a block, which outranks any sum of
// window scores a single cell can collect (4 lines x 5 windows x 2 sides).
const (
	MaxCandidates       = 40
	CandidateWinScore   = 1_000_000
	CandidateBlockScore = 900_000
	WindowFourScore     = 10_000
	WindowThreeScore    = 1_000
	WindowTwoScore      = 100
)

const windowReach = WinLength - 1

type cellKind int8

const (
	kindBlocked cellKind = iota
	kindEmpty
	kindOwn
)

type scoredMove struct {
	pos   Position
	score int
}

// GenerateMoves returns at most MaxCandidates empty cells next to existing
// stones, best first. On an untouched board it returns the centre.
func (b *Board) GenerateMoves(own Side) []Position {
	candidates := b.adjacentEmpty()
	if len(candidates) == 0 {
		if b.At(b.Center()) == Empty {
			return []Position{b.Center()}
		}
		candidates = b.allEmpty()
	}

	scored := make([]scoredMove, len(candidates))
	for i, pos := range candidates {
		scored[i] = scoredMove{pos: pos, score: b.scoreCandidate(pos, own)}
	}
	// candidates are collected row-major, so a stable sort keeps that order among ties
	slices.SortStableFunc(scored, func(x, y scoredMove) int {
		return y.score - x.score
	})

	if len(scored) > MaxCandidates {
		scored = scored[:MaxCandidates]
	}
	moves := make([]Position, len(scored))
	for i, s := range scored {
		moves[i] = s.pos
	}
	return moves
}

func (b *Board) adjacentEmpty() []Position {
	var candidates []Position
	for x := 0; x < b.height; x++ {
		for y := 0; y < b.width; y++ {
			pos := Position{X: x, Y: y}
			if b.At(pos) == Empty && b.hasNeighbor(pos) {
				candidates = append(candidates, pos)
			}
		}
	}
	return candidates
}

func (b *Board) hasNeighbor(pos Position) bool {
	for _, d := range neighbors {
		next := pos.step(d, 1)
		if b.IsValid(next) && b.At(next) != Empty {
			return true
		}
	}
	return false
}

func (b *Board) allEmpty() []Position {
	var empty []Position
	for x := 0; x < b.height; x++ {
		for y := 0; y < b.width; y++ {
			pos := Position{X: x, Y: y}
			if b.At(pos) == Empty {
				empty = append(empty, pos)
			}
		}
	}
	return empty
}

// scoreCandidate ranks an empty cell for own to play next.
func (b *Board) scoreCandidate(pos Position, own Side) int {
	if b.completesFive(pos, own) {
		return CandidateWinScore
	}
	opponent := own.Opponent()
	if b.completesFive(pos, opponent) {
		return CandidateBlockScore
	}

	score := 0
	for _, d := range lines {
		score += b.windowScore(pos, d, own)
		score += b.windowScore(pos, d, opponent)
	}
	return score
}

// windowScore scores the 5-cell windows through pos along d as if side had
// already played pos.
func (b *Board) windowScore(pos Position, d direction, side Side) int {
	var span [2*windowReach + 1]cellKind
	for i := range span {
		offset := i - windowReach
		if offset == 0 {
			span[i] = kindOwn
			continue
		}
		cell := pos.step(d, offset)
		switch {
		case !b.IsValid(cell):
			span[i] = kindBlocked
		case b.At(cell) == side:
			span[i] = kindOwn
		case b.At(cell) == Empty:
			span[i] = kindEmpty
		default:
			span[i] = kindBlocked
		}
	}

	score := 0
	for start := 0; start+WinLength <= len(span); start++ {
		own, empty := 0, 0
		for _, kind := range span[start : start+WinLength] {
			switch kind {
			case kindOwn:
				own++
			case kindEmpty:
				empty++
			}
		}
		switch {
		case own == 4 && empty >= 1:
			score += WindowFourScore
		case own == 3 && empty >= 2:
			score += WindowThreeScore
		case own == 2 && empty >= 3:
			score += WindowTwoScore
		}
	}
	return score
}
