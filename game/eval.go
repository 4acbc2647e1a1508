package game

// WinScore is returned for a decided game. Heuristic scores are clamped
// strictly inside (-WinScore, WinScore).
const (
	WinScore     = 10_000_000
	MaxHeuristic = WinScore - 1
)

type runShape struct {
	length   int
	openEnds int
}

// Run weights from the perspective of the side being scored. Opponent runs
// weigh ten times more so blocking is preferred over building.
var (
	ownWeights = map[runShape]int{
		{4, 2}: 100_000,
		{4, 1}: 10_000,
		{3, 2}: 1_000,
		{3, 1}: 100,
		{2, 2}: 10,
		{2, 1}: 1,
	}
	opponentWeights = map[runShape]int{
		{4, 2}: 1_000_000,
		{4, 1}: 100_000,
		{3, 2}: 10_000,
		{3, 1}: 1_000,
		{2, 2}: 100,
		{2, 1}: 10,
	}
)

// EvaluateRuns scores b for own: WinScore or -WinScore when the last move
// completed a five, otherwise the own run score minus the opponent run score,
// clamped to [-MaxHeuristic, MaxHeuristic]. A clamped score is no longer that
// exact difference.
func EvaluateRuns(b *Board, own Side) int {
	switch b.CheckWinner() {
	case own:
		return WinScore
	case own.Opponent():
		return -WinScore
	}

	score := b.runScore(own, ownWeights) - b.runScore(own.Opponent(), opponentWeights)
	return min(max(score, -MaxHeuristic), MaxHeuristic)
}

// runScore sums weights over every maximal run of side, each run counted
// once from its first stone. The sum is unbounded; EvaluateRuns clamps the
// difference of two sums.
func (b *Board) runScore(side Side, weights map[runShape]int) int {
	total := 0
	for x := 0; x < b.height; x++ {
		for y := 0; y < b.width; y++ {
			pos := Position{X: x, Y: y}
			if b.At(pos) != side {
				continue
			}
			for _, d := range lines {
				prev := pos.step(d, -1)
				if b.IsValid(prev) && b.At(prev) == side {
					continue
				}
				length := 1 + b.countRay(pos, d, side)
				if length >= WinLength {
					continue
				}
				open := 0
				if b.IsValid(prev) && b.At(prev) == Empty {
					open++
				}
				if next := pos.step(d, length); b.IsValid(next) && b.At(next) == Empty {
					open++
				}
				total += weights[runShape{length: length, openEnds: open}]
			}
		}
	}
	return total
}
