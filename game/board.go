package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

type BoardHash uint64

// Board is the single mutable game state. Search mutates it in place and
// restores it on the way back up, so it must not be shared across goroutines.
type Board struct {
	height   int
	width    int
	cells    []Side
	lastMove Position
	hasLast  bool
	current  Side
	first    Side
	stones   int
}

// Undo captures what MakeMove overwrote.
type Undo struct {
	pos     Position
	last    Position
	hasLast bool
	current Side
}

// NewBoard returns an empty height x width board with first to move.
func NewBoard(height, width int, first Side) *Board {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", height, width))
	}
	if first != AI && first != Human {
		panic("first side must be AI or Human")
	}
	return &Board{
		height:  height,
		width:   width,
		cells:   make([]Side, height*width),
		current: first,
		first:   first,
	}
}

func NewStandardBoard(first Side) *Board {
	return NewBoard(StandardSize, StandardSize, first)
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

// CurrentSide is the side to move.
func (b *Board) CurrentSide() Side { return b.current }

// Stones is the number of occupied cells.
func (b *Board) Stones() int { return b.stones }

func (b *Board) IsFull() bool { return b.stones == len(b.cells) }

// LastMove returns the most recent placement, if any.
func (b *Board) LastMove() (Position, bool) {
	return b.lastMove, b.hasLast
}

// IsValid reports whether pos is on the board, regardless of occupancy.
func (b *Board) IsValid(pos Position) bool {
	return pos.X >= 0 && pos.X < b.height && pos.Y >= 0 && pos.Y < b.width
}

// At returns the cell at pos. Off-board positions read as Empty.
func (b *Board) At(pos Position) Side {
	if !b.IsValid(pos) {
		return Empty
	}
	return b.cells[b.index(pos)]
}

func (b *Board) Center() Position {
	return Position{X: b.height / 2, Y: b.width / 2}
}

// ApplyMove places side at pos and hands the turn to the opponent.
// The caller guarantees pos is valid and empty.
func (b *Board) ApplyMove(pos Position, side Side) {
	if side != AI && side != Human {
		panic(fmt.Sprintf("cannot place %v stone", side))
	}
	if !b.IsValid(pos) {
		panic(fmt.Sprintf("move %v is off the %dx%d board", pos, b.height, b.width))
	}
	i := b.index(pos)
	if b.cells[i] != Empty {
		panic(fmt.Sprintf("move %v overwrites a %v stone", pos, b.cells[i]))
	}
	b.cells[i] = side
	b.stones++
	b.lastMove = pos
	b.hasLast = true
	b.current = side.Opponent()
}

// UndoMove clears pos. LastMove and CurrentSide are left untouched; use
// MakeMove/UnmakeMove to get them restored.
func (b *Board) UndoMove(pos Position) {
	i := b.index(pos)
	if b.cells[i] == Empty {
		panic(fmt.Sprintf("undo of empty cell %v", pos))
	}
	b.cells[i] = Empty
	b.stones--
}

// MakeMove applies a move and returns the token that reverts it.
func (b *Board) MakeMove(pos Position, side Side) Undo {
	u := Undo{pos: pos, last: b.lastMove, hasLast: b.hasLast, current: b.current}
	b.ApplyMove(pos, side)
	return u
}

// UnmakeMove reverts the move recorded in u. Tokens must be consumed in
// reverse order of creation.
func (b *Board) UnmakeMove(u Undo) {
	b.UndoMove(u.pos)
	b.lastMove = u.last
	b.hasLast = u.hasLast
	b.current = u.current
}

// PlaceStone is the checked mutation for live play.
func (b *Board) PlaceStone(pos Position, side Side) error {
	if over, _ := b.GameOver(); over {
		return ErrGameOver
	}
	if !b.IsValid(pos) {
		return fmt.Errorf("cannot place at %v on %dx%d board: %w", pos, b.height, b.width, ErrOutOfBounds)
	}
	if side != b.current {
		return fmt.Errorf("cannot place %v stone, %v to move: %w", side, b.current, ErrNotYourTurn)
	}
	if b.At(pos) != Empty {
		return fmt.Errorf("cannot place at %v: %w", pos, ErrOccupied)
	}
	b.ApplyMove(pos, side)
	return nil
}

// GameOver reports whether the game ended and who won. A full board with no
// five is a draw and reports Empty.
func (b *Board) GameOver() (bool, Side) {
	if winner := b.CheckWinner(); winner != Empty {
		return true, winner
	}
	return b.IsFull(), Empty
}

// Reset clears the board for a new game.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.stones = 0
	b.lastMove = Position{}
	b.hasLast = false
	b.current = b.first
}

func (b *Board) Copy() *Board {
	cellsCopy := make([]Side, len(b.cells))
	copy(cellsCopy, b.cells)

	c := *b
	c.cells = cellsCopy
	return &c
}

func (b *Board) Hash() BoardHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.height))
	binary.Write(hasher, binary.LittleEndian, int64(b.width))
	binary.Write(hasher, binary.LittleEndian, int64(b.current))

	if b.hasLast {
		binary.Write(hasher, binary.LittleEndian, int64(b.lastMove.X))
		binary.Write(hasher, binary.LittleEndian, int64(b.lastMove.Y))
	} else {
		binary.Write(hasher, binary.LittleEndian, int64(-1))
	}

	for _, cell := range b.cells {
		hasher.Write([]byte{byte(cell)})
	}

	return BoardHash(hasher.Sum64())
}

// String renders the grid with X for AI and O for Human, for logs.
func (b *Board) String() string {
	var sb strings.Builder
	for x := 0; x < b.height; x++ {
		for y := 0; y < b.width; y++ {
			if y > 0 {
				sb.WriteByte(' ')
			}
			switch b.cells[x*b.width+y] {
			case AI:
				sb.WriteByte('X')
			case Human:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) index(pos Position) int {
	return pos.X*b.width + pos.Y
}
