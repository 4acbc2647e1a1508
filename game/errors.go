package game

import "errors"

var (
	ErrOutOfBounds = errors.New("position is out of bounds")
	ErrOccupied    = errors.New("position is already occupied")
	ErrNotYourTurn = errors.New("side is not the side to move")
	ErrGameOver    = errors.New("game is already over")
	ErrBadSnapshot = errors.New("snapshot is inconsistent")
)
