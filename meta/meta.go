package meta

// BOARD_SIZE is the default board edge length.
const BOARD_SIZE = 15

// DEPTH is the default search depth against a human.
const DEPTH = 3

// MATCH_DEPTH is the default search depth when two programs play each other.
const MATCH_DEPTH = 2

// GO_ROUTINES defines the number of goroutines to use for the root split.
const GO_ROUTINES = 1

// GAMES defines the number of games per experiment.
const GAMES = 2
