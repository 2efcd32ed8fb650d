package core

import "errors"

// Tile decode errors (load time, fatal to startup).
var (
	ErrInvalidGroundCode  = errors.New("invalid ground code")
	ErrInvalidContentCode = errors.New("invalid content code")
)

// Grid operation errors (turn time, recoverable: the player retries).
var (
	ErrOutOfBounds        = errors.New("coordinate out of bounds")
	ErrNotAdjacent        = errors.New("tiles are not adjacent")
	ErrBlockedDestination = errors.New("destination tile is blocked")
	ErrOccupiedTile       = errors.New("tile cannot hold a tower")
	ErrTooFarFromPlayer   = errors.New("tower must be placed next to the player")
	ErrNoTowersLeft       = errors.New("no towers left to place")
	ErrGameOver           = errors.New("game is over")
)
