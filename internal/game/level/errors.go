package level

import "errors"

// Structural parse errors. All are fatal to startup and surfaced
// verbatim; a failed parse never yields a partial grid.
var (
	ErrEmptyLevel         = errors.New("level has no grid rows")
	ErrTruncatedTileCode  = errors.New("truncated tile code")
	ErrIrregularGridShape = errors.New("irregular grid shape")
	ErrMissingPlayer      = errors.New("level has no player")
	ErrMultiplePlayers    = errors.New("level has more than one player")
	ErrMissingGoal        = errors.New("level has no goal")
	ErrMultipleGoals      = errors.New("level has more than one goal")
	ErrBadMetadata        = errors.New("bad metadata line")
)
