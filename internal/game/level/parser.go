// Package level reads the two-character-per-tile text format into a
// populated grid and validates the level invariants the rest of the
// game relies on (rectangular shape, exactly one player, exactly one
// goal).
package level

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gridward/gridward/internal/game/core"
)

// Spawn is a scheduled enemy spawn authored in level metadata. A spawn
// whose target cell is occupied when due is deferred by one turn.
type Spawn struct {
	Pos  core.Coordinate
	Turn int
}

// Level is the parsed result: a routed grid plus level metadata.
// MaxTowers is -1 when the level does not cap tower placement.
type Level struct {
	Grid      *core.Grid
	MaxTowers int
	Spawns    []Spawn
}

// Parse reads a level from r. Grid rows are lines of two-character tile
// codes; blank lines and lines starting with '~' are ignored; lines
// starting with '@' carry metadata (max_towers, spawn events).
func Parse(r io.Reader) (*Level, error) {
	var rows []string
	var meta []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case line == "" || strings.HasPrefix(line, "~"):
			continue
		case strings.HasPrefix(line, "@"):
			meta = append(meta, strings.TrimPrefix(line, "@"))
		default:
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLevel
	}

	width := len(rows[0]) / 2
	height := len(rows)
	tiles := make([]core.Tile, 0, width*height)
	players, goals := 0, 0

	for y, row := range rows {
		if len(row)%2 != 0 {
			return nil, fmt.Errorf("row %d: %w", y, ErrTruncatedTileCode)
		}
		if len(row) != width*2 {
			return nil, fmt.Errorf("row %d has %d codes, row 0 has %d: %w",
				y, len(row)/2, width, ErrIrregularGridShape)
		}
		for x := 0; x < width; x++ {
			tile, err := core.ParseTileCode(row[x*2], row[x*2+1])
			if err != nil {
				return nil, fmt.Errorf("tile %q at (%d,%d): %w", row[x*2:x*2+2], x, y, err)
			}
			switch tile.Content {
			case core.ContentPlayer:
				players++
			case core.ContentGoal:
				goals++
			}
			tiles = append(tiles, tile)
		}
	}

	switch {
	case players == 0:
		return nil, ErrMissingPlayer
	case players > 1:
		return nil, ErrMultiplePlayers
	case goals == 0:
		return nil, ErrMissingGoal
	case goals > 1:
		return nil, ErrMultipleGoals
	}

	lvl := &Level{
		Grid:      core.NewGrid(width, height, tiles),
		MaxTowers: -1,
	}
	lvl.Grid.ComputePathDistances()

	for _, line := range meta {
		if err := lvl.applyMetadata(line); err != nil {
			return nil, err
		}
	}
	return lvl, nil
}

// applyMetadata handles one '@' line. Supported forms:
//
//	@max_towers N
//	@event spawn enemy X Y TURN
func (l *Level) applyMetadata(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty", ErrBadMetadata)
	}
	switch fields[0] {
	case "max_towers":
		if len(fields) != 2 {
			return fmt.Errorf("%w: max_towers wants one argument", ErrBadMetadata)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return fmt.Errorf("%w: max_towers %q", ErrBadMetadata, fields[1])
		}
		l.MaxTowers = n
		return nil
	case "event":
		if len(fields) != 6 || fields[1] != "spawn" || fields[2] != "enemy" {
			return fmt.Errorf("%w: %q", ErrBadMetadata, line)
		}
		x, errX := strconv.Atoi(fields[3])
		y, errY := strconv.Atoi(fields[4])
		turn, errT := strconv.Atoi(fields[5])
		if errX != nil || errY != nil || errT != nil || turn < 0 {
			return fmt.Errorf("%w: %q", ErrBadMetadata, line)
		}
		pos := core.NewCoordinate(x, y)
		if !l.Grid.InBounds(pos) {
			return fmt.Errorf("%w: spawn at %s is off the grid", ErrBadMetadata, pos)
		}
		l.Spawns = append(l.Spawns, Spawn{Pos: pos, Turn: turn})
		return nil
	default:
		return fmt.Errorf("%w: unknown directive %q", ErrBadMetadata, fields[0])
	}
}

// ParseString parses a level held in a string.
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

// Load reads and parses a level file from disk.
func Load(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening level %s: %w", path, err)
	}
	defer f.Close()

	lvl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return lvl, nil
}
