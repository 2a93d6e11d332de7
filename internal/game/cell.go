// Package game implements the snake engine: a single trail moving across a
// wrapping square grid, growing when it reaches the target cell and shrinking
// back to its baseline capacity when it runs into itself.
//
// The package has no terminal or window dependencies. Drivers feed it heading
// changes and elapsed time, then query occupancy to draw a frame.
package game

import (
	"fmt"
	"strings"
)

// Cell is a grid coordinate. Both components lie in [0, grid size).
type Cell struct {
	X, Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Move returns the neighbouring cell in direction h on a grid of the given
// size. Leaving one edge re-enters on the opposite edge.
func (c Cell) Move(h Heading, gridSize int) Cell {
	switch h {
	case Up:
		return Cell{X: c.X, Y: wrap(c.Y-1, gridSize)}
	case Down:
		return Cell{X: c.X, Y: wrap(c.Y+1, gridSize)}
	case Left:
		return Cell{X: wrap(c.X-1, gridSize), Y: c.Y}
	case Right:
		return Cell{X: wrap(c.X+1, gridSize), Y: c.Y}
	}
	return c
}

// wrap folds v into [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Heading is the direction of the next movement.
type Heading int

const (
	Right Heading = iota
	Down
	Left
	Up
)

// opposites is indexed by Heading.
var opposites = [...]Heading{
	Right: Left,
	Down:  Up,
	Left:  Right,
	Up:    Down,
}

// Opposite returns the reverse heading: Up<->Down, Left<->Right.
func (h Heading) Opposite() Heading {
	if h < 0 || int(h) >= len(opposites) {
		return h
	}
	return opposites[h]
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseHeading maps an input token to a heading. It accepts the wasd keys
// and the names of the four directions, case-insensitively and ignoring
// surrounding whitespace. ok is false for anything else.
func ParseHeading(token string) (h Heading, ok bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "w", "up":
		return Up, true
	case "a", "left":
		return Left, true
	case "s", "down":
		return Down, true
	case "d", "right":
		return Right, true
	}
	return Right, false
}
