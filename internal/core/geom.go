// Package core provides fundamental types for the snakecoach game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Position is a grid coordinate. It is a pure value type; two positions
// are the same cell iff their coordinates are equal.
type Position struct {
	X, Y int
}

// Shifted returns the position one cell away in the given direction.
func (p Position) Shifted(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether the position lies strictly inside a board of
// the given dimensions. The outer ring of cells is the wall and counts as
// out of bounds.
func (p Position) InBounds(width, height int) bool {
	return p.X > 0 && p.X < width-1 && p.Y > 0 && p.Y < height-1
}

// Direction represents a movement heading on the grid.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the per-tick coordinate change for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
