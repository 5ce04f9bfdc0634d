// Package game holds the pure simulation core: the snake, the session
// bookkeeping, food placement and the tick-driven coordinator. Nothing in
// this package blocks except the coordinator's calls into the Advisor.
package game

import "snakecoach/internal/core"

// Snake is the player-controlled actor: an ordered body with the head at
// index 0, a current heading and a pending-growth flag.
type Snake struct {
	body    []core.Position
	heading core.Direction
	growing bool
}

// NewSnake creates a single-segment snake at the given spawn cell.
func NewSnake(spawn core.Position, heading core.Direction) *Snake {
	return &Snake{
		body:    []core.Position{spawn},
		heading: heading,
	}
}

// Head returns the current head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Heading returns the current movement direction.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// SetHeading updates the heading, taking effect on the next Advance.
// A heading equal to the exact reverse of the current one is rejected,
// otherwise a moving snake could fold onto its own neck.
func (s *Snake) SetHeading(d core.Direction) {
	if d == s.heading.Reverse() {
		return
	}
	s.heading = d
}

// RequestGrowth banks a single-segment growth for the next Advance.
// The flag is boolean, not a counter: several requests between two
// advances still grow the body by exactly one segment.
func (s *Snake) RequestGrowth() {
	s.growing = true
}

// Advance moves the snake one cell along its heading. The new head is
// inserted at the front; unless a growth is pending the tail is dropped.
// No bounds or collision checking happens here.
func (s *Snake) Advance() {
	newHead := s.Head().Shifted(s.heading)
	s.body = append([]core.Position{newHead}, s.body...)
	if s.growing {
		s.growing = false
		return
	}
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Occupies reports whether any body segment sits on the given cell.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps any other body segment.
func (s *Snake) HitsSelf() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
