package game

import (
	"testing"

	"snakecoach/internal/core"
)

func TestSnakeAdvance(t *testing.T) {
	s := NewSnake(core.Position{X: 5, Y: 5}, core.DirRight)
	s.Advance()

	if got := s.Head(); got != (core.Position{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, expected (6,5)", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestSnakeAdvanceBodyFollows(t *testing.T) {
	s := &Snake{
		body:    []core.Position{{X: 5, Y: 5}, {X: 5, Y: 6}},
		heading: core.DirUp,
	}
	s.Advance()

	body := s.Body()
	if body[0] != (core.Position{X: 5, Y: 4}) || body[1] != (core.Position{X: 5, Y: 5}) {
		t.Errorf("Body() = %v, expected [(5,4) (5,5)]", body)
	}
}

func TestSnakeNoReversal(t *testing.T) {
	tests := []struct {
		name     string
		heading  core.Direction
		request  core.Direction
		expected core.Direction
	}{
		{name: "right rejects left", heading: core.DirRight, request: core.DirLeft, expected: core.DirRight},
		{name: "left rejects right", heading: core.DirLeft, request: core.DirRight, expected: core.DirLeft},
		{name: "up rejects down", heading: core.DirUp, request: core.DirDown, expected: core.DirUp},
		{name: "down rejects up", heading: core.DirDown, request: core.DirUp, expected: core.DirDown},
		{name: "right accepts up", heading: core.DirRight, request: core.DirUp, expected: core.DirUp},
		{name: "right accepts down", heading: core.DirRight, request: core.DirDown, expected: core.DirDown},
		{name: "up accepts left", heading: core.DirUp, request: core.DirLeft, expected: core.DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(core.Position{X: 5, Y: 5}, tc.heading)
			s.SetHeading(tc.request)
			if got := s.Heading(); got != tc.expected {
				t.Errorf("Heading() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSnakeHeadingTakesEffectOnAdvance(t *testing.T) {
	s := NewSnake(core.Position{X: 5, Y: 5}, core.DirRight)
	s.SetHeading(core.DirDown)

	// Heading changed but position untouched until Advance
	if got := s.Head(); got != (core.Position{X: 5, Y: 5}) {
		t.Errorf("Head() moved before Advance: %v", got)
	}

	s.Advance()
	if got := s.Head(); got != (core.Position{X: 5, Y: 6}) {
		t.Errorf("Head() = %v, expected (5,6)", got)
	}
}

func TestSnakeGrowthCoalesced(t *testing.T) {
	s := NewSnake(core.Position{X: 5, Y: 5}, core.DirRight)

	// Two requests between advances still grow by exactly one
	s.RequestGrowth()
	s.RequestGrowth()
	s.Advance()
	if s.Len() != 2 {
		t.Errorf("Len() after coalesced growth = %d, expected 2", s.Len())
	}

	// No pending growth: length stays
	s.Advance()
	if s.Len() != 2 {
		t.Errorf("Len() after plain advance = %d, expected 2", s.Len())
	}

	s.RequestGrowth()
	s.Advance()
	if s.Len() != 3 {
		t.Errorf("Len() after growth = %d, expected 3", s.Len())
	}
}

func TestSnakeHitsSelf(t *testing.T) {
	// Length-5 snake whose head moves onto its own body
	s := &Snake{
		body: []core.Position{
			{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6},
		},
		heading: core.DirDown,
	}
	if s.HitsSelf() {
		t.Fatal("HitsSelf() true before moving")
	}

	s.Advance()
	if !s.HitsSelf() {
		t.Errorf("HitsSelf() = false after moving onto body, body = %v", s.Body())
	}
}

func TestSnakeTailCellIsSafe(t *testing.T) {
	// Moving into the cell the tail is about to vacate is not a collision
	s := &Snake{
		body: []core.Position{
			{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6},
		},
		heading: core.DirDown,
	}
	s.Advance()
	if s.HitsSelf() {
		t.Errorf("HitsSelf() = true when entering vacated tail cell, body = %v", s.Body())
	}
}

func TestSnakeOccupies(t *testing.T) {
	s := &Snake{
		body:    []core.Position{{X: 5, Y: 5}, {X: 5, Y: 6}},
		heading: core.DirUp,
	}
	if !s.Occupies(core.Position{X: 5, Y: 6}) {
		t.Error("Occupies() = false for body cell")
	}
	if s.Occupies(core.Position{X: 6, Y: 6}) {
		t.Error("Occupies() = true for empty cell")
	}
}
