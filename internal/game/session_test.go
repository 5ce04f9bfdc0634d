package game

import (
	"testing"
	"time"
)

// fakeClock is an adjustable time source for session tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Tick(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestSurvivalSeconds(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(clock.Now)

	if got := s.SurvivalSeconds(); got != 0 {
		t.Errorf("SurvivalSeconds() at start = %d, expected 0", got)
	}

	clock.Tick(5 * time.Second)
	if got := s.SurvivalSeconds(); got != 5 {
		t.Errorf("SurvivalSeconds() = %d, expected 5", got)
	}
}

func TestSurvivalSecondsFrozenWhilePaused(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(clock.Now)

	clock.Tick(3 * time.Second)
	s.TogglePause()

	clock.Tick(10 * time.Second)
	if got := s.SurvivalSeconds(); got != 3 {
		t.Errorf("SurvivalSeconds() while paused = %d, expected 3", got)
	}

	s.TogglePause()
	clock.Tick(2 * time.Second)
	if got := s.SurvivalSeconds(); got != 5 {
		t.Errorf("SurvivalSeconds() after unpause = %d, expected 5", got)
	}
}

func TestSurvivalSecondsMultiplePauses(t *testing.T) {
	clock := newFakeClock()
	s := NewSession(clock.Now)

	for i := 0; i < 3; i++ {
		clock.Tick(time.Second)
		s.TogglePause()
		clock.Tick(7 * time.Second)
		s.TogglePause()
	}

	if got := s.SurvivalSeconds(); got != 3 {
		t.Errorf("SurvivalSeconds() = %d, expected 3", got)
	}
}

func TestRecordCollisionFirstWins(t *testing.T) {
	s := NewSession(newFakeClock().Now)

	s.RecordCollision("boundary")
	s.RecordCollision("self")

	if got := s.Cause(); got != "boundary" {
		t.Errorf("Cause() = %q, expected %q", got, "boundary")
	}
}

func TestCoachTextLastWriteWins(t *testing.T) {
	s := NewSession(newFakeClock().Now)

	s.SetCoachText("first")
	s.SetCoachText("second")

	if got := s.CoachText(); got != "second" {
		t.Errorf("CoachText() = %q, expected %q", got, "second")
	}
}

func TestObserveLength(t *testing.T) {
	s := NewSession(newFakeClock().Now)

	s.ObserveLength(3)
	s.ObserveLength(2)

	if got := s.MaxLength(); got != 3 {
		t.Errorf("MaxLength() = %d, expected 3", got)
	}
}
