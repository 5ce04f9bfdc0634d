package game

import "time"

// Session tracks the bookkeeping of a single play-through: score, the
// pause-aware survival clock, the length high-water mark, the cause of
// death and the last piece of coach text shown to the player.
type Session struct {
	now func() time.Time

	score       int
	maxLength   int
	startedAt   time.Time
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration
	cause       string
	coachText   string
}

// NewSession starts a new session clock. The now function is injectable
// for tests; pass nil to use time.Now.
func NewSession(now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		now:       now,
		startedAt: now(),
		maxLength: 1,
	}
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// AddScore increments the score by one.
func (s *Session) AddScore() {
	s.score++
}

// MaxLength returns the longest body length seen so far.
func (s *Session) MaxLength() int {
	return s.maxLength
}

// ObserveLength updates the length high-water mark.
func (s *Session) ObserveLength(n int) {
	if n > s.maxLength {
		s.maxLength = n
	}
}

// Paused reports whether the session is currently paused.
func (s *Session) Paused() bool {
	return s.paused
}

// TogglePause flips the pause flag. Time spent paused is excluded from
// the survival clock.
func (s *Session) TogglePause() {
	if s.paused {
		s.pausedTotal += s.now().Sub(s.pausedAt)
		s.paused = false
		return
	}
	s.pausedAt = s.now()
	s.paused = true
}

// SurvivalSeconds returns whole seconds survived, excluding paused time.
// The clock is frozen while paused.
func (s *Session) SurvivalSeconds() int {
	elapsed := s.now().Sub(s.startedAt) - s.pausedTotal
	if s.paused {
		elapsed -= s.now().Sub(s.pausedAt)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return int(elapsed.Seconds())
}

// RecordCollision stores the cause of death. The first call wins; later
// calls are ignored.
func (s *Session) RecordCollision(cause string) {
	if s.cause != "" {
		return
	}
	s.cause = cause
}

// Cause returns the recorded end cause, or "" while the session is live.
func (s *Session) Cause() string {
	return s.cause
}

// CoachText returns the last coach line shown to the player.
func (s *Session) CoachText() string {
	return s.coachText
}

// SetCoachText overwrites the persistent coach line. Last write wins,
// there is no history.
func (s *Session) SetCoachText(text string) {
	s.coachText = text
}
