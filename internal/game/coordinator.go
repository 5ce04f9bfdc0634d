package game

import (
	"context"
	"math/rand"
	"time"

	"snakecoach/internal/core"
)

// Advisor is the coordinator's view of the AI coach. Implementations must
// never block forever (the transport owns the timeout) and must degrade
// internally: Welcome and Encourage always return a usable sentence,
// SuggestPlacement returns ok=false when it has nothing trustworthy, and
// only Summarize surfaces an error to the caller.
type Advisor interface {
	Welcome(ctx context.Context, mode core.Mode) string
	Encourage(ctx context.Context, score, survivalSecs int, head core.Position) string
	SuggestPlacement(ctx context.Context, body []core.Position, width, height int) (core.Position, bool)
	Summarize(ctx context.Context, rec Record) (string, error)
}

// Record is the final outcome of a session, fed to Summarize and to the
// score store.
type Record struct {
	Mode         core.Mode
	Score        int
	SurvivalSecs int
	MaxLength    int
	Cause        string
}

// Phase is the coordinator's lifecycle state. Pausing is a session flag,
// not a phase: a paused session is still Running.
type Phase int

const (
	PhaseStarting Phase = iota
	PhaseRunning
	PhaseEnded
)

// Cause strings recorded at termination.
const (
	CauseBoundary  = "boundary"
	CauseSelf      = "self"
	CauseBoardFull = "board full"
)

// TickResult reports what happened during one tick.
type TickResult struct {
	Consumed      bool // the snake ate the food this tick
	Ended         bool // the session transitioned to PhaseEnded this tick
	ExitRequested bool // the player asked to leave; summary is skipped
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Body         []core.Position
	Food         core.Position
	BoardW       int
	BoardH       int
	Score        int
	SurvivalSecs int
	MaxLength    int
	CoachText    string
	Paused       bool
	Phase        Phase
	Cause        string
	Mode         core.Mode
}

// Coordinator owns the authoritative game state and drives it one tick at
// a time. It is not safe for concurrent use; the platform must serialize
// all calls (the Bubble Tea update loop does exactly that).
type Coordinator struct {
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	advisor Advisor

	snake   *Snake
	session *Session
	food    core.Position

	phase      Phase
	exited     bool
	summarized bool
	summary    string

	now func() time.Time
}

// NewCoordinator creates a coordinator in the Starting phase. The advisor
// may be nil, in which case all trigger points are skipped and placement
// is always local. The now function is injectable for tests.
func NewCoordinator(cfg core.RuntimeConfig, advisor Advisor, now func() time.Time) *Coordinator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	spawn := core.Position{X: cfg.BoardW / 4, Y: cfg.BoardH / 2}
	return &Coordinator{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		advisor: advisor,
		snake:   NewSnake(spawn, core.DirRight),
		phase:   PhaseStarting,
		now:     now,
	}
}

// Start performs session setup: initial food placement and the welcome
// trigger. It blocks for the duration of the welcome round trip, which is
// fine because ticking has not begun yet. After Start the coordinator is
// Running and the survival clock is live.
func (c *Coordinator) Start(ctx context.Context) {
	if c.phase != PhaseStarting {
		return
	}
	c.placeFood(ctx)
	c.session = NewSession(c.now)
	if c.advisor != nil {
		c.session.SetCoachText(c.advisor.Welcome(ctx, c.cfg.Mode))
	}
	c.phase = PhaseRunning
}

// Tick advances the simulation by one step. Input observed since the last
// tick is applied first: an exit request short-circuits the tick, a pause
// toggle flips the clock, and the latest direction key becomes the new
// heading. The OnConsume trigger is awaited synchronously, so motion
// deliberately freezes while that round trip is outstanding.
func (c *Coordinator) Tick(ctx context.Context, frame core.InputFrame) TickResult {
	var res TickResult
	if c.phase != PhaseRunning {
		return res
	}

	if frame.Has(core.ActionQuit) {
		c.exited = true
		c.phase = PhaseEnded
		res.ExitRequested = true
		return res
	}

	if frame.Has(core.ActionPause) {
		c.session.TogglePause()
	}
	if d, ok := directionFor(frame.LastDirection()); ok {
		c.snake.SetHeading(d)
	}

	if c.session.Paused() {
		return res
	}

	c.snake.Advance()
	c.session.ObserveLength(c.snake.Len())

	if c.snake.Head() == c.food {
		c.session.AddScore()
		c.snake.RequestGrowth()
		res.Consumed = true
		if c.advisor != nil {
			c.session.SetCoachText(c.advisor.Encourage(ctx, c.session.Score(), c.session.SurvivalSeconds(), c.snake.Head()))
		}
	}

	if !c.snake.Head().InBounds(c.cfg.BoardW, c.cfg.BoardH) {
		c.session.RecordCollision(CauseBoundary)
		c.phase = PhaseEnded
		res.Ended = true
		return res
	}
	if c.snake.HitsSelf() {
		c.session.RecordCollision(CauseSelf)
		c.phase = PhaseEnded
		res.Ended = true
		return res
	}

	if res.Consumed {
		if !c.placeFood(ctx) {
			// The snake fills the interior: nowhere left to place
			// food, so the session ends here instead of spinning.
			c.session.RecordCollision(CauseBoardFull)
			c.phase = PhaseEnded
			res.Ended = true
		}
	}

	return res
}

// placeFood installs a new food item. In AI mode the advisor's suggestion
// is used when it passes validation; anything else falls back to a random
// free cell. Returns false only when the board has no free cell at all.
func (c *Coordinator) placeFood(ctx context.Context) bool {
	if c.cfg.Mode == core.ModeAI && c.advisor != nil {
		if p, ok := c.advisor.SuggestPlacement(ctx, c.snake.Body(), c.cfg.BoardW, c.cfg.BoardH); ok {
			if ValidPlacement(p, c.cfg.BoardW, c.cfg.BoardH, c.snake) {
				c.food = p
				return true
			}
		}
	}
	p, ok := RandomPlacement(c.rng, c.cfg.BoardW, c.cfg.BoardH, c.snake)
	if !ok {
		return false
	}
	c.food = p
	return true
}

// Finish performs the one summarize trigger of an ended session and
// returns the coach's recap, or a visible failure line when the round
// trip failed. An explicit player exit skips the summary entirely.
// Subsequent calls return the cached result.
func (c *Coordinator) Finish(ctx context.Context) string {
	if c.phase != PhaseEnded || c.exited {
		return ""
	}
	if c.summarized {
		return c.summary
	}
	c.summarized = true
	if c.advisor == nil {
		return ""
	}
	text, err := c.advisor.Summarize(ctx, c.Record())
	if err != nil {
		c.summary = "教练总结生成失败：" + err.Error()
	} else {
		c.summary = text
	}
	return c.summary
}

// Record returns the session outcome in storable form.
func (c *Coordinator) Record() Record {
	return Record{
		Mode:         c.cfg.Mode,
		Score:        c.session.Score(),
		SurvivalSecs: c.session.SurvivalSeconds(),
		MaxLength:    c.session.MaxLength(),
		Cause:        c.session.Cause(),
	}
}

// Phase returns the current lifecycle phase.
func (c *Coordinator) Phase() Phase {
	return c.phase
}

// Exited reports whether the session ended through an explicit player
// exit rather than a collision.
func (c *Coordinator) Exited() bool {
	return c.exited
}

// Snapshot returns a read-only copy of the current state for rendering.
func (c *Coordinator) Snapshot() Snapshot {
	snap := Snapshot{
		Body:   c.snake.Body(),
		Food:   c.food,
		BoardW: c.cfg.BoardW,
		BoardH: c.cfg.BoardH,
		Phase:  c.phase,
		Mode:   c.cfg.Mode,
	}
	if c.session != nil {
		snap.Score = c.session.Score()
		snap.SurvivalSecs = c.session.SurvivalSeconds()
		snap.MaxLength = c.session.MaxLength()
		snap.CoachText = c.session.CoachText()
		snap.Paused = c.session.Paused()
		snap.Cause = c.session.Cause()
	}
	return snap
}

// directionFor maps a directional action to a heading.
func directionFor(a core.Action) (core.Direction, bool) {
	switch a {
	case core.ActionUp:
		return core.DirUp, true
	case core.ActionDown:
		return core.DirDown, true
	case core.ActionLeft:
		return core.DirLeft, true
	case core.ActionRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}
