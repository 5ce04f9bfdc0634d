package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"snakecoach/internal/core"
	"snakecoach/internal/game"
	"snakecoach/internal/storage"
)

// startedMsg signals that session setup (initial food placement plus the
// welcome trigger) has finished and ticking may begin.
type startedMsg struct{}

// GameModel is the Bubble Tea model for one game session. All state
// mutation flows through Update, which is the single serialization domain
// the coordinator requires: key events buffer into the input frame, ticks
// consume it. The in-tick AI round trips run synchronously inside Update,
// so rendering and motion freeze for their duration.
type GameModel struct {
	coord    *game.Coordinator
	screen   *core.Screen
	store    *storage.Store
	cfg      core.RuntimeConfig
	mapper   *KeyMapper
	frame    core.InputFrame
	started  bool
	summary  string
	saved    bool
	quitting bool
}

// NewGameModel creates a model for a fresh session. advisor may be nil
// (no coach); store may be nil (no persistence).
func NewGameModel(cfg core.RuntimeConfig, advisor game.Advisor, store *storage.Store) GameModel {
	return GameModel{
		coord:  game.NewCoordinator(cfg, advisor, nil),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		cfg:    cfg,
		mapper: NewKeyMapper(),
		frame:  core.NewInputFrame(),
	}
}

// Init runs session setup off the input loop. The welcome round trip
// blocks here, before the first tick is ever scheduled.
func (m GameModel) Init() tea.Cmd {
	coord := m.coord
	return func() tea.Msg {
		coord.Start(context.Background())
		return startedMsg{}
	}
}

// Update handles messages and advances the session.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		m.started = true
		return m, tickCmd(m.cfg.TickMS)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey buffers actions for the next tick. The Ended overlay is the
// one place keys act immediately: it waits for an acknowledgment.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.coord.Phase() == game.PhaseEnded {
		if action == core.ActionConfirm || action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.frame.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.started || m.coord.Phase() != game.PhaseRunning {
		return m, nil
	}

	ctx := context.Background()
	res := m.coord.Tick(ctx, m.frame)
	m.frame.Clear()

	if res.ExitRequested {
		m.quitting = true
		return m, tea.Quit
	}

	if res.Ended {
		// One summarize round trip, then halt the tick loop and wait
		// for the player to acknowledge the final record.
		m.summary = m.coord.Finish(ctx)
		if m.store != nil && !m.saved {
			//nolint:errcheck // Best-effort save, the overlay shows regardless
			m.store.SaveSession(m.coord.Record())
			m.saved = true
		}
		return m, nil
	}

	return m, tickCmd(m.cfg.TickMS)
}

// View renders the current snapshot.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	RenderSnapshot(m.screen, m.coord.Snapshot(), m.summary)
	return RenderScreen(m.screen)
}

// Run starts a terminal session with the given configuration.
func Run(cfg core.RuntimeConfig, advisor game.Advisor, store *storage.Store) error {
	p := tea.NewProgram(
		NewGameModel(cfg, advisor, store),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
