package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snakecoach/internal/storage"
)

// maxScoreRows caps how many sessions the scoreboard loads.
const maxScoreRows = 50

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "best/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the session history screen.
type ScoreboardModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	showBest bool
	loadErr  error
	quitting bool
}

// NewScoreboardModel creates a scoreboard showing best sessions first.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Mode", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Max len", Width: 8},
		{Title: "Cause", Width: 12},
		{Title: "When", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(minInt(height-6, maxScoreRows)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("2")).Bold(true)
	t.SetStyles(styles)

	m := ScoreboardModel{
		store:    store,
		table:    t,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
		showBest: true,
	}
	m.reload()
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// reload refreshes the table rows from storage.
func (m *ScoreboardModel) reload() {
	var (
		entries []storage.SessionEntry
		err     error
	)
	if m.showBest {
		entries, err = m.store.BestSessions(maxScoreRows)
	} else {
		entries, err = m.store.RecentSessions(maxScoreRows)
	}
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			e.Mode,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%ds", e.SurvivalSecs),
			fmt.Sprintf("%d", e.MaxLength),
			e.Cause,
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Init initializes the model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.showBest = !m.showBest
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(minInt(msg.Height-6, maxScoreRows))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	title := "Best sessions"
	if !m.showBest {
		title = "Recent sessions"
	}
	if m.loadErr != nil {
		return fmt.Sprintf("\n  %s\n\n  could not load sessions: %v\n", menuTitleStyle.Render(title), m.loadErr)
	}
	return "\n  " + menuTitleStyle.Render(title) + "\n\n" + m.table.View() + "\n\n  " + m.help.View(m.keys) + "\n"
}

// RunScoreboard shows the session history until the player quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(store, width, height))
	_, err := p.Run()
	return err
}
