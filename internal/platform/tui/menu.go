package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"snakecoach/internal/core"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// menuKeyMap defines the key bindings for the mode menu.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the help footer.
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// modeItem is one selectable entry of the mode menu.
type modeItem struct {
	mode  core.Mode
	title string
	desc  string
}

// ModeMenuModel lets the player pick the placement mode before a session.
type ModeMenuModel struct {
	items    []modeItem
	cursor   int
	width    int
	height   int
	keys     menuKeyMap
	help     help.Model
	chosen   bool
	quitting bool
}

// NewModeMenuModel creates the mode selection model.
func NewModeMenuModel(width, height int) ModeMenuModel {
	return ModeMenuModel{
		items: []modeItem{
			{mode: core.ModeLocal, title: "Local", desc: "random food placement, offline"},
			{mode: core.ModeAI, title: "AI", desc: "coach suggests food placement, random fallback"},
		},
		width:  width,
		height: height,
		keys:   defaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model.
func (m ModeMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ModeMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m ModeMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n  ")
	sb.WriteString(menuTitleStyle.Render("Snake Coach"))
	sb.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%s — %s", item.title, item.desc)
		if i == m.cursor {
			sb.WriteString("  " + menuSelectedStyle.Render("> "+line))
		} else {
			sb.WriteString("    " + menuDimStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n  ")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

// Choice returns the selected mode; ok is false when the player quit the
// menu instead of choosing.
func (m ModeMenuModel) Choice() (core.Mode, bool) {
	if !m.chosen {
		return "", false
	}
	return m.items[m.cursor].mode, true
}

// RunModeSelector shows the mode menu and returns the selection.
// ok is false when the player quit without choosing.
func RunModeSelector(cfg core.RuntimeConfig) (core.Mode, bool, error) {
	p := tea.NewProgram(NewModeMenuModel(cfg.ScreenW, cfg.ScreenH))
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}
	menu, _ := finalModel.(ModeMenuModel)
	mode, ok := menu.Choice()
	return mode, ok, nil
}
