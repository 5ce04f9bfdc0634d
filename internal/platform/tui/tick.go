// Package tui provides the Bubble Tea integration for snakecoach.
// It handles the terminal UI loop, input mapping and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message
// after the configured period.
func tickCmd(tickMS int) tea.Cmd {
	if tickMS <= 0 {
		tickMS = 150
	}
	return tea.Tick(time.Duration(tickMS)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
