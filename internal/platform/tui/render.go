package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snakecoach/internal/core"
	"snakecoach/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// hudHeight is the number of rows above the board.
const hudHeight = 2

// RenderSnapshot draws a game snapshot into the screen buffer: HUD, the
// walled board with snake and food, the persistent coach line, and any
// pause or end-of-session overlay.
func RenderSnapshot(dst *core.Screen, snap game.Snapshot, summary string) {
	dst.Clear()

	drawHUD(dst, snap)

	offX := (dst.Width() - snap.BoardW) / 2
	offY := hudHeight
	if offX < 0 {
		offX = 0
	}

	// Walls occupy the board's outer ring.
	dst.DrawBorder(offX, offY, snap.BoardW, snap.BoardH)

	// Food
	dst.SetColored(offX+snap.Food.X, offY+snap.Food.Y, '*', core.ColorRed)

	// Snake, head first
	for i, seg := range snap.Body {
		r := 'o'
		if i == 0 {
			r = 'O'
		}
		dst.SetColored(offX+seg.X, offY+seg.Y, r, core.ColorGreen)
	}

	drawCoachLine(dst, snap, offY+snap.BoardH+1)

	switch {
	case snap.Phase == game.PhaseEnded:
		drawEndOverlay(dst, snap, summary)
	case snap.Paused:
		drawOverlay(dst, []string{"Paused", "Press P to continue"})
	}
}

// drawHUD draws the top status bar and separator.
func drawHUD(dst *core.Screen, snap game.Snapshot) {
	hud := fmt.Sprintf(" Snake Coach [%s] — Score: %d  Time: %ds  Max length: %d",
		snap.Mode, snap.Score, snap.SurvivalSecs, snap.MaxLength)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// drawCoachLine draws the persistent coach text below the board.
func drawCoachLine(dst *core.Screen, snap game.Snapshot, y int) {
	if snap.CoachText == "" {
		return
	}
	dst.DrawTextColored(2, y, "教练: "+snap.CoachText, core.ColorCyan)
}

// drawEndOverlay shows the final record plus the coach summary (or its
// failure line) and waits for acknowledgment.
func drawEndOverlay(dst *core.Screen, snap game.Snapshot, summary string) {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Cause: %s", snap.Cause),
		fmt.Sprintf("Score: %d   Time: %ds   Max length: %d", snap.Score, snap.SurvivalSecs, snap.MaxLength),
	}
	if summary != "" {
		lines = append(lines, "")
		lines = append(lines, wrapRunes(summary, core.Min(dst.Width()-8, 56))...)
	}
	lines = append(lines, "", "Press Enter to exit")
	drawOverlay(dst, lines)
}

// drawOverlay draws a centered bordered box containing the given lines.
func drawOverlay(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	if boxX < 0 {
		boxX = 0
	}
	if boxY < 0 {
		boxY = 0
	}

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		dst.DrawHLine(boxX+1, y, boxW-2, ' ')
	}
	dst.DrawBorder(boxX, boxY, boxW, boxH)

	for i, line := range lines {
		x := boxX + (boxW-len([]rune(line)))/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// wrapRunes hard-wraps text into lines of at most width runes.
func wrapRunes(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		runes := []rune(strings.TrimSpace(raw))
		if len(runes) == 0 {
			continue
		}
		for len(runes) > width {
			out = append(out, string(runes[:width]))
			runes = runes[width:]
		}
		out = append(out, string(runes))
	}
	return out
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
