package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/game"
)

// hudHeight is the number of rows reserved above the playfield.
const hudHeight = 2

// Render draws a snapshot into the screen buffer.
func Render(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	renderHUD(dst, snap)

	requiredW := core.GridWidth + 2
	requiredH := core.GridHeight + hudHeight + 2
	if dst.Width() < requiredW || dst.Height() < requiredH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	offX := (dst.Width()-requiredW)/2 + 1
	offY := hudHeight + 1

	// Playfield border
	dst.DrawBox(offX-1, offY-1, core.GridWidth+2, core.GridHeight+2)

	// Food
	dst.SetCell(offX+snap.Food.X, offY+snap.Food.Y, '*', core.ColorRed)

	// Snake
	for i, seg := range snap.Snake {
		ch := 'o'
		color := core.ColorGreen
		if i == 0 {
			ch = 'O'
			color = core.ColorBrightGreen
		}
		dst.SetCell(offX+seg.X, offY+seg.Y, ch, color)
	}

	if snap.GameOver {
		renderGameOver(dst, snap)
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap game.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	right := fmt.Sprintf("High Score: %d", snap.HighScore)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderGameOver draws a centered overlay box.
func renderGameOver(dst *core.Screen, snap game.Snapshot) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final Score: %d", snap.Score),
	}
	if snap.Score == snap.HighScore && snap.Score > 0 {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines, "Press R to restart")

	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	// Blank the box interior before drawing the outline
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, line := range lines {
		dst.DrawTextCentered(boxY+1+i, line)
	}
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
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
