package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seed-of-life/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorStar:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorSun:     lipgloss.NewStyle().Foreground(lipgloss.Color("95")),
	core.ColorSunCore: lipgloss.NewStyle().Foreground(lipgloss.Color("138")),
	core.ColorRock:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSeed:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorTrail:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGrass:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorOcean:   lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	core.ColorLake:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorVine:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorLeaf:    lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	core.ColorWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorWin:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorLose:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorHUD:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
