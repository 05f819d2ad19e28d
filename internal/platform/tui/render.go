package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/applecatch/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorGround:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorGroundLine: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorTrunk:      lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorLeaves:     lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
	core.ColorApple:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorAppleShine: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorStem:       lipgloss.NewStyle().Foreground(lipgloss.Color("52")),
	core.ColorBasket:     lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
	core.ColorBasketRim:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorFox:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorFoxFace:    lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorTextDim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorButton:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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
