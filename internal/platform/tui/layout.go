package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal layout, top to bottom: status bar, playfield, button row.
const (
	statusRows  = 1
	buttonRows  = 1
	buttonWidth = 9
)

type hitArea int

const (
	hitNone hitArea = iota
	hitField
	hitLeftButton
	hitRightButton
)

// layout maps terminal cells to regions of the play screen.
type layout struct {
	width, height int
}

// fieldRows is the playfield height in cells, at least one.
func (l layout) fieldRows() int {
	return max(1, l.height-statusRows-buttonRows)
}

// buttonRow is the terminal row holding the on-screen buttons.
func (l layout) buttonRow() int {
	return statusRows + l.fieldRows()
}

// hit reports which region a terminal cell belongs to.
func (l layout) hit(x, y int) hitArea {
	if x < 0 || x >= l.width || y < 0 {
		return hitNone
	}
	switch {
	case y >= statusRows && y < statusRows+l.fieldRows():
		return hitField
	case y == l.buttonRow() && x < buttonWidth:
		return hitLeftButton
	case y == l.buttonRow() && x >= l.width-buttonWidth:
		return hitRightButton
	}
	return hitNone
}

// fieldX maps a terminal column to the center of that column in
// playfield units.
func (l layout) fieldX(col int, fieldWidth float64) float64 {
	if l.width <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * fieldWidth / float64(l.width)
}

var (
	buttonStyle = lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	buttonHeldStyle = buttonStyle.
			Background(lipgloss.Color("99")).
			Bold(true)
)

// buttonBar renders the left and right buttons with help text between them.
func (l layout) buttonBar(leftHeld, rightHeld bool, helpView string) string {
	left, right := buttonStyle, buttonStyle
	if leftHeld {
		left = buttonHeldStyle
	}
	if rightHeld {
		right = buttonHeldStyle
	}

	mid := max(0, l.width-2*buttonWidth)
	center := lipgloss.PlaceHorizontal(mid, lipgloss.Center, lipgloss.NewStyle().MaxWidth(mid).Render(helpView))
	return lipgloss.JoinHorizontal(lipgloss.Top, left.Render("◀"), center, right.Render("▶"))
}
