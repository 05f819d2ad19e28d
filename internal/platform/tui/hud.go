package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/applecatch/internal/core"
	"github.com/vovakirdan/applecatch/internal/game"
)

type overlay int

const (
	overlayStart overlay = iota
	overlayGameOver
	overlayNone
)

// hud is the terminal overlay surface. The game pushes stats and
// game-over notices into it; the model draws it around the scene.
type hud struct {
	stats      game.Stats
	maxLives   int
	overlay    overlay
	finalScore int
	best       int
	newBest    bool
}

func newHUD(maxLives, best int) *hud {
	return &hud{
		maxLives: maxLives,
		overlay:  overlayStart,
		best:     best,
		stats:    game.Stats{Lives: maxLives, Level: 1},
	}
}

// ShowStats implements game.HUD.
func (h *hud) ShowStats(s game.Stats) {
	h.stats = s
}

// ShowGameOver implements game.HUD.
func (h *hud) ShowGameOver(finalScore int) {
	h.overlay = overlayGameOver
	h.finalScore = finalScore
	h.newBest = finalScore > h.best
	if h.newBest {
		h.best = finalScore
	}
}

// HideOverlays implements game.HUD.
func (h *hud) HideOverlays() {
	h.overlay = overlayNone
	h.newBest = false
}

var (
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	heartStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	statusBarStyle = lipgloss.NewStyle().Padding(0, 1)
)

// StatusLine renders the score, lives and level bar above the playfield.
func (h *hud) StatusLine(width int, muted bool) string {
	lives := strings.Repeat("♥", h.stats.Lives) + strings.Repeat("♡", max(0, h.maxLives-h.stats.Lives))
	sound := "♪ on"
	if muted {
		sound = "♪ off"
	}

	parts := []string{
		statLabelStyle.Render("Score ") + statValueStyle.Render(fmt.Sprintf("%d", h.stats.Score)),
		statLabelStyle.Render("Lives ") + heartStyle.Render(lives),
		statLabelStyle.Render("Level ") + statValueStyle.Render(fmt.Sprintf("%d", h.stats.Level)),
		statLabelStyle.Render("Best ") + statValueStyle.Render(fmt.Sprintf("%d", h.best)),
		statLabelStyle.Render(sound),
	}
	line := strings.Join(parts, "   ")
	return statusBarStyle.Width(max(0, width)).MaxWidth(max(0, width)).Render(line)
}

// Draw paints the active overlay box onto the playfield.
func (h *hud) Draw(dst *core.Screen) {
	var lines []string
	switch h.overlay {
	case overlayStart:
		lines = []string{
			"APPLE CATCH",
			"Catch the apples before they hit the ground",
			"",
			"enter: start   tab: scores   q: quit",
		}
	case overlayGameOver:
		score := fmt.Sprintf("Final score: %d", h.finalScore)
		if h.newBest {
			score += "  New best!"
		}
		lines = []string{
			"GAME OVER",
			score,
			"",
			"enter: restart   tab: scores   q: quit",
		}
	default:
		return
	}
	drawMessageBox(dst, lines)
}

// drawMessageBox draws a centered box; the first line is the title.
func drawMessageBox(dst *core.Screen, lines []string) {
	textW := 0
	for _, l := range lines {
		textW = max(textW, len([]rune(l)))
	}
	boxW := min(textW+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorButton)

	for i, l := range lines {
		color := core.ColorTextDim
		if i == 0 {
			color = core.ColorText
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(max(boxX+1, x), boxY+1+i, l, color)
	}
}
