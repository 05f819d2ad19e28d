package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/applecatch/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "ab", core.ColorApple)
	s.DrawText(2, 0, "cd", core.ColorBasket)
	s.DrawText(0, 1, "ground", core.ColorGround)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("first line %q lost its text", lines[0])
	}
	if !strings.Contains(lines[1], "ground") {
		t.Errorf("second line %q lost its text", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorButton; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
