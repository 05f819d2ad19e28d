package game

import "github.com/vovakirdan/applecatch/internal/core"

// AudioCue plays feedback sounds. Play must not block and must not fail
// loudly: a missing sound never changes the game.
type AudioCue interface {
	Play(cue core.Cue)
}

// Stats is what the HUD shows while playing.
type Stats struct {
	Score int
	Lives int
	Level int
}

// HUD is the overlay surface around the playfield.
type HUD interface {
	ShowStats(s Stats)
	ShowGameOver(finalScore int)
	HideOverlays()
}

type silentAudio struct{}

func (silentAudio) Play(core.Cue) {}

type nopHUD struct{}

func (nopHUD) ShowStats(Stats)  {}
func (nopHUD) ShowGameOver(int) {}
func (nopHUD) HideOverlays()    {}
