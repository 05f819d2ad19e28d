package game

import (
	"github.com/vovakirdan/applecatch/internal/config"
	"github.com/vovakirdan/applecatch/internal/core"
)

// Basket is the player. It slides horizontally at a fixed height and is
// always kept Margin units away from both playfield edges.
type Basket struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Margin        float64

	fieldW float64
}

// NewBasket creates a centered basket.
func NewBasket(cfg config.BasketConfig, fieldWidth float64) Basket {
	b := Basket{
		Y:      cfg.Y,
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
		Margin: cfg.Margin,
		fieldW: fieldWidth,
	}
	b.Center()
	return b
}

// MinX is the leftmost allowed position.
func (b Basket) MinX() float64 {
	return b.Margin
}

// MaxX is the rightmost allowed position.
func (b Basket) MaxX() float64 {
	return b.fieldW - b.Width - b.Margin
}

// Center places the basket in the middle of the playfield.
func (b *Basket) Center() {
	b.X = b.fieldW/2 - b.Width/2
	b.clamp()
}

// Move integrates a direction signal over dt seconds.
// Any positive dir moves right, any negative dir moves left.
func (b *Basket) Move(dir int, dt float64) {
	switch {
	case dir > 0:
		b.X += b.Speed * dt
	case dir < 0:
		b.X -= b.Speed * dt
	}
	b.clamp()
}

// PointAt centers the basket on a playfield x coordinate.
func (b *Basket) PointAt(x float64) {
	b.X = x - b.Width/2
	b.clamp()
}

// Rect returns the basket's collision rectangle.
func (b Basket) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

func (b *Basket) clamp() {
	b.X = core.ClampF(b.X, b.MinX(), b.MaxX())
}
