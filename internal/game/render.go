package game

import (
	"math"

	"github.com/vovakirdan/applecatch/internal/config"
	"github.com/vovakirdan/applecatch/internal/core"
)

// Visual characters for rendering
const (
	TrunkChar      = '█'
	LeavesChar     = '▓'
	GroundChar     = '░'
	GroundLineChar = '▀'
	AppleChar      = '●'
	StemChar       = ','
	BasketChar     = '▄'
	FoxFace        = "(^.^)"
)

// Scenery in playfield units.
var (
	trunkRect   = core.NewRectF(90, 140, 24, 90)
	canopyRects = []core.RectF{
		core.NewRectF(50, 60, 120, 80),
		core.NewRectF(40, 100, 140, 60),
	}
	hangingApples = []core.RectF{
		core.Square(70, 90, 12),
		core.Square(120, 75, 12),
	}
)

const groundLineThickness = 4

// viewport maps playfield units onto screen cells.
type viewport struct {
	sx, sy float64 // Cells per playfield unit
}

func newViewport(dst *core.Screen, field config.PlayfieldConfig) viewport {
	return viewport{
		sx: float64(dst.Width()) / field.Width,
		sy: float64(dst.Height()) / field.Height,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return int(math.Floor(y * v.sy)) }

// cells returns the cell rectangle touched by r, never smaller than 1x1.
func (v viewport) cells(r core.RectF) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1 := max(x0+1, int(math.Ceil(r.Right()*v.sx)))
	y1 := max(y0+1, int(math.Ceil(r.Bottom()*v.sy)))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the scene: background, tree, ground line, apples, basket.
// It reads state only and is safe to call in every phase.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(dst, g.cfg.Playfield)

	g.drawBackground(dst, v)
	g.drawTree(dst, v)
	g.drawGroundLine(dst, v)
	for _, a := range g.orchard.Apples() {
		drawApple(dst, v, a.Rect())
	}
	g.drawBasket(dst, v)
}

func (g *Game) drawBackground(dst *core.Screen, v viewport) {
	field := g.cfg.Playfield
	band := core.NewRectF(0, field.GroundY, field.Width, field.Height-field.GroundY)
	dst.DrawRect(v.cells(band), GroundChar, core.ColorGround)
}

func (g *Game) drawTree(dst *core.Screen, v viewport) {
	dst.DrawRect(v.cells(trunkRect), TrunkChar, core.ColorTrunk)
	for _, r := range canopyRects {
		dst.DrawRect(v.cells(r), LeavesChar, core.ColorLeaves)
	}
	for _, r := range hangingApples {
		dst.SetColored(v.col(r.X), v.row(r.Y), AppleChar, core.ColorApple)
	}
}

func (g *Game) drawGroundLine(dst *core.Screen, v viewport) {
	field := g.cfg.Playfield
	y := v.row(field.GroundY - groundLineThickness)
	dst.DrawHLine(0, y, dst.Width(), GroundLineChar, core.ColorGroundLine)
}

func drawApple(dst *core.Screen, v viewport, r core.RectF) {
	c := v.cells(r)
	dst.DrawRect(c, AppleChar, core.ColorApple)
	if c.W > 1 && c.H > 1 {
		dst.SetColored(c.X, c.Y, '◉', core.ColorAppleShine)
	}
	dst.SetColored(c.X+c.W/2, c.Y-1, StemChar, core.ColorStem)
}

// drawBasket puts the basket on the last row the player covers and the
// carrier's face on the row above it.
func (g *Game) drawBasket(dst *core.Screen, v viewport) {
	c := v.cells(g.basket.Rect())
	body := c.Bottom() - 1
	for x := c.X; x < c.Right(); x++ {
		ch, color := BasketChar, core.ColorBasket
		switch x {
		case c.X:
			ch, color = '\\', core.ColorBasketRim
		case c.Right() - 1:
			ch, color = '/', core.ColorBasketRim
		}
		dst.SetColored(x, body, ch, color)
	}

	face := []rune(FoxFace)
	fx := c.X + (c.W-len(face))/2
	for i, r := range face {
		color := core.ColorFoxFace
		if i == 0 || i == len(face)-1 {
			color = core.ColorFox
		}
		dst.SetColored(fx+i, body-1, r, color)
	}
}
