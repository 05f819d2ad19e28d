package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette for the orchard scene.
const (
	ColorDefault Color = iota
	ColorGround        // Ground band below the ground line
	ColorGroundLine
	ColorTrunk
	ColorLeaves
	ColorApple
	ColorAppleShine
	ColorStem
	ColorBasket
	ColorBasketRim
	ColorFox // Basket carrier fur
	ColorFoxFace
	ColorText
	ColorTextDim
	ColorButton
)
