package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// BallData is the ball's top-left corner, per-tick velocity and diameter,
// all in screen pixels.
type BallData struct {
	X, Y     int
	VX, VY   int
	Diameter int
}

// Rect returns the ball's bounding square.
func (b *BallData) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Diameter, b.Y+b.Diameter)
}

var Ball = donburi.NewComponentType[BallData]()
