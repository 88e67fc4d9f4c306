package components

import (
	"image"

	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi"
)

// PaddleData is one player's bat. X never changes after creation.
type PaddleData struct {
	Side   cfg.SideID
	X, Y   int
	Width  int
	Height int
	Step   int // pixels moved per frame while a key is held
	StartY int // where Reset puts it
}

// Rect returns the paddle's bounding rectangle.
func (p *PaddleData) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// HandleInput moves the paddle one step, clamped to [0, screenH-Height].
// Holding both keys cancels out.
func (p *PaddleData) HandleInput(up, down bool, screenH int) {
	if up && down {
		return
	}
	if up {
		p.Y -= p.Step
		if p.Y < 0 {
			p.Y = 0
		}
	}
	if down {
		p.Y += p.Step
		if limit := screenH - p.Height; p.Y > limit {
			p.Y = limit
		}
	}
}

// Reset returns the paddle to its starting height.
func (p *PaddleData) Reset() {
	p.Y = p.StartY
}

var Paddle = donburi.NewComponentType[PaddleData]()
