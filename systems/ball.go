package systems

import (
	"image"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PaddleFinder returns the paddle rectangles that may touch r.
type PaddleFinder func(r image.Rectangle) []image.Rectangle

// StepBall advances the ball by one tick on a w x h playfield and returns
// the side that won a point this tick, or SideNone.
//
// The ball bounces off the top and bottom edges. A paddle it overlaps while
// heading into it sends it back faster on both axes (capped at
// cfg.Ball.MaxSpeed so it can never pass through a paddle in one tick) and
// the ball is moved to the paddle's face.
func StepBall(b *components.BallData, near PaddleFinder, w, h int) cfg.SideID {
	d := b.Diameter
	x, y := b.X+b.VX, b.Y+b.VY

	if y < 0 {
		y = -y
		b.VY = -b.VY
	} else if y+d > h {
		y = 2*(h-d) - y
		b.VY = -b.VY
	}
	y = clamp(y, 0, h-d)

	for _, p := range near(image.Rect(x, y, x+d, y+d)) {
		r := image.Rect(x, y, x+d, y+d)
		if !r.Overlaps(p) || !headingInto(r, p, b.VX) {
			continue
		}
		movingLeft := b.VX < 0
		b.VX = scaleSpeed(-b.VX)
		b.VY = scaleSpeed(b.VY)
		if movingLeft {
			x = p.Max.X
		} else {
			x = p.Min.X - d
		}
	}

	b.X, b.Y = x, y

	switch {
	case x < 0:
		return cfg.SideRight
	case x+d > w:
		return cfg.SideLeft
	}
	return cfg.SideNone
}

// headingInto reports whether a ball at r moving horizontally at vx is still
// on the approach side of p's centre. Centres are compared doubled to stay in
// integers.
func headingInto(r, p image.Rectangle, vx int) bool {
	ball := r.Min.X + r.Max.X
	paddle := p.Min.X + p.Max.X
	switch {
	case vx < 0:
		return ball > paddle
	case vx > 0:
		return ball < paddle
	}
	return false
}

// scaleSpeed applies the hit multiplier to one velocity component, keeping
// its sign and a magnitude in [1, MaxSpeed].
func scaleSpeed(v int) int {
	if v == 0 {
		return 0
	}
	sign, mag := 1, v
	if v < 0 {
		sign, mag = -1, -v
	}
	mag = int(float64(mag) * cfg.Ball.Multiplier)
	return sign * clamp(mag, 1, cfg.Ball.MaxSpeed)
}

// Serve puts the ball back in the middle of the screen heading toward side,
// at the slow-start speed and always downward.
func Serve(b *components.BallData, toward cfg.SideID) {
	center(b)
	vx := max(1, int(float64(cfg.Ball.VX)/cfg.Ball.SlowStart))
	vy := max(1, int(float64(cfg.Ball.VY)/cfg.Ball.SlowStart))
	if toward == cfg.SideLeft {
		vx = -vx
	}
	b.VX, b.VY = vx, vy
}

func center(b *components.BallData) {
	b.X = (cfg.C.Width - b.Diameter) / 2
	b.Y = (cfg.C.Height - b.Diameter) / 2
}

// UpdateBall moves the ball one tick and records which side, if any,
// scored. Register it through WhilePlaying.
func UpdateBall(ecs *ecs.ECS) {
	match := GetMatch(ecs)
	if match == nil {
		return
	}
	entry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(entry)
	obj := components.Object.Get(entry)

	// Broad phase through the collision space; StepBall does the exact test.
	near := func(r image.Rectangle) []image.Rectangle {
		obj.Sync(r.Min.X, r.Min.Y)
		check := obj.Check(0, 0, tags.ResolvPaddle)
		if check == nil {
			return nil
		}
		rects := make([]image.Rectangle, 0, len(check.Objects))
		for _, o := range check.Objects {
			if e, ok := o.Data.(*donburi.Entry); ok && e.HasComponent(components.Paddle) {
				rects = append(rects, components.Paddle.Get(e).Rect())
			}
		}
		return rects
	}

	match.Scored = StepBall(ball, near, cfg.C.Width, cfg.C.Height)
	obj.Sync(ball.X, ball.Y)
}

// GetBall returns the ball, or nil if it has not been created.
func GetBall(ecs *ecs.ECS) *components.BallData {
	entry, ok := tags.Ball.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Ball.Get(entry)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
