package systems

import (
	"image"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/host"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi/ecs"
)

// Renderer draws part of the world onto a surface. Errors from the surface
// are returned unchanged so the caller can tell draw failures apart.
type Renderer func(ecs *ecs.ECS, s host.Surface) error

// DrawBackground clears the whole surface.
func DrawBackground(ecs *ecs.ECS, s host.Surface) error {
	s.SetDrawColor(cfg.Colors.Background)
	return s.Clear()
}

// DrawDivider draws the dashed centre line: evenly spaced segments, each
// half as long as the gap between segment starts.
func DrawDivider(ecs *ecs.ECS, s host.Surface) error {
	w, h := cfg.C.Width, cfg.C.Height
	m, n := cfg.Divider.Width, cfg.Divider.Segments
	x := (w - m) / 2

	s.SetDrawColor(cfg.Colors.Divider)
	for i := 0; i < n; i++ {
		y := i * h / n
		if err := s.FillRect(image.Rect(x, y, x+m, y+h/(2*n))); err != nil {
			return err
		}
	}
	return nil
}

// DrawPaddles draws both paddles with darker end caps.
func DrawPaddles(ecs *ecs.ECS, s host.Surface) error {
	for _, side := range []cfg.SideID{cfg.SideLeft, cfg.SideRight} {
		paddle := GetPaddle(ecs, side)
		if paddle == nil {
			continue
		}
		if err := drawPaddle(s, paddle); err != nil {
			return err
		}
	}
	return nil
}

func drawPaddle(s host.Surface, p *components.PaddleData) error {
	r := p.Rect()
	capRows := max(1, p.Height/cfg.Paddle.EndCapDivisor)

	s.SetDrawColor(cfg.Colors.Paddle)
	if err := s.FillRect(image.Rect(r.Min.X, r.Min.Y+capRows, r.Max.X, r.Max.Y-capRows)); err != nil {
		return err
	}

	s.SetDrawColor(cfg.Colors.PaddleEnd)
	if err := s.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+capRows)); err != nil {
		return err
	}
	return s.FillRect(image.Rect(r.Min.X, r.Max.Y-capRows, r.Max.X, r.Max.Y))
}

// DrawBall draws the ball as a filled square.
func DrawBall(ecs *ecs.ECS, s host.Surface) error {
	ball := GetBall(ecs)
	if ball == nil {
		return nil
	}
	s.SetDrawColor(cfg.Colors.Ball)
	return s.FillRect(ball.Rect())
}

// DrawScore copies each side's digit glyphs into their rectangles. The
// winner's digits are skipped during the off phase of the win blink.
func DrawScore(ecs *ecs.ECS, s host.Surface) error {
	score := GetScore(ecs)
	if score == nil {
		return nil
	}
	match := GetMatch(ecs)

	for _, side := range []cfg.SideID{cfg.SideLeft, cfg.SideRight} {
		if match != nil && match.DigitsHidden(side) {
			continue
		}
		ss := score.Side(side)
		for i, g := range ss.Glyphs {
			if err := s.Copy(g, ss.Rects[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawDebug outlines every shape in the collision space.
func DrawDebug(ecs *ecs.ECS, s host.Surface) error {
	if !cfg.C.Debug {
		return nil
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := cfg.Colors.DebugOther
		switch {
		case obj.HasTags(tags.ResolvPaddle):
			c = cfg.Colors.DebugPaddle
		case obj.HasTags(tags.ResolvBall):
			c = cfg.Colors.DebugBall
		}
		s.SetDrawColor(c)

		x, y := int(obj.X), int(obj.Y)
		w, h := int(obj.W), int(obj.H)
		for _, edge := range []image.Rectangle{
			image.Rect(x, y, x+w, y+1),     // Top
			image.Rect(x, y+h-1, x+w, y+h), // Bottom
			image.Rect(x, y, x+1, y+h),     // Left
			image.Rect(x+w-1, y, x+w, y+h), // Right
		} {
			if err := s.FillRect(edge); err != nil {
				return err
			}
		}
	}
	return nil
}
