package components

import (
	"fmt"
	"image"
	"strconv"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/host"
	"github.com/yohamta/donburi"
)

// GlyphSource looks up the texture for a digit character.
type GlyphSource interface {
	Lookup(r rune) (host.Texture, error)
}

// SideScore is one side's total and what is needed to draw it. Glyphs and
// Rects are parallel and in reading order: index 0 is the most significant
// digit and the leftmost rectangle.
type SideScore struct {
	Points int
	Glyphs []host.Texture
	Rects  []image.Rectangle
}

// ScoreData holds both totals and their digit layout. Glyph textures are
// borrowed from the cache; the score never modifies or releases them.
type ScoreData struct {
	Sides  [2]SideScore
	Source GlyphSource
}

var Score = donburi.NewComponentType[ScoreData]()

// Reset sets both totals to zero.
func (s *ScoreData) Reset() error {
	for _, side := range []cfg.SideID{cfg.SideLeft, cfg.SideRight} {
		s.Sides[side].Points = 0
		if err := s.rebuild(side); err != nil {
			return err
		}
	}
	return nil
}

// Increment adds a point to side.
func (s *ScoreData) Increment(side cfg.SideID) error {
	s.Sides[side].Points++
	return s.rebuild(side)
}

func (s *ScoreData) Left() int  { return s.Sides[cfg.SideLeft].Points }
func (s *ScoreData) Right() int { return s.Sides[cfg.SideRight].Points }

// Points returns side's total.
func (s *ScoreData) Points(side cfg.SideID) int {
	return s.Sides[side].Points
}

// Side returns side's score and layout.
func (s *ScoreData) Side(side cfg.SideID) *SideScore {
	return &s.Sides[side]
}

// rebuild re-derives side's glyphs and rectangles from its total.
func (s *ScoreData) rebuild(side cfg.SideID) error {
	ss := &s.Sides[side]
	digits := strconv.Itoa(ss.Points)

	glyphs := ss.Glyphs[:0]
	for _, r := range digits {
		t, err := s.Source.Lookup(r)
		if err != nil {
			return fmt.Errorf("%s score %d: %w", side, ss.Points, err)
		}
		glyphs = append(glyphs, t)
	}
	ss.Glyphs = glyphs
	ss.Rects = DigitRects(side, len(digits), ss.Rects[:0])
	return nil
}

// DigitRects lays out n digit rectangles for side in reading order,
// appending to dst. Rectangle positions depend only on their distance from
// the divider, so existing rectangles stay put as a total gains digits and
// new ones are added on the outside.
func DigitRects(side cfg.SideID, n int, dst []image.Rectangle) []image.Rectangle {
	for i := 0; i < n; i++ {
		outward := i
		if side == cfg.SideLeft {
			outward = n - 1 - i
		}
		dst = append(dst, digitRect(side, outward))
	}
	return dst
}

// digitRect is the rectangle i places away from the divider on side.
func digitRect(side cfg.SideID, i int) image.Rectangle {
	dc := cfg.Display.Coefficient
	step := dc * (cfg.Display.GlyphCols + cfg.Display.Spacing)
	w, h := dc*cfg.Display.GlyphCols, dc*cfg.Display.GlyphRows

	var x int
	switch side {
	case cfg.SideLeft:
		x = (cfg.C.Width-cfg.Divider.Width)/2 - step*(i+1)
	default:
		x = (cfg.C.Width+cfg.Divider.Width)/2 + dc*cfg.Display.Spacing + step*i
	}
	return image.Rect(x, dc, x+w, dc+h)
}
