// Package soft is a software raster host backed by image.RGBA. It is used by
// the terminal host as its framebuffer and by tests that need to look at the
// pixels a frame produced.
package soft

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/pong/host"
	"golang.org/x/image/draw"
)

// Surface is a software render target. It satisfies host.Target, so it can be
// drawn into and then copied onto another Surface.
type Surface struct {
	img      *image.RGBA
	color    color.RGBA
	disposed bool
}

// New allocates a w by h surface cleared to transparent black.
func New(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Graphics hands out software targets.
type Graphics struct{}

// NewTarget implements host.Graphics.
func (Graphics) NewTarget(w, h int) (host.Target, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: target size %dx%d", host.ErrHostInit, w, h)
	}
	return New(w, h), nil
}

// Image exposes the backing pixels.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// At returns the pixel at (x, y).
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

func (s *Surface) SetDrawColor(c color.RGBA) {
	s.color = c
}

func (s *Surface) Clear() error {
	if s.disposed {
		return fmt.Errorf("%w: clear on disposed surface", host.ErrDrawFailure)
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.color), image.Point{}, draw.Src)
	return nil
}

func (s *Surface) FillRect(r image.Rectangle) error {
	if s.disposed {
		return fmt.Errorf("%w: fill on disposed surface", host.ErrDrawFailure)
	}
	draw.Draw(s.img, r.Intersect(s.img.Bounds()), image.NewUniform(s.color), image.Point{}, draw.Src)
	return nil
}

// Copy scales t into dst with nearest-neighbour sampling.
func (s *Surface) Copy(t host.Texture, dst image.Rectangle) error {
	src, ok := t.(*Surface)
	if !ok {
		return fmt.Errorf("%w: foreign texture %T", host.ErrDrawFailure, t)
	}
	if s.disposed || src.disposed {
		return fmt.Errorf("%w: copy with disposed texture", host.ErrDrawFailure)
	}
	if dst.Empty() {
		return nil
	}

	draw.NearestNeighbor.Scale(s.img, dst, src.img, src.img.Bounds(), draw.Src, nil)
	return nil
}

func (s *Surface) Size() image.Point {
	return s.img.Bounds().Size()
}

func (s *Surface) Dispose() {
	s.disposed = true
}

// Disposed reports whether Dispose has been called.
func (s *Surface) Disposed() bool {
	return s.disposed
}
