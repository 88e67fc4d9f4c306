package ebitenhost

import (
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/pong/host"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas adapts an *ebiten.Image to host.Surface and host.Target.
type Canvas struct {
	img      *ebiten.Image
	color    color.RGBA
	op       ebiten.DrawImageOptions
	disposed bool
}

// Wrap returns a Canvas drawing onto img.
func Wrap(img *ebiten.Image) *Canvas {
	return &Canvas{img: img}
}

// Graphics allocates off-screen ebiten images.
type Graphics struct{}

// NewTarget implements host.Graphics.
func (Graphics) NewTarget(w, h int) (host.Target, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: target size %dx%d", host.ErrHostInit, w, h)
	}
	return Wrap(ebiten.NewImage(w, h)), nil
}

func (c *Canvas) SetDrawColor(clr color.RGBA) {
	c.color = clr
}

func (c *Canvas) Clear() error {
	if c.disposed {
		return fmt.Errorf("%w: clear on disposed image", host.ErrDrawFailure)
	}
	c.img.Fill(c.color)
	return nil
}

func (c *Canvas) FillRect(r image.Rectangle) error {
	if c.disposed {
		return fmt.Errorf("%w: fill on disposed image", host.ErrDrawFailure)
	}
	if r.Empty() {
		return nil
	}
	vector.FillRect(c.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c.color, false)
	return nil
}

// Copy stretches t over dst without smoothing.
func (c *Canvas) Copy(t host.Texture, dst image.Rectangle) error {
	src, ok := t.(*Canvas)
	if !ok {
		return fmt.Errorf("%w: foreign texture %T", host.ErrDrawFailure, t)
	}
	if c.disposed || src.disposed {
		return fmt.Errorf("%w: copy with disposed image", host.ErrDrawFailure)
	}
	if dst.Empty() {
		return nil
	}

	size := src.Size()
	c.op.GeoM.Reset()
	c.op.GeoM.Scale(float64(dst.Dx())/float64(size.X), float64(dst.Dy())/float64(size.Y))
	c.op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	c.op.Filter = ebiten.FilterNearest
	c.img.DrawImage(src.img, &c.op)
	return nil
}

func (c *Canvas) Size() image.Point {
	return c.img.Bounds().Size()
}

// Dispose frees the image's GPU memory. Later draws fail.
func (c *Canvas) Dispose() {
	if c.disposed {
		return
	}
	c.img.Deallocate()
	c.disposed = true
}
