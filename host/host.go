// Package host defines what the game needs from the platform that owns the
// window, the pixels and the keyboard. The simulation never talks to a
// graphics library directly; it draws through a Surface and reads an Input
// snapshot once per frame.
package host

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrHostInit is returned when the host refuses to create a window,
	// surface or render target.
	ErrHostInit = errors.New("host initialisation failed")

	// ErrDrawFailure is returned when the host rejects a draw or copy.
	ErrDrawFailure = errors.New("draw failed")
)

// Texture is a read-only bitmap that can be copied onto a Surface.
type Texture interface {
	Size() image.Point
	Dispose()
}

// Surface is something that can be drawn on. Operations use the color set
// by the most recent SetDrawColor.
type Surface interface {
	SetDrawColor(c color.RGBA)
	Clear() error
	FillRect(r image.Rectangle) error
	Copy(t Texture, dst image.Rectangle) error
}

// Target is an off-screen render target. It is drawn into once and then used
// as a Texture.
type Target interface {
	Surface
	Texture
}

// Graphics allocates render targets.
type Graphics interface {
	NewTarget(w, h int) (Target, error)
}

// KeySet is the set of keys held down when the host was polled.
type KeySet map[ebiten.Key]bool

// Input is one non-blocking poll of the host.
type Input struct {
	Quit bool // window closed or the host was told to stop
	Held KeySet
}

// Poller is implemented by hosts that can be asked for input.
type Poller interface {
	Poll() Input
}

// Keys is a convenience for building a KeySet.
func Keys(keys ...ebiten.Key) KeySet {
	ks := make(KeySet, len(keys))
	for _, k := range keys {
		ks[k] = true
	}
	return ks
}

// Game is driven by a host: one Update and then one Draw per frame. An
// error from either stops the host, which returns it.
type Game interface {
	Update(in Input) error
	Draw(s Surface) error
}
