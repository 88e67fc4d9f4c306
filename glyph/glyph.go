// Package glyph builds the score digits. Each digit is a 5x7 bitmap packed
// into the low 35 bits of a word: bit k lights pixel (k%5, k/5), so bit 0 is
// the top-left pixel and rows run left to right, top to bottom.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/pong/host"
)

const (
	Cols = 5
	Rows = 7
)

// ErrGlyphMissing is returned when a character has no cached glyph.
var ErrGlyphMissing = errors.New("glyph missing")

// Mask pairs a character with its bitmap.
type Mask struct {
	Char rune
	Bits uint64
}

// Masks is the digit table, in the order glyphs are built.
var Masks = [...]Mask{
	{'0', 0b01110_10001_10011_10101_11001_10001_01110},
	{'1', 0b01110_00100_00100_00100_00100_00110_00100},
	{'2', 0b11111_00001_00010_01100_10000_10001_01110},
	{'3', 0b01110_10001_10000_01100_10000_10001_01110},
	{'4', 0b01000_01000_11111_01001_01010_01100_01000},
	{'5', 0b01110_10001_10000_10000_01111_00001_11111},
	{'6', 0b01110_10001_10001_01111_00001_10001_01110},
	{'7', 0b00001_00001_00010_00100_01000_10000_11111},
	{'8', 0b01110_10001_10001_01110_10001_10001_01110},
	{'9', 0b01110_10001_10000_01111_10001_10001_01110},
}

// Lit reports whether pixel (col, row) of a mask is foreground.
func Lit(bits uint64, col, row int) bool {
	return bits>>(uint(row*Cols+col))&1 == 1
}

// Cache holds one pre-rendered texture per digit. Textures are never
// modified after New returns and may be shared by any number of readers.
type Cache struct {
	textures map[rune]host.Texture
}

// New renders every mask in Masks into its own render target.
func New(gfx host.Graphics, bg, fg color.RGBA) (*Cache, error) {
	c := &Cache{textures: make(map[rune]host.Texture, len(Masks))}
	for _, m := range Masks {
		t, err := render(gfx, m.Bits, bg, fg)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("glyph %q: %w", m.Char, err)
		}
		c.textures[m.Char] = t
	}
	return c, nil
}

func render(gfx host.Graphics, bits uint64, bg, fg color.RGBA) (host.Texture, error) {
	target, err := gfx.NewTarget(Cols, Rows)
	if err != nil {
		return nil, err
	}

	target.SetDrawColor(bg)
	if err := target.Clear(); err != nil {
		target.Dispose()
		return nil, err
	}

	target.SetDrawColor(fg)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if !Lit(bits, col, row) {
				continue
			}
			if err := target.FillRect(image.Rect(col, row, col+1, row+1)); err != nil {
				target.Dispose()
				return nil, err
			}
		}
	}
	return target, nil
}

// Lookup returns the texture for c.
func (c *Cache) Lookup(r rune) (host.Texture, error) {
	t, ok := c.textures[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGlyphMissing, r)
	}
	return t, nil
}

// Len is the number of cached glyphs.
func (c *Cache) Len() int {
	return len(c.textures)
}

// Close releases every texture. The cache is empty afterwards.
func (c *Cache) Close() {
	for r, t := range c.textures {
		t.Dispose()
		delete(c.textures, r)
	}
}
