package soft

import (
	"image"
	"image/color"
	"testing"

	"github.com/automoto/pong/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestNewTargetRejectsEmpty(t *testing.T) {
	_, err := Graphics{}.NewTarget(0, 7)
	assert.ErrorIs(t, err, host.ErrHostInit)
}

func TestClearAndFill(t *testing.T) {
	s := New(10, 10)
	s.SetDrawColor(black)
	require.NoError(t, s.Clear())
	s.SetDrawColor(red)
	require.NoError(t, s.FillRect(image.Rect(2, 3, 4, 5)))

	assert.Equal(t, black, s.At(1, 3))
	assert.Equal(t, red, s.At(2, 3))
	assert.Equal(t, red, s.At(3, 4))
	assert.Equal(t, black, s.At(4, 4))
	assert.Equal(t, black, s.At(3, 5))
}

func TestFillClipsToBounds(t *testing.T) {
	s := New(4, 4)
	s.SetDrawColor(red)
	require.NoError(t, s.FillRect(image.Rect(-5, -5, 2, 2)))
	require.NoError(t, s.FillRect(image.Rect(50, 50, 60, 60)))

	assert.Equal(t, red, s.At(0, 0))
	assert.Equal(t, red, s.At(1, 1))
	assert.Equal(t, color.RGBA{}, s.At(2, 2))
}

func TestCopyScalesNearest(t *testing.T) {
	src := New(2, 1)
	src.SetDrawColor(red)
	require.NoError(t, src.FillRect(image.Rect(0, 0, 1, 1)))
	src.SetDrawColor(green)
	require.NoError(t, src.FillRect(image.Rect(1, 0, 2, 1)))

	dst := New(10, 10)
	require.NoError(t, dst.Copy(src, image.Rect(2, 2, 8, 5)))

	assert.Equal(t, red, dst.At(2, 2))
	assert.Equal(t, red, dst.At(4, 4))
	assert.Equal(t, green, dst.At(5, 2))
	assert.Equal(t, green, dst.At(7, 4))
	assert.Equal(t, color.RGBA{}, dst.At(8, 2))
	assert.Equal(t, color.RGBA{}, dst.At(2, 5))
}

func TestCopyClipsOffscreenKeepingScale(t *testing.T) {
	src := New(2, 1)
	src.SetDrawColor(red)
	require.NoError(t, src.FillRect(image.Rect(0, 0, 1, 1)))
	src.SetDrawColor(green)
	require.NoError(t, src.FillRect(image.Rect(1, 0, 2, 1)))

	// Only the right half of the destination is on the surface
	dst := New(4, 4)
	require.NoError(t, dst.Copy(src, image.Rect(-3, 0, 3, 1)))

	assert.Equal(t, green, dst.At(0, 0))
	assert.Equal(t, green, dst.At(2, 0))
	assert.Equal(t, color.RGBA{}, dst.At(3, 0))
	assert.Equal(t, color.RGBA{}, dst.At(0, 1))
}

func TestCopyIntegerScaleIsExact(t *testing.T) {
	const scale = 4
	src := New(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := black
			if (x+y)%2 == 0 {
				c = red
			}
			src.SetDrawColor(c)
			require.NoError(t, src.FillRect(image.Rect(x, y, x+1, y+1)))
		}
	}

	dst := New(3*scale, 2*scale)
	require.NoError(t, dst.Copy(src, dst.Image().Bounds()))

	for y := 0; y < 2*scale; y++ {
		for x := 0; x < 3*scale; x++ {
			require.Equal(t, src.At(x/scale, y/scale), dst.At(x, y), "pixel %d,%d", x, y)
		}
	}
}

type otherTexture struct{}

func (otherTexture) Size() image.Point { return image.Pt(1, 1) }
func (otherTexture) Dispose()          {}

func TestCopyRejectsForeignAndDisposed(t *testing.T) {
	dst := New(4, 4)
	assert.ErrorIs(t, dst.Copy(otherTexture{}, image.Rect(0, 0, 1, 1)), host.ErrDrawFailure)

	src := New(1, 1)
	src.Dispose()
	assert.True(t, src.Disposed())
	assert.ErrorIs(t, dst.Copy(src, image.Rect(0, 0, 1, 1)), host.ErrDrawFailure)
	assert.ErrorIs(t, src.Clear(), host.ErrDrawFailure)
	assert.ErrorIs(t, src.FillRect(image.Rect(0, 0, 1, 1)), host.ErrDrawFailure)
}
