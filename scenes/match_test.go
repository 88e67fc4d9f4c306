package scenes

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"testing"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/host"
	"github.com/automoto/pong/host/soft"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene(t *testing.T) *MatchScene {
	t.Helper()
	logrus.SetOutput(io.Discard)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })

	ms, err := NewMatchScene(soft.Graphics{})
	require.NoError(t, err)
	t.Cleanup(ms.Close)
	return ms
}

// flakySurface rejects fills while failing is set.
type flakySurface struct {
	*soft.Surface
	failing bool
}

func (f *flakySurface) FillRect(r image.Rectangle) error {
	if f.failing {
		return fmt.Errorf("%w: test", host.ErrDrawFailure)
	}
	return f.Surface.FillRect(r)
}

type refusingGraphics struct{}

func (refusingGraphics) NewTarget(w, h int) (host.Target, error) {
	return nil, fmt.Errorf("%w: no targets today", host.ErrHostInit)
}

func TestNewMatchSceneFailsWithoutTargets(t *testing.T) {
	_, err := NewMatchScene(refusingGraphics{})
	require.ErrorIs(t, err, host.ErrHostInit)
}

func TestQuitFromHost(t *testing.T) {
	ms := newScene(t)
	require.NoError(t, ms.Update(host.Input{}))
	assert.ErrorIs(t, ms.Update(host.Input{Quit: true}), ErrQuit)
}

func TestQuitKey(t *testing.T) {
	ms := newScene(t)
	err := ms.Update(host.Input{Held: host.Keys(ebiten.KeyEscape)})
	assert.ErrorIs(t, err, ErrQuit)
}

func TestQuitSkipsSimulation(t *testing.T) {
	ms := newScene(t)
	before := ms.State().Frame
	_ = ms.Update(host.Input{Quit: true, Held: host.Keys(ebiten.KeyBackspace)})
	assert.Equal(t, before, ms.State().Frame)
}

func TestUpdateAndDraw(t *testing.T) {
	ms := newScene(t)
	s := soft.New(cfg.C.Width, cfg.C.Height)

	for i := 0; i < 10; i++ {
		require.NoError(t, ms.Update(host.Input{}))
		require.NoError(t, ms.Draw(s))
	}

	// The ball has travelled ten ticks from its serve
	assert.Equal(t, cfg.Colors.Ball, s.At(949+120+10, 529+120+10))
	assert.Equal(t, 0, ms.Score().Left())
	assert.Equal(t, 10, ms.State().Frame)
}

func TestDrawFailuresEscalate(t *testing.T) {
	ms := newScene(t)
	s := &flakySurface{Surface: soft.New(cfg.C.Width, cfg.C.Height), failing: true}

	for i := 1; i < cfg.Match.DrawFailureLimit; i++ {
		require.NoError(t, ms.Update(host.Input{}))
		require.NoError(t, ms.Draw(s), "failure %d is tolerated", i)
	}
	require.NoError(t, ms.Update(host.Input{}))
	err := ms.Draw(s)
	assert.ErrorIs(t, err, ErrTooManyDrawFailures)
	assert.ErrorIs(t, err, host.ErrDrawFailure)
}

func TestSparseDrawFailuresAreTolerated(t *testing.T) {
	ms := newScene(t)
	s := &flakySurface{Surface: soft.New(cfg.C.Width, cfg.C.Height)}

	for round := 0; round < 5; round++ {
		s.failing = true
		require.NoError(t, ms.Update(host.Input{}))
		require.NoError(t, ms.Draw(s))

		s.failing = false
		for i := 0; i < cfg.Match.DrawFailureWindow; i++ {
			require.NoError(t, ms.Update(host.Input{}))
			require.NoError(t, ms.Draw(s))
		}
	}
}

// brokenSurface fails with something other than a draw failure.
type brokenSurface struct{ *soft.Surface }

var errBroken = errors.New("broken")

func (brokenSurface) Clear() error { return errBroken }

func TestOtherDrawErrorsAreFatal(t *testing.T) {
	ms := newScene(t)
	err := ms.Draw(brokenSurface{soft.New(4, 4)})
	assert.ErrorIs(t, err, errBroken)
	assert.NotErrorIs(t, err, ErrTooManyDrawFailures)
}

func TestCloseReleasesGlyphs(t *testing.T) {
	ms, err := NewMatchScene(soft.Graphics{})
	require.NoError(t, err)

	g := ms.Score().Side(cfg.SideLeft).Glyphs[0].(*soft.Surface)
	require.False(t, g.Disposed())

	ms.Close()
	assert.True(t, g.Disposed())
	ms.Close()
}

func TestResetScenario(t *testing.T) {
	ms := newScene(t)
	score := ms.Score()
	for i := 0; i < 3; i++ {
		require.NoError(t, score.Increment(cfg.SideLeft))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, score.Increment(cfg.SideRight))
	}

	require.NoError(t, ms.Update(host.Input{Held: host.Keys(ebiten.KeyBackspace)}))
	assert.Equal(t, 0, ms.Score().Left())
	assert.Equal(t, 0, ms.Score().Right())
	assert.Equal(t, cfg.MatchStatePlaying, ms.State().State)
}

func TestFrameIsClearedEachDraw(t *testing.T) {
	ms := newScene(t)
	s := soft.New(cfg.C.Width, cfg.C.Height)
	s.SetDrawColor(color.RGBA{R: 9, G: 9, B: 9, A: 255})
	require.NoError(t, s.Clear())

	require.NoError(t, ms.Draw(s))
	assert.Equal(t, cfg.Colors.Background, s.At(300, 900))
}
