package systems

import (
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/glyph"
	"github.com/automoto/pong/host"
	"github.com/automoto/pong/host/soft"
	"github.com/automoto/pong/systems/factory"
	"github.com/automoto/pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testWorld is a match built the same way the scene builds it, without a
// window.
type testWorld struct {
	ecs    *ecs.ECS
	glyphs *glyph.Cache
	logs   *logtest.Hook
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	logs := captureLogs(t)

	glyphs, err := glyph.New(soft.Graphics{}, cfg.Colors.Background, cfg.Colors.Display)
	require.NoError(t, err)
	t.Cleanup(glyphs.Close)

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateReset)
	e.AddSystem(UpdatePaddles)
	e.AddSystem(WhilePlaying(UpdateBall))
	e.AddSystem(UpdateMatch)

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreatePaddle(e, cfg.SideLeft)
	factory.CreatePaddle(e, cfg.SideRight)
	factory.CreateBall(e)
	factory.CreateMatch(e)
	_, err = factory.CreateScore(e, glyphs)
	require.NoError(t, err)
	require.NoError(t, ResetMatch(e))

	return &testWorld{ecs: e, glyphs: glyphs, logs: logs}
}

// captureLogs keeps log entries off stderr and records them for the test.
func captureLogs(t *testing.T) *logtest.Hook {
	t.Helper()
	logs := logtest.NewGlobal()
	logrus.SetOutput(io.Discard)
	t.Cleanup(func() {
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
		logrus.SetOutput(os.Stderr)
	})
	return logs
}

// frame runs one simulation frame with keys held.
func (w *testWorld) frame(keys ...ebiten.Key) {
	ApplyInput(w.ecs, host.Input{Held: host.Keys(keys...)})
	w.ecs.Update()
}

func (w *testWorld) ball() *components.BallData   { return GetBall(w.ecs) }
func (w *testWorld) match() *components.MatchData { return GetMatch(w.ecs) }
func (w *testWorld) score() *components.ScoreData { return GetScore(w.ecs) }

func (w *testWorld) paddle(side cfg.SideID) *components.PaddleData {
	return GetPaddle(w.ecs, side)
}

// placeBall moves the ball and its collision shape.
func (w *testWorld) placeBall(x, y, vx, vy int) {
	b := w.ball()
	b.X, b.Y, b.VX, b.VY = x, y, vx, vy
	entry, _ := tags.Ball.First(w.ecs.World)
	components.Object.Get(entry).Sync(x, y)
}

// setScore increments from zero up to the given totals.
func (w *testWorld) setScore(t *testing.T, left, right int) {
	t.Helper()
	s := w.score()
	require.NoError(t, s.Reset())
	for i := 0; i < left; i++ {
		require.NoError(t, s.Increment(cfg.SideLeft))
	}
	for i := 0; i < right; i++ {
		require.NoError(t, s.Increment(cfg.SideRight))
	}
}

// requireDigitsMatch checks side's glyphs spell its total, most significant
// digit leftmost.
func requireDigitsMatch(t *testing.T, w *testWorld, side cfg.SideID) {
	t.Helper()
	ss := w.score().Side(side)
	digits := strconv.Itoa(ss.Points)
	require.Len(t, ss.Glyphs, len(digits))
	require.Len(t, ss.Rects, len(digits))

	for i, r := range digits {
		want, err := w.glyphs.Lookup(r)
		require.NoError(t, err)
		require.Same(t, want, ss.Glyphs[i])
		if i > 0 {
			require.Less(t, ss.Rects[i-1].Min.X, ss.Rects[i].Min.X)
		}
	}
}
