package scenes

import (
	"errors"
	"fmt"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/glyph"
	"github.com/automoto/pong/host"
	"github.com/automoto/pong/systems"
	"github.com/automoto/pong/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// ErrQuit is returned by Update once the player asks to leave. It is
	// not a failure.
	ErrQuit = errors.New("quit requested")

	// ErrTooManyDrawFailures is returned by Draw when frames keep failing.
	ErrTooManyDrawFailures = errors.New("too many draw failures")
)

// MatchScene runs a match between the two local players.
type MatchScene struct {
	ecs       *ecs.ECS
	glyphs    *glyph.Cache
	renderers []systems.Renderer

	frame    int
	failures []int // frames whose draw failed, oldest first
}

// NewMatchScene builds the digit glyphs through gfx and sets up a fresh
// match. The glyphs live until Close.
func NewMatchScene(gfx host.Graphics) (*MatchScene, error) {
	glyphs, err := glyph.New(gfx, cfg.Colors.Background, cfg.Colors.Display)
	if err != nil {
		return nil, fmt.Errorf("building glyphs: %w", err)
	}

	ms := &MatchScene{glyphs: glyphs}
	if err := ms.configure(); err != nil {
		glyphs.Close()
		return nil, err
	}
	return ms, nil
}

func (ms *MatchScene) configure() error {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Reset must see the input before anything moves
	ecs.AddSystem(systems.UpdateReset)
	ecs.AddSystem(systems.UpdatePaddles)
	ecs.AddSystem(systems.WhilePlaying(systems.UpdateBall))
	ecs.AddSystem(systems.UpdateMatch)

	ms.renderers = []systems.Renderer{
		systems.DrawBackground,
		systems.DrawDivider,
		systems.DrawPaddles,
		systems.DrawBall,
		systems.DrawScore,
		systems.DrawDebug,
	}

	ms.ecs = ecs

	// The space must exist before anything that collides is created.
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreatePaddle(ecs, cfg.SideLeft)
	factory.CreatePaddle(ecs, cfg.SideRight)
	factory.CreateBall(ecs)
	factory.CreateMatch(ecs)
	if _, err := factory.CreateScore(ecs, ms.glyphs); err != nil {
		return err
	}

	return systems.ResetMatch(ecs)
}

// Update runs one frame of the simulation from a single poll of the host.
func (ms *MatchScene) Update(in host.Input) error {
	systems.ApplyInput(ms.ecs, in)
	if systems.QuitRequested(ms.ecs) {
		return ErrQuit
	}

	ms.ecs.Update()
	ms.frame++

	if match := systems.GetMatch(ms.ecs); match != nil && match.Fault != nil {
		err := match.Fault
		match.Fault = nil
		return err
	}
	return nil
}

// Draw renders the frame. A rejected draw abandons the rest of the frame
// and is only fatal when it keeps happening.
func (ms *MatchScene) Draw(s host.Surface) error {
	for _, render := range ms.renderers {
		if err := render(ms.ecs, s); err != nil {
			if !errors.Is(err, host.ErrDrawFailure) {
				return err
			}
			return ms.drawFailed(err)
		}
	}
	return nil
}

func (ms *MatchScene) drawFailed(err error) error {
	ms.failures = append(ms.failures, ms.frame)

	// Forget failures that have left the window
	cutoff := ms.frame - cfg.Match.DrawFailureWindow
	i := 0
	for i < len(ms.failures) && ms.failures[i] <= cutoff {
		i++
	}
	ms.failures = ms.failures[i:]

	log := logrus.WithError(err).WithFields(logrus.Fields{
		"frame":    ms.frame,
		"failures": len(ms.failures),
	})
	if match := systems.GetMatch(ms.ecs); match != nil {
		log = log.WithField("match", match.ID)
	}

	if len(ms.failures) >= cfg.Match.DrawFailureLimit {
		log.Error("giving up after repeated draw failures")
		return fmt.Errorf("%w: %d within %d frames: %w",
			ErrTooManyDrawFailures, len(ms.failures), cfg.Match.DrawFailureWindow, err)
	}
	log.Warn("frame not drawn")
	return nil
}

// Close releases the glyph textures. The scene must not be used afterwards.
func (ms *MatchScene) Close() {
	if ms.glyphs != nil {
		ms.glyphs.Close()
		ms.glyphs = nil
	}
}

// World exposes the scene's ECS for inspection.
func (ms *MatchScene) World() *ecs.ECS {
	return ms.ecs
}

// Score returns the current score display.
func (ms *MatchScene) Score() *components.ScoreData {
	return systems.GetScore(ms.ecs)
}

// State returns the match state.
func (ms *MatchScene) State() *components.MatchData {
	return systems.GetMatch(ms.ecs)
}
