// Package ebitenhost runs a host.Game in a window using ebiten.
package ebitenhost

import (
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/host"
	"github.com/automoto/pong/limiter"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a host.Game to ebiten.Game.
type Game struct {
	game   host.Game
	lim    *limiter.FpsLimiter
	screen Canvas
	err    error
}

// NewGame wraps game. Frames are paced by lim rather than by ebiten.
func NewGame(game host.Game, lim *limiter.FpsLimiter) *Game {
	return &Game{game: game, lim: lim}
}

func (g *Game) Update() error {
	// Pace the previous frame before starting this one
	g.lim.Wait()
	g.lim.Start()

	// Draw cannot return an error, so it is surfaced here
	if g.err != nil {
		return g.err
	}
	return g.game.Update(Poll())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.img = screen
	if err := g.game.Draw(&g.screen); err != nil && g.err == nil {
		g.err = err
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

// Poll reads the bound keys and the window's close button.
func Poll() host.Input {
	held := make(host.KeySet)
	for _, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[key] = true
			}
		}
	}
	return host.Input{
		Quit: ebiten.IsWindowBeingClosed(),
		Held: held,
	}
}

// Configure sets up the window. Call it before building anything that
// allocates images.
func Configure() {
	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(cfg.C.Fullscreen)
	ebiten.SetWindowClosingHandled(true)

	// One Update per Draw; the limiter sets the pace
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(false)
}

// Run drives game until it returns an error or the window is closed.
func Run(game host.Game, lim *limiter.FpsLimiter) error {
	return ebiten.RunGame(NewGame(game, lim))
}
