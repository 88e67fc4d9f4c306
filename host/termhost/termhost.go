// Package termhost runs a host.Game in a terminal using tcell.
//
// Frames are drawn into a software framebuffer at the game's resolution and
// then sampled into character cells, one background-colored space per cell.
// Terminals report key presses but not releases, so a key counts as held
// until HoldFor has passed without another press or repeat.
package termhost

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/host"
	"github.com/automoto/pong/host/soft"
	"github.com/automoto/pong/limiter"
	"github.com/gdamore/tcell"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// HoldFor is how long a key stays held after its last press or repeat.
// It has to outlast the terminal's initial key-repeat delay.
var HoldFor = 300 * time.Millisecond

// Host owns the terminal for the life of the game.
type Host struct {
	screen tcell.Screen
	fb     *soft.Surface
	events chan tcell.Event
	done   chan struct{} // closed by Close
	pumped chan struct{} // closed when pump returns

	held map[ebiten.Key]time.Time
	quit bool
	now  func() time.Time

	closeOnce sync.Once
}

// New takes over the controlling terminal.
func New() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", host.ErrHostInit, err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen runs on an already created, uninitialised screen.
func NewWithScreen(screen tcell.Screen) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", host.ErrHostInit, err)
	}
	screen.HideCursor()
	screen.Clear()

	h := &Host{
		screen: screen,
		fb:     soft.New(cfg.C.Width, cfg.C.Height),
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
		pumped: make(chan struct{}),
		held:   make(map[ebiten.Key]time.Time),
		now:    time.Now,
	}
	go h.pump()
	return h, nil
}

// pump forwards blocking terminal events so Poll never waits. It ends when
// the screen is finalised, even if nobody is draining events.
func (h *Host) pump() {
	defer close(h.pumped)
	defer close(h.events)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

// Graphics returns the allocator for glyph targets.
func (h *Host) Graphics() host.Graphics {
	return soft.Graphics{}
}

// Surface is the framebuffer the game draws into.
func (h *Host) Surface() host.Surface {
	return h.fb
}

// Poll drains pending terminal events without blocking.
func (h *Host) Poll() host.Input {
	for drained := false; !drained; {
		select {
		case ev, ok := <-h.events:
			if !ok {
				h.quit = true
				drained = true
				break
			}
			h.handle(ev)
		default:
			drained = true
		}
	}

	now := h.now()
	held := make(host.KeySet, len(h.held))
	for k, at := range h.held {
		if now.Sub(at) >= HoldFor {
			delete(h.held, k)
			continue
		}
		held[k] = true
	}
	return host.Input{Quit: h.quit, Held: held}
}

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			h.quit = true
			return
		}
		if k, ok := KeyOf(ev); ok {
			h.held[k] = h.now()
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

// Present samples the framebuffer into the terminal. Each cell takes the
// brightest of a grid of samples from the pixels it covers, so objects
// smaller than a cell still show up.
func (h *Host) Present() error {
	cols, rows := h.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	size := h.fb.Size()
	stride := max(1, cfg.Ball.Diameter/2)

	for row := 0; row < rows; row++ {
		y0, y1 := row*size.Y/rows, (row+1)*size.Y/rows
		for col := 0; col < cols; col++ {
			x0, x1 := col*size.X/cols, (col+1)*size.X/cols
			c := h.sample(x0, y0, x1, y1, stride)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			h.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	h.screen.Show()
	return nil
}

func (h *Host) sample(x0, y0, x1, y1, stride int) color.RGBA {
	var best color.RGBA
	bestLum := -1
	for y := y0; y < max(y1, y0+1); y += stride {
		for x := x0; x < max(x1, x0+1); x += stride {
			c := h.fb.At(x, y)
			if lum := int(c.R) + int(c.G) + int(c.B); lum > bestLum {
				best, bestLum = c, lum
			}
		}
	}
	return best
}

// Close gives the terminal back and stops the event pump. It is safe to
// call more than once.
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.screen.Fini()
	})
}

// Run drives game one frame at a time until it returns an error or the
// terminal asks to quit.
func Run(h *Host, game host.Game, lim *limiter.FpsLimiter) error {
	for {
		lim.Start()

		if err := game.Update(h.Poll()); err != nil {
			return err
		}
		if err := game.Draw(h.fb); err != nil {
			return err
		}
		if err := h.Present(); err != nil {
			return err
		}

		if slept := lim.Wait(); slept == 0 {
			logrus.WithField("period", lim.Period()).Trace("frame overran")
		}
	}
}
