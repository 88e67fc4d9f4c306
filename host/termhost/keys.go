package termhost

import (
	"unicode"

	"github.com/gdamore/tcell"
	"github.com/hajimehoshi/ebiten/v2"
)

var runeKeys = map[rune]ebiten.Key{
	'a': ebiten.KeyA, 'b': ebiten.KeyB, 'c': ebiten.KeyC, 'd': ebiten.KeyD,
	'e': ebiten.KeyE, 'f': ebiten.KeyF, 'g': ebiten.KeyG, 'h': ebiten.KeyH,
	'i': ebiten.KeyI, 'j': ebiten.KeyJ, 'k': ebiten.KeyK, 'l': ebiten.KeyL,
	'm': ebiten.KeyM, 'n': ebiten.KeyN, 'o': ebiten.KeyO, 'p': ebiten.KeyP,
	'q': ebiten.KeyQ, 'r': ebiten.KeyR, 's': ebiten.KeyS, 't': ebiten.KeyT,
	'u': ebiten.KeyU, 'v': ebiten.KeyV, 'w': ebiten.KeyW, 'x': ebiten.KeyX,
	'y': ebiten.KeyY, 'z': ebiten.KeyZ,
	' ': ebiten.KeySpace,
}

var specialKeys = map[tcell.Key]ebiten.Key{
	tcell.KeyEscape:     ebiten.KeyEscape,
	tcell.KeyBackspace:  ebiten.KeyBackspace,
	tcell.KeyBackspace2: ebiten.KeyBackspace,
	tcell.KeyEnter:      ebiten.KeyEnter,
	tcell.KeyUp:         ebiten.KeyArrowUp,
	tcell.KeyDown:       ebiten.KeyArrowDown,
	tcell.KeyLeft:       ebiten.KeyArrowLeft,
	tcell.KeyRight:      ebiten.KeyArrowRight,
}

// KeyOf maps a terminal key event to the keyboard key that produced it.
// Letters are case-insensitive.
func KeyOf(ev *tcell.EventKey) (ebiten.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := runeKeys[unicode.ToLower(ev.Rune())]
		return k, ok
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}
