package components

import (
	cfg "github.com/automoto/pong/config"
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MatchData stores the state of the match in progress.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	ID     uuid.UUID // new for every reset, used to correlate log lines
	State  cfg.MatchStateID
	Winner cfg.SideID // SideNone while playing

	// Scored is set by the ball system for the frame a point is won and
	// cleared once the point has been counted.
	Scored cfg.SideID

	// Frames played since the last reset
	Frame int

	// Blink toggles the winner's digits while the match is won.
	Blink   *gween.Sequence
	BlinkOn bool

	// Fault holds an error raised inside a system; the scene surfaces it
	// after the frame's systems have run.
	Fault error
}

var Match = donburi.NewComponentType[MatchData]()

// IsWon reports whether a side has reached the winning total.
func (m *MatchData) IsWon() bool {
	return m.State == cfg.MatchStateWon
}

// DigitsHidden reports whether side's digits are in the off phase of the
// end-of-match blink.
func (m *MatchData) DigitsHidden(side cfg.SideID) bool {
	return m.IsWon() && m.Winner == side && !m.BlinkOn
}
