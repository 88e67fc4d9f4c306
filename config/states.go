package config

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota // Ball in play
	MatchStateWon                         // A side reached PointsToWin; ball frozen
)

func (m MatchStateID) String() string {
	switch m {
	case MatchStatePlaying:
		return "playing"
	case MatchStateWon:
		return "won"
	}
	return "unknown"
}

// SideID identifies a player: its paddle, its score and its half of the court.
type SideID int

const (
	SideNone SideID = iota - 1
	SideLeft
	SideRight
)

// Opponent returns the other side
func (s SideID) Opponent() SideID {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}

func (s SideID) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}
