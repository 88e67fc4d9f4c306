package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionLeftUp
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionReset
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// PaddleActions maps each side to its (up, down) actions.
var PaddleActions = map[SideID][2]ActionID{
	SideLeft:  {ActionLeftUp, ActionLeftDown},
	SideRight: {ActionRightUp, ActionRightDown},
}

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionLeftUp:    {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionLeftDown:  {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionRightUp:   {Keys: []ebiten.Key{ebiten.KeyO}},
			ActionRightDown: {Keys: []ebiten.Key{ebiten.KeyK}},
			ActionReset:     {Keys: []ebiten.Key{ebiten.KeyBackspace}},
			ActionQuit:      {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
