package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/host"
	"github.com/yohamta/donburi/ecs"
)

// ApplyInput stores one host poll in the Input component.
// Must run BEFORE the frame's systems.
func ApplyInput(ecs *ecs.ECS, in host.Input) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if in.Held[key] {
				input.Current[actionID] = true
			}
		}
	}

	input.Quit = in.Quit || input.Current[cfg.ActionQuit]
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// QuitRequested reports whether the last poll asked the game to stop.
func QuitRequested(ecs *ecs.ECS) bool {
	return getOrCreateInput(ecs).Quit
}
