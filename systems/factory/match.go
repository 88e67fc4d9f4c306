package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton and the input it reads.
func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	archetypes.Input.Spawn(ecs)

	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		ID:     uuid.New(),
		State:  cfg.MatchStatePlaying,
		Winner: cfg.SideNone,
		Scored: cfg.SideNone,
	})
	return match
}
