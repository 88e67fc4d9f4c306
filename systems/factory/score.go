package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScore spawns the score display with both totals at zero.
func CreateScore(ecs *ecs.ECS, glyphs components.GlyphSource) (*donburi.Entry, error) {
	score := archetypes.Score.Spawn(ecs)

	data := components.ScoreData{Source: glyphs}
	if err := data.Reset(); err != nil {
		return nil, err
	}
	components.Score.SetValue(score, data)
	return score, nil
}
