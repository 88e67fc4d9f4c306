package factory

import (
	"github.com/automoto/pong/archetypes"
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns a stationary ball in the middle of the screen. The match
// serves it.
func CreateBall(ecs *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	d := cfg.Ball.Diameter
	x, y := (cfg.C.Width-d)/2, (cfg.C.Height-d)/2

	obj := resolv.NewObject(float64(x), float64(y), float64(d), float64(d), tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(d), float64(d)))
	obj.Data = ball

	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	components.Ball.SetValue(ball, components.BallData{
		X:        x,
		Y:        y,
		Diameter: d,
	})

	addToSpace(ecs, obj)
	return ball
}
