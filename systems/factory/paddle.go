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

// CreatePaddle spawns side's paddle, vertically centred.
func CreatePaddle(ecs *ecs.ECS, side cfg.SideID) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	data := components.PaddleData{
		Side:  side,
		Width: cfg.Paddle.Width,
	}
	switch side {
	case cfg.SideLeft:
		data.X = cfg.Paddle.LeftX
		data.Height = cfg.Paddle.LeftHeight
		data.Step = cfg.Paddle.LeftStep
	default:
		data.X = cfg.Paddle.RightX
		data.Height = cfg.Paddle.RightHeight
		data.Step = cfg.Paddle.RightStep
	}
	data.StartY = (cfg.C.Height - data.Height) / 2
	data.Y = data.StartY

	w, h := float64(data.Width), float64(data.Height)
	obj := resolv.NewObject(float64(data.X), float64(data.Y), w, h, tags.ResolvPaddle)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = paddle

	components.Object.SetValue(paddle, components.ObjectData{Object: obj})
	components.Paddle.SetValue(paddle, data)

	addToSpace(ecs, obj)
	return paddle
}
