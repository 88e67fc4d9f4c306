package systems

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaddles moves each paddle by its side's held keys. Paddles stay
// live after the match is won.
func UpdatePaddles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		paddle := components.Paddle.Get(e)
		actions := cfg.PaddleActions[paddle.Side]
		paddle.HandleInput(input.Current[actions[0]], input.Current[actions[1]], cfg.C.Height)
		components.Object.Get(e).Sync(paddle.X, paddle.Y)
	})
}

// GetPaddle returns side's paddle, or nil if it has not been created.
func GetPaddle(ecs *ecs.ECS, side cfg.SideID) *components.PaddleData {
	var found *components.PaddleData
	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		if p := components.Paddle.Get(e); p.Side == side {
			found = p
		}
	})
	return found
}

func resetPaddles(ecs *ecs.ECS) {
	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		paddle := components.Paddle.Get(e)
		paddle.Reset()
		components.Object.Get(e).Sync(paddle.X, paddle.Y)
	})
}
