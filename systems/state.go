package systems

import (
	cfg "github.com/automoto/pong/config"
	"github.com/yohamta/donburi/ecs"
)

// WhilePlaying wraps a system so it is skipped once the match is won.
func WhilePlaying(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if match := GetMatch(ecs); match == nil || match.State != cfg.MatchStatePlaying {
			return
		}
		system(ecs)
	}
}
