package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision space shared by the ball and both paddles.
var Space = donburi.NewComponentType[resolv.Space]()
