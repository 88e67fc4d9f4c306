package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its shape in the collision space. Ball and
// paddles each own one; it is kept in step with their integer position.
type ObjectData struct {
	*resolv.Object
}

// Sync moves the object to (x, y) and re-registers it with its cells.
func (o *ObjectData) Sync(x, y int) {
	o.X, o.Y = float64(x), float64(y)
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
