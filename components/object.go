package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's bounding rectangle. Movement only ever changes X
// and Y; W and H come from the sprite and are fixed at creation.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal center of the rectangle.
func (o ObjectData) CenterX() float64 { return o.X + o.W/2 }

// CenterY returns the vertical center of the rectangle.
func (o ObjectData) CenterY() float64 { return o.Y + o.H/2 }

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv space holding every live entity's rectangle.
var Space = donburi.NewComponentType[resolv.Space]()
