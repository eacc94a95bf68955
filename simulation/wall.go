package simulation

import (
	"github.com/automoto/chargebots/archetypes"
	"github.com/automoto/chargebots/components"
	"github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateWall adds a static rectangle to the space. Walls never block
// movement; bounds are enforced numerically. They mark the world edge for
// the debug overlay.
func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvWall)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)
	return wall
}

// CreateBounds lines the four world edges with one-pixel walls.
func CreateBounds(w donburi.World, c *config.Config) {
	width, height := float64(c.World.Width), float64(c.World.Height)
	CreateWall(w, 0, 0, width, 1)        // Top
	CreateWall(w, 0, height-1, width, 1) // Bottom
	CreateWall(w, 0, 0, 1, height)       // Left
	CreateWall(w, width-1, 0, 1, height) // Right
}
