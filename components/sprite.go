package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData names the image drawn at the entity's rectangle. Images are
// loaded once per class by the assets package and looked up by key.
type SpriteData struct {
	Key string
}

var Sprite = donburi.NewComponentType[SpriteData]()
