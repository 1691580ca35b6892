package component

import "image/color"

// Sprite is a solid quad centred on the entity's transform. Width and
// Height are in world units.
type Sprite struct {
	Color  color.Color
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
