package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is drawn centred on the entity transform, one texel per arena unit.
type Sprite struct {
	Image *ebiten.Image
	Index int
}

var SpriteComponent = NewComponent[Sprite]("sprite")
