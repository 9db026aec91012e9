package entity

import (
	"fmt"

	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// Arena holds the handles of everything created at startup.
type Arena struct {
	Camera ecs.Entity
	Left   ecs.Entity
	Right  ecs.Entity
	Ball   ecs.Entity
}

// NewArena creates the camera, both paddles and the ball.
func NewArena(w *ecs.World, sheet *assets.SpriteSheet) (Arena, error) {
	if w == nil {
		return Arena{}, fmt.Errorf("arena: world is nil")
	}

	var a Arena
	var err error
	if a.Camera, err = NewCamera(w); err != nil {
		return Arena{}, err
	}
	if a.Left, err = NewPaddle(w, component.SideLeft, sheet); err != nil {
		return Arena{}, err
	}
	if a.Right, err = NewPaddle(w, component.SideRight, sheet); err != nil {
		return Arena{}, err
	}
	if a.Ball, err = NewBall(w, sheet); err != nil {
		return Arena{}, err
	}
	return a, nil
}

func addSprite(w *ecs.World, e ecs.Entity, sheet *assets.SpriteSheet, index int) error {
	if sheet == nil {
		return nil
	}
	img := sheet.Sprite(index)
	if img == nil {
		return fmt.Errorf("sprite sheet has no sprite %d", index)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: img, Index: index}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}
