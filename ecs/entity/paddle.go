package entity

import (
	"fmt"

	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewPaddle places a paddle half its width in from its side's wall, at
// mid height. A nil sheet builds a paddle without a sprite.
func NewPaddle(w *ecs.World, side component.Side, sheet *assets.SpriteSheet) (ecs.Entity, error) {
	x := common.PaddleWidth * 0.5
	if side == component.SideRight {
		x = common.ArenaWidth - common.PaddleWidth*0.5
	}

	paddle := ecs.CreateEntity(w)
	if err := ecs.Add(w, paddle, component.PaddleComponent.Kind(), &component.Paddle{
		Side:   side,
		Width:  common.PaddleWidth,
		Height: common.PaddleHeight,
	}); err != nil {
		return 0, fmt.Errorf("paddle %s: add paddle: %w", side, err)
	}

	if err := ecs.Add(w, paddle, component.TransformComponent.Kind(), &component.Transform{
		X: x,
		Y: common.ArenaHeight * 0.5,
	}); err != nil {
		return 0, fmt.Errorf("paddle %s: add transform: %w", side, err)
	}

	if err := addSprite(w, paddle, sheet, assets.SpritePaddle); err != nil {
		return 0, fmt.Errorf("paddle %s: %w", side, err)
	}
	return paddle, nil
}
