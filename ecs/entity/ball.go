package entity

import (
	"fmt"

	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewBall places the ball at the arena centre with its launch velocity.
func NewBall(w *ecs.World, sheet *assets.SpriteSheet) (ecs.Entity, error) {
	ball := ecs.CreateEntity(w)
	if err := ecs.Add(w, ball, component.TransformComponent.Kind(), &component.Transform{
		X: common.ArenaWidth * 0.5,
		Y: common.ArenaHeight * 0.5,
	}); err != nil {
		return 0, fmt.Errorf("ball: add transform: %w", err)
	}

	if err := ecs.Add(w, ball, component.BallComponent.Kind(), &component.Ball{
		VelocityX: common.BallVelocityX,
		VelocityY: common.BallVelocityY,
		Radius:    common.BallRadius,
	}); err != nil {
		return 0, fmt.Errorf("ball: add ball: %w", err)
	}

	if err := ecs.Add(w, ball, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 1}); err != nil {
		return 0, fmt.Errorf("ball: add render layer: %w", err)
	}

	if err := addSprite(w, ball, sheet, assets.SpriteBall); err != nil {
		return 0, fmt.Errorf("ball: %w", err)
	}
	return ball, nil
}
