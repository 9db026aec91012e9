package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// BallSystem integrates ball position by velocity over the frame delta.
type BallSystem struct{}

func NewBallSystem() *BallSystem {
	return &BallSystem{}
}

func (b *BallSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil {
		return
	}

	dt := f.DeltaSeconds()
	ecs.ForEach2(w, component.BallComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ball *component.Ball, transform *component.Transform) {
		transform.X += ball.VelocityX * dt
		transform.Y += ball.VelocityY * dt
	})
}
