package system

import (
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// PaddleSystem moves each paddle by its side's input axis.
type PaddleSystem struct {
	speed float64
}

func NewPaddleSystem() *PaddleSystem {
	return &PaddleSystem{speed: common.PaddleSpeed}
}

// Update applies speed*axis once per frame. The step is not scaled by the
// frame delta and paddles are not kept inside the arena.
func (p *PaddleSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PaddleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, paddle *component.Paddle, transform *component.Transform) {
		amount, ok := f.AxisValue(paddle.Side.AxisName())
		if !ok || amount == 0 {
			return
		}
		transform.Y += p.speed * amount
	})
}
