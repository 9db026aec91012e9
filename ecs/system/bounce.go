package system

import (
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// BounceSystem reflects the ball off the arena walls. It must run after
// BallSystem so it sees the position for this frame.
type BounceSystem struct {
	width  float64
	height float64
}

func NewBounceSystem() *BounceSystem {
	return &BounceSystem{width: common.ArenaWidth, height: common.ArenaHeight}
}

// Update flips a velocity component only while the ball is outside the
// arena on that axis and still heading outward. Position is never
// corrected, so a ball that already turned around is left alone until it
// re-enters.
func (b *BounceSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BallComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ball *component.Ball, transform *component.Transform) {
		if (transform.X < 0 && ball.VelocityX < 0) ||
			(transform.X+ball.Radius > b.width && ball.VelocityX > 0) {
			ball.VelocityX = -ball.VelocityX
			w.Events().Push(ecs.Event{Type: ecs.EventBounce, Data: ecs.BounceEvent{Entity: e, Axis: ecs.AxisX}})
		}

		if (transform.Y < 0 && ball.VelocityY < 0) ||
			(transform.Y+ball.Radius > b.height && ball.VelocityY > 0) {
			ball.VelocityY = -ball.VelocityY
			w.Events().Push(ecs.Event{Type: ecs.EventBounce, Data: ecs.BounceEvent{Entity: e, Axis: ecs.AxisY}})
		}
	})
}
