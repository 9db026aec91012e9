package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/input"
)

// InputSystem samples bound devices once at the start of each frame so
// every later system sees the same axis values.
type InputSystem struct {
	handler *input.Handler
}

func NewInputSystem(handler *input.Handler) *InputSystem {
	return &InputSystem{handler: handler}
}

func (i *InputSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil || i.handler == nil {
		return
	}
	i.handler.Update()
}
