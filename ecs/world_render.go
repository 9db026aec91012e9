package ecs

import "github.com/hajimehoshi/ebiten/v2"

// RenderSystem draws ECS entities each frame.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// Draw calls every registered render pass in order.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	for _, r := range s.renderers {
		r.Draw(w, screen)
	}
}
