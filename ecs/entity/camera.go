package entity

import (
	"fmt"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewCamera adds a camera centred on the arena that spans all of it.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X: common.ArenaWidth * 0.5,
		Y: common.ArenaHeight * 0.5,
		Z: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Width:  common.ArenaWidth,
		Height: common.ArenaHeight,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
