package system

import (
	"fmt"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/input"
)

const (
	InputSystemName  = "input_system"
	PaddleSystemName = "paddle_system"
	BallSystemName   = "ball_system"
	BounceSystemName = "bounce_system"
	AudioSystemName  = "audio_system"
)

type scheduleStep struct {
	name   string
	system ecs.System
	deps   []string
}

// NewScheduler wires the per-frame pipeline: input before paddles, ball
// motion before bounce, audio after bounce. A nil blip leaves audio out.
func NewScheduler(handler *input.Handler, blip Sound) (*ecs.Scheduler, error) {
	s := ecs.NewScheduler()

	steps := []scheduleStep{
		{InputSystemName, NewInputSystem(handler), nil},
		{PaddleSystemName, NewPaddleSystem(), []string{InputSystemName}},
		{BallSystemName, NewBallSystem(), nil},
		{BounceSystemName, NewBounceSystem(), []string{BallSystemName}},
	}
	if blip != nil {
		steps = append(steps, scheduleStep{AudioSystemName, NewAudioSystem(blip), []string{BounceSystemName}})
	}

	for _, step := range steps {
		if err := s.Add(step.name, step.system, step.deps...); err != nil {
			return nil, fmt.Errorf("system: build schedule: %w", err)
		}
	}

	s.AddRenderer(NewRenderSystem())
	return s, nil
}
