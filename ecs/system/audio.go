package system

import (
	"log"

	"github.com/milk9111/pong/ecs"
)

// Sound is a rewindable one-shot clip; *audio.Player satisfies it.
type Sound interface {
	Rewind() error
	Play()
}

// AudioSystem plays a blip for every frame in which the ball bounced.
type AudioSystem struct {
	blip Sound
}

func NewAudioSystem(blip Sound) *AudioSystem {
	return &AudioSystem{blip: blip}
}

func (a *AudioSystem) Update(w *ecs.World, f *ecs.Frame) {
	if w == nil {
		return
	}

	bounced := false
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventBounce {
			bounced = true
		}
	}
	if !bounced || a.blip == nil {
		return
	}

	if err := a.blip.Rewind(); err != nil {
		log.Printf("audio: rewind blip: %v", err)
		return
	}
	a.blip.Play()
}
