package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// AudioSystem plays the bouncing entity's sound for each bounce event queued
// this frame.
type AudioSystem struct {
	muted bool
}

func NewAudioSystem(muted bool) *AudioSystem {
	return &AudioSystem{muted: muted}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventBounce || a.muted {
			continue
		}
		bounce, ok := evt.Data.(ecs.BounceEvent)
		if !ok {
			continue
		}
		snd, ok := ecs.Get(w, bounce.Ball, component.SoundComponent)
		if !ok || snd.Player == nil {
			continue
		}
		snd.Player.SetVolume(snd.Volume)
		if err := snd.Player.Rewind(); err != nil {
			log.Warn("rewind sound", "name", snd.Name, "err", err)
			continue
		}
		snd.Player.Play()
	}
}
