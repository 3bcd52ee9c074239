package components

import (
	"errors"
	"fmt"

	"firstperson/internal/audio"
	"firstperson/internal/engine"

	"github.com/rs/zerolog/log"
)

// AudioSource plays one clip at a time through an audio backend. It
// implements engine.AudioSink: SetClip replaces the current clip and Play
// restarts it, cutting off anything still sounding.
type AudioSource struct {
	engine.BaseComponent

	Volume float32

	backend audio.Backend
	clips   map[string]audio.Clip
	current *audio.Clip
}

func NewAudioSource(backend audio.Backend) *AudioSource {
	return &AudioSource{
		Volume:  1.0,
		backend: backend,
		clips:   make(map[string]audio.Clip),
	}
}

// Preload loads every path up front so the first play does not hit the disk.
// Clips that fail are reported together; the rest stay usable.
func (a *AudioSource) Preload(paths []string) error {
	var errs []error
	for _, p := range paths {
		if _, err := a.load(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *AudioSource) load(path string) (audio.Clip, error) {
	if clip, ok := a.clips[path]; ok {
		return clip, nil
	}
	clip, err := a.backend.Load(path)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("audio source: %w", err)
	}
	a.backend.SetVolume(clip, a.Volume)
	a.clips[path] = clip
	return clip, nil
}

// SetClip selects the clip for the next Play. A clip that cannot be loaded
// leaves the source without a clip.
func (a *AudioSource) SetClip(path string) {
	if a.current != nil && a.current.Path != path && a.backend.IsPlaying(*a.current) {
		a.backend.Stop(*a.current)
	}
	clip, err := a.load(path)
	if err != nil {
		log.Warn().Err(err).Str("clip", path).Msg("clip unavailable")
		a.current = nil
		return
	}
	a.current = &clip
}

func (a *AudioSource) Clip() string {
	if a.current == nil {
		return ""
	}
	return a.current.Path
}

func (a *AudioSource) Play() {
	if a.current == nil {
		return
	}
	a.backend.Stop(*a.current)
	a.backend.Play(*a.current)
}

func (a *AudioSource) Stop() {
	if a.current != nil {
		a.backend.Stop(*a.current)
	}
}

func (a *AudioSource) IsPlaying() bool {
	return a.current != nil && a.backend.IsPlaying(*a.current)
}

func (a *AudioSource) SetVolume(vol float32) {
	a.Volume = vol
	for _, clip := range a.clips {
		a.backend.SetVolume(clip, vol)
	}
}
