package audio

import (
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type raylibSource struct {
	sound  rl.Sound
	volume float32
}

// RaylibBackend plays clips on raylib's audio device.
type RaylibBackend struct {
	mu      sync.Mutex
	sources map[uint64]*raylibSource
	nextID  uint64
}

// OpenRaylib initializes the raylib audio device.
func OpenRaylib() *RaylibBackend {
	rl.InitAudioDevice()
	return &RaylibBackend{
		sources: make(map[uint64]*raylibSource),
		nextID:  1,
	}
}

func (r *RaylibBackend) Load(path string) (Clip, error) {
	sound := rl.LoadSound(path)
	if !rl.IsSoundValid(sound) {
		return Clip{}, fmt.Errorf("load sound %s: invalid or unsupported file", path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.sources[id] = &raylibSource{sound: sound, volume: 1}
	return Clip{ID: id, Path: path}, nil
}

func (r *RaylibBackend) Play(c Clip) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[c.ID]; ok {
		rl.SetSoundVolume(src.sound, src.volume)
		rl.PlaySound(src.sound)
	}
}

func (r *RaylibBackend) Stop(c Clip) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[c.ID]; ok {
		rl.StopSound(src.sound)
	}
}

func (r *RaylibBackend) IsPlaying(c Clip) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[c.ID]; ok {
		return rl.IsSoundPlaying(src.sound)
	}
	return false
}

func (r *RaylibBackend) SetVolume(c Clip, volume float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if src, ok := r.sources[c.ID]; ok {
		src.volume = volume
		rl.SetSoundVolume(src.sound, volume)
	}
}

// Close unloads every clip and shuts the audio device down.
func (r *RaylibBackend) Close() error {
	r.mu.Lock()
	for _, src := range r.sources {
		rl.UnloadSound(src.sound)
	}
	r.sources = nil
	r.mu.Unlock()
	rl.CloseAudioDevice()
	return nil
}
