// Package audio plays short clips through a pluggable backend.
package audio

import (
	"errors"
	"fmt"
	"strings"
)

// Clip is a handle to a loaded sound.
type Clip struct {
	ID   uint64
	Path string
}

// Backend loads and plays clips. Implementations are safe for use from the
// game loop goroutine; BeepBackend also tolerates its speaker goroutine.
type Backend interface {
	Load(path string) (Clip, error)
	Play(c Clip)
	Stop(c Clip)
	IsPlaying(c Clip) bool
	SetVolume(c Clip, volume float32)
	Close() error
}

var ErrUnknownBackend = errors.New("unknown audio backend")

// Open creates and initializes a backend by name: "raylib", "beep" or "none".
func Open(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "raylib":
		return OpenRaylib(), nil
	case "beep":
		b := NewBeepBackend(DefaultSampleRate)
		if err := b.Open(); err != nil {
			return nil, fmt.Errorf("open beep speaker: %w", err)
		}
		return b, nil
	case "none", "":
		return NewNullBackend(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// NullBackend accepts every call and produces no sound. It remembers what
// was played, which makes it useful headless.
type NullBackend struct {
	nextID uint64
	Plays  []Clip
}

func NewNullBackend() *NullBackend {
	return &NullBackend{}
}

func (n *NullBackend) Load(path string) (Clip, error) {
	n.nextID++
	return Clip{ID: n.nextID, Path: path}, nil
}

func (n *NullBackend) Play(c Clip) {
	n.Plays = append(n.Plays, c)
}

func (n *NullBackend) Stop(c Clip)                      {}
func (n *NullBackend) IsPlaying(c Clip) bool            { return false }
func (n *NullBackend) SetVolume(c Clip, volume float32) {}
func (n *NullBackend) Close() error                     { return nil }
