package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Mover is implemented by components that move a body through the world
// while resolving collisions. Used by the player controller.
type Mover interface {
	// Move displaces the body by motion over deltaTime seconds and returns
	// the displacement actually applied after collision resolution.
	Move(motion rl.Vector3, deltaTime float32) rl.Vector3
	IsGrounded() bool
	// Velocity is the world velocity produced by the last Move.
	Velocity() rl.Vector3
}

// InputSource exposes named logical input actions polled once per tick.
type InputSource interface {
	ReadVector2(action string) rl.Vector2
	IsPressed(action string) bool
}

// Cursor locks or releases the pointer.
type Cursor interface {
	Lock()
	Unlock()
	Locked() bool
}

// AudioSink plays one clip at a time. Play is fire-and-forget.
type AudioSink interface {
	SetClip(clip string)
	Play()
}

// Clock reports the current game time in seconds.
type Clock interface {
	Now() float64
}

// Rand is the random source used for gameplay choices. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
