package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Device is the raw hardware state an ActionMap polls.
type Device interface {
	KeyDown(key int32) bool
	MouseDelta() rl.Vector2
	GamepadAvailable(pad int32) bool
	GamepadAxis(pad, axis int32) float32
	GamepadButtonDown(pad, button int32) bool
}

// RaylibDevice reads keyboard, mouse and gamepad state from raylib.
// It must only be used after the window is open.
type RaylibDevice struct{}

func (RaylibDevice) KeyDown(key int32) bool              { return rl.IsKeyDown(key) }
func (RaylibDevice) MouseDelta() rl.Vector2              { return rl.GetMouseDelta() }
func (RaylibDevice) GamepadAvailable(pad int32) bool     { return rl.IsGamepadAvailable(pad) }
func (RaylibDevice) GamepadAxis(pad, axis int32) float32 { return rl.GetGamepadAxisMovement(pad, axis) }
func (RaylibDevice) GamepadButtonDown(pad, b int32) bool { return rl.IsGamepadButtonDown(pad, b) }

// RaylibCursor locks the OS cursor to the window for mouse look.
type RaylibCursor struct {
	locked bool
}

func (c *RaylibCursor) Lock() {
	rl.DisableCursor()
	c.locked = true
}

func (c *RaylibCursor) Unlock() {
	rl.EnableCursor()
	c.locked = false
}

func (c *RaylibCursor) Locked() bool {
	return c.locked
}
