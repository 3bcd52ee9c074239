package input

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Logical action names. They match the names the player controller polls.
const (
	Move   = "Move"
	Look   = "Look"
	Sprint = "Sprint"
	Jump   = "Jump"
)

// Bindings maps logical actions to physical controls.
type Bindings struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Sprint  string `yaml:"sprint"`
	Jump    string `yaml:"jump"`

	MouseScale float32 `yaml:"mouseScale"`

	// Gamepad is the raylib gamepad index; negative disables gamepad input.
	Gamepad          int32   `yaml:"gamepad"`
	GamepadLookScale float32 `yaml:"gamepadLookScale"`
	DeadZone         float32 `yaml:"deadZone"`
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward:          "W",
		Back:             "S",
		Left:             "A",
		Right:            "D",
		Sprint:           "LeftShift",
		Jump:             "Space",
		MouseScale:       1,
		Gamepad:          0,
		GamepadLookScale: 8,
		DeadZone:         0.2,
	}
}

// Validate checks that every key name resolves.
func (b Bindings) Validate() error {
	_, err := b.resolve()
	return err
}

type keySet struct {
	forward, back, left, right, sprint, jump int32
}

func (b Bindings) resolve() (keySet, error) {
	var ks keySet
	var errs []error
	for _, bind := range []struct {
		action string
		name   string
		key    *int32
	}{
		{"forward", b.Forward, &ks.forward},
		{"back", b.Back, &ks.back},
		{"left", b.Left, &ks.left},
		{"right", b.Right, &ks.right},
		{"sprint", b.Sprint, &ks.sprint},
		{"jump", b.Jump, &ks.jump},
	} {
		if bind.name == "" {
			errs = append(errs, fmt.Errorf("%s: no key bound", bind.action))
			continue
		}
		key, err := ParseKey(bind.name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", bind.action, err))
			continue
		}
		*bind.key = key
	}
	if b.DeadZone < 0 || b.DeadZone >= 1 {
		errs = append(errs, fmt.Errorf("deadZone must be in [0, 1), got %v", b.DeadZone))
	}
	return ks, errors.Join(errs...)
}

// ActionMap answers named-action queries from a Device.
type ActionMap struct {
	bindings Bindings
	keys     keySet
	device   Device
}

func NewActionMap(b Bindings, device Device) (*ActionMap, error) {
	keys, err := b.resolve()
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}
	return &ActionMap{bindings: b, keys: keys, device: device}, nil
}

// ReadVector2 returns the Move or Look vector. Move is (right, forward)
// with length at most 1. Look is pointer delta, positive X right and
// positive Y down. Other actions read as zero.
func (m *ActionMap) ReadVector2(action string) rl.Vector2 {
	switch action {
	case Move:
		return m.move()
	case Look:
		return m.look()
	}
	return rl.Vector2{}
}

// IsPressed reports whether a button action is held this tick.
func (m *ActionMap) IsPressed(action string) bool {
	switch action {
	case Sprint:
		return m.device.KeyDown(m.keys.sprint) || m.padButton(rl.GamepadButtonLeftThumb)
	case Jump:
		return m.device.KeyDown(m.keys.jump) || m.padButton(rl.GamepadButtonRightFaceDown)
	}
	return false
}

func (m *ActionMap) move() rl.Vector2 {
	if stick, ok := m.stick(rl.GamepadAxisLeftX, rl.GamepadAxisLeftY); ok {
		stick.Y = -stick.Y
		if rl.Vector2Length(stick) > 1 {
			stick = rl.Vector2Normalize(stick)
		}
		return stick
	}

	var v rl.Vector2
	if m.device.KeyDown(m.keys.forward) {
		v.Y++
	}
	if m.device.KeyDown(m.keys.back) {
		v.Y--
	}
	if m.device.KeyDown(m.keys.right) {
		v.X++
	}
	if m.device.KeyDown(m.keys.left) {
		v.X--
	}
	if v.X != 0 && v.Y != 0 {
		v = rl.Vector2Normalize(v)
	}
	return v
}

func (m *ActionMap) look() rl.Vector2 {
	look := rl.Vector2Scale(m.device.MouseDelta(), m.bindings.MouseScale)
	if stick, ok := m.stick(rl.GamepadAxisRightX, rl.GamepadAxisRightY); ok {
		look = rl.Vector2Add(look, rl.Vector2Scale(stick, m.bindings.GamepadLookScale))
	}
	return look
}

// stick reads a gamepad stick, reporting false inside the dead zone.
func (m *ActionMap) stick(axisX, axisY int32) (rl.Vector2, bool) {
	pad := m.bindings.Gamepad
	if pad < 0 || !m.device.GamepadAvailable(pad) {
		return rl.Vector2{}, false
	}
	v := rl.Vector2{X: m.device.GamepadAxis(pad, axisX), Y: m.device.GamepadAxis(pad, axisY)}
	if rl.Vector2Length(v) <= m.bindings.DeadZone {
		return rl.Vector2{}, false
	}
	return v, true
}

func (m *ActionMap) padButton(button int32) bool {
	pad := m.bindings.Gamepad
	return pad >= 0 && m.device.GamepadAvailable(pad) && m.device.GamepadButtonDown(pad, button)
}
