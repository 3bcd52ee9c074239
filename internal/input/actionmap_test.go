package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDevice struct {
	down    map[int32]bool
	mouse   rl.Vector2
	pad     bool
	axes    map[int32]float32
	buttons map[int32]bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{down: map[int32]bool{}, axes: map[int32]float32{}, buttons: map[int32]bool{}}
}

func (d *fakeDevice) KeyDown(key int32) bool            { return d.down[key] }
func (d *fakeDevice) MouseDelta() rl.Vector2            { return d.mouse }
func (d *fakeDevice) GamepadAvailable(int32) bool       { return d.pad }
func (d *fakeDevice) GamepadAxis(_, axis int32) float32 { return d.axes[axis] }
func (d *fakeDevice) GamepadButtonDown(_, b int32) bool { return d.buttons[b] }

func newMap(t *testing.T, dev Device) *ActionMap {
	t.Helper()
	m, err := NewActionMap(DefaultBindings(), dev)
	require.NoError(t, err)
	return m
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want int32
	}{
		{"W", rl.KeyW},
		{"w", rl.KeyW},
		{"Space", rl.KeySpace},
		{"LeftShift", rl.KeyLeftShift},
		{"left_shift", rl.KeyLeftShift},
		{"7", rl.KeySeven},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseKey("Hyper")
	assert.ErrorContains(t, err, `unknown key "Hyper"`)
}

func TestNewActionMapRejectsBadBindings(t *testing.T) {
	b := DefaultBindings()
	b.Jump = "Hyper"
	b.Forward = ""

	_, err := NewActionMap(b, newFakeDevice())
	require.Error(t, err)
	assert.ErrorContains(t, err, "jump")
	assert.ErrorContains(t, err, "forward: no key bound")
}

func TestMoveComposite(t *testing.T) {
	tests := []struct {
		name string
		keys []int32
		want rl.Vector2
	}{
		{"idle", nil, rl.Vector2{}},
		{"forward", []int32{rl.KeyW}, rl.Vector2{Y: 1}},
		{"back", []int32{rl.KeyS}, rl.Vector2{Y: -1}},
		{"strafe right", []int32{rl.KeyD}, rl.Vector2{X: 1}},
		{"opposites cancel", []int32{rl.KeyA, rl.KeyD}, rl.Vector2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice()
			for _, k := range tt.keys {
				dev.down[k] = true
			}
			assert.Equal(t, tt.want, newMap(t, dev).ReadVector2(Move))
		})
	}
}

func TestMoveDiagonalIsUnitLength(t *testing.T) {
	dev := newFakeDevice()
	dev.down[rl.KeyW] = true
	dev.down[rl.KeyA] = true

	v := newMap(t, dev).ReadVector2(Move)
	assert.InDelta(t, 1, rl.Vector2Length(v), 1e-6)
	assert.Less(t, v.X, float32(0))
	assert.Greater(t, v.Y, float32(0))
}

func TestGamepadStickOverridesKeys(t *testing.T) {
	dev := newFakeDevice()
	dev.pad = true
	dev.down[rl.KeyD] = true
	dev.axes[rl.GamepadAxisLeftY] = -0.6 // pushed up
	m := newMap(t, dev)

	assert.InDelta(t, 0.6, m.ReadVector2(Move).Y, 1e-6)
	assert.Zero(t, m.ReadVector2(Move).X)

	dev.axes[rl.GamepadAxisLeftY] = -0.1
	assert.Equal(t, rl.Vector2{X: 1}, m.ReadVector2(Move), "inside dead zone the keys win")

	dev.axes[rl.GamepadAxisLeftX] = 1
	dev.axes[rl.GamepadAxisLeftY] = -1
	assert.InDelta(t, 1, rl.Vector2Length(m.ReadVector2(Move)), 1e-6, "corner is clamped")
}

func TestGamepadIgnoredWhenDisabled(t *testing.T) {
	dev := newFakeDevice()
	dev.pad = true
	dev.axes[rl.GamepadAxisLeftY] = -1
	dev.buttons[rl.GamepadButtonRightFaceDown] = true

	b := DefaultBindings()
	b.Gamepad = -1
	m, err := NewActionMap(b, dev)
	require.NoError(t, err)

	assert.Equal(t, rl.Vector2{}, m.ReadVector2(Move))
	assert.False(t, m.IsPressed(Jump))
}

func TestLook(t *testing.T) {
	dev := newFakeDevice()
	dev.mouse = rl.Vector2{X: 4, Y: -2}
	b := DefaultBindings()
	b.MouseScale = 0.5
	m, err := NewActionMap(b, dev)
	require.NoError(t, err)

	assert.Equal(t, rl.Vector2{X: 2, Y: -1}, m.ReadVector2(Look))

	dev.pad = true
	dev.axes[rl.GamepadAxisRightX] = 0.5
	assert.Equal(t, rl.Vector2{X: 6, Y: -1}, m.ReadVector2(Look))
}

func TestButtons(t *testing.T) {
	dev := newFakeDevice()
	m := newMap(t, dev)

	assert.False(t, m.IsPressed(Sprint))
	assert.False(t, m.IsPressed(Jump))

	dev.down[rl.KeyLeftShift] = true
	assert.True(t, m.IsPressed(Sprint))

	dev.pad = true
	dev.buttons[rl.GamepadButtonRightFaceDown] = true
	assert.True(t, m.IsPressed(Jump))

	assert.False(t, m.IsPressed("Crouch"), "unknown actions are never pressed")
	assert.Equal(t, rl.Vector2{}, m.ReadVector2("Crouch"))
}
