package components

import (
	"math"

	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GroundedVerticalVelocity keeps a grounded character pressed onto the
// surface so the mover keeps reporting contact.
const GroundedVerticalVelocity float32 = -0.5

// ClampPitch applies a vertical look delta to pitch and clamps the result
// to ±rangeDeg. Positive lookY (pointer moving down) lowers the view.
func ClampPitch(pitch, lookY, rangeDeg float32) float32 {
	pitch -= lookY
	if pitch > rangeDeg {
		return rangeDeg
	}
	if pitch < -rangeDeg {
		return -rangeDeg
	}
	return pitch
}

// HorizontalVelocity turns a local move input (x strafe, y forward) into a
// world-space velocity for a heading of yawDeg. Yaw 0 faces -Z.
func HorizontalVelocity(move rl.Vector2, speed, yawDeg float32) rl.Vector3 {
	yaw := float64(yawDeg) * math.Pi / 180
	sin, cos := float32(math.Sin(yaw)), float32(math.Cos(yaw))
	x, y := move.X*speed, move.Y*speed
	return rl.Vector3{
		X: x*cos - y*sin,
		Z: -x*sin - y*cos,
	}
}

// VerticalVelocity advances the jump/gravity state one tick. Grounded
// characters rest at GroundedVerticalVelocity unless jump is held, which
// launches them at jumpForce every grounded tick it stays held. Airborne
// characters accelerate downward without a terminal velocity.
func VerticalVelocity(current float32, grounded, jumpHeld bool, jumpForce, gravity, deltaTime float32) float32 {
	if !grounded {
		return current - gravity*deltaTime
	}
	if jumpHeld {
		return jumpForce
	}
	return GroundedVerticalVelocity
}

// FootstepDue reports whether a footstep should sound this tick.
func FootstepDue(grounded bool, move rl.Vector2, now, nextStep float64, horizontalSpeed, threshold float32) bool {
	return grounded &&
		rl.Vector2Length(move) > 0 &&
		now >= nextStep &&
		horizontalSpeed > threshold
}

// PickFootstep chooses the next clip index out of count, never repeating
// last when there are two or more clips. It draws from [0, count-1) and
// shifts draws at or above last up by one. With last = 0 (the initial
// value) index 0 is never chosen, so the first step always skips it.
// Returns -1 when there are no clips.
func PickFootstep(rng engine.Rand, count, last int) int {
	switch {
	case count <= 0:
		return -1
	case count == 1:
		return 0
	}
	i := rng.IntN(count - 1)
	if i >= last {
		i++
	}
	return i
}
