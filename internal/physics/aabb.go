package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3Scale(size, 0.5)
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Translate(offset rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, offset), Max: rl.Vector3Add(a.Max, offset)}
}

// Intersects reports overlap. Touching faces count as overlapping.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap. Ties prefer X, then Y, then Z.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	push := func(forward, backward float32) float32 {
		// forward: depth to exit along +axis, backward: along -axis
		if forward < backward {
			return forward
		}
		return -backward
	}
	px := push(b.Max.X-a.Min.X, a.Max.X-b.Min.X)
	py := push(b.Max.Y-a.Min.Y, a.Max.Y-b.Min.Y)
	pz := push(b.Max.Z-a.Min.Z, a.Max.Z-b.Min.Z)

	ax, ay, az := abs(px), abs(py), abs(pz)
	switch {
	case ax <= ay && ax <= az:
		return rl.Vector3{X: px}
	case ay <= az:
		return rl.Vector3{Y: py}
	default:
		return rl.Vector3{Z: pz}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
