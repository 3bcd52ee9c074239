package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastHit is where a ray first enters a box.
type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast intersects a ray with the box using the slab method. direction
// need not be normalized; Distance is measured along its normalized form.
// A ray starting inside the box hits the far face.
func (a AABB) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	if direction == (rl.Vector3{}) {
		return RaycastHit{}, false
	}

	tmin := float32(-1e30)
	tmax := float32(1e30)

	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !slab(origin.X, direction.X, a.Min.X, a.Max.X) ||
		!slab(origin.Y, direction.Y, a.Min.Y, a.Max.Y) ||
		!slab(origin.Z, direction.Z, a.Min.Z, a.Max.Z) {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal of the face the point lies on
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case abs(point.X-a.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case abs(point.X-a.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case abs(point.Y-a.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case abs(point.Y-a.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case abs(point.Z-a.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
