package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Y: 1},
		Target:     rl.Vector3{Y: 1, Z: -1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       70,
		Projection: rl.CameraPerspective,
	}
}

func TestFrustumContainsSphere(t *testing.T) {
	f := ExtractFrustum(testCamera(), 16.0/9.0)

	tests := []struct {
		name   string
		center rl.Vector3
		radius float32
		want   bool
	}{
		{"ahead", rl.Vector3{Y: 1, Z: -10}, 1, true},
		{"behind", rl.Vector3{Y: 1, Z: 10}, 1, false},
		{"far left", rl.Vector3{X: -100, Y: 1, Z: -10}, 1, false},
		{"large sphere around the eye", rl.Vector3{Y: 1, Z: 2}, 5, true},
		{"beyond far plane", rl.Vector3{Y: 1, Z: -2000}, 1, false},
	}
	for _, tt := range tests {
		if got := f.ContainsSphere(tt.center, tt.radius); got != tt.want {
			t.Errorf("%s: ContainsSphere = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFrustumContainsAABB(t *testing.T) {
	f := ExtractFrustum(testCamera(), 1)

	if !f.ContainsAABB(rl.Vector3{X: -1, Y: 0, Z: -6}, rl.Vector3{X: 1, Y: 2, Z: -4}) {
		t.Error("box ahead should be visible")
	}
	if f.ContainsAABB(rl.Vector3{X: -1, Y: 0, Z: 4}, rl.Vector3{X: 1, Y: 2, Z: 6}) {
		t.Error("box behind should be culled")
	}
	// floor under the camera reaches into view
	if !f.ContainsAABB(rl.Vector3{X: -20, Y: -1, Z: -20}, rl.Vector3{X: 20, Y: 0, Z: 20}) {
		t.Error("floor should be visible")
	}
	if !f.ContainsPoint(rl.Vector3{Y: 1, Z: -5}) {
		t.Error("point ahead should be inside")
	}
}
