package components

import (
	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func() engine.Serializable {
		return NewCamera()
	})
}

// Camera renders from its object's world position along the object's world
// yaw and pitch. On a player it sits on a child object so pitch stays local.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) TypeName() string {
	return "Camera"
}

func (c *Camera) Serialize() map[string]any {
	return map[string]any{
		"type": "Camera",
		"fov":  c.FOV,
	}
}

func (c *Camera) Deserialize(data map[string]any) {
	if v, ok := engine.Float(data, "fov"); ok {
		c.FOV = v
	}
}

// SetLocalPitch sets the camera object's local pitch in degrees.
func (c *Camera) SetLocalPitch(degrees float32) {
	if g := c.GetGameObject(); g != nil {
		g.Transform.Rotation.X = degrees
	}
}

func (c *Camera) LocalPitch() float32 {
	if g := c.GetGameObject(); g != nil {
		return g.Transform.Rotation.X
	}
	return 0
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, g.Forward()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
