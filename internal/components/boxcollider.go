package components

import (
	"firstperson/internal/engine"
	"firstperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func() engine.Serializable {
		return NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

// BoxCollider is an axis-aligned solid box. Rotation is ignored.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) TypeName() string {
	return "BoxCollider"
}

func (b *BoxCollider) Serialize() map[string]any {
	return map[string]any{
		"type":   "BoxCollider",
		"size":   []any{b.Size.X, b.Size.Y, b.Size.Z},
		"offset": []any{b.Offset.X, b.Offset.Y, b.Offset.Z},
	}
}

func (b *BoxCollider) Deserialize(data map[string]any) {
	if x, y, z, ok := engine.Vector3(data, "size"); ok {
		b.Size = rl.Vector3{X: x, Y: y, Z: z}
	}
	if x, y, z, ok := engine.Vector3(data, "offset"); ok {
		b.Offset = rl.Vector3{X: x, Y: y, Z: z}
	}
}

// WorldSize is the collider size scaled by the object's world scale.
func (b *BoxCollider) WorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	s := g.WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	g := b.GetGameObject()
	center := rl.Vector3Add(g.WorldPosition(), b.Offset)
	return physics.NewAABBFromCenter(center, b.WorldSize())
}
