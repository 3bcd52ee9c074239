package components

import (
	"fmt"
	"strings"

	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func() engine.Serializable {
		return NewMeshRenderer(MeshCube, rl.LightGray, rl.Vector3{X: 1, Y: 1, Z: 1})
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshNames = map[MeshType]string{
	MeshCube:   "cube",
	MeshSphere: "sphere",
	MeshPlane:  "plane",
}

func (m MeshType) String() string {
	if name, ok := meshNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MeshType(%d)", int(m))
}

func ParseMeshType(name string) (MeshType, bool) {
	for t, n := range meshNames {
		if strings.EqualFold(n, name) {
			return t, true
		}
	}
	return MeshCube, false
}

// MeshRenderer draws a flat-shaded primitive at the object's world position.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Wires    bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) TypeName() string {
	return "MeshRenderer"
}

func (m *MeshRenderer) Serialize() map[string]any {
	return map[string]any{
		"type":  "MeshRenderer",
		"mesh":  m.MeshType.String(),
		"color": ColorName(m.Color),
		"size":  []any{m.Size.X, m.Size.Y, m.Size.Z},
		"wires": m.Wires,
	}
}

func (m *MeshRenderer) Deserialize(data map[string]any) {
	if name, ok := engine.String(data, "mesh"); ok {
		if t, ok := ParseMeshType(name); ok {
			m.MeshType = t
		}
	}
	if name, ok := engine.String(data, "color"); ok {
		m.Color = LookupColor(name)
	}
	if x, y, z, ok := engine.Vector3(data, "size"); ok {
		m.Size = rl.Vector3{X: x, Y: y, Z: z}
	}
	if wires, ok := engine.Bool(data, "wires"); ok {
		m.Wires = wires
	}
}

// Bounds returns the drawn extent as a center and bounding radius.
func (m *MeshRenderer) Bounds() (rl.Vector3, float32) {
	g := m.GetGameObject()
	s := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}
	if m.MeshType == MeshSphere {
		return g.WorldPosition(), size.X
	}
	return g.WorldPosition(), rl.Vector3Length(size) / 2
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	s := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(pos, size, m.Color)
		if m.Wires {
			rl.DrawCubeWiresV(pos, size, rl.DarkGray)
		}
	case MeshSphere:
		rl.DrawSphere(pos, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}
