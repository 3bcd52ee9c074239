package world

import (
	"firstperson/internal/components"
	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	Background rl.Color
	ShowGrid   bool
	Culling    bool

	// Last frame
	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: rl.RayWhite,
		ShowGrid:   true,
		Culling:    true,
	}
}

// Draw renders every MeshRenderer in the scene from camera. It must be
// called between rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, scene *engine.Scene) {
	rl.ClearBackground(r.Background)

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := ExtractFrustum(camera, aspect)
	r.Drawn, r.Culled = 0, 0

	rl.BeginMode3D(camera)
	if r.ShowGrid {
		rl.DrawGrid(40, 1)
	}
	r.drawObjects(scene.GameObjects, &frustum)
	rl.EndMode3D()
}

func (r *Renderer) drawObjects(objects []*engine.GameObject, frustum *Frustum) {
	for _, g := range objects {
		if !g.Active {
			continue
		}
		if mesh := engine.GetComponent[*components.MeshRenderer](g); mesh != nil {
			if r.Visible(mesh, frustum) {
				mesh.Draw()
				r.Drawn++
			} else {
				r.Culled++
			}
		}
		r.drawObjects(g.Children, frustum)
	}
}

// Visible reports whether mesh can be seen through frustum.
func (r *Renderer) Visible(mesh *components.MeshRenderer, frustum *Frustum) bool {
	if !r.Culling {
		return true
	}
	center, radius := mesh.Bounds()
	return frustum.ContainsSphere(center, radius)
}
