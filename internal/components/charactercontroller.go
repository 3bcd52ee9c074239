package components

import (
	"firstperson/internal/engine"
	"firstperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("CharacterController", func() engine.Serializable {
		return NewCharacterController()
	})
}

// CharacterController moves a box-shaped body through the world's colliders.
// It implements engine.Mover: grounded and velocity describe the last Move.
// The body is centered on the object's position.
type CharacterController struct {
	engine.BaseComponent

	Height     float32 // Total height of the body
	Radius     float32 // Half-width of the body
	StepHeight float32 // Max height of steps to climb

	// Runtime state (not serialized)
	velocity   rl.Vector3
	isGrounded bool
}

func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     1.8,
		Radius:     0.4,
		StepHeight: 0.4,
	}
}

func (c *CharacterController) TypeName() string {
	return "CharacterController"
}

func (c *CharacterController) Serialize() map[string]any {
	return map[string]any{
		"type":       "CharacterController",
		"height":     c.Height,
		"radius":     c.Radius,
		"stepHeight": c.StepHeight,
	}
}

func (c *CharacterController) Deserialize(data map[string]any) {
	if v, ok := engine.Float(data, "height"); ok {
		c.Height = v
	}
	if v, ok := engine.Float(data, "radius"); ok {
		c.Radius = v
	}
	if v, ok := engine.Float(data, "stepHeight"); ok {
		c.StepHeight = v
	}
}

// Move moves the character by motion, handling collisions and steps, and
// returns the displacement actually applied.
func (c *CharacterController) Move(motion rl.Vector3, deltaTime float32) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	c.isGrounded = false
	originalPos := g.Transform.Position

	colliders := c.colliders(g)
	if len(colliders) == 0 {
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	} else {
		// Horizontal first so walking into a step can climb it before gravity settles
		if motion.X != 0 || motion.Z != 0 {
			c.moveWithCollision(g, rl.Vector3{X: motion.X, Z: motion.Z}, colliders)
		}
		if motion.Y != 0 {
			c.moveWithCollision(g, rl.Vector3{Y: motion.Y}, colliders)
		}
	}

	actual := rl.Vector3Subtract(g.Transform.Position, originalPos)
	if deltaTime > 0 {
		c.velocity = rl.Vector3Scale(actual, 1/deltaTime)
	} else {
		c.velocity = rl.Vector3{}
	}
	return actual
}

func (c *CharacterController) colliders(g *engine.GameObject) []*BoxCollider {
	if g.Scene == nil || g.Scene.World == nil {
		return nil
	}
	var out []*BoxCollider
	for _, obj := range g.Scene.World.GetCollidableObjects() {
		if obj == g || !obj.Active {
			continue
		}
		if col := engine.GetComponent[*BoxCollider](obj); col != nil {
			out = append(out, col)
		}
	}
	return out
}

func (c *CharacterController) bounds(pos rl.Vector3) physics.AABB {
	return physics.NewAABBFromCenter(pos, rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2})
}

func (c *CharacterController) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []*BoxCollider) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	body := c.bounds(g.Transform.Position)

	for _, col := range colliders {
		static := col.GetAABB()
		if !body.Intersects(static) {
			continue
		}

		pushOut := body.Resolve(static)
		horizontalHit := (pushOut.X != 0 || pushOut.Z != 0) && pushOut.Y == 0

		if horizontalHit && motion.Y == 0 {
			stepHeight := static.Max.Y - body.Min.Y
			if stepHeight > 0 && stepHeight <= c.StepHeight {
				stepped := body.Translate(rl.Vector3{Y: stepHeight + 0.01})
				if !stepped.Intersects(static) {
					g.Transform.Position.Y += stepHeight + 0.01
					body = stepped
					c.isGrounded = true
					continue
				}
			}
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		body = body.Translate(pushOut)

		if pushOut.Y > 0 {
			c.isGrounded = true
		}
	}
}

// IsGrounded reports whether the last Move ended resting on a surface.
func (c *CharacterController) IsGrounded() bool {
	return c.isGrounded
}

// Velocity is the displacement of the last Move divided by its delta time.
func (c *CharacterController) Velocity() rl.Vector3 {
	return c.velocity
}
