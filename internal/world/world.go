// Package world builds the playable scene from configuration.
package world

import (
	"errors"
	"fmt"

	"firstperson/internal/audio"
	"firstperson/internal/components"
	"firstperson/internal/config"
	"firstperson/internal/engine"
	"firstperson/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

// Deps are the host services the player is wired to.
type Deps struct {
	Input  engine.InputSource
	Cursor engine.Cursor
	Audio  audio.Backend
	Rand   engine.Rand
}

type World struct {
	Scene *engine.Scene

	Player     *engine.GameObject
	Body       *components.CharacterController
	Controller *components.PlayerController
	Camera     *components.Camera
	Footsteps  *components.AudioSource
}

// New builds the arena and the player described by cfg and starts the scene.
func New(cfg *config.Config, deps Deps) (*World, error) {
	w := &World{Scene: engine.NewScene("Arena")}
	w.Scene.World = w

	for i, def := range cfg.Arena {
		g, err := BuildObject(def)
		if err != nil {
			return nil, fmt.Errorf("arena[%d]: %w", i, err)
		}
		w.Scene.AddGameObject(g)
	}

	w.buildPlayer(cfg.Player, cfg.Audio.Volume, deps)
	w.Scene.Start()

	log.Info().
		Int("objects", len(w.Scene.GameObjects)).
		Int("colliders", len(w.GetCollidableObjects())).
		Msg("world built")
	return w, nil
}

// BuildObject creates a GameObject and its registered components from def.
func BuildObject(def config.ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}

	var errs []error
	for _, c := range def.Components {
		comp, err := engine.CreateComponent(c.Type, c.Props)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", def.Name, err))
			continue
		}
		g.AddComponent(comp)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

func (w *World) buildPlayer(pc config.PlayerConfig, volume float32, deps Deps) {
	player := engine.NewGameObject("Player")
	player.Tags = []string{"Player"}
	player.Transform.Position = vec3(pc.Spawn)

	w.Body = components.NewCharacterController()
	w.Body.Height = pc.Height
	w.Body.Radius = pc.Radius
	w.Body.StepHeight = pc.StepHeight
	player.AddComponent(w.Body)

	w.Footsteps = components.NewAudioSource(deps.Audio)
	w.Footsteps.Volume = volume
	if err := w.Footsteps.Preload(pc.FootstepClips); err != nil {
		log.Warn().Err(err).Msg("some footstep clips failed to load")
	}
	player.AddComponent(w.Footsteps)

	w.Controller = components.NewPlayerController(pc.PlayerSettings, components.PlayerDeps{
		Input:  deps.Input,
		Cursor: deps.Cursor,
		Audio:  w.Footsteps,
		Clock:  w.Scene.Clock,
		Rand:   deps.Rand,
	})
	player.AddComponent(w.Controller)

	w.Scene.AddGameObject(player)

	eye := engine.NewGameObject("Eye")
	eye.Transform.Position.Y = pc.EyeHeight
	w.Camera = components.NewCamera()
	w.Camera.FOV = pc.FOV
	eye.AddComponent(w.Camera)
	player.AddChild(eye)

	w.Player = player
}

// GetCollidableObjects returns every active object with a BoxCollider,
// children included.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	var walk func(objects []*engine.GameObject)
	walk = func(objects []*engine.GameObject) {
		for _, g := range objects {
			if !g.Active {
				continue
			}
			if engine.GetComponent[*components.BoxCollider](g) != nil {
				result = append(result, g)
			}
			walk(g.Children)
		}
	}
	walk(w.Scene.GameObjects)
	return result
}

// RaycastHit is the closest collider a ray reaches.
type RaycastHit struct {
	physics.RaycastHit
	GameObject *engine.GameObject
}

// Raycast returns the nearest collidable object along the ray, ignoring
// the player's own body.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	var closest RaycastHit
	closest.Distance = maxDistance
	found := false

	for _, g := range w.GetCollidableObjects() {
		if g == w.Player {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](g)
		if hit, ok := box.GetAABB().Raycast(origin, direction, maxDistance); ok && hit.Distance <= closest.Distance {
			closest = RaycastHit{RaycastHit: hit, GameObject: g}
			found = true
		}
	}
	return closest, found
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Respawn puts the player back at pos, e.g. after falling off the arena.
func (w *World) Respawn(pos rl.Vector3) {
	w.Player.Transform.Position = pos
	w.Controller.Start()
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
