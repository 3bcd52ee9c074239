package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"firstperson/internal/audio"
	"firstperson/internal/components"
	"firstperson/internal/config"
	"firstperson/internal/engine"
	"firstperson/internal/input"
	"firstperson/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

// Players falling below KillY are put back at the spawn point.
const KillY = -20

type Options struct {
	Seed uint64
}

type Game struct {
	Config   *config.Config
	World    *world.World
	Renderer *world.Renderer
	HUD      *HUD

	cursor engine.Cursor
	rng    *rand.Rand

	footsteps int
	lastStep  components.FootstepEvent

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config, opts Options) *Game {
	return &Game{
		Config:   cfg,
		Renderer: world.NewRenderer(),
		HUD:      NewHUD(),
		cursor:   &input.RaylibCursor{},
		rng:      rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(win.TargetFPS)

	backend, err := audio.Open(g.Config.Audio.Backend)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warn().Err(err).Msg("closing audio backend")
		}
	}()

	actions, err := input.NewActionMap(g.Config.Input, input.RaylibDevice{})
	if err != nil {
		return err
	}

	if err := g.Load(world.Deps{Input: actions, Cursor: g.cursor, Audio: backend, Rand: g.rng}); err != nil {
		return err
	}

	initHUDStyle()
	log.Info().Str("audio", g.Config.Audio.Backend).Msg("running")

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

// Load builds the world and hooks the footstep counter.
func (g *Game) Load(deps world.Deps) error {
	g.cursor = deps.Cursor
	w, err := world.New(g.Config, deps)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	g.World = w
	g.World.Controller.Footstep.AddListener(func(e components.FootstepEvent) {
		g.footsteps++
		g.lastStep = e
	})
	return nil
}

func (g *Game) Update(deltaTime float32) {
	updateStart := time.Now()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.ToggleControls()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.HUD.Visible = !g.HUD.Visible
	}

	g.Step(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// Step advances the simulation one tick without touching the window.
func (g *Game) Step(deltaTime float32) {
	g.World.Update(deltaTime)

	if g.World.Player.Transform.Position.Y < KillY {
		spawn := g.Config.Player.Spawn
		log.Info().Float32("y", g.World.Player.Transform.Position.Y).Msg("fell out of the arena, respawning")
		g.World.Respawn(rl.Vector3{X: spawn[0], Y: spawn[1], Z: spawn[2]})
	}
}

// ToggleControls flips the controller's master switch and releases the
// cursor while controls are off.
func (g *Game) ToggleControls() {
	g.SetControlsEnabled(!g.World.Controller.ControlsEnabled())
}

func (g *Game) SetControlsEnabled(enabled bool) {
	if enabled == g.World.Controller.ControlsEnabled() {
		return
	}
	g.World.Controller.SetControlsEnabled(enabled)
	if enabled {
		g.cursor.Lock()
	} else {
		g.cursor.Unlock()
	}
	log.Debug().Bool("enabled", enabled).Msg("player controls")
}

func (g *Game) Draw() {
	camera := g.World.Camera.GetRaylibCamera()

	rl.BeginDrawing()

	drawStart := time.Now()
	g.Renderer.Draw(camera, g.World.Scene)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	rl.DrawText("WASD to move, Shift to sprint, Space to jump, Tab to release the mouse", 10, 10, 20, rl.DarkGray)
	rl.DrawFPS(10, 35)

	if g.HUD.Visible {
		stats := g.Stats()
		if enabled := g.HUD.Draw(stats); enabled != stats.ControlsEnabled {
			g.SetControlsEnabled(enabled)
		}
	}

	rl.EndDrawing()
}

// How far the HUD looks for the object under the crosshair.
const lookDistance = 50

// Stats snapshots the player state shown on the HUD.
func (g *Game) Stats() Stats {
	pc := g.World.Controller
	mover := pc.Mover()
	v := mover.Velocity()
	s := Stats{
		ControlsEnabled: pc.ControlsEnabled(),
		Grounded:        mover.IsGrounded(),
		Speed:           rl.Vector2Length(rl.Vector2{X: v.X, Y: v.Z}),
		Vertical:        pc.Movement().Y,
		Pitch:           pc.Pitch(),
		Yaw:             g.World.Player.Transform.Rotation.Y,
		Position:        g.World.Player.Transform.Position,
		Now:             g.World.Scene.Clock.Now(),
		NextStep:        pc.NextStepTime(),
		Footsteps:       g.footsteps,
		LastClip:        g.lastStep.Clip,
		Drawn:           g.Renderer.Drawn,
		Culled:          g.Renderer.Culled,
		UpdateMs:        g.updateMs,
		DrawMs:          g.drawMs,
	}

	eye := g.World.Camera.GetGameObject()
	if hit, ok := g.World.Raycast(eye.WorldPosition(), eye.Forward(), lookDistance); ok {
		s.LookingAt = hit.GameObject.Name
		s.LookDistance = hit.Distance
	}
	return s
}
