package components

import (
	"math"

	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"
)

// Logical input actions read by the player controller.
const (
	ActionMove   = "Move"
	ActionLook   = "Look"
	ActionSprint = "Sprint"
	ActionJump   = "Jump"
)

// PitchTarget receives the absolute view pitch. Camera implements it.
type PitchTarget interface {
	SetLocalPitch(degrees float32)
}

// PlayerDeps are the collaborators a PlayerController needs from the host.
// Mover and the camera are found on the GameObject at Start unless set here.
type PlayerDeps struct {
	Input  engine.InputSource
	Cursor engine.Cursor
	Audio  engine.AudioSink
	Clock  engine.Clock
	Rand   engine.Rand
	Mover  engine.Mover
	Camera PitchTarget
}

// FootstepEvent describes one played footstep.
type FootstepEvent struct {
	Index     int
	Clip      string
	Time      float64
	Sprinting bool
}

// PlayerController drives first-person look, walking, jumping and
// footstep audio from polled input, once per tick.
//
// Yaw rotates the owning object's heading. Pitch is accumulated, clamped
// and written to the camera child as an absolute angle every tick.
type PlayerController struct {
	engine.BaseComponent

	Settings PlayerSettings

	// Footstep fires after each footstep clip is started.
	Footstep engine.EventWithArg[FootstepEvent]

	deps PlayerDeps

	controlsEnabled bool
	movement        rl.Vector3
	pitch           float32
	nextStepTime    float64
	lastStepIndex   int
}

func NewPlayerController(settings PlayerSettings, deps PlayerDeps) *PlayerController {
	return &PlayerController{
		Settings:        settings,
		deps:            deps,
		controlsEnabled: true,
	}
}

// Start resolves collaborators, locks the cursor and resets runtime state.
// It panics if a collaborator is missing; the per-tick code assumes them.
func (p *PlayerController) Start() {
	g := p.GetGameObject()
	if g == nil {
		panic("player controller: not attached to a GameObject")
	}

	if p.deps.Mover == nil {
		p.deps.Mover = engine.GetComponent[engine.Mover](g)
	}
	if p.deps.Camera == nil {
		for _, child := range g.Children {
			if target, ok := engine.FindComponentInChildren[PitchTarget](child); ok {
				p.deps.Camera = target
				break
			}
		}
	}

	switch {
	case p.deps.Mover == nil:
		panic("player controller: " + g.Name + " has no mover")
	case p.deps.Camera == nil:
		panic("player controller: " + g.Name + " has no camera child")
	case p.deps.Input == nil:
		panic("player controller: input source is required")
	case p.deps.Cursor == nil:
		panic("player controller: cursor control is required")
	case p.deps.Audio == nil:
		panic("player controller: audio sink is required")
	case p.deps.Clock == nil:
		panic("player controller: clock is required")
	case p.deps.Rand == nil:
		panic("player controller: random source is required")
	}

	p.deps.Cursor.Lock()

	p.movement = rl.Vector3{}
	p.pitch = 0
	p.nextStepTime = 0
	p.lastStepIndex = 0

	log.Info().
		Str("object", g.Name).
		Float32("walkSpeed", p.Settings.WalkSpeed).
		Float32("sprintSpeed", p.Settings.SprintSpeed).
		Bool("jump", p.Settings.JumpEnabled).
		Bool("sprint", p.Settings.SprintEnabled).
		Int("footstepClips", len(p.Settings.FootstepClips)).
		Msg("player controller started")
}

func (p *PlayerController) Update(deltaTime float32) {
	if !p.controlsEnabled {
		return
	}
	g := p.GetGameObject()

	p.handleLook(g)
	move := p.deps.Input.ReadVector2(ActionMove)
	p.handleMovement(g, move, deltaTime)
	p.footstepLoop(move)
}

func (p *PlayerController) handleLook(g *engine.GameObject) {
	look := rl.Vector2Scale(p.deps.Input.ReadVector2(ActionLook), p.Settings.LookSensitivity)

	yaw := g.Transform.Rotation.Y - look.X
	g.Transform.Rotation.Y = float32(math.Mod(float64(yaw), 360))

	p.pitch = ClampPitch(p.pitch, look.Y, p.Settings.LookAngleRange)
	p.deps.Camera.SetLocalPitch(p.pitch)
}

func (p *PlayerController) handleMovement(g *engine.GameObject, move rl.Vector2, deltaTime float32) {
	speed := p.Settings.WalkSpeed
	if p.isSprinting() {
		speed = p.Settings.SprintSpeed
	}

	horizontal := HorizontalVelocity(move, speed, g.Transform.Rotation.Y)

	if p.Settings.JumpEnabled {
		p.movement.Y = VerticalVelocity(
			p.movement.Y,
			p.deps.Mover.IsGrounded(),
			p.deps.Input.IsPressed(ActionJump),
			p.Settings.JumpForce,
			p.Settings.Gravity,
			deltaTime,
		)
	}

	p.movement.X = horizontal.X
	p.movement.Z = horizontal.Z

	p.deps.Mover.Move(rl.Vector3Scale(p.movement, deltaTime), deltaTime)
}

func (p *PlayerController) footstepLoop(move rl.Vector2) {
	sprinting := p.isSprinting()
	interval := p.Settings.WalkStepInterval
	if sprinting {
		interval = p.Settings.SprintStepInterval
	}

	v := p.deps.Mover.Velocity()
	horizontalSpeed := rl.Vector2Length(rl.Vector2{X: v.X, Y: v.Z})
	now := p.deps.Clock.Now()

	if !FootstepDue(p.deps.Mover.IsGrounded(), move, now, p.nextStepTime, horizontalSpeed, p.Settings.VelocityThreshold) {
		return
	}
	p.nextStepTime = now + float64(interval)

	clips := p.Settings.FootstepClips
	index := PickFootstep(p.deps.Rand, len(clips), p.lastStepIndex)
	if index < 0 {
		return
	}
	p.lastStepIndex = index

	p.deps.Audio.SetClip(clips[index])
	p.deps.Audio.Play()

	log.Debug().Int("index", index).Float64("time", now).Bool("sprint", sprinting).Msg("footstep")
	p.Footstep.Invoke(FootstepEvent{Index: index, Clip: clips[index], Time: now, Sprinting: sprinting})
}

func (p *PlayerController) isSprinting() bool {
	return p.deps.Input.IsPressed(ActionSprint) && p.Settings.SprintEnabled
}

// SetControlsEnabled is the master switch. While disabled, Update does nothing.
func (p *PlayerController) SetControlsEnabled(enabled bool) {
	p.controlsEnabled = enabled
}

func (p *PlayerController) ControlsEnabled() bool {
	return p.controlsEnabled
}

// Pitch is the current view pitch in degrees.
func (p *PlayerController) Pitch() float32 {
	return p.pitch
}

// Movement is the velocity requested from the mover on the last tick.
func (p *PlayerController) Movement() rl.Vector3 {
	return p.movement
}

func (p *PlayerController) NextStepTime() float64 {
	return p.nextStepTime
}

func (p *PlayerController) Mover() engine.Mover {
	return p.deps.Mover
}
