package components

import (
	"math/rand/v2"
	"testing"

	"firstperson/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	vectors map[string]rl.Vector2
	held    map[string]bool
	reads   int
}

func newFakeInput() *fakeInput {
	return &fakeInput{vectors: map[string]rl.Vector2{}, held: map[string]bool{}}
}

func (f *fakeInput) ReadVector2(action string) rl.Vector2 {
	f.reads++
	return f.vectors[action]
}

func (f *fakeInput) IsPressed(action string) bool {
	f.reads++
	return f.held[action]
}

type fakeCursor struct{ locked bool }

func (c *fakeCursor) Lock()        { c.locked = true }
func (c *fakeCursor) Unlock()      { c.locked = false }
func (c *fakeCursor) Locked() bool { return c.locked }

type fakeSink struct {
	calls []string
}

func (s *fakeSink) SetClip(clip string) { s.calls = append(s.calls, "set:"+clip) }
func (s *fakeSink) Play()               { s.calls = append(s.calls, "play") }

func (s *fakeSink) played() []string {
	var clips []string
	for i, c := range s.calls {
		if c == "play" && i > 0 {
			clips = append(clips, s.calls[i-1][len("set:"):])
		}
	}
	return clips
}

// fakeMover applies motion verbatim and reports whatever grounded state the
// test sets.
type fakeMover struct {
	grounded bool
	moves    []rl.Vector3
	velocity rl.Vector3
}

func (m *fakeMover) Move(motion rl.Vector3, deltaTime float32) rl.Vector3 {
	m.moves = append(m.moves, motion)
	m.velocity = rl.Vector3Scale(motion, 1/deltaTime)
	return motion
}

func (m *fakeMover) IsGrounded() bool                  { return m.grounded }
func (m *fakeMover) Velocity() rl.Vector3              { return m.velocity }
func (m *fakeMover) Start()                            {}
func (m *fakeMover) Update(float32)                    {}
func (m *fakeMover) SetGameObject(*engine.GameObject)  {}
func (m *fakeMover) GetGameObject() *engine.GameObject { return nil }

type rig struct {
	player *engine.GameObject
	camera *engine.GameObject
	pc     *PlayerController
	input  *fakeInput
	cursor *fakeCursor
	sink   *fakeSink
	mover  *fakeMover
	clock  *engine.TickClock
}

func newRig(t *testing.T, settings PlayerSettings) *rig {
	t.Helper()
	r := &rig{
		player: engine.NewGameObject("Player"),
		camera: engine.NewGameObject("Camera"),
		input:  newFakeInput(),
		cursor: &fakeCursor{},
		sink:   &fakeSink{},
		mover:  &fakeMover{grounded: true},
		clock:  &engine.TickClock{},
	}
	r.player.AddChild(r.camera)
	r.camera.AddComponent(NewCamera())
	r.player.AddComponent(r.mover)
	r.pc = NewPlayerController(settings, PlayerDeps{
		Input:  r.input,
		Cursor: r.cursor,
		Audio:  r.sink,
		Clock:  r.clock,
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	r.player.AddComponent(r.pc)
	r.player.Start()
	return r
}

func (r *rig) tick(dt float32) {
	r.clock.Advance(dt)
	r.pc.Update(dt)
}

func withClips(s PlayerSettings, clips ...string) PlayerSettings {
	s.FootstepClips = clips
	return s
}

func TestStartResolvesCollaboratorsAndLocksCursor(t *testing.T) {
	r := newRig(t, DefaultPlayerSettings())

	assert.True(t, r.cursor.locked)
	assert.Same(t, r.mover, r.pc.Mover())
	assert.True(t, r.pc.ControlsEnabled())
}

func TestStartPanicsWithoutCollaborators(t *testing.T) {
	full := func() (PlayerDeps, *engine.GameObject) {
		g := engine.NewGameObject("Player")
		cam := engine.NewGameObject("Camera")
		cam.AddComponent(NewCamera())
		g.AddChild(cam)
		g.AddComponent(&fakeMover{})
		return PlayerDeps{
			Input:  newFakeInput(),
			Cursor: &fakeCursor{},
			Audio:  &fakeSink{},
			Clock:  &engine.TickClock{},
			Rand:   rand.New(rand.NewPCG(1, 1)),
		}, g
	}

	tests := []struct {
		name  string
		strip func(d *PlayerDeps)
	}{
		{"input", func(d *PlayerDeps) { d.Input = nil }},
		{"cursor", func(d *PlayerDeps) { d.Cursor = nil }},
		{"audio", func(d *PlayerDeps) { d.Audio = nil }},
		{"clock", func(d *PlayerDeps) { d.Clock = nil }},
		{"rand", func(d *PlayerDeps) { d.Rand = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, g := full()
			tt.strip(&deps)
			pc := NewPlayerController(DefaultPlayerSettings(), deps)
			g.AddComponent(pc)
			assert.Panics(t, pc.Start)
		})
	}

	t.Run("mover", func(t *testing.T) {
		deps, g := full()
		bare := engine.NewGameObject("Bare")
		bare.AddChild(g.Children[0])
		pc := NewPlayerController(DefaultPlayerSettings(), deps)
		bare.AddComponent(pc)
		assert.Panics(t, pc.Start)
	})

	t.Run("camera", func(t *testing.T) {
		deps, g := full()
		g.RemoveChild(g.Children[0])
		pc := NewPlayerController(DefaultPlayerSettings(), deps)
		g.AddComponent(pc)
		assert.Panics(t, pc.Start)
	})
}

func TestWalkForwardScenario(t *testing.T) {
	r := newRig(t, DefaultPlayerSettings())
	r.input.vectors[ActionMove] = rl.Vector2{Y: 1}

	r.tick(0.1)

	require.Len(t, r.mover.moves, 1)
	m := r.pc.Movement()
	assert.InDelta(t, 2.5, rl.Vector2Length(rl.Vector2{X: m.X, Y: m.Z}), 1e-5)
	assert.InDelta(t, -2.5, m.Z, 1e-5)
	assert.InDelta(t, GroundedVerticalVelocity, m.Y, 1e-6)

	motion := r.mover.moves[0]
	assert.InDelta(t, -0.25, motion.Z, 1e-5)
	assert.InDelta(t, -0.05, motion.Y, 1e-6)
}

func TestSprintSpeed(t *testing.T) {
	r := newRig(t, DefaultPlayerSettings())
	r.input.vectors[ActionMove] = rl.Vector2{X: 1}
	r.input.held[ActionSprint] = true

	r.tick(0.1)
	m := r.pc.Movement()
	assert.InDelta(t, 3.5, rl.Vector2Length(rl.Vector2{X: m.X, Y: m.Z}), 1e-5)

	settings := DefaultPlayerSettings()
	settings.SprintEnabled = false
	r = newRig(t, settings)
	r.input.vectors[ActionMove] = rl.Vector2{X: 1}
	r.input.held[ActionSprint] = true

	r.tick(0.1)
	m = r.pc.Movement()
	assert.InDelta(t, 2.5, rl.Vector2Length(rl.Vector2{X: m.X, Y: m.Z}), 1e-5)
}

func TestMovementFollowsHeading(t *testing.T) {
	r := newRig(t, DefaultPlayerSettings())
	r.input.vectors[ActionLook] = rl.Vector2{X: 180} // 90 degrees right at 0.5 sensitivity
	r.input.vectors[ActionMove] = rl.Vector2{Y: 1}

	r.tick(0.1)

	assert.InDelta(t, -90, r.player.Transform.Rotation.Y, 1e-4)
	m := r.pc.Movement()
	assert.InDelta(t, 2.5, m.X, 1e-4)
	assert.InDelta(t, 0, m.Z, 1e-4)
}

func TestJumpWhenGroundedAndHeld(t *testing.T) {
	r := newRig(t, DefaultPlayerSettings())
	r.input.held[ActionJump] = true

	r.tick(0.1)
	assert.Equal(t, float32(5), r.pc.Movement().Y)

	// still held after landing: launches again
	r.mover.grounded = false
	r.tick(0.1)
	r.mover.grounded = true
	r.tick(0.1)
	assert.Equal(t, float32(5), r.pc.Movement().Y)
}

func TestAirborneFallsByGravity(t *testing.T) {
	r := newRig(t, DefaultPlayerSettings())
	r.mover.grounded = false

	r.tick(0.1)
	assert.InDelta(t, -0.981, r.pc.Movement().Y, 1e-5)

	prev := r.pc.Movement().Y
	for i := 0; i < 50; i++ {
		r.tick(0.1)
		y := r.pc.Movement().Y
		assert.InDelta(t, prev-0.981, y, 1e-3)
		prev = y
	}
}

func TestJumpDisabledLeavesVerticalAlone(t *testing.T) {
	settings := DefaultPlayerSettings()
	settings.JumpEnabled = false
	r := newRig(t, settings)
	r.mover.grounded = false
	r.input.held[ActionJump] = true

	for i := 0; i < 5; i++ {
		r.tick(0.1)
	}
	assert.Zero(t, r.pc.Movement().Y)
	for _, m := range r.mover.moves {
		assert.Zero(t, m.Y)
	}
}

func TestLookSetsAbsolutePitch(t *testing.T) {
	r := newRig(t, DefaultPlayerSettings())

	r.input.vectors[ActionLook] = rl.Vector2{X: 10, Y: 20}
	r.tick(0.016)
	assert.InDelta(t, -5, r.player.Transform.Rotation.Y, 1e-5)
	assert.InDelta(t, -10, r.pc.Pitch(), 1e-5)
	assert.InDelta(t, -10, r.camera.Transform.Rotation.X, 1e-5)

	// something else nudges the camera; the next tick overwrites it
	r.camera.Transform.Rotation.X = 40
	r.input.vectors[ActionLook] = rl.Vector2{}
	r.tick(0.016)
	assert.InDelta(t, -10, r.camera.Transform.Rotation.X, 1e-5)

	r.input.vectors[ActionLook] = rl.Vector2{Y: -1000}
	for i := 0; i < 10; i++ {
		r.tick(0.016)
		assert.LessOrEqual(t, r.camera.Transform.Rotation.X, float32(85))
	}
	assert.Equal(t, float32(85), r.camera.Transform.Rotation.X)
	assert.Zero(t, r.player.Transform.Rotation.X, "pitch never tilts the body")
}

func TestControlsDisabledIsInert(t *testing.T) {
	r := newRig(t, withClips(DefaultPlayerSettings(), "a.wav", "b.wav"))
	r.input.vectors[ActionMove] = rl.Vector2{Y: 1}
	r.input.vectors[ActionLook] = rl.Vector2{X: 30, Y: 30}
	r.input.held[ActionJump] = true
	r.input.held[ActionSprint] = true
	r.mover.velocity = rl.Vector3{Z: -3}

	r.pc.SetControlsEnabled(false)
	reads := r.input.reads
	for i := 0; i < 20; i++ {
		r.tick(0.1)
	}

	assert.Equal(t, reads, r.input.reads)
	assert.Empty(t, r.mover.moves)
	assert.Empty(t, r.sink.calls)
	assert.Zero(t, r.player.Transform.Rotation.Y)
	assert.Zero(t, r.camera.Transform.Rotation.X)
	assert.True(t, r.cursor.locked, "toggling has no cursor side effects")

	r.pc.SetControlsEnabled(true)
	r.tick(0.1)
	assert.Len(t, r.mover.moves, 1)
}

func TestFootstepsRespectInterval(t *testing.T) {
	r := newRig(t, withClips(DefaultPlayerSettings(), "a.wav", "b.wav", "c.wav"))
	r.input.vectors[ActionMove] = rl.Vector2{Y: 1}

	var events []FootstepEvent
	r.pc.Footstep.AddListener(func(e FootstepEvent) { events = append(events, e) })

	// 3 seconds of walking at 0.05s ticks
	for i := 0; i < 60; i++ {
		r.tick(0.05)
	}

	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		gap := events[i].Time - events[i-1].Time
		assert.GreaterOrEqual(t, gap, 0.6-1e-9, "step %d came early", i)
		assert.NotEqual(t, events[i-1].Index, events[i].Index)
	}
	assert.Len(t, events, 5)
	assert.InDelta(t, events[len(events)-1].Time+0.6, r.pc.NextStepTime(), 1e-6)
	assert.Len(t, r.sink.played(), len(events))
	assert.Equal(t, events[0].Clip, r.sink.played()[0])
}

func TestFootstepsSprintInterval(t *testing.T) {
	r := newRig(t, withClips(DefaultPlayerSettings(), "a.wav", "b.wav"))
	r.input.vectors[ActionMove] = rl.Vector2{Y: 1}
	r.input.held[ActionSprint] = true

	var events []FootstepEvent
	r.pc.Footstep.AddListener(func(e FootstepEvent) { events = append(events, e) })

	for i := 0; i < 25; i++ {
		r.tick(0.05)
	}

	require.Len(t, events, 4)
	for _, e := range events {
		assert.True(t, e.Sprinting)
	}
	// two clips alternate
	assert.Equal(t, []int{1, 0, 1, 0}, []int{events[0].Index, events[1].Index, events[2].Index, events[3].Index})
}

func TestFootstepsGatedBySpeedAndGround(t *testing.T) {
	settings := withClips(DefaultPlayerSettings(), "a.wav", "b.wav")
	settings.WalkSpeed = 1.5 // below the 2.0 threshold
	r := newRig(t, settings)
	r.input.vectors[ActionMove] = rl.Vector2{Y: 1}
	for i := 0; i < 20; i++ {
		r.tick(0.1)
	}
	assert.Empty(t, r.sink.calls)

	r = newRig(t, withClips(DefaultPlayerSettings(), "a.wav", "b.wav"))
	r.mover.grounded = false
	r.input.vectors[ActionMove] = rl.Vector2{Y: 1}
	for i := 0; i < 20; i++ {
		r.tick(0.1)
	}
	assert.Empty(t, r.sink.calls)
}

func TestFootstepsWithoutClipsKeepTiming(t *testing.T) {
	r := newRig(t, DefaultPlayerSettings())
	r.input.vectors[ActionMove] = rl.Vector2{Y: 1}

	r.tick(0.1)

	assert.Empty(t, r.sink.calls)
	assert.InDelta(t, 0.7, r.pc.NextStepTime(), 1e-6)
}
