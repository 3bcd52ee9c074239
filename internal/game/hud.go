package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel  = rl.NewColor(18, 18, 24, 230)
	colorAccent = rl.NewColor(108, 99, 255, 255)
	colorText   = rl.NewColor(200, 200, 208, 255)
)

// Stats is what the HUD shows for one frame.
type Stats struct {
	ControlsEnabled bool
	Grounded        bool
	Speed           float32 // horizontal
	Vertical        float32
	Pitch           float32
	Yaw             float32
	Position        rl.Vector3
	Now             float64
	NextStep        float64
	Footsteps       int
	LastClip        string
	LookingAt       string
	LookDistance    float32
	Drawn, Culled   int
	UpdateMs        float64
	DrawMs          float64
}

// Lines formats stats as label rows, top to bottom.
func (s Stats) Lines() []string {
	lines := []string{
		fmt.Sprintf("Grounded: %v", s.Grounded),
		fmt.Sprintf("Speed: %.2f m/s", s.Speed),
		fmt.Sprintf("Vertical: %.2f m/s", s.Vertical),
		fmt.Sprintf("Pitch: %.1f  Yaw: %.1f", s.Pitch, s.Yaw),
		fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", s.Position.X, s.Position.Y, s.Position.Z),
	}
	if wait := s.NextStep - s.Now; wait > 0 {
		lines = append(lines, fmt.Sprintf("Next step in: %.2f s", wait))
	} else {
		lines = append(lines, "Next step: ready")
	}
	last := s.LastClip
	if last == "" {
		last = "-"
	}
	lines = append(lines, fmt.Sprintf("Footsteps: %d (%s)", s.Footsteps, last))
	if s.LookingAt != "" {
		lines = append(lines, fmt.Sprintf("Looking at: %s (%.1f m)", s.LookingAt, s.LookDistance))
	}
	lines = append(lines,
		fmt.Sprintf("Meshes: %d drawn, %d culled", s.Drawn, s.Culled),
		fmt.Sprintf("Update %.2f ms  Draw %.2f ms", s.UpdateMs, s.DrawMs),
	)
	return lines
}

type HUD struct {
	Visible bool
	X, Y    float32
	Width   float32
}

func NewHUD() *HUD {
	return &HUD{Visible: true, X: 10, Y: 60, Width: 300}
}

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Draw renders the panel and returns the controls checkbox state.
func (h *HUD) Draw(s Stats) bool {
	const rowHeight = 20
	lines := s.Lines()
	height := float32(rowHeight*(len(lines)+1) + 40)

	gui.Panel(rl.Rectangle{X: h.X, Y: h.Y, Width: h.Width, Height: height}, "Player")

	y := h.Y + 30
	enabled := gui.CheckBox(rl.Rectangle{X: h.X + 10, Y: y, Width: 16, Height: 16}, "Controls enabled (Tab)", s.ControlsEnabled)
	y += rowHeight + 4

	for _, line := range lines {
		gui.Label(rl.Rectangle{X: h.X + 10, Y: y, Width: h.Width - 20, Height: rowHeight}, line)
		y += rowHeight
	}
	return enabled
}
