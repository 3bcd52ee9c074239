// Package config loads the demo's YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"firstperson/internal/components"
	"firstperson/internal/engine"
	"firstperson/internal/input"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Logging LoggingConfig  `yaml:"logging"`
	Audio   AudioConfig    `yaml:"audio"`
	Input   input.Bindings `yaml:"input"`
	Player  PlayerConfig   `yaml:"player"`
	Arena   []ObjectDef    `yaml:"arena"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"targetFPS"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type AudioConfig struct {
	Backend string  `yaml:"backend"` // raylib, beep or none
	Volume  float32 `yaml:"volume"`
}

// PlayerConfig is the controller settings plus the body it drives.
type PlayerConfig struct {
	components.PlayerSettings `yaml:",inline"`

	Spawn      [3]float32 `yaml:"spawn"`
	EyeHeight  float32    `yaml:"eyeHeight"` // camera height above the body center
	Height     float32    `yaml:"height"`
	Radius     float32    `yaml:"radius"`
	StepHeight float32    `yaml:"stepHeight"`
	FOV        float32    `yaml:"fov"`
}

// ObjectDef is one arena object. Components are in registry form.
type ObjectDef struct {
	Name       string         `yaml:"name"`
	Tags       []string       `yaml:"tags,omitempty"`
	Position   [3]float32     `yaml:"position"`
	Rotation   [3]float32     `yaml:"rotation"`
	Scale      [3]float32     `yaml:"scale"`
	Components []ComponentDef `yaml:"components"`
}

// ComponentDef names a registered component type; every other key is
// passed to its Deserialize.
type ComponentDef struct {
	Type  string         `yaml:"type"`
	Props map[string]any `yaml:",inline"`
}

var audioBackends = []string{"raylib", "beep", "none"}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "First Person",
			TargetFPS: 60,
		},
		Logging: LoggingConfig{Level: "info", Pretty: true},
		Audio:   AudioConfig{Backend: "raylib", Volume: 0.8},
		Input:   input.DefaultBindings(),
		Player: PlayerConfig{
			PlayerSettings: components.DefaultPlayerSettings(),
			Spawn:          [3]float32{0, 1, 6},
			EyeHeight:      0.7,
			Height:         1.8,
			Radius:         0.4,
			StepHeight:     0.4,
			FOV:            70,
		},
		Arena: DefaultArena(),
	}
}

// DefaultArena is a floor with a few boxes and a low step to climb.
func DefaultArena() []ObjectDef {
	box := func(name, color string, pos, size [3]float32) ObjectDef {
		s := []any{size[0], size[1], size[2]}
		return ObjectDef{
			Name:     name,
			Position: pos,
			Components: []ComponentDef{
				{Type: "BoxCollider", Props: map[string]any{"size": s}},
				{Type: "MeshRenderer", Props: map[string]any{"mesh": "cube", "color": color, "size": s, "wires": true}},
			},
		}
	}
	return []ObjectDef{
		box("Floor", "LightGray", [3]float32{0, -0.5, 0}, [3]float32{40, 1, 40}),
		box("Step", "Beige", [3]float32{0, 0.15, -4}, [3]float32{4, 0.3, 2}),
		box("Platform", "Brown", [3]float32{0, 0.3, -6}, [3]float32{4, 0.6, 2}),
		box("Crate", "Orange", [3]float32{4, 0.75, 0}, [3]float32{1.5, 1.5, 1.5}),
		box("Wall", "Gray", [3]float32{0, 1.5, -12}, [3]float32{20, 3, 1}),
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}
	if !slices.Contains(audioBackends, strings.ToLower(c.Audio.Backend)) {
		errs = append(errs, fmt.Errorf("audio: backend must be one of %s, got %q", strings.Join(audioBackends, ", "), c.Audio.Backend))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio: volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	if err := c.Input.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("input: %w", err))
	}
	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if c.Player.Height <= 0 || c.Player.Radius <= 0 {
		errs = append(errs, errors.New("player: height and radius must be positive"))
	}

	registered := engine.RegisteredComponents()
	for i, obj := range c.Arena {
		for _, comp := range obj.Components {
			if !slices.Contains(registered, comp.Type) {
				errs = append(errs, fmt.Errorf("arena[%d] %q: unknown component type %q", i, obj.Name, comp.Type))
			}
		}
	}
	return errors.Join(errs...)
}

// Write encodes c as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
