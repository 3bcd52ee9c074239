package components

import (
	"errors"
	"fmt"
)

// PlayerSettings configures a PlayerController. It is read once at Start.
type PlayerSettings struct {
	JumpEnabled   bool `yaml:"jumpEnabled"`
	SprintEnabled bool `yaml:"sprintEnabled"`
	// CrouchEnabled is accepted for configuration compatibility and has no effect.
	CrouchEnabled bool `yaml:"crouchEnabled"`

	WalkSpeed   float32 `yaml:"walkSpeed"`
	SprintSpeed float32 `yaml:"sprintSpeed"`

	LookSensitivity float32 `yaml:"lookSensitivity"`
	LookAngleRange  float32 `yaml:"lookAngleRange"` // degrees either side of level

	JumpForce float32 `yaml:"jumpForce"`
	Gravity   float32 `yaml:"gravity"`

	FootstepClips      []string `yaml:"footstepClips,omitempty"`
	WalkStepInterval   float32  `yaml:"walkStepInterval"`   // seconds
	SprintStepInterval float32  `yaml:"sprintStepInterval"` // seconds
	VelocityThreshold  float32  `yaml:"velocityThreshold"`
}

func DefaultPlayerSettings() PlayerSettings {
	return PlayerSettings{
		JumpEnabled:        true,
		SprintEnabled:      true,
		CrouchEnabled:      true,
		WalkSpeed:          2.5,
		SprintSpeed:        3.5,
		LookSensitivity:    0.5,
		LookAngleRange:     85,
		JumpForce:          5,
		Gravity:            9.81,
		WalkStepInterval:   0.6,
		SprintStepInterval: 0.3,
		VelocityThreshold:  2,
	}
}

// Validate rejects settings the controller cannot run with.
func (s PlayerSettings) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("walkSpeed", s.WalkSpeed)
	positive("sprintSpeed", s.SprintSpeed)
	positive("lookSensitivity", s.LookSensitivity)
	positive("walkStepInterval", s.WalkStepInterval)
	positive("sprintStepInterval", s.SprintStepInterval)
	if s.LookAngleRange <= 0 || s.LookAngleRange > 90 {
		errs = append(errs, fmt.Errorf("lookAngleRange must be in (0, 90], got %v", s.LookAngleRange))
	}
	if s.Gravity < 0 {
		errs = append(errs, fmt.Errorf("gravity must not be negative, got %v", s.Gravity))
	}
	if s.JumpForce < 0 {
		errs = append(errs, fmt.Errorf("jumpForce must not be negative, got %v", s.JumpForce))
	}
	if s.VelocityThreshold < 0 {
		errs = append(errs, fmt.Errorf("velocityThreshold must not be negative, got %v", s.VelocityThreshold))
	}
	return errors.Join(errs...)
}
