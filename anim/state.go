// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim holds the cube animation state, advanced once per
// frame and mutated by discrete actions.
package anim

import (
	"fmt"

	"cogentcore.org/spincube/math32"
)

const (
	// DefaultStep is the angle added per rotating frame, in radians.
	DefaultStep = 0.01

	// DefaultNudge is the manual nudge increment, in radians.
	DefaultNudge = 0.1
)

// State is the animation state of the cube. It is owned by one
// scene and only ever touched from its frame loop.
type State struct {

	// Angle is the accumulated rotation angle in radians.
	Angle float32

	// Enabled is whether the cube rotates on each tick.
	Enabled bool

	// Direction is +1 or -1.
	Direction float32

	// Axis is the current rotation axis.
	Axis Axes

	// Scale is the per-axis scale applied to the cube.
	Scale math32.Vector3

	// Zoom is the uniform scale applied to the whole scene.
	Zoom float32

	// Step is the angle per tick in radians. It is not time scaled.
	Step float32

	// NudgeStep is the default nudge increment used by controls.
	NudgeStep float32
}

// NewState returns the initial state: rotating about Y in the
// positive direction, at unit zoom and scale.
func NewState() *State {
	return &State{
		Enabled:   true,
		Direction: 1,
		Axis:      Y,
		Scale:     math32.Vector3Scalar(1),
		Zoom:      1,
		Step:      DefaultStep,
		NudgeStep: DefaultNudge,
	}
}

func (s *State) String() string {
	return fmt.Sprintf("angle=%.4f enabled=%v dir=%+g axis=%s scale=%v zoom=%g", s.Angle, s.Enabled, s.Direction, s.Axis, s.Scale, s.Zoom)
}

// Tick advances the angle by one step if rotation is enabled.
func (s *State) Tick() {
	if s.Enabled {
		s.Angle += s.Direction * s.Step
	}
}

// Apply applies the given action. Values are taken as given; range
// clamping is left to the control surface. [Recolor] has no effect
// on the state.
func (s *State) Apply(a Action) error {
	switch a.Kind {
	case SetZoom:
		s.Zoom = a.Value
	case SetScale:
		s.Scale = math32.Vector3Scalar(a.Value)
	case SetScaleX:
		s.Scale.X = a.Value
	case SetScaleY:
		s.Scale.Y = a.Value
	case SetScaleZ:
		s.Scale.Z = a.Value
	case ToggleRotation:
		s.Enabled = !s.Enabled
	case Nudge:
		if !s.Enabled {
			s.Angle += a.Value
		}
	case Recolor:
	case SetAxis:
		if a.Axis < 0 || a.Axis >= AxesN {
			return fmt.Errorf("%w: axis %v", ErrUnknownAction, a.Axis)
		}
		s.Axis = a.Axis
	case ToggleDirection:
		s.Direction = -s.Direction
	default:
		return fmt.Errorf("%w: %v", ErrUnknownAction, a.Kind)
	}
	return nil
}
