// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/base/tolassert"
	"cogentcore.org/spincube/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.True(t, s.Enabled)
	assert.Equal(t, float32(1), s.Direction)
	assert.Equal(t, Y, s.Axis)
	assert.Equal(t, math32.Vec3(1, 1, 1), s.Scale)
	assert.Equal(t, float32(1), s.Zoom)
	assert.Equal(t, float32(0), s.Angle)
}

func TestTickEnabled(t *testing.T) {
	for _, n := range []int{1, 10, 250} {
		s := NewState()
		s.Angle = 0.5
		for i := 0; i < n; i++ {
			s.Tick()
		}
		tolassert.EqualTol(t, 0.5+0.01*float32(n), s.Angle, 1.0e-4)
	}

	s := NewState()
	s.Direction = -1
	for i := 0; i < 100; i++ {
		s.Tick()
	}
	tolassert.EqualTol(t, -1, s.Angle, 1.0e-4)
}

func TestTickPaused(t *testing.T) {
	s := NewState()
	s.Enabled = false
	s.Angle = 2
	s.Tick()
	s.Tick()
	assert.Equal(t, float32(2), s.Angle)
}

func TestNudge(t *testing.T) {
	s := NewState()
	s.Angle = 1
	require.NoError(t, s.Apply(NudgeBy(0.1)))
	assert.Equal(t, float32(1), s.Angle)

	s.Enabled = false
	require.NoError(t, s.Apply(NudgeBy(0.1)))
	tolassert.EqualTol(t, 1.1, s.Angle, 1.0e-6)
	require.NoError(t, s.Apply(NudgeBy(-0.1)))
	tolassert.EqualTol(t, 1, s.Angle, 1.0e-6)
}

func TestToggleRotationTwice(t *testing.T) {
	s := NewState()
	s.Angle = 0.3
	require.NoError(t, s.Apply(Toggle()))
	assert.False(t, s.Enabled)
	require.NoError(t, s.Apply(Toggle()))
	assert.True(t, s.Enabled)
	assert.Equal(t, float32(0.3), s.Angle)
}

func TestSetters(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Apply(Zoom(1.5)))
	assert.Equal(t, float32(1.5), s.Zoom)
	require.NoError(t, s.Apply(ScaleAxis(X, 2)))
	require.NoError(t, s.Apply(ScaleAxis(Y, 0.5)))
	require.NoError(t, s.Apply(ScaleAxis(Z, 3)))
	assert.Equal(t, math32.Vec3(2, 0.5, 3), s.Scale)
	require.NoError(t, s.Apply(Scale(1.25)))
	assert.Equal(t, math32.Vec3(1.25, 1.25, 1.25), s.Scale)

	// no clamping in the core
	require.NoError(t, s.Apply(Zoom(-4)))
	assert.Equal(t, float32(-4), s.Zoom)

	require.NoError(t, s.Apply(Axis(Z)))
	assert.Equal(t, Z, s.Axis)
	s.Enabled = false
	require.NoError(t, s.Apply(Axis(X)))
	assert.Equal(t, X, s.Axis)

	require.NoError(t, s.Apply(FlipDirection()))
	assert.Equal(t, float32(-1), s.Direction)
	require.NoError(t, s.Apply(FlipDirection()))
	assert.Equal(t, float32(1), s.Direction)

	before := *s
	require.NoError(t, s.Apply(NewColors()))
	assert.Equal(t, before, *s)
}

func TestApplyUnknown(t *testing.T) {
	s := NewState()
	err := s.Apply(Action{Kind: ActionsN})
	assert.True(t, errors.Is(err, ErrUnknownAction))
	err = s.Apply(Action{Kind: SetAxis, Axis: 7})
	assert.True(t, errors.Is(err, ErrUnknownAction))
	assert.Equal(t, Y, s.Axis)
}

func TestEndToEnd(t *testing.T) {
	s := NewState()
	s.Angle = 0
	require.NoError(t, s.Apply(FlipDirection()))
	s.Tick()
	tolassert.EqualTol(t, -0.01, s.Angle, 1.0e-6)

	require.NoError(t, s.Apply(Toggle()))
	a, err := ParseAction("rotate-right", "", s.NudgeStep)
	require.NoError(t, err)
	require.NoError(t, s.Apply(a))
	tolassert.EqualTol(t, 0.09, s.Angle, 1.0e-6)

	s.Tick()
	tolassert.EqualTol(t, 0.09, s.Angle, 1.0e-6)
}
