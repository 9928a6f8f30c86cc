// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform computes the projection and model-view matrices
// for each frame from the camera settings and the animation state.
// Matrices are derived fresh on every call; nothing is cached.
package transform

import (
	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/math32"
)

// Camera holds the fixed viewing parameters.
type Camera struct {

	// Distance is how far the scene is pushed back along -Z.
	Distance float32

	// FOV is the vertical field of view in radians.
	FOV float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32

	// LocalScale applies the per-axis cube scale after the rotation
	// in the object's own frame, so the stretch turns with the cube.
	// By default the stretch stays aligned with the camera axes.
	LocalScale bool
}

// DefaultCamera returns a camera at the given distance with a
// π/4 field of view and clip planes at 0.1 and 100.
func DefaultCamera(distance float32) Camera {
	return Camera{Distance: distance, FOV: math32.Pi / 4, Near: 0.1, Far: 100}
}

// Aspect returns w/h, or 1 when h is not positive.
func Aspect(w, h int) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

// Projection returns the perspective projection for the given aspect ratio.
func (c Camera) Projection(aspect float32) *math32.Matrix4 {
	m := &math32.Matrix4{}
	m.SetPerspective(math32.RadToDeg(c.FOV), aspect, c.Near, c.Far)
	return m
}

// GridModelView returns the model-view for the grid:
// a translation to the camera distance followed by the zoom.
func (c Camera) GridModelView(zoom float32) *math32.Matrix4 {
	m := math32.Identity4()
	m.Translate(0, 0, -c.Distance)
	m.Scale(math32.Vector3Scalar(zoom))
	return m
}

// CubeModelView returns the model-view for the cube: the grid
// model-view followed by the per-axis scale and the rotation by
// the current angle about the current axis. Each step right-multiplies,
// so points are rotated first and then scaled along the camera-aligned
// axes, unless [Camera.LocalScale] swaps the last two steps.
func (c Camera) CubeModelView(s *anim.State) *math32.Matrix4 {
	m := c.GridModelView(s.Zoom)
	if c.LocalScale {
		m.Rotate(s.Angle, s.Axis.Vector())
		m.Scale(s.Scale)
		return m
	}
	m.Scale(s.Scale)
	m.Rotate(s.Angle, s.Axis.Vector())
	return m
}
