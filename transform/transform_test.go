// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/tolassert"
	"cogentcore.org/spincube/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVector(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, got.X, 1.0e-5)
	tolassert.EqualTol(t, want.Y, got.Y, 1.0e-5)
	tolassert.EqualTol(t, want.Z, got.Z, 1.0e-5)
}

// perspective is the closed-form GL perspective matrix, column-major.
func perspective(fovy, aspect, near, far float32) [16]float32 {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)
	return [16]float32{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

func TestAspect(t *testing.T) {
	assert.Equal(t, float32(800)/600, Aspect(800, 600))
	assert.Equal(t, float32(1920)/1080, Aspect(1920, 1080))
	assert.Equal(t, float32(1), Aspect(640, 0))
}

func TestProjection(t *testing.T) {
	c := DefaultCamera(10)
	for _, sz := range [][2]int{{800, 600}, {1920, 1080}} {
		a := Aspect(sz[0], sz[1])
		p := c.Projection(a)
		want := perspective(math32.Pi/4, a, 0.1, 100)
		tolassert.EqualTolSlice(t, want[:], p[:], 1.0e-5)
		gl := mgl32.Perspective(math32.Pi/4, a, 0.1, 100)
		tolassert.EqualTolSlice(t, gl[:], p[:], 1.0e-5)
	}
}

func TestGridModelView(t *testing.T) {
	c := DefaultCamera(10)
	m := c.GridModelView(2)
	want := mgl32.Translate3D(0, 0, -10).Mul4(mgl32.Scale3D(2, 2, 2))
	tolassert.EqualTolSlice(t, want[:], m[:], 1.0e-6)
	assertVector(t, math32.Vec3(2, 0, -10), math32.Vec3(1, 0, 0).MulMatrix4AsPoint(m))
}

func TestCubeModelView(t *testing.T) {
	c := DefaultCamera(6)
	s := anim.NewState()
	s.Angle = 0.7
	s.Axis = anim.X
	s.Zoom = 1.5
	s.Scale = math32.Vec3(1, 2, 0.5)
	m := c.CubeModelView(s)
	want := mgl32.Translate3D(0, 0, -6).
		Mul4(mgl32.Scale3D(1.5, 1.5, 1.5)).
		Mul4(mgl32.Scale3D(1, 2, 0.5)).
		Mul4(mgl32.HomogRotate3D(0.7, mgl32.Vec3{1, 0, 0}))
	tolassert.EqualTolSlice(t, want[:], m[:], 1.0e-5)
}

func TestCompositionOrder(t *testing.T) {
	c := DefaultCamera(0)
	s := anim.NewState()
	s.Scale = math32.Vec3(2, 1, 1)
	s.Axis = anim.Z
	s.Angle = math32.Pi / 2

	// the stretch stays on the camera X axis, so the rotated
	// point along Y is not stretched
	assertVector(t, math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0).MulMatrix4AsVector(c.CubeModelView(s)))

	c.LocalScale = true
	assertVector(t, math32.Vec3(0, 2, 0), math32.Vec3(1, 0, 0).MulMatrix4AsVector(c.CubeModelView(s)))
}

func TestNoPersistentState(t *testing.T) {
	c := DefaultCamera(10)
	s := anim.NewState()
	s.Angle = 1
	a := *c.CubeModelView(s)
	c.CubeModelView(s)
	c.GridModelView(3)
	assert.Equal(t, a, *c.CubeModelView(s))
}
