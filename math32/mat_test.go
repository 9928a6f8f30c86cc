// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/spincube/base/tolassert"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const StandardTol = float32(1.0e-6)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestMatrix4Identity(t *testing.T) {
	m := Identity4()
	p := Vec3(1, 2, 3)
	assert.Equal(t, p, p.MulMatrix4AsPoint(m))
	assert.Equal(t, [16]float32(mgl32.Ident4()), [16]float32(*m))
}

func TestMatrix4Mul(t *testing.T) {
	var tr, sc Matrix4
	tr.SetTranslation(1, 2, 3)
	sc.SetScale(2, 2, 2)

	// multiplication order is *reverse* of "logical" order:
	// scale is applied first, then translation
	TolAssertEqualVector(t, StandardTol, Vec3(3, 4, 5), Vec3(1, 1, 1).MulMatrix4AsPoint(tr.Mul(&sc)))
	TolAssertEqualVector(t, StandardTol, Vec3(4, 6, 8), Vec3(1, 1, 1).MulMatrix4AsPoint(sc.Mul(&tr)))

	want := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 2, 2))
	tolassert.EqualTolSlice(t, want[:], tr.Mul(&sc)[:], StandardTol)
}

func TestMatrix4Rotation(t *testing.T) {
	var rz Matrix4
	rz.SetRotationAxis(Vec3(0, 0, 1), Pi/2)
	TolAssertEqualVector(t, StandardTol, Vec3(0, 1, 0), Vec3(1, 0, 0).MulMatrix4AsPoint(&rz)) // left
	TolAssertEqualVector(t, StandardTol, Vec3(-1, 0, 0), Vec3(0, 1, 0).MulMatrix4AsPoint(&rz))

	var ry Matrix4
	ry.SetRotationAxis(Vec3(0, 1, 0), Pi/2)
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, -1), Vec3(1, 0, 0).MulMatrix4AsPoint(&ry))

	// axis is normalized
	var rn Matrix4
	rn.SetRotationAxis(Vec3(0, 0, 5), Pi/2)
	tolassert.EqualTolSlice(t, rz[:], rn[:], StandardTol)

	for _, angle := range []float32{0.01, 0.5, 1, 2.5, -1.2} {
		axis := Vec3(1, 2, 3)
		var m Matrix4
		m.SetRotationAxis(axis, angle)
		want := mgl32.HomogRotate3D(angle, mgl32.Vec3{1, 2, 3}.Normalize())
		tolassert.EqualTolSlice(t, want[:], m[:], 1.0e-5)
	}

	var zero Matrix4
	zero.SetRotationAxis(Vector3{}, 1)
	assert.Equal(t, *Identity4(), zero)
}

func TestMatrix4Perspective(t *testing.T) {
	for _, aspect := range []float32{800.0 / 600.0, 1920.0 / 1080.0, 1} {
		var m Matrix4
		m.SetPerspective(45, aspect, 0.1, 100)
		want := mgl32.Perspective(Pi/4, aspect, 0.1, 100)
		tolassert.EqualTolSlice(t, want[:], m[:], 1.0e-5)
	}
}

func TestMatrix4PostMultiply(t *testing.T) {
	m := Identity4()
	m.Translate(0, 0, -10)
	m.Scale(Vec3(2, 2, 2))
	m.Rotate(Pi/2, Vec3(0, 0, 1))

	want := mgl32.Translate3D(0, 0, -10).Mul4(mgl32.Scale3D(2, 2, 2)).Mul4(mgl32.HomogRotate3D(Pi/2, mgl32.Vec3{0, 0, 1}))
	tolassert.EqualTolSlice(t, want[:], m[:], 1.0e-5)
	TolAssertEqualVector(t, 1.0e-5, Vec3(0, 2, -10), Vec3(1, 0, 0).MulMatrix4AsPoint(m))
	assert.Equal(t, m[12], m.At(0, 3))
}

func TestMulMatrix4AsNormal(t *testing.T) {
	m := Identity4()
	m.Translate(0, 0, -6)
	m.Scale(Vec3(3, 1, 0.5))
	m.Rotate(0.7, Vec3(1, 1, 0))

	// the normal stays perpendicular to both tangents of its face
	n := Vec3(0, 0, 1).MulMatrix4AsNormal(m)
	tolassert.EqualTol(t, float32(0), n.Dot(Vec3(1, 0, 0).MulMatrix4AsVector(m)), 1.0e-5)
	tolassert.EqualTol(t, float32(0), n.Dot(Vec3(0, 1, 0).MulMatrix4AsVector(m)), 1.0e-5)

	want := mgl32.Mat4(*m).Mat3().Inv().Transpose().Mul3x1(mgl32.Vec3{0, 0, 1}).Normalize()
	TolAssertEqualVector(t, 1.0e-5, Vec3(want[0], want[1], want[2]), n.Normal())

	var r Matrix4
	r.SetRotationAxis(Vec3(0, 1, 0), Pi/2)
	TolAssertEqualVector(t, StandardTol, Vec3(1, 0, 0).MulMatrix4AsVector(&r), Vec3(1, 0, 0).MulMatrix4AsNormal(&r))

	var neg Matrix4
	neg.SetScale(-2, -2, -2)
	TolAssertEqualVector(t, StandardTol, Vec3(0, 0, -1), Vec3(0, 0, 1).MulMatrix4AsNormal(&neg).Normal())
}
