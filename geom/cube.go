// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/math32"
)

// CubeCorners are the 8 corners of the cube spanning [-1, 1] on each axis.
var CubeCorners = [8]math32.Vector3{
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
}

// CubeFaces are the corner indices of each face quad, in face order
// front, back, top, bottom, right, left. Each quad is split into the
// triangles (0, 1, 2) and (0, 2, 3).
var CubeFaces = [NumFaces][FaceVertices]uint16{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{3, 2, 6, 7},
	{4, 5, 1, 0},
	{1, 5, 6, 2},
	{4, 0, 3, 7},
}

// FaceNormals are the outward unit normals of each face.
var FaceNormals = [NumFaces]math32.Vector3{
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: -1, Y: 0, Z: 0},
}

// BuildCube returns the cube as 24 face-local vertices with
// [DefaultFaceColors], per-face normals and 36 triangle indices.
func BuildCube() *VertexSet {
	vs := &VertexSet{
		Positions: make([]float32, 0, NumFaces*FaceVertices*3),
		Normals:   make([]float32, 0, NumFaces*FaceVertices*3),
		Indices:   make([]uint16, 0, NumFaces*6),
		Topology:  Triangles,
		Faces:     NumFaces,
	}
	for f, quad := range CubeFaces {
		n := FaceNormals[f]
		for _, ci := range quad {
			p := CubeCorners[ci]
			vs.Positions = append(vs.Positions, p.X, p.Y, p.Z)
			vs.Normals = append(vs.Normals, n.X, n.Y, n.Z)
		}
		b := uint16(f * FaceVertices)
		vs.Indices = append(vs.Indices, b, b+1, b+2, b, b+2, b+3)
	}
	errors.Must(vs.SetFaceColors(DefaultFaceColors))
	return vs
}

// BuildGrid returns a gray line list in the z = 0 plane: for each
// integer i in [-extent, extent], one segment spanning x at y = i*step
// and one spanning y at x = i*step, each reaching ±extent. Normals
// face +z so the grid can also be drawn by the lit program.
func BuildGrid(extent int, step float32) *VertexSet {
	if extent < 0 {
		extent = -extent
	}
	e := float32(extent)
	n := (2*extent + 1) * 4
	vs := &VertexSet{
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		Topology:  Lines,
	}
	for i := -extent; i <= extent; i++ {
		o := float32(i) * step
		vs.Positions = append(vs.Positions,
			-e, o, 0, e, o, 0,
			o, -e, 0, o, e, 0)
		for range 4 {
			vs.Normals = append(vs.Normals, 0, 0, 1)
		}
	}
	vs.SetColor(Gray)
	return vs
}
