// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the static vertex data for the cube and
// the ground grid.
package geom

import (
	"fmt"

	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/math32"
)

// ErrNotCube is returned when face colors are applied to
// geometry that does not have six 4-vertex faces.
var ErrNotCube = errors.New("geom: vertex set is not six-face geometry")

// Topologies are the primitive types a [VertexSet] is drawn with.
type Topologies int32

const (
	// Triangles is an indexed triangle list.
	Triangles Topologies = iota

	// Lines is a non-indexed line list.
	Lines
)

func (t Topologies) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return fmt.Sprintf("Topologies(%d)", int32(t))
}

const (
	// NumFaces is the number of cube faces.
	NumFaces = 6

	// FaceVertices is the number of vertices emitted per face.
	FaceVertices = 4
)

// VertexSet holds the per-vertex data for one drawable.
// Positions, normals and indices never change after construction;
// colors are replaced wholesale.
type VertexSet struct {

	// Positions has 3 floats per vertex.
	Positions []float32

	// Colors has 4 floats (RGBA) per vertex.
	Colors []float32

	// Normals has 3 floats per vertex, or is nil.
	Normals []float32

	// Indices into the vertices, or nil for non-indexed drawing.
	Indices []uint16

	// Topology is the primitive type.
	Topology Topologies

	// Faces is the number of faces for face-colored geometry, else 0.
	Faces int
}

// VertexCount returns the number of vertices.
func (vs *VertexSet) VertexCount() int {
	return len(vs.Positions) / 3
}

// Indexed returns whether the set is drawn with indices.
func (vs *VertexSet) Indexed() bool {
	return len(vs.Indices) > 0
}

// DrawCount returns the element count for a draw call: the
// index count if indexed, otherwise the vertex count.
func (vs *VertexSet) DrawCount() int {
	if vs.Indexed() {
		return len(vs.Indices)
	}
	return vs.VertexCount()
}

// Position returns the position of vertex i.
func (vs *VertexSet) Position(i int) math32.Vector3 {
	var v math32.Vector3
	v.FromSlice(vs.Positions, i*3)
	return v
}

// Normal returns the normal of vertex i, or zero if there are no normals.
func (vs *VertexSet) Normal(i int) math32.Vector3 {
	var v math32.Vector3
	if len(vs.Normals) >= (i+1)*3 {
		v.FromSlice(vs.Normals, i*3)
	}
	return v
}

// Color returns the color of vertex i.
func (vs *VertexSet) Color(i int) Color {
	c := vs.Colors[i*4 : i*4+4]
	return RGBA(c[0], c[1], c[2], c[3])
}

// SetFaceColors replaces the whole color buffer, replicating each
// face color across the four vertices of that face. Positions and
// indices are not touched. The color buffer length is unchanged.
func (vs *VertexSet) SetFaceColors(colors [NumFaces]Color) error {
	if vs.Faces != NumFaces || vs.VertexCount() != NumFaces*FaceVertices {
		return ErrNotCube
	}
	cs := make([]float32, 0, NumFaces*FaceVertices*4)
	for _, c := range colors {
		for range FaceVertices {
			cs = append(cs, c.R, c.G, c.B, c.A)
		}
	}
	vs.Colors = cs
	return nil
}

// SetColor sets every vertex to the given color.
func (vs *VertexSet) SetColor(c Color) {
	n := vs.VertexCount()
	cs := make([]float32, 0, n*4)
	for range n {
		cs = append(cs, c.R, c.G, c.B, c.A)
	}
	vs.Colors = cs
}
