// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/spincube/geom"
	"cogentcore.org/spincube/math32"
)

const (
	// Ambient is the fraction of the vertex color that is always lit.
	Ambient = 0.3

	// Diffuse is the weight of the Lambert term.
	Diffuse = 1 - Ambient
)

// DefaultLightPosition is the view-space light position of the lit preset.
var DefaultLightPosition = math32.Vec3(2, 4, 2)

// Shade returns the lit color of a vertex at view-space position pos
// with view-space normal n, for a point light at light: the color
// times Ambient + Diffuse * max(n·l, 0). Alpha is kept.
func Shade(c geom.Color, pos, n, light math32.Vector3) geom.Color {
	l := light.Sub(pos).Normal()
	d := math32.Max(n.Normal().Dot(l), 0)
	k := float32(Ambient) + float32(Diffuse)*d
	return geom.RGBA(c.R*k, c.G*k, c.B*k, c.A)
}
