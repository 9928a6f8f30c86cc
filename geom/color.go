// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"image/color"

	"cogentcore.org/spincube/base/randx"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA returns an opaque color with the given channels.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex returns the color as a #rrggbb string, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// NRGBA returns the color as an 8-bit [color.NRGBA].
func (c Color) NRGBA() color.NRGBA {
	r, g, b := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().RGB255()
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// Gray is the grid line color.
var Gray = RGBA(0.5, 0.5, 0.5, 1)

// DefaultFaceColors are the initial cube face colors, in face order:
// front white, back red, top green, bottom blue, right yellow, left magenta.
var DefaultFaceColors = [NumFaces]Color{
	RGBA(1, 1, 1, 1),
	RGBA(1, 0, 0, 1),
	RGBA(0, 1, 0, 1),
	RGBA(0, 0, 1, 1),
	RGBA(1, 1, 0, 1),
	RGBA(1, 0, 1, 1),
}

// RandomFaceColors returns six colors with channels drawn uniformly
// from [0, 1) and alpha 1, redrawing any color equal to an earlier one
// so that all six are distinct.
func RandomFaceColors(rnd randx.Rand) [NumFaces]Color {
	var cs [NumFaces]Color
	for i := range cs {
		for {
			c := RGBA(rnd.Float32(), rnd.Float32(), rnd.Float32(), 1)
			dup := false
			for _, p := range cs[:i] {
				if p == c {
					dup = true
					break
				}
			}
			if !dup {
				cs[i] = c
				break
			}
		}
	}
	return cs
}
