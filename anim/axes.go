// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"strings"

	"cogentcore.org/spincube/math32"
)

// Axes are the principal axes the cube can rotate about.
type Axes int32

const (
	// X is the horizontal axis.
	X Axes = iota

	// Y is the vertical axis.
	Y

	// Z is the axis pointing toward the viewer.
	Z

	AxesN
)

var axesNames = [AxesN]string{"x", "y", "z"}

func (a Axes) String() string {
	if a < 0 || a >= AxesN {
		return fmt.Sprintf("Axes(%d)", int32(a))
	}
	return axesNames[a]
}

// Vector returns the unit vector along the axis.
func (a Axes) Vector() math32.Vector3 {
	switch a {
	case X:
		return math32.Vec3(1, 0, 0)
	case Z:
		return math32.Vec3(0, 0, 1)
	default:
		return math32.Vec3(0, 1, 0)
	}
}

// SetString sets the axis from its name (x, y or z, case insensitive).
func (a *Axes) SetString(s string) error {
	ls := strings.ToLower(strings.TrimSpace(s))
	for i, n := range axesNames {
		if n == ls {
			*a = Axes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Axes", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (a Axes) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (a *Axes) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}
