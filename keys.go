// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spincube

import (
	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/errors"
)

// Key names used by [Scene.KeyAction]. Hosts translate their key
// events to these names.
const (
	KeySpace      = "space"
	KeyLeft       = "left"
	KeyRight      = "right"
	KeyZoomIn     = "+"
	KeyZoomOut    = "-"
	KeyScaleUp    = "]"
	KeyScaleDown  = "["
	KeyDirection  = "d"
	KeyRecolor    = "c"
	KeyAxisX      = "x"
	KeyAxisY      = "y"
	KeyAxisZ      = "z"
	KeyZoomInAlt  = "="
	KeyZoomOutAlt = "_"
)

// KeyAction returns the action for the given key name, if any:
// space toggles rotation, left and right nudge, x, y and z select
// the axis, d flips the direction, c recolors, + and - step the zoom,
// and ] and [ step the scale, along the current axis when the scene
// has per-axis scale and uniformly otherwise. Steps are clamped to
// the control ranges of the config.
func (sc *Scene) KeyAction(key string) (anim.Action, bool) {
	st := sc.State
	ct := sc.Config.Controls
	switch key {
	case KeySpace:
		return anim.Toggle(), true
	case KeyLeft:
		return anim.NudgeBy(-st.NudgeStep), true
	case KeyRight:
		return anim.NudgeBy(st.NudgeStep), true
	case KeyAxisX:
		return anim.Axis(anim.X), true
	case KeyAxisY:
		return anim.Axis(anim.Y), true
	case KeyAxisZ:
		return anim.Axis(anim.Z), true
	case KeyDirection:
		return anim.FlipDirection(), true
	case KeyRecolor:
		return anim.NewColors(), true
	case KeyZoomIn, KeyZoomInAlt:
		return anim.Zoom(ct.ClampZoom(st.Zoom + ct.ZoomStep)), true
	case KeyZoomOut, KeyZoomOutAlt:
		return anim.Zoom(ct.ClampZoom(st.Zoom - ct.ZoomStep)), true
	case KeyScaleUp, KeyScaleDown:
		d := ct.ScaleStep
		if key == KeyScaleDown {
			d = -d
		}
		if !sc.Config.Scene.PerAxisScale {
			return anim.Scale(ct.ClampScale(st.Scale.X + d)), true
		}
		cur := [anim.AxesN]float32{st.Scale.X, st.Scale.Y, st.Scale.Z}[st.Axis]
		return anim.ScaleAxis(st.Axis, ct.ClampScale(cur+d)), true
	}
	return anim.Action{}, false
}

// Key dispatches the action for the given key name, if any.
// It returns whether the key was handled.
func (sc *Scene) Key(key string) bool {
	a, ok := sc.KeyAction(key)
	if !ok {
		return false
	}
	errors.Log(sc.Dispatch(a))
	return true
}
