// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web runs a scene on a WebGL canvas in the browser, with
// the page's sliders and buttons as controls.
package web

import (
	"maps"
	"slices"
	"strings"
)

// Element ids of the page.
const (
	CanvasID         = "glCanvas"
	StartStopID      = "startStopRotationButton"
	StartLabel       = "Start Rotation"
	StopLabel        = "Stop Rotation"
	ContextAlertText = "Unable to initialize WebGL. Your browser may not support it."
)

// sliders maps slider ids to the action names their values feed.
var sliders = map[string]string{
	"zoomSlider":   "zoom",
	"scaleSlider":  "scale",
	"scaleXSlider": "scale-x",
	"scaleYSlider": "scale-y",
	"scaleZSlider": "scale-z",
}

// buttons maps button ids to the action names they dispatch.
var buttons = map[string]string{
	StartStopID:         "toggle-rotation",
	"rotateLeftButton":  "rotate-left",
	"rotateRightButton": "rotate-right",
	"colorButton":       "recolor",
	"directionButton":   "toggle-direction",
	"rotateXButton":     "axis=x",
	"rotateYButton":     "axis=y",
	"rotateZButton":     "axis=z",
}

// Sliders returns the ids of the sliders to bind for a scene, mapped
// to their action names, and the sorted ids of the scale sliders that
// do not apply: the uniform one when perAxis is set, and the per-axis
// ones otherwise.
func Sliders(perAxis bool) (bound map[string]string, hidden []string) {
	bound = maps.Clone(sliders)
	for id, name := range sliders {
		if !strings.HasPrefix(name, "scale") {
			continue
		}
		if (name == "scale") == perAxis {
			delete(bound, id)
			hidden = append(hidden, id)
		}
	}
	slices.Sort(hidden)
	return bound, hidden
}
