// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/spincube/base/errors"
)

// ErrUnknownAction is returned for actions that have no defined effect.
var ErrUnknownAction = errors.New("anim: unknown action")

// Actions are the kinds of discrete events that mutate the animation.
type Actions int32

const (
	// SetZoom sets the uniform zoom factor to Value.
	SetZoom Actions = iota

	// SetScale sets all three scale components to Value.
	SetScale

	// SetScaleX sets the X scale component to Value.
	SetScaleX

	// SetScaleY sets the Y scale component to Value.
	SetScaleY

	// SetScaleZ sets the Z scale component to Value.
	SetScaleZ

	// ToggleRotation flips between rotating and paused.
	ToggleRotation

	// Nudge adds Value to the angle, only while paused.
	Nudge

	// Recolor assigns new random face colors. It is handled by the
	// scene and leaves the animation state untouched.
	Recolor

	// SetAxis sets the rotation axis to Axis.
	SetAxis

	// ToggleDirection flips the rotation direction.
	ToggleDirection

	ActionsN
)

var actionsNames = [ActionsN]string{"zoom", "scale", "scale-x", "scale-y", "scale-z", "toggle-rotation", "nudge", "recolor", "axis", "toggle-direction"}

func (a Actions) String() string {
	if a < 0 || a >= ActionsN {
		return fmt.Sprintf("Actions(%d)", int32(a))
	}
	return actionsNames[a]
}

// Action is one discrete event: a kind plus its payload.
type Action struct {
	Kind Actions

	// Value is the payload for the zoom, scale and nudge kinds.
	Value float32

	// Axis is the payload for SetAxis.
	Axis Axes
}

func (a Action) String() string {
	switch a.Kind {
	case SetZoom, SetScale, SetScaleX, SetScaleY, SetScaleZ, Nudge:
		return a.Kind.String() + "=" + strconv.FormatFloat(float64(a.Value), 'g', -1, 32)
	case SetAxis:
		return a.Kind.String() + "=" + a.Axis.String()
	}
	return a.Kind.String()
}

// Zoom returns a [SetZoom] action.
func Zoom(v float32) Action { return Action{Kind: SetZoom, Value: v} }

// Scale returns a uniform [SetScale] action.
func Scale(v float32) Action { return Action{Kind: SetScale, Value: v} }

// ScaleAxis returns the per-axis scale action for the given axis.
func ScaleAxis(ax Axes, v float32) Action {
	return Action{Kind: SetScaleX + Actions(ax), Value: v}
}

// Toggle returns a [ToggleRotation] action.
func Toggle() Action { return Action{Kind: ToggleRotation} }

// NudgeBy returns a [Nudge] action of d radians.
func NudgeBy(d float32) Action { return Action{Kind: Nudge, Value: d} }

// NewColors returns a [Recolor] action.
func NewColors() Action { return Action{Kind: Recolor} }

// Axis returns a [SetAxis] action.
func Axis(ax Axes) Action { return Action{Kind: SetAxis, Axis: ax} }

// FlipDirection returns a [ToggleDirection] action.
func FlipDirection() Action { return Action{Kind: ToggleDirection} }

// ParseAction returns the action with the given name and value.
// Names are those of [Actions], plus rotate-left and rotate-right,
// which are nudges by -nudge and +nudge. Value is a float for zoom,
// scale and nudge kinds, and an axis name for axis.
func ParseAction(name, value string, nudge float32) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)
	switch name {
	case "rotate-left":
		return NudgeBy(-nudge), nil
	case "rotate-right":
		return NudgeBy(nudge), nil
	}
	var kind Actions = -1
	for i, n := range actionsNames {
		if n == name {
			kind = Actions(i)
			break
		}
	}
	switch kind {
	case SetZoom, SetScale, SetScaleX, SetScaleY, SetScaleZ, Nudge:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return Action{}, fmt.Errorf("anim: action %s: %w", name, err)
		}
		return Action{Kind: kind, Value: float32(v)}, nil
	case SetAxis:
		var ax Axes
		if err := ax.SetString(value); err != nil {
			return Action{}, fmt.Errorf("anim: action %s: %w", name, err)
		}
		return Axis(ax), nil
	case ToggleRotation, Recolor, ToggleDirection:
		return Action{Kind: kind}, nil
	}
	return Action{}, fmt.Errorf("%w %q", ErrUnknownAction, name)
}
