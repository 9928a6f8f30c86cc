// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for spincube,
// the presets they start from, and their TOML persistence.
package config

import (
	"fmt"
	"strings"

	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/base/imagex"
	"cogentcore.org/spincube/math32"
)

// ErrBadPreset is returned for unknown preset names.
var ErrBadPreset = errors.New("config: unknown preset")

// Presets are the named starting configurations.
type Presets int32

const (
	// Grid is a cube at distance 10 over a ground grid, with
	// per-axis scale controls and no lighting.
	Grid Presets = iota

	// Lit is a lit cube at distance 6 with a uniform scale
	// control and no grid.
	Lit

	PresetsN
)

var presetsNames = [PresetsN]string{"grid", "lit"}

func (p Presets) String() string {
	if p < 0 || p >= PresetsN {
		return fmt.Sprintf("Presets(%d)", int32(p))
	}
	return presetsNames[p]
}

// SetString sets the preset from its name.
func (p *Presets) SetString(s string) error {
	ls := strings.ToLower(strings.TrimSpace(s))
	for i, n := range presetsNames {
		if n == ls {
			*p = Presets(i)
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrBadPreset, s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (p Presets) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (p *Presets) UnmarshalText(text []byte) error {
	return p.SetString(string(text))
}

// Config is the main config struct that contains all of the
// configuration options for spincube.
type Config struct {

	// the preset the other values started from
	Preset Presets `toml:"preset" yaml:"preset"`

	// camera and projection settings
	Camera Camera `toml:"camera" yaml:"camera"`

	// which drawables exist and how they are shaded
	Scene Scene `toml:"scene" yaml:"scene"`

	// the initial animation state
	Anim Anim `toml:"anim" yaml:"anim"`

	// ranges and steps of the interactive controls
	Controls Controls `toml:"controls" yaml:"controls"`

	// the desktop window
	Window Window `toml:"window" yaml:"window"`

	// the headless renderer
	Render Render `toml:"render" yaml:"render"`

	// the random seed for face recoloring; 0 uses the global source
	Seed int64 `toml:"seed" yaml:"seed"`

	// the log level: debug, info, warn or error
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Camera holds the viewing parameters.
type Camera struct {

	// how far the scene is pushed back along -Z
	Distance float32 `toml:"distance" yaml:"distance"`

	// vertical field of view in radians
	FOV float32 `toml:"fov" yaml:"fov"`

	// near clipping plane
	Near float32 `toml:"near" yaml:"near"`

	// far clipping plane
	Far float32 `toml:"far" yaml:"far"`

	// apply the per-axis scale in the cube's own frame
	LocalScale bool `toml:"local_scale" yaml:"local_scale"`
}

// Scene selects the drawables and shading.
type Scene struct {

	// draw the ground grid
	Grid bool `toml:"grid" yaml:"grid"`

	// the grid reaches ±extent, with 2*extent+1 lines per direction
	GridExtent int `toml:"grid_extent" yaml:"grid_extent"`

	// the spacing of grid lines
	GridStep float32 `toml:"grid_step" yaml:"grid_step"`

	// use per-vertex lighting
	Lighting bool `toml:"lighting" yaml:"lighting"`

	// expose separate X, Y and Z scale controls instead of one uniform scale
	PerAxisScale bool `toml:"per_axis_scale" yaml:"per_axis_scale"`

	// the view-space light position
	LightPosition math32.Vector3 `toml:"light_position" yaml:"light_position"`
}

// Anim is the initial animation state.
type Anim struct {

	// radians added per rotating frame
	Step float32 `toml:"step" yaml:"step"`

	// radians per manual nudge
	Nudge float32 `toml:"nudge" yaml:"nudge"`

	// the initial rotation axis: x, y or z
	Axis anim.Axes `toml:"axis" yaml:"axis"`

	// the initial direction, +1 or -1
	Direction float32 `toml:"direction" yaml:"direction"`

	// whether rotation starts enabled
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// the initial zoom
	Zoom float32 `toml:"zoom" yaml:"zoom"`

	// the initial per-axis scale
	Scale math32.Vector3 `toml:"scale" yaml:"scale"`
}

// Controls are the ranges and steps of the interactive controls.
// The core accepts any value; hosts clamp to these ranges.
type Controls struct {
	ZoomMin  float32 `toml:"zoom_min" yaml:"zoom_min"`
	ZoomMax  float32 `toml:"zoom_max" yaml:"zoom_max"`
	ZoomStep float32 `toml:"zoom_step" yaml:"zoom_step"`

	ScaleMin  float32 `toml:"scale_min" yaml:"scale_min"`
	ScaleMax  float32 `toml:"scale_max" yaml:"scale_max"`
	ScaleStep float32 `toml:"scale_step" yaml:"scale_step"`
}

// Window is the desktop window.
type Window struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// Render configures the headless renderer.
type Render struct {

	// the number of frames to render
	Frames int `toml:"frames" yaml:"frames"`

	// frames per second to pace at; 0 renders as fast as possible
	Hz float64 `toml:"hz" yaml:"hz"`

	// the output file name; png output numbers the frames
	Out string `toml:"out" yaml:"out"`

	// gif for one animation, or png, jpeg, tiff or bmp for stills
	Format string `toml:"format" yaml:"format"`

	// render at this multiple of the output size and downscale
	Supersample int `toml:"supersample" yaml:"supersample"`

	// frame-indexed actions, each "frame:action" or "frame:action=value"
	Script []string `toml:"script,omitempty" yaml:"script,omitempty"`
}

// New returns the configuration of the given preset.
func New(preset Presets) (*Config, error) {
	cfg := &Config{
		Preset: preset,
		Camera: Camera{FOV: math32.Pi / 4, Near: 0.1, Far: 100},
		Scene: Scene{
			GridExtent:    10,
			GridStep:      0.5,
			LightPosition: math32.Vec3(2, 4, 2),
		},
		Anim: Anim{
			Step:      anim.DefaultStep,
			Nudge:     anim.DefaultNudge,
			Axis:      anim.Y,
			Direction: 1,
			Enabled:   true,
			Zoom:      1,
			Scale:     math32.Vector3Scalar(1),
		},
		Controls: Controls{
			ZoomMin: 0.1, ZoomMax: 3, ZoomStep: 0.1,
			ScaleMin: 0.1, ScaleMax: 3, ScaleStep: 0.1,
		},
		Window:   Window{Width: 800, Height: 600, Title: "spincube"},
		Render:   Render{Frames: 60, Out: "spincube.png", Format: "png", Supersample: 2},
		LogLevel: "info",
	}
	switch preset {
	case Grid:
		cfg.Camera.Distance = 10
		cfg.Scene.Grid = true
		cfg.Scene.PerAxisScale = true
	case Lit:
		cfg.Camera.Distance = 6
		cfg.Scene.Lighting = true
	default:
		return nil, fmt.Errorf("%w %v", ErrBadPreset, preset)
	}
	return cfg, nil
}

// Default returns the configuration of the [Grid] preset.
func Default() *Config {
	return errors.Must1(New(Grid))
}

// Validate returns an error joining every invalid value.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, a ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, a...))
	}
	if c.Preset < 0 || c.Preset >= PresetsN {
		errs = append(errs, fmt.Errorf("%w %v", ErrBadPreset, c.Preset))
	}
	cm := c.Camera
	if cm.FOV <= 0 || cm.FOV >= math32.Pi {
		bad("camera.fov %v must be in (0, π)", cm.FOV)
	}
	if cm.Near <= 0 || cm.Far <= cm.Near {
		bad("camera near %v and far %v must satisfy 0 < near < far", cm.Near, cm.Far)
	}
	if c.Scene.Grid && (c.Scene.GridExtent < 0 || c.Scene.GridStep <= 0) {
		bad("scene grid extent %d and step %v must be non-negative and positive", c.Scene.GridExtent, c.Scene.GridStep)
	}
	if c.Anim.Direction != 1 && c.Anim.Direction != -1 {
		bad("anim.direction %v must be 1 or -1", c.Anim.Direction)
	}
	if c.Anim.Axis < 0 || c.Anim.Axis >= anim.AxesN {
		bad("anim.axis %v is not x, y or z", c.Anim.Axis)
	}
	ct := c.Controls
	if ct.ZoomMin > ct.ZoomMax || ct.ScaleMin > ct.ScaleMax {
		bad("controls min must not exceed max")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Render.Frames < 0 || c.Render.Hz < 0 || c.Render.Supersample < 1 {
		bad("render frames %d, hz %v and supersample %d are out of range", c.Render.Frames, c.Render.Hz, c.Render.Supersample)
	}
	if _, err := imagex.ExtToFormat(c.Render.Format); err != nil {
		bad("render.format %q must be png, jpeg, gif, tiff or bmp", c.Render.Format)
	}
	return errors.Join(errs...)
}

// NewState returns the initial animation state described by the config.
func (c *Config) NewState() *anim.State {
	s := anim.NewState()
	a := c.Anim
	s.Step = a.Step
	s.NudgeStep = a.Nudge
	s.Axis = a.Axis
	s.Direction = a.Direction
	s.Enabled = a.Enabled
	s.Zoom = a.Zoom
	s.Scale = a.Scale
	return s
}

// ClampZoom clamps v to the zoom control range.
func (c Controls) ClampZoom(v float32) float32 {
	return math32.Clamp(v, c.ZoomMin, c.ZoomMax)
}

// ClampScale clamps v to the scale control range.
func (c Controls) ClampScale(v float32) float32 {
	return math32.Clamp(v, c.ScaleMin, c.ScaleMax)
}
