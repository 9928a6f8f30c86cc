// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spincube

import (
	"context"
	"log/slog"
	"strings"

	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/base/randx"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/geom"
	"cogentcore.org/spincube/render"
	"cogentcore.org/spincube/transform"
)

// Scene is the cube, the optional ground grid and the animation state
// driving them, bound to one graphics context. It is driven by a host
// display loop calling [Scene.Frame], and mutated only through
// [Scene.Dispatch], both on the host's render thread.
type Scene struct {

	// Config is the configuration the scene was made from.
	Config *config.Config

	// State is the animation state, advanced once per frame.
	State *anim.State

	// Camera holds the viewing parameters.
	Camera transform.Camera

	// Cube is the cube vertex data.
	Cube *geom.VertexSet

	// Grid is the ground grid vertex data, or nil.
	Grid *geom.VertexSet

	// Renderer draws through the graphics context.
	Renderer *render.Renderer

	// Rand is the source for random face colors.
	Rand randx.Rand

	// Frames is the number of frames rendered.
	Frames int

	// OnChange, if set, is called after each dispatched action.
	OnChange func(a anim.Action)

	cube    *render.Drawable
	grid    *render.Drawable
	updates <-chan *config.Config
}

// NewScene returns a new scene for the given configuration, drawing
// through ctx. It fails with [render.ErrContextUnavailable] if ctx is
// nil. A shader build failure is logged and does not fail the scene:
// frames still run, and draws do nothing.
func NewScene(cfg *config.Config, ctx render.Context) (*Scene, error) {
	if ctx == nil {
		return nil, render.ErrContextUnavailable
	}
	cm := cfg.Camera
	sc := &Scene{
		Config: cfg,
		State:  cfg.NewState(),
		Camera: transform.Camera{Distance: cm.Distance, FOV: cm.FOV, Near: cm.Near, Far: cm.Far, LocalScale: cm.LocalScale},
		Cube:   geom.BuildCube(),
		Rand:   randx.New(cfg.Seed),
	}
	if cfg.Scene.Grid {
		sc.Grid = geom.BuildGrid(cfg.Scene.GridExtent, cfg.Scene.GridStep)
	}
	sc.Renderer = render.NewRenderer(ctx, cfg.Scene.Lighting, cfg.Scene.LightPosition)
	sc.Renderer.Init()
	if sc.Grid != nil {
		sc.grid = sc.Renderer.Upload("grid", sc.Grid)
	}
	sc.cube = sc.Renderer.Upload("cube", sc.Cube)
	slog.Info("spincube: scene ready", "preset", cfg.Preset, "grid", sc.Grid != nil, "lighting", cfg.Scene.Lighting)
	return sc, nil
}

// Dispatch applies the given action. [anim.Recolor] assigns new random
// face colors to the cube and uploads them; every other action mutates
// [Scene.State], taking effect from the next frame.
func (sc *Scene) Dispatch(a anim.Action) error {
	if a.Kind == anim.Recolor {
		if err := sc.Recolor(geom.RandomFaceColors(sc.Rand)); err != nil {
			return errors.Log(err)
		}
	} else if err := sc.State.Apply(a); err != nil {
		return errors.Log(err)
	}
	slog.Debug("spincube: action", "action", a, "state", sc.State)
	if sc.OnChange != nil {
		sc.OnChange(a)
	}
	return nil
}

// Recolor sets the cube face colors and replaces its color buffer.
func (sc *Scene) Recolor(colors [geom.NumFaces]geom.Color) error {
	if err := sc.Cube.SetFaceColors(colors); err != nil {
		return err
	}
	sc.Renderer.UpdateColors(sc.cube)
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		hex := make([]string, len(colors))
		for i, c := range colors {
			hex[i] = c.Hex()
		}
		slog.Debug("spincube: recolor", "colors", strings.Join(hex, " "))
	}
	return nil
}

// Reconfigure dispatches the actions that bring the animation state
// to the values of the Anim section of cfg, and takes the control
// ranges of cfg. The angle is kept, and the scene geometry and camera
// are not changed.
func (sc *Scene) Reconfigure(cfg *config.Config) error {
	st, an := sc.State, cfg.Anim
	var acts []anim.Action
	if st.Zoom != an.Zoom {
		acts = append(acts, anim.Zoom(an.Zoom))
	}
	for ax := range anim.AxesN {
		cur := [anim.AxesN]float32{st.Scale.X, st.Scale.Y, st.Scale.Z}[ax]
		want := [anim.AxesN]float32{an.Scale.X, an.Scale.Y, an.Scale.Z}[ax]
		if cur != want {
			acts = append(acts, anim.ScaleAxis(ax, want))
		}
	}
	if st.Axis != an.Axis {
		acts = append(acts, anim.Axis(an.Axis))
	}
	if (st.Direction < 0) != (an.Direction < 0) {
		acts = append(acts, anim.FlipDirection())
	}
	if st.Enabled != an.Enabled {
		acts = append(acts, anim.Toggle())
	}
	var errs []error
	for _, a := range acts {
		errs = append(errs, sc.Dispatch(a))
	}
	sc.Config.Controls = cfg.Controls
	return errors.Join(errs...)
}

// Watch makes each frame first apply, with [Scene.Reconfigure],
// any configs received on ch, such as those of [config.Watch].
func (sc *Scene) Watch(ch <-chan *config.Config) {
	sc.updates = ch
}

// Frame applies any pending config updates, advances the animation
// by one tick and draws the grid, if any, and then the cube.
// All matrices are recomputed.
func (sc *Scene) Frame() {
	for done := false; !done && sc.updates != nil; {
		select {
		case cfg, ok := <-sc.updates:
			if !ok {
				sc.updates = nil
				break
			}
			errors.Log(sc.Reconfigure(cfg))
		default:
			done = true
		}
	}
	sc.State.Tick()
	aspect := sc.Renderer.BeginFrame()
	proj := sc.Camera.Projection(aspect)
	if sc.grid != nil {
		sc.Renderer.Draw(sc.grid, proj, sc.Camera.GridModelView(sc.State.Zoom))
	}
	sc.Renderer.Draw(sc.cube, proj, sc.Camera.CubeModelView(sc.State))
	sc.Frames++
}

// Release deletes the GPU buffers of the scene.
func (sc *Scene) Release() {
	if sc.grid != nil {
		sc.Renderer.Release(sc.grid)
	}
	sc.Renderer.Release(sc.cube)
}
