// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spincube

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/tolassert"
	"cogentcore.org/spincube/config"
	"cogentcore.org/spincube/geom"
	"cogentcore.org/spincube/math32"
	"cogentcore.org/spincube/render"
	"cogentcore.org/spincube/render/rendertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T, preset config.Presets) (*Scene, *rendertest.Recorder) {
	t.Helper()
	cfg, err := config.New(preset)
	require.NoError(t, err)
	cfg.Seed = 1
	rc := rendertest.NewRecorder(800, 600)
	sc, err := NewScene(cfg, rc)
	require.NoError(t, err)
	return sc, rc
}

func TestNewSceneNoContext(t *testing.T) {
	_, err := NewScene(config.Default(), nil)
	assert.True(t, errors.Is(err, render.ErrContextUnavailable))
}

func TestFrameGrid(t *testing.T) {
	sc, rc := newTestScene(t, config.Grid)
	require.NotNil(t, sc.Grid)
	rc.Reset()
	sc.Frame()

	names := rc.Names()
	assert.Equal(t, "Viewport", names[0])
	assert.Equal(t, "Clear", names[1])
	arrays := rc.Find("DrawArrays")
	elems := rc.Find("DrawElements")
	require.Len(t, arrays, 1)
	require.Len(t, elems, 1)
	assert.Equal(t, []any{render.Lines, 0, 84}, arrays[0].Args)
	assert.Equal(t, render.Primitive(render.Triangles), elems[0].Args[0])
	assert.Equal(t, 36, elems[0].Args[2])

	// grid is drawn before the cube
	gi, ci := -1, -1
	for i, n := range names {
		switch n {
		case "DrawArrays":
			gi = i
		case "DrawElements":
			ci = i
		}
	}
	assert.Less(t, gi, ci)

	mats := rc.Find("UniformMatrix4")
	require.Len(t, mats, 4)
	proj := sc.Camera.Projection(float32(800) / 600)
	assert.Equal(t, *proj, mats[0].Args[1])
	assert.Equal(t, *sc.Camera.GridModelView(1), mats[1].Args[1])
	assert.Equal(t, *sc.Camera.CubeModelView(sc.State), mats[3].Args[1])
	assert.Equal(t, 1, sc.Frames)
	tolassert.EqualTol(t, 0.01, sc.State.Angle, 1.0e-6)
}

func TestFrameLit(t *testing.T) {
	sc, rc := newTestScene(t, config.Lit)
	assert.Nil(t, sc.Grid)
	rc.Reset()
	sc.Frame()
	assert.Equal(t, 0, rc.Count("DrawArrays"))
	assert.Equal(t, 1, rc.Count("DrawElements"))
	u := rc.Find("Uniform3")
	require.Len(t, u, 1)
	assert.Equal(t, math32.Vec3(2, 4, 2), u[0].Args[1])
}

func TestFramesAdvance(t *testing.T) {
	sc, _ := newTestScene(t, config.Grid)
	for range 100 {
		sc.Frame()
	}
	tolassert.EqualTol(t, 1, sc.State.Angle, 1.0e-4)
	assert.Equal(t, 100, sc.Frames)
}

func TestDispatchRecolor(t *testing.T) {
	sc, rc := newTestScene(t, config.Grid)
	before := *sc.State
	pos := append([]float32{}, rc.Buffers[sc.cube.Position]...)
	rc.Reset()

	var changed []anim.Action
	sc.OnChange = func(a anim.Action) { changed = append(changed, a) }
	require.NoError(t, sc.Dispatch(anim.NewColors()))
	assert.Equal(t, before, *sc.State)
	assert.Equal(t, []anim.Action{anim.NewColors()}, changed)

	cols := rc.Buffers[sc.cube.Color]
	require.Len(t, cols, 96)
	assert.Equal(t, sc.Cube.Colors, cols)
	assert.Equal(t, pos, rc.Buffers[sc.cube.Position])
	faces := map[geom.Color]bool{}
	for f := range geom.NumFaces {
		c := sc.Cube.Color(f * 4)
		assert.Equal(t, float32(1), c.A)
		for v := 1; v < 4; v++ {
			assert.Equal(t, c, sc.Cube.Color(f*4+v))
		}
		faces[c] = true
	}
	assert.Len(t, faces, geom.NumFaces)
	assert.Equal(t, 1, rc.Count("BufferDataFloat32"))
}

func TestDispatchEndToEnd(t *testing.T) {
	sc, _ := newTestScene(t, config.Grid)
	require.NoError(t, sc.Dispatch(anim.Axis(anim.Y)))
	require.NoError(t, sc.Dispatch(anim.FlipDirection()))
	sc.Frame()
	tolassert.EqualTol(t, -0.01, sc.State.Angle, 1.0e-6)
	require.NoError(t, sc.Dispatch(anim.Toggle()))
	a, err := anim.ParseAction("rotate-right", "", sc.State.NudgeStep)
	require.NoError(t, err)
	require.NoError(t, sc.Dispatch(a))
	tolassert.EqualTol(t, 0.09, sc.State.Angle, 1.0e-6)
	sc.Frame()
	tolassert.EqualTol(t, 0.09, sc.State.Angle, 1.0e-6)
}

func TestDispatchRecolorFailure(t *testing.T) {
	b := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(b, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	sc, rc := newTestScene(t, config.Grid)
	sc.Cube = geom.BuildGrid(2, 1)
	rc.Reset()
	err := sc.Dispatch(anim.NewColors())
	assert.True(t, errors.Is(err, geom.ErrNotCube))
	assert.Contains(t, b.String(), geom.ErrNotCube.Error())
	assert.Zero(t, rc.Count("BufferDataFloat32"))
}

func TestDispatchUnknown(t *testing.T) {
	sc, _ := newTestScene(t, config.Grid)
	err := sc.Dispatch(anim.Action{Kind: anim.ActionsN})
	assert.True(t, errors.Is(err, anim.ErrUnknownAction))
}

func TestShaderFailureKeepsRunning(t *testing.T) {
	cfg := config.Default()
	rc := rendertest.NewRecorder(800, 600)
	rc.FailCompile[render.VertexShader] = true
	sc, err := NewScene(cfg, rc)
	require.NoError(t, err)
	assert.Zero(t, sc.Renderer.Info.Program)
	rc.Reset()
	sc.Frame()
	sc.Frame()
	assert.Equal(t, 2, rc.Count("Clear"))
	assert.Equal(t, 0, rc.Count("DrawElements"))
	assert.Equal(t, 2, sc.Frames)
	require.NoError(t, sc.Dispatch(anim.NewColors()))
}

type countLoop struct{ n int }

func (l *countLoop) RunLoop(frame func()) error {
	for range l.n {
		frame()
	}
	return nil
}

func TestRun(t *testing.T) {
	sc, _ := newTestScene(t, config.Lit)
	require.NoError(t, Run(&countLoop{n: 5}, sc))
	assert.Equal(t, 5, sc.Frames)
	sc.Release()
}

func TestReconfigure(t *testing.T) {
	sc, _ := newTestScene(t, config.Grid)
	var got []anim.Action
	sc.OnChange = func(a anim.Action) { got = append(got, a) }

	cfg, err := config.New(config.Grid)
	require.NoError(t, err)
	cfg.Anim.Zoom = 2
	cfg.Anim.Scale.Y = 1.5
	cfg.Anim.Axis = anim.X
	cfg.Anim.Direction = -1
	cfg.Anim.Enabled = false
	cfg.Controls.ZoomMax = 5
	require.NoError(t, sc.Reconfigure(cfg))

	assert.Equal(t, []anim.Action{anim.Zoom(2), anim.ScaleAxis(anim.Y, 1.5), anim.Axis(anim.X), anim.FlipDirection(), anim.Toggle()}, got)
	assert.Equal(t, math32.Vec3(1, 1.5, 1), sc.State.Scale)
	assert.Equal(t, float32(-1), sc.State.Direction)
	assert.False(t, sc.State.Enabled)
	assert.Equal(t, float32(5), sc.Config.Controls.ZoomMax)

	got = nil
	require.NoError(t, sc.Reconfigure(cfg))
	assert.Empty(t, got)
}

func TestWatchUpdates(t *testing.T) {
	sc, _ := newTestScene(t, config.Grid)
	ch := make(chan *config.Config, 1)
	sc.Watch(ch)

	cfg, err := config.New(config.Grid)
	require.NoError(t, err)
	cfg.Anim.Enabled = false
	ch <- cfg
	sc.Frame()
	assert.False(t, sc.State.Enabled)
	assert.Zero(t, sc.State.Angle)

	close(ch)
	sc.Frame()
	assert.Equal(t, 2, sc.Frames)
}
