// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/errors"
	"cogentcore.org/spincube/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	g, err := New(Grid)
	require.NoError(t, err)
	assert.Equal(t, float32(10), g.Camera.Distance)
	assert.True(t, g.Scene.Grid)
	assert.True(t, g.Scene.PerAxisScale)
	assert.False(t, g.Scene.Lighting)
	assert.NoError(t, g.Validate())

	l, err := New(Lit)
	require.NoError(t, err)
	assert.Equal(t, float32(6), l.Camera.Distance)
	assert.False(t, l.Scene.Grid)
	assert.False(t, l.Scene.PerAxisScale)
	assert.True(t, l.Scene.Lighting)
	assert.NoError(t, l.Validate())

	for _, c := range []*Config{g, l} {
		assert.Equal(t, float32(math32.Pi/4), c.Camera.FOV)
		assert.Equal(t, float32(0.1), c.Camera.Near)
		assert.Equal(t, float32(100), c.Camera.Far)
		assert.False(t, c.Camera.LocalScale)
	}

	_, err = New(PresetsN)
	assert.True(t, errors.Is(err, ErrBadPreset))
	var p Presets
	assert.True(t, errors.Is(p.SetString("wire"), ErrBadPreset))
	require.NoError(t, p.SetString("LIT"))
	assert.Equal(t, Lit, p)
}

func TestNewState(t *testing.T) {
	c := Default()
	c.Anim.Axis = anim.Z
	c.Anim.Direction = -1
	c.Anim.Enabled = false
	c.Anim.Scale = math32.Vec3(1, 2, 3)
	s := c.NewState()
	assert.Equal(t, anim.Z, s.Axis)
	assert.Equal(t, float32(-1), s.Direction)
	assert.False(t, s.Enabled)
	assert.Equal(t, math32.Vec3(1, 2, 3), s.Scale)
	assert.Equal(t, float32(anim.DefaultStep), s.Step)
	assert.Equal(t, float32(0), s.Angle)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Anim.Direction = 0
	c.Camera.Near = 200
	c.Render.Format = "webp"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anim.direction")
	assert.Contains(t, err.Error(), "near")
	assert.Contains(t, err.Error(), "render.format")
}

func TestWriteRead(t *testing.T) {
	c, err := New(Lit)
	require.NoError(t, err)
	c.Anim.Axis = anim.X
	c.Render.Script = []string{"30:toggle-direction", "60:axis=z"}

	var b bytes.Buffer
	require.NoError(t, Write(c, &b))
	s := b.String()
	assert.Contains(t, s, "preset = 'lit'")
	assert.Contains(t, s, "axis = 'x'")

	d := Default()
	require.NoError(t, Read(d, strings.NewReader(s)))
	assert.Equal(t, c, d)

	assert.Error(t, Read(Default(), strings.NewReader("bogus = 1\n")))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "spincube.toml")
	require.NoError(t, os.WriteFile(fn, []byte("preset = 'lit'\n\n[anim]\nzoom = 1.5\n"), 0o644))

	c, err := Load("", fn)
	require.NoError(t, err)
	assert.Equal(t, Lit, c.Preset)
	assert.Equal(t, float32(6), c.Camera.Distance)
	assert.Equal(t, float32(1.5), c.Anim.Zoom)

	c, err = Load("grid", fn)
	require.NoError(t, err)
	assert.Equal(t, Grid, c.Preset)
	assert.Equal(t, float32(10), c.Camera.Distance)
	assert.Equal(t, float32(1.5), c.Anim.Zoom)

	_, err = Load("nope", fn)
	assert.True(t, errors.Is(err, ErrBadPreset))
	_, err = Load("", filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "cfg.toml")
	c := Default()
	c.Seed = 99
	require.NoError(t, Save(c, fn))
	d, err := New(Lit)
	require.NoError(t, err)
	require.NoError(t, Open(d, fn))
	assert.Equal(t, c, d)
}

func TestDefaultFile(t *testing.T) {
	fn, err := DefaultFile()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(fn, filepath.Join(".config", "spincube", "spincube.toml")))
	assert.False(t, strings.HasPrefix(fn, "~"))
}

func TestYAML(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "spincube.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("preset: lit\nanim:\n  axis: z\n  zoom: 2\n"), 0o644))
	c, err := Load("", fn)
	require.NoError(t, err)
	assert.Equal(t, Lit, c.Preset)
	assert.Equal(t, anim.Z, c.Anim.Axis)
	assert.Equal(t, float32(2), c.Anim.Zoom)

	out := filepath.Join(dir, "saved.yml")
	require.NoError(t, Save(c, out))
	d := Default()
	require.NoError(t, Open(d, out))
	assert.Equal(t, c, d)

	assert.Error(t, ReadYAML(Default(), strings.NewReader("bogus: 1\n")))
	assert.NoError(t, ReadYAML(Default(), strings.NewReader("")))
	assert.True(t, IsYAML("a.YML"))
	assert.False(t, IsYAML("a.toml"))
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "spincube.toml")
	require.NoError(t, os.WriteFile(fn, nil, 0o644))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, "", fn)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("[anim]\nzoom = 2.5\n"), 0o644))
	// a write can be seen in parts, so wait for the final contents
	timeout := time.After(5 * time.Second)
	for zoom := float32(0); zoom != 2.5; {
		select {
		case c := <-ch:
			require.NotNil(t, c)
			zoom = c.Anim.Zoom
		case <-timeout:
			t.Fatal("no reload")
		}
	}
	cancel()
	for range ch {
	}
}
