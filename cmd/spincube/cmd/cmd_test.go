// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/spincube/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with an empty config file and
// returns its output and the config any window would have run.
func execute(t *testing.T, args ...string) (string, *config.Config, error) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "spincube.toml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	var ran *config.Config
	root := NewRoot("spincube", func(cfg *config.Config, updates <-chan *config.Config) error {
		ran = cfg
		return nil
	})
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", file}, args...))
	err := root.Execute()
	return out.String(), ran, err
}

func TestConfigCommand(t *testing.T) {
	out, _, err := execute(t, "config", "--preset", "lit")
	require.NoError(t, err)
	assert.Contains(t, out, "preset = 'lit'")
	assert.Contains(t, out, "distance = 6.0")

	_, _, err = execute(t, "config", "--preset", "wire")
	assert.ErrorIs(t, err, config.ErrBadPreset)
}

func TestConfigSave(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out", "saved.toml")
	_, _, err := execute(t, "config", "--preset", "lit", "--save", file)
	require.NoError(t, err)
	cfg, err := config.Load("", file)
	require.NoError(t, err)
	assert.Equal(t, config.Lit, cfg.Preset)
}

func TestWindowCommand(t *testing.T) {
	_, cfg, err := execute(t, "window", "--width", "320", "--seed", "7")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, config.Grid, cfg.Preset)
	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, int64(7), cfg.Seed)

	_, cfg, err = execute(t, "--preset", "lit")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, config.Lit, cfg.Preset)

	_, _, err = execute(t, "window", "--width=-5")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cube.gif")
	_, _, err := execute(t, "render", "--preset", "lit", "-n", "2", "-o", out, "-f", "gif",
		"--width", "32", "--height", "24", "--supersample", "1", "-s", "1:toggle-rotation")
	require.NoError(t, err)
	_, err = os.Stat(out)
	assert.NoError(t, err)

	_, _, err = execute(t, "render", "-n", "1", "-o", out, "-s", "1:spin")
	assert.Error(t, err)
}

func TestWindowWatch(t *testing.T) {
	file := filepath.Join(t.TempDir(), "spincube.toml")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	watched := false
	root := NewRoot("spincube", func(cfg *config.Config, updates <-chan *config.Config) error {
		watched = updates != nil
		return nil
	})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", file, "--watch"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, root.ExecuteContext(ctx))
	assert.True(t, watched)
}
