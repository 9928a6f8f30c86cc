// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spincube

import (
	"testing"

	"cogentcore.org/spincube/anim"
	"cogentcore.org/spincube/base/tolassert"
	"cogentcore.org/spincube/config"
	"github.com/stretchr/testify/assert"
)

func TestKeyAction(t *testing.T) {
	sc, _ := newTestScene(t, config.Grid)
	tests := map[string]anim.Action{
		KeySpace:     anim.Toggle(),
		KeyLeft:      anim.NudgeBy(-0.1),
		KeyRight:     anim.NudgeBy(0.1),
		KeyAxisX:     anim.Axis(anim.X),
		KeyAxisZ:     anim.Axis(anim.Z),
		KeyDirection: anim.FlipDirection(),
		KeyRecolor:   anim.NewColors(),
	}
	for k, want := range tests {
		got, ok := sc.KeyAction(k)
		assert.True(t, ok, k)
		assert.Equal(t, want, got, k)
	}
	_, ok := sc.KeyAction("q")
	assert.False(t, ok)
	assert.False(t, sc.Key("q"))
}

func TestKeyZoomClamp(t *testing.T) {
	sc, _ := newTestScene(t, config.Grid)
	for range 50 {
		sc.Key(KeyZoomIn)
	}
	tolassert.EqualTol(t, 3, sc.State.Zoom, 1.0e-6)
	for range 50 {
		sc.Key(KeyZoomOut)
	}
	tolassert.EqualTol(t, 0.1, sc.State.Zoom, 1.0e-6)
}

func TestKeyScale(t *testing.T) {
	sc, _ := newTestScene(t, config.Grid)
	sc.Key(KeyAxisZ)
	sc.Key(KeyScaleUp)
	tolassert.EqualTol(t, 1.1, sc.State.Scale.Z, 1.0e-6)
	assert.Equal(t, float32(1), sc.State.Scale.X)

	lit, _ := newTestScene(t, config.Lit)
	lit.Key(KeyScaleDown)
	tolassert.EqualTol(t, 0.9, lit.State.Scale.X, 1.0e-6)
	assert.Equal(t, lit.State.Scale.X, lit.State.Scale.Y)
	assert.Equal(t, lit.State.Scale.X, lit.State.Scale.Z)
}
