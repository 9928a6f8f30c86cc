// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ebitenview

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyNames(t *testing.T) {
	pressed := map[ebiten.Key]bool{ebiten.KeySpace: true, ebiten.KeyArrowRight: true}
	names := keyNames(func(k ebiten.Key) bool { return pressed[k] }, []rune{' ', '+', 'z'})
	assert.Equal(t, []string{"space", "right", "+", "z"}, names)

	assert.Empty(t, keyNames(func(ebiten.Key) bool { return false }, nil))
}
