// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestSetUserLevel(t *testing.T) {
	prev := UserLevel.Level()
	t.Cleanup(func() { UserLevel.Set(prev) })

	assert.NoError(t, SetUserLevel("debug"))
	assert.Equal(t, slog.LevelDebug, UserLevel.Level())
	assert.NoError(t, SetUserLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, UserLevel.Level())
	assert.Error(t, SetUserLevel("loud"))
	assert.Equal(t, slog.LevelWarn, UserLevel.Level())
}

func TestNewLogger(t *testing.T) {
	prev := UserLevel.Level()
	t.Cleanup(func() { UserLevel.Set(prev) })
	UserLevel.Set(slog.LevelInfo)

	b := &bytes.Buffer{}
	l := NewLogger(b, termenv.WithProfile(termenv.Ascii))
	l.Debug("hidden")
	l.Info("frame", "n", 3)
	l.Error("shader", "err", "bad")
	s := b.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "INFO time=")
	assert.Contains(t, s, "msg=frame n=3")
	assert.Contains(t, s, "msg=shader err=bad")
	assert.NotContains(t, s, "level=")

	b.Reset()
	l = NewLogger(b, termenv.WithProfile(termenv.ANSI))
	l.With("frame", 1).Warn("colored")
	assert.Contains(t, b.String(), "\x1b[")
	assert.Contains(t, b.String(), "frame=1")
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, termenv.ANSIRed, LevelColor(slog.LevelError))
	assert.Equal(t, termenv.ANSIYellow, LevelColor(slog.LevelWarn))
	assert.Equal(t, termenv.ANSICyan, LevelColor(slog.LevelInfo))
	assert.Equal(t, termenv.ANSIBrightBlack, LevelColor(slog.LevelDebug))
}
