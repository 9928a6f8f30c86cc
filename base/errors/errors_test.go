// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	b := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(b, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return b
}

func TestLog(t *testing.T) {
	b := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, b.String())

	err := New("shader compile failed")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, b.String(), "shader compile failed")
	assert.Contains(t, b.String(), "errors_test.go")
}

func TestLog1(t *testing.T) {
	b := captureLog(t)
	assert.Equal(t, 3, Log1(strconv.Atoi("3")))
	assert.Empty(t, b.String())
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
	assert.Contains(t, b.String(), "invalid syntax")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, 7, Must1(strconv.Atoi("7")))
	assert.Panics(t, func() { Must1(strconv.Atoi("seven")) })
	assert.Equal(t, 0, Ignore1(strconv.Atoi("seven")))
}

func TestWrappers(t *testing.T) {
	base := New("base")
	wrapped := fmt.Errorf("context: %w", base)
	assert.True(t, Is(wrapped, base))
	assert.Equal(t, base, Unwrap(wrapped))
	joined := Join(nil, base, nil)
	assert.True(t, Is(joined, base))
	assert.Nil(t, Join(nil, nil))

	var ne *strconv.NumError
	_, err := strconv.Atoi("q")
	assert.True(t, As(err, &ne))
	assert.Equal(t, "q", ne.Num)
}
