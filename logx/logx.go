// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures structured logging with colored level
// names for terminal output, and a user-selectable verbosity level.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level will be shown. It defaults to [slog.LevelInfo],
// or [slog.LevelDebug] and [slog.LevelWarn] under the debug and
// release build tags respectively.
var UserLevel = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(defaultUserLevel)
	return lv
}()

// UseColor is whether to color level names in log output.
var UseColor = true

// SetUserLevel sets [UserLevel] from the given level name
// (debug, info, warn or error, case insensitive).
func SetUserLevel(name string) error {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return fmt.Errorf("logx: invalid log level %q: %w", name, err)
	}
	UserLevel.Set(lv)
	return nil
}

// NewLogger returns a new text logger writing to w at [UserLevel],
// with level names colored according to the terminal profile of w.
func NewLogger(w io.Writer, opts ...termenv.OutputOption) *slog.Logger {
	return slog.New(NewHandler(w, opts...))
}

// Handler is a [slog.Handler] that writes the record level as a
// colored prefix, followed by the text-formatted record.
type Handler struct {
	slog.Handler
	w   io.Writer
	out *termenv.Output
	mu  *sync.Mutex
}

// NewHandler returns a new [Handler] writing to w at [UserLevel].
func NewHandler(w io.Writer, opts ...termenv.OutputOption) *Handler {
	th := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Handler{Handler: th, w: w, out: termenv.NewOutput(w, opts...), mu: &sync.Mutex{}}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	lv := r.Level.String()
	if UseColor {
		lv = h.out.String(lv).Foreground(LevelColor(r.Level)).String()
	}
	if _, err := io.WriteString(h.w, lv+" "); err != nil {
		return err
	}
	return h.Handler.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), w: h.w, out: h.out, mu: h.mu}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), w: h.w, out: h.out, mu: h.mu}
}

// InitLogger sets the default slog logger to one from [NewLogger].
func InitLogger(w io.Writer) {
	slog.SetDefault(NewLogger(w))
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(lv slog.Level) termenv.Color {
	switch {
	case lv >= slog.LevelError:
		return termenv.ANSIRed
	case lv >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lv >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}
