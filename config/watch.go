// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/spincube/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the given config file, as resolved by [File], and
// sends the config reloaded with [Load] each time the file is written,
// until ctx is done. Reload errors are logged and skipped. The
// directory is watched, so that editors that replace the file
// are seen.
func Watch(ctx context.Context, preset, file string) (<-chan *Config, error) {
	fn, err := File(file)
	if err != nil {
		return nil, err
	}
	fn = filepath.Clean(fn)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(fn)); err != nil {
		w.Close()
		return nil, err
	}
	ch := make(chan *Config, 1)
	go func() {
		defer close(ch)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != fn || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := Load(preset, fn)
				if err != nil {
					slog.Warn("config reload failed", "file", fn, "err", err)
					continue
				}
				slog.Info("config reloaded", "file", fn)
				select {
				case ch <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}
