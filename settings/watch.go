// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/colorwell/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it changes on disk.
type Watcher struct {
	filename string
	watcher  *fsnotify.Watcher
}

// NewWatcher returns a new watcher for the given settings file.
// The directory of the file is watched so that editors that replace
// the file instead of writing it in place are also noticed.
func NewWatcher(filename string) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings: creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("settings: watching %s: %w", filename, err)
	}
	return &Watcher{filename: abs, watcher: w}, nil
}

// Run calls fn with the reloaded settings after every change to the
// file, until the context is done. Settings that fail to load are
// logged and skipped. Run closes the watcher when it returns.
func (w *Watcher) Run(ctx context.Context, fn func(s *Settings)) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s, err := Load(w.filename)
			if errors.Log(err) != nil {
				continue
			}
			slog.Debug("settings: reloaded", "file", w.filename)
			fn(s)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("settings: watcher", "err", err)
		}
	}
}

// Watch watches the given settings file until the context is done,
// calling fn with the reloaded settings after every change.
// It does not return until then, so it should typically be called
// in a separate goroutine.
func Watch(ctx context.Context, filename string, fn func(s *Settings)) error {
	w, err := NewWatcher(filename)
	if err != nil {
		return err
	}
	return w.Run(ctx, fn)
}
