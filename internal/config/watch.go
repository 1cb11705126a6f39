// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// developer console.
package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher reloads the config file when it changes on disk, so running
// hosts pick up prompt, theme and binding edits without a restart.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(*Config)
	done     chan struct{}
}

// NewWatcher creates a watcher for the given config path. onChange is
// called from the watcher goroutine with each successfully reloaded
// config; reload errors are ignored so a half-saved file does not kill
// a running session.
func NewWatcher(path string, onChange func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     path,
		watcher:  fsw,
		debounce: 250 * time.Millisecond,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	return w, nil
}

// Watch starts watching. The parent directory is watched rather than the
// file itself so editors that replace the file (write-to-temp + rename)
// are still observed.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// processEvents debounces change bursts and triggers reloads.
func (w *Watcher) processEvents() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if cfg, err := LoadFromPath(w.path); err == nil {
				w.onChange(cfg)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; keep processing.
		}
	}
}
