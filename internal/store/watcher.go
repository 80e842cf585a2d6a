// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CHANGE WATCHER (FILE BACKEND ONLY)
// =============================================================================

// Watcher surfaces writes to a file-backed data directory as key names on C.
// It exists to make the shared-store hazard observable when several parley
// processes share one directory: a consumer can re-read a key after another
// writer replaced it. It does not serialize writers; the last write still
// wins. Writes from this process surface here too.
type Watcher struct {
	// C receives the store key whose blob changed.
	C <-chan string

	fw   *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher watches the given data directory for blob changes.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	ch := make(chan string, 16)
	w := &Watcher{C: ch, fw: fw, done: make(chan struct{})}

	go func() {
		defer close(ch)
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				// Atomic writes land as a rename onto "<key>.json"; plain
				// writes show up as write/create. Temp files are skipped.
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				name := filepath.Base(ev.Name)
				if !strings.HasSuffix(name, ".json") {
					continue
				}
				key := strings.TrimSuffix(name, ".json")
				select {
				case ch <- key:
				default:
					// Consumer is behind; drop rather than block the loop.
				}
			case <-fw.Errors:
				// Watch errors are not fatal to the store itself.
			case <-w.done:
				return
			}
		}
	}()

	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
