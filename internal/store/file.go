// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/parley-tui/internal/util"
)

// =============================================================================
// FILE BACKEND
// =============================================================================

// FileStore keeps one file per key under a data directory. Writes go through
// an atomic rename with fsync so a crash never leaves a torn blob behind.
type FileStore struct {
	// Dir is the data directory, one "<key>.json" file per key.
	Dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

// Get reads the blob for key. A missing file means the key was never set.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, true, nil
}

// Set replaces the blob for key wholesale.
func (s *FileStore) Set(key string, blob []byte) error {
	if err := util.AtomicWriteFile(s.path(key), blob, 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.Dir, key+".json")
}
