// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prefs reads and writes the user preferences kept in the store:
// the dark mode flag and the display name.
package prefs

import (
	"encoding/json"

	"github.com/muesli/termenv"

	"github.com/jeranaias/parley-tui/internal/session"
	"github.com/jeranaias/parley-tui/internal/store"
)

// =============================================================================
// PREFERENCES
// =============================================================================

// Prefs wraps the store with typed accessors for the preference keys. Each
// value is its own blob; writes replace it wholesale like everything else in
// the store.
type Prefs struct {
	store store.Store
}

// New returns preferences over the given store.
func New(s store.Store) *Prefs {
	return &Prefs{store: s}
}

// DarkMode returns the stored preference. When none has ever been saved the
// terminal background decides the initial theme.
func (p *Prefs) DarkMode() bool {
	blob, ok, err := p.store.Get(store.KeyDarkMode)
	if err != nil || !ok {
		return termenv.HasDarkBackground()
	}
	var dark bool
	if json.Unmarshal(blob, &dark) != nil {
		return termenv.HasDarkBackground()
	}
	return dark
}

// SetDarkMode persists the theme choice.
func (p *Prefs) SetDarkMode(dark bool) error {
	blob, err := json.Marshal(dark)
	if err != nil {
		return err
	}
	return p.store.Set(store.KeyDarkMode, blob)
}

// UserName returns the stored display name, or the default when none is set.
func (p *Prefs) UserName() string {
	blob, ok, err := p.store.Get(store.KeyUserName)
	if err != nil || !ok {
		return session.DefaultUserName
	}
	var name string
	if json.Unmarshal(blob, &name) != nil || name == "" {
		return session.DefaultUserName
	}
	return name
}

// SetUserName persists the display name. Empty names are ignored.
func (p *Prefs) SetUserName(name string) error {
	if name == "" {
		return nil
	}
	blob, err := json.Marshal(name)
	if err != nil {
		return err
	}
	return p.store.Set(store.KeyUserName, blob)
}
