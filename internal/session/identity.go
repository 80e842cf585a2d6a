// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
)

// =============================================================================
// SESSION IDENTITY
// =============================================================================

// DefaultUserName is used until the user picks a display name.
const DefaultUserName = "Anonymous"

// Identity is the per-process session identity. The ID is fixed for the
// lifetime of the process; the display name may change and is persisted
// elsewhere by the caller.
type Identity struct {
	id string

	mu       sync.Mutex
	userName string
}

// NewIdentity generates a fresh random identity. Uniqueness rests on
// entropy alone; there is no registry to enforce it.
func NewIdentity() *Identity {
	return &Identity{
		id:       generateSessionID(),
		userName: DefaultUserName,
	}
}

// ID returns the session identifier. Stable for the process lifetime.
func (i *Identity) ID() string {
	return i.id
}

// UserName returns the current display name.
func (i *Identity) UserName() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.userName
}

// SetUserName updates the display name. Empty names are ignored so a blank
// submit never wipes the current name.
func (i *Identity) SetUserName(name string) {
	if name == "" {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.userName = name
}

// generateSessionID creates a random per-process identifier.
func generateSessionID() string {
	bytes := make([]byte, 6)
	rand.Read(bytes)
	return "user_" + hex.EncodeToString(bytes)
}
